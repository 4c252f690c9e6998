package api

import (
	"net/http"

	"aistudio-backend/config"
	_ "aistudio-backend/docs"
	"aistudio-backend/internal/api/v1/forms"
	"aistudio-backend/internal/api/v1/image"
	"aistudio-backend/internal/api/v1/payment"
	"aistudio-backend/internal/api/v1/status"
	"aistudio-backend/internal/api/v1/text"
	"aistudio-backend/internal/api/web"
	"aistudio-backend/internal/database"
	"aistudio-backend/internal/middleware"
	"aistudio-backend/internal/payment/mock"
	"aistudio-backend/internal/render"
	"aistudio-backend/internal/services"
	"aistudio-backend/internal/utils"
	"aistudio-backend/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Services bundles the adapters and the submission tracker the routes use.
type Services struct {
	Text    *services.TextService
	Image   *services.ImageService
	Payment *services.PaymentService
	Tracker *services.SubmissionTracker
}

// NewServices builds every adapter from cfg. Nothing here touches the network.
func NewServices(cfg *config.Config, store database.FormStore) *Services {
	client := services.NewOpenAIClient(cfg, logger.Named("openai.http"))
	driver := mock.NewDriver(cfg.StripePublishableKey, config.StripePublishableKeyPlaceholder)

	return &Services{
		Text:    services.NewTextService(cfg, client, logger.Named("text")),
		Image:   services.NewImageService(cfg, client, logger.Named("image")),
		Payment: services.NewPaymentService(driver, cfg.PaymentProcessingDelay, logger.Named("payment")),
		Tracker: services.NewSubmissionTracker(store, logger.Named("submission")),
	}
}

func NewRouter(cfg *config.Config, svc *Services) (*gin.Engine, error) {
	utils.RegisterValidators()

	tmpl, err := render.Templates()
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.Logger())
	router.SetHTMLTemplate(tmpl)

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.SessionHeader, middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.NewSuccessResponse("ok", nil))
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.Use(middleware.Session())

	web.RegisterRoutes(router, web.NewHandler(svc.Text, svc.Image, svc.Payment, svc.Tracker, cfg.Warnings()))

	v1 := router.Group("/api/v1")
	{
		status.RegisterRoutes(v1, cfg)
		text.RegisterRoutes(v1, text.NewHandler(svc.Text, svc.Tracker))
		image.RegisterRoutes(v1, image.NewHandler(svc.Image, svc.Tracker))
		payment.RegisterRoutes(v1, payment.NewHandler(svc.Payment, svc.Tracker))
		forms.RegisterRoutes(v1, forms.NewHandler(svc.Tracker))
	}

	return router, nil
}
