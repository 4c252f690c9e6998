package forms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"aistudio-backend/internal/database"
	"aistudio-backend/internal/middleware"
	"aistudio-backend/internal/models"
	"aistudio-backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter() (*gin.Engine, *services.SubmissionTracker) {
	gin.SetMode(gin.TestMode)
	tracker := services.NewSubmissionTracker(database.NewMemoryFormStore(time.Hour), nil)
	r := gin.New()
	r.Use(middleware.Session())
	RegisterRoutes(r.Group("/api/v1"), NewHandler(tracker))
	return r, tracker
}

func get(r http.Handler, path, session string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	req.Header.Set(middleware.SessionHeader, session)
	r.ServeHTTP(w, req)
	return w
}

func TestGetFormState(t *testing.T) {
	r, tracker := setupRouter()
	ctx := context.Background()

	_, err := tracker.Submit(ctx, "session-1", models.FormText, func(context.Context) (services.Outcome, error) {
		return services.Outcome{Result: "Hello!"}, nil
	})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		w := get(r, "/api/v1/forms/text", "session-1")
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data models.FormState `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, models.SubmissionSuccess, resp.Data.Status)
		assert.Equal(t, "Hello!", resp.Data.Result)
		require.NotNil(t, resp.Data.Notice, "reading must not clear the notice")
	}
}

func TestGetFormStateIdle(t *testing.T) {
	r, _ := setupRouter()

	w := get(r, "/api/v1/forms/image", "fresh-session")

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data models.FormState `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.FormImage, resp.Data.Form)
	assert.Equal(t, models.SubmissionIdle, resp.Data.Status)
	assert.Empty(t, resp.Data.Result)
	assert.Nil(t, resp.Data.Notice)
}

func TestGetFormStateUnknownForm(t *testing.T) {
	r, _ := setupRouter()

	w := get(r, "/api/v1/forms/video", "session-1")

	assert.Equal(t, http.StatusNotFound, w.Code)
}
