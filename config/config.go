package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Placeholder values shipped in .env.example. A credential equal to one of
// these was never configured.
const (
	OpenAIKeyPlaceholder            = "your_openai_api_key_here"
	StripePublishableKeyPlaceholder = "your_stripe_publishable_key_here"
	StripeSecretKeyPlaceholder      = "your_stripe_secret_key_here"

	DefaultTextModel = "gpt-3.5-turbo"
)

type Config struct {
	Port    string
	GinMode string

	OpenAIAPIKey  string
	OpenAIBaseURL string
	TextModel     string
	HTTPTimeout   time.Duration

	StripePublishableKey   string
	StripeSecretKey        string
	PaymentProcessingDelay time.Duration

	RedisAddr     string
	RedisPort     string
	RedisPassword string
	FormStateTTL  time.Duration

	CORSOrigins []string

	// Log configuration
	LogLevel      string
	LogFilename   string
	LogMaxSize    int
	LogMaxBackups int
	LogMaxAge     int
	LogCompress   bool
}

func (c *Config) RedisFullAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisAddr, c.RedisPort)
}

// RedisEnabled reports whether form state should live in Redis instead of
// process memory.
func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}

func (c *Config) OpenAIConfigured() bool {
	return isConfigured(c.OpenAIAPIKey, OpenAIKeyPlaceholder)
}

func (c *Config) StripeConfigured() bool {
	return isConfigured(c.StripePublishableKey, StripePublishableKeyPlaceholder)
}

// StripeSecretConfigured reports whether the server-side key a real payment
// backend would use is set. The mock checkout does not need it.
func (c *Config) StripeSecretConfigured() bool {
	return isConfigured(c.StripeSecretKey, StripeSecretKeyPlaceholder)
}

// Warnings lists the user-visible messages for every integration whose
// credentials are missing.
func (c *Config) Warnings() []string {
	var warnings []string
	if !c.OpenAIConfigured() {
		warnings = append(warnings, "OpenAI API key not configured. Please set OPENAI_API_KEY in your .env file.")
	}
	if !c.StripeConfigured() {
		warnings = append(warnings, "Stripe publishable key not configured. Please set STRIPE_PUBLISHABLE_KEY in your .env file.")
	}
	return warnings
}

func isConfigured(value, placeholder string) bool {
	value = strings.TrimSpace(value)
	return value != "" && value != placeholder
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		// Ignore error if .env file is not found
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	return &Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: ginMode(getEnv("GIN_MODE", "release")),

		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		TextModel:     getEnv("OPENAI_TEXT_MODEL", DefaultTextModel),
		HTTPTimeout:   getEnvAsDuration("HTTP_TIMEOUT", 0),

		StripePublishableKey:   os.Getenv("STRIPE_PUBLISHABLE_KEY"),
		StripeSecretKey:        os.Getenv("STRIPE_SECRET_KEY"),
		PaymentProcessingDelay: getEnvAsDuration("PAYMENT_PROCESSING_DELAY", 2*time.Second),

		RedisAddr:     os.Getenv("REDIS_HOST"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		FormStateTTL:  getEnvAsDuration("FORM_STATE_TTL", 24*time.Hour),

		CORSOrigins: getEnvAsList("CORS_ORIGINS", []string{"http://localhost:5173", "http://localhost:8080"}),

		LogLevel:      getEnv("LOG_LEVEL", "INFO"),
		LogFilename:   getEnv("LOG_FILENAME", "logs/app.log"),
		LogMaxSize:    getEnvAsInt("LOG_MAX_SIZE", 100),
		LogMaxBackups: getEnvAsInt("LOG_MAX_BACKUPS", 3),
		LogMaxAge:     getEnvAsInt("LOG_MAX_AGE", 28),
		LogCompress:   getEnvAsBool("LOG_COMPRESS", true),
	}, nil
}

// ginMode falls back to release for values gin.SetMode would panic on.
func ginMode(mode string) string {
	switch mode {
	case "debug", "release", "test":
		return mode
	}
	return "release"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.Atoi(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.ParseBool(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := time.ParseDuration(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(valueStr) == "" {
		return defaultValue
	}
	var values []string
	for _, v := range strings.Split(valueStr, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}
