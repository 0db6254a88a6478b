package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"stylesensai-server/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort             string
	LogLevel               string
	SupabaseURL            string
	SupabaseKey            string
	SupabaseServiceRoleKey string
	StripeSecretKey        string
	StripePricePlus        string
	StripePricePro         string
	OpenAIKey              string
	OpenAIModel            string
	AnthropicKey           string
	AnthropicModel         string
	GCPProjectID           string
	GCPLocation            string
	GoogleModel            string
	AITimeoutSeconds       int
	AllowedOrigins         []string
	AppBaseURL             string
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:             getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		LogLevel:               getEnvOrDefault("LOG_LEVEL", "info"),
		SupabaseURL:            getEnvOrDefault("SUPABASE_URL", ""),
		SupabaseKey:            getEnvOrDefault("SUPABASE_ANON_KEY", ""),
		SupabaseServiceRoleKey: getEnvOrDefault("SUPABASE_SERVICE_ROLE_KEY", ""),
		StripeSecretKey:        getEnvOrDefault("STRIPE_SECRET_KEY", ""),
		StripePricePlus:        getEnvOrDefault("STRIPE_PRICE_PLUS", ""),
		StripePricePro:         getEnvOrDefault("STRIPE_PRICE_PRO", ""),
		OpenAIKey:              getEnvOrDefault("OPENAI_API_KEY", ""),
		OpenAIModel:            getEnvOrDefault("OPENAI_MODEL", "gpt-4o"),
		AnthropicKey:           getEnvOrDefault("ANTHROPIC_API_KEY", ""),
		AnthropicModel:         getEnvOrDefault("ANTHROPIC_MODEL", "claude-3-5-sonnet-20241022"),
		GCPProjectID:           getEnvOrDefault("GCP_PROJECT_ID", ""),
		GCPLocation:            getEnvOrDefault("GCP_LOCATION", "us-central1"),
		GoogleModel:            getEnvOrDefault("GOOGLE_MODEL", "gemini-2.0-flash-001"),
		AITimeoutSeconds:       getEnvIntOrDefault("AI_TIMEOUT_SECONDS", 25),
		AllowedOrigins:         getEnvListOrDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		AppBaseURL:             getEnvOrDefault("APP_BASE_URL", "http://localhost:3000"),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetSupabaseURL returns the Supabase URL
func (c *AppConfig) GetSupabaseURL() string {
	return c.SupabaseURL
}

// GetSupabaseKey returns the Supabase anon key
func (c *AppConfig) GetSupabaseKey() string {
	return c.SupabaseKey
}

// GetSupabaseServiceRoleKey returns the Supabase service role key
func (c *AppConfig) GetSupabaseServiceRoleKey() string {
	return c.SupabaseServiceRoleKey
}

// GetStripeSecretKey returns the Stripe secret key
func (c *AppConfig) GetStripeSecretKey() string {
	return c.StripeSecretKey
}

// GetStripePriceID returns the Stripe price id for a paid plan, or empty
// for free/unknown plans.
func (c *AppConfig) GetStripePriceID(plan domain.PlanTier) string {
	switch plan {
	case domain.PlanPlus:
		return c.StripePricePlus
	case domain.PlanPro:
		return c.StripePricePro
	default:
		return ""
	}
}

func (c *AppConfig) GetOpenAIKey() string {
	return c.OpenAIKey
}

func (c *AppConfig) GetOpenAIModel() string {
	return c.OpenAIModel
}

func (c *AppConfig) GetAnthropicKey() string {
	return c.AnthropicKey
}

func (c *AppConfig) GetAnthropicModel() string {
	return c.AnthropicModel
}

func (c *AppConfig) GetGCPProjectID() string {
	return c.GCPProjectID
}

func (c *AppConfig) GetGCPLocation() string {
	return c.GCPLocation
}

func (c *AppConfig) GetGoogleModel() string {
	return c.GoogleModel
}

// GetAITimeout returns the bound on a single external AI call
func (c *AppConfig) GetAITimeout() time.Duration {
	return time.Duration(c.AITimeoutSeconds) * time.Second
}

// GetAllowedOrigins returns the CORS allow list
func (c *AppConfig) GetAllowedOrigins() []string {
	return c.AllowedOrigins
}

// GetAppBaseURL returns the web app base URL used for checkout redirects
func (c *AppConfig) GetAppBaseURL() string {
	return c.AppBaseURL
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
