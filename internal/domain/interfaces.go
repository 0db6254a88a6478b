package domain

import "time"

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetLogLevel() string
	GetSupabaseURL() string
	GetSupabaseKey() string
	GetSupabaseServiceRoleKey() string
	GetStripeSecretKey() string
	GetStripePriceID(plan PlanTier) string
	GetOpenAIKey() string
	GetOpenAIModel() string
	GetAnthropicKey() string
	GetAnthropicModel() string
	GetGCPProjectID() string
	GetGCPLocation() string
	GetGoogleModel() string
	GetAITimeout() time.Duration
	GetAllowedOrigins() []string
	GetAppBaseURL() string
}
