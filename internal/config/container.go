package config

import (
	"context"
	"net/http"

	"stylesensai-server/internal/domain"
	"stylesensai-server/internal/infra/supabase"
	"stylesensai-server/internal/provider"
	"stylesensai-server/internal/repository"
	"stylesensai-server/internal/service"
	"stylesensai-server/pkg/logger"
)

// Container holds all application dependencies. Everything is constructed
// once per process and passed down explicitly; there is no ambient global
// client state.
type Container struct {
	Config domain.Config
	Logger domain.Logger

	SupabaseClient domain.SupabaseClient

	SubscriptionRepository domain.SubscriptionRepository
	ProfileRepository      domain.ProfileRepository
	UsageRepository        domain.UsageRepository
	HistoryRepository      domain.HistoryRepository

	AuthService    domain.AuthService
	AccessResolver domain.AccessResolver
	RewriteService domain.RewriteService
	BillingService domain.BillingService
	HistoryService service.HistoryService
}

// NewContainer creates a new dependency injection container
func NewContainer() (*Container, error) {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	// A misconfigured plan registry must fail startup, never a request.
	if err := domain.ValidateRegistry(); err != nil {
		return nil, err
	}

	supabaseClient := supabase.NewClient(config, appLogger)
	if err := supabaseClient.Initialize(); err != nil {
		return nil, err
	}

	subscriptionRepo := repository.NewSupabaseSubscriptionRepository(supabaseClient, appLogger)
	profileRepo := repository.NewSupabaseProfileRepository(supabaseClient, appLogger)
	usageRepo := repository.NewSupabaseUsageRepository(supabaseClient, appLogger)
	historyRepo := repository.NewSupabaseHistoryRepository(supabaseClient, appLogger)

	authService := service.NewAuthService(supabaseClient, appLogger)
	accessService := service.NewAccessService(subscriptionRepo, profileRepo, usageRepo, appLogger)

	providerClient := &http.Client{Timeout: config.GetAITimeout()}
	providers := []domain.AIProvider{
		provider.NewOpenAIProvider(config.GetOpenAIKey(), config.GetOpenAIModel(), providerClient),
		provider.NewAnthropicProvider(config.GetAnthropicKey(), config.GetAnthropicModel(), providerClient),
	}
	if config.GetGCPProjectID() != "" {
		google, err := provider.NewGoogleProvider(context.Background(), config.GetGCPProjectID(), config.GetGCPLocation(), config.GetGoogleModel())
		if err != nil {
			appLogger.Warn("Google provider unavailable", "error", err)
		} else {
			providers = append(providers, google)
		}
	}
	registry := provider.NewRegistry("openai", providers...)

	rewriteService := service.NewRewriteService(accessService, usageRepo, registry, appLogger, config.GetAITimeout())
	billingService := service.NewBillingService(subscriptionRepo, config, appLogger)
	historyService := service.NewHistoryService(historyRepo, appLogger)

	return &Container{
		Config:                 config,
		Logger:                 appLogger,
		SupabaseClient:         supabaseClient,
		SubscriptionRepository: subscriptionRepo,
		ProfileRepository:      profileRepo,
		UsageRepository:        usageRepo,
		HistoryRepository:      historyRepo,
		AuthService:            authService,
		AccessResolver:         accessService,
		RewriteService:         rewriteService,
		BillingService:         billingService,
		HistoryService:         historyService,
	}, nil
}
