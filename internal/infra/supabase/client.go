package supabase

import (
	"fmt"

	"stylesensai-server/internal/domain"

	"github.com/supabase-community/supabase-go"
)

// Client implements the domain.SupabaseClient interface. It holds two
// handles: the anon-key client used for GoTrue token validation, and a
// service-role client used by repositories for privileged table access.
type Client struct {
	client *supabase.Client
	admin  *supabase.Client
	config domain.Config
	logger domain.Logger
}

// NewClient creates a new Supabase client instance
func NewClient(config domain.Config, logger domain.Logger) domain.SupabaseClient {
	return &Client{
		config: config,
		logger: logger,
	}
}

// Initialize establishes the Supabase connections
func (s *Client) Initialize() error {
	supabaseURL := s.config.GetSupabaseURL()
	supabaseKey := s.config.GetSupabaseKey()
	serviceKey := s.config.GetSupabaseServiceRoleKey()

	if supabaseURL == "" || supabaseKey == "" {
		return fmt.Errorf("supabase URL and key must be provided")
	}

	client, err := supabase.NewClient(supabaseURL, supabaseKey, &supabase.ClientOptions{})
	if err != nil {
		return fmt.Errorf("failed to create Supabase client: %w", err)
	}
	s.client = client

	if serviceKey == "" {
		return fmt.Errorf("supabase service role key must be provided")
	}
	admin, err := supabase.NewClient(supabaseURL, serviceKey, &supabase.ClientOptions{})
	if err != nil {
		return fmt.Errorf("failed to create Supabase admin client: %w", err)
	}
	s.admin = admin

	s.logger.Info("Supabase clients initialized successfully", "url", supabaseURL)
	return nil
}

// Admin returns the service-role client used by repositories.
func (s *Client) Admin() *supabase.Client {
	return s.admin
}

// GetClientWithToken returns a client scoped to the given user access token,
// so row level security applies as that user.
func (s *Client) GetClientWithToken(token string) (*supabase.Client, error) {
	if token == "" {
		return nil, fmt.Errorf("token must not be empty")
	}
	client, err := supabase.NewClient(s.config.GetSupabaseURL(), s.config.GetSupabaseKey(), &supabase.ClientOptions{
		Headers: map[string]string{"Authorization": "Bearer " + token},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create token-scoped client: %w", err)
	}
	return client, nil
}

// ValidateToken validates a Supabase JWT token and returns user info
func (s *Client) ValidateToken(token string) (*domain.SupabaseUser, error) {
	if s.client == nil {
		return nil, fmt.Errorf("supabase client not initialized")
	}

	// Get user info using an auth client with the access token.
	// Note: passing "Authorization" via Supabase client headers does not affect GoTrue requests.
	user, err := s.client.Auth.WithToken(token).GetUser()
	if err != nil {
		s.logger.Error("Failed to validate token with Supabase", err)
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	domainUser := &domain.SupabaseUser{
		ID:           user.ID.String(),
		Email:        user.Email,
		UserMetadata: user.UserMetadata,
		CreatedAt:    user.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:    user.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}

	return domainUser, nil
}
