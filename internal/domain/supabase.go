package domain

import "github.com/supabase-community/supabase-go"

type SupabaseClient interface {
	Initialize() error
	ValidateToken(token string) (*SupabaseUser, error)

	// Admin returns a client authenticated with the service role key.
	// Repositories use it for privileged reads/writes that bypass RLS.
	Admin() *supabase.Client
	GetClientWithToken(token string) (*supabase.Client, error)
}
