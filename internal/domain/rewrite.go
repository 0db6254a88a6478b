package domain

import "context"

// Suggestion is a single explainable edit returned by the AI provider.
type Suggestion struct {
	Original    string `json:"original"`
	Suggestion  string `json:"suggestion"`
	Explanation string `json:"explanation"`
}

// RewriteRequest is a gated text-transformation request.
type RewriteRequest struct {
	Text     string `json:"text"`
	Style    string `json:"style"`
	Provider string `json:"provider,omitempty"`
}

// RewriteResponse mirrors the strict-JSON contract the providers are
// prompted to return.
type RewriteResponse struct {
	CorrectedText string       `json:"correctedText"`
	Suggestions   []Suggestion `json:"suggestions"`
}

// AIProvider is a thin client for one external LLM API.
type AIProvider interface {
	Name() string
	Rewrite(ctx context.Context, systemPrompt, userPrompt string) (*RewriteResponse, error)
}

// RewriteService runs the gated transform flow: check word limit, call the
// provider, then meter the words actually consumed.
type RewriteService interface {
	Rewrite(ctx context.Context, userID string, req RewriteRequest) (*RewriteResponse, error)
}
