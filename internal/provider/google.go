package provider

import (
	"context"
	"fmt"
	"strings"

	"stylesensai-server/internal/domain"

	"cloud.google.com/go/vertexai/genai"
)

// GoogleProvider calls Gemini through Vertex AI.
type GoogleProvider struct {
	client *genai.Client
	model  string
}

func NewGoogleProvider(ctx context.Context, projectID, location, model string) (*GoogleProvider, error) {
	client, err := genai.NewClient(ctx, projectID, location)
	if err != nil {
		return nil, fmt.Errorf("failed to create vertex ai client: %w", err)
	}
	if model == "" {
		model = "gemini-2.0-flash-001"
	}
	return &GoogleProvider{
		client: client,
		model:  model,
	}, nil
}

func (p *GoogleProvider) Name() string {
	return "google"
}

func (p *GoogleProvider) Rewrite(ctx context.Context, systemPrompt, userPrompt string) (*domain.RewriteResponse, error) {
	model := p.client.GenerativeModel(p.model)
	model.SetTemperature(0.2)
	model.ResponseMIMEType = "application/json"

	prompt := systemPrompt + "\n\n" + userPrompt
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini call failed: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("empty response from model")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}

	return ParseResponse(sb.String()), nil
}
