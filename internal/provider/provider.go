package provider

import (
	"encoding/json"
	"regexp"
	"strings"

	"stylesensai-server/internal/domain"
)

// jsonObjectPattern grabs the outermost JSON object from a model reply that
// wrapped it in prose or code fences.
var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// ParseResponse decodes the strict-JSON contract the providers are prompted
// to return. Models occasionally wrap the JSON in extra text, so a brace
// match is tried before giving up; unparseable replies degrade to an empty
// response rather than an error.
func ParseResponse(raw string) *domain.RewriteResponse {
	var data struct {
		CorrectedText string              `json:"correctedText"`
		Suggestions   []domain.Suggestion `json:"suggestions"`
	}

	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		if match := jsonObjectPattern.FindString(raw); match != "" {
			_ = json.Unmarshal([]byte(match), &data)
		}
	}

	resp := &domain.RewriteResponse{
		CorrectedText: data.CorrectedText,
		Suggestions:   data.Suggestions,
	}
	if resp.Suggestions == nil {
		resp.Suggestions = []domain.Suggestion{}
	}
	return resp
}

// Registry selects a provider by request name, falling back to the default.
type Registry struct {
	providers   map[string]domain.AIProvider
	defaultName string
}

func NewRegistry(defaultName string, providers ...domain.AIProvider) *Registry {
	m := make(map[string]domain.AIProvider, len(providers))
	for _, p := range providers {
		m[p.Name()] = p
	}
	return &Registry{providers: m, defaultName: defaultName}
}

// Get returns the provider for name. Empty name resolves to the default;
// unknown names return ok=false.
func (r *Registry) Get(name string) (domain.AIProvider, bool) {
	if strings.TrimSpace(name) == "" {
		name = r.defaultName
	}
	p, ok := r.providers[name]
	return p, ok
}

// Names lists the registered provider names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	return names
}
