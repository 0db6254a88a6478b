package handler

import (
	"net/http"

	"stylesensai-server/internal/domain"
)

// MeHandler answers "who am I and what am I entitled to". It never errors
// for unauthenticated callers; anonymous/guest usage is a valid product
// mode and gets an authenticated:false body instead of a 401.
type MeHandler struct {
	access domain.AccessResolver
	logger domain.Logger
}

func NewMeHandler(access domain.AccessResolver, logger domain.Logger) *MeHandler {
	return &MeHandler{
		access: access,
		logger: logger,
	}
}

type meResponse struct {
	Authenticated      bool               `json:"authenticated"`
	OnboardingComplete bool               `json:"onboardingComplete"`
	Plan               *domain.PlanTier   `json:"plan"`
	Limits             *domain.PlanLimits `json:"limits"`
}

func (h *MeHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r)
	if !ok {
		writeJSON(w, http.StatusOK, meResponse{})
		return
	}

	access, err := h.access.ResolveAccess(r.Context(), user.ID)
	if err != nil {
		// ResolveAccess degrades internally; an error here is unexpected,
		// but the endpoint contract is still "never fail the caller".
		h.logger.Error("Access resolution failed", err, "user_id", user.ID)
		writeJSON(w, http.StatusOK, meResponse{})
		return
	}

	writeJSON(w, http.StatusOK, meResponse{
		Authenticated:      true,
		OnboardingComplete: access.OnboardingComplete,
		Plan:               &access.Plan,
		Limits:             &access.Limits,
	})
}
