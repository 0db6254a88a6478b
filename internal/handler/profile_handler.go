package handler

import (
	"encoding/json"
	"net/http"

	"stylesensai-server/internal/domain"
)

type ProfileHandler struct {
	profileRepo domain.ProfileRepository
	logger      domain.Logger
}

func NewProfileHandler(profileRepo domain.ProfileRepository, logger domain.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// Get handles GET /profile. A user with no profile row gets defaults with
// onboarding_complete=false.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	profile, err := h.profileRepo.Get(r.Context(), user.ID)
	if err != nil {
		h.logger.Error("Failed to get profile", err, "user_id", user.ID)
		writeAppError(w, err)
		return
	}
	if profile == nil {
		profile = &domain.Profile{UserID: user.ID}
	}

	writeJSON(w, http.StatusOK, profile)
}

// Update handles PUT /profile
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	var profile domain.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	profile.UserID = user.ID

	if err := h.profileRepo.Upsert(r.Context(), &profile); err != nil {
		h.logger.Error("Failed to update profile", err, "user_id", user.ID)
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}
