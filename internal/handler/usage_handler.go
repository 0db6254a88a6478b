package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"stylesensai-server/internal/domain"
)

// UsageHandler exposes the entitlement gate over HTTP. The gate is
// advisory: callers must treat allowed=false as a hard precondition.
type UsageHandler struct {
	access    domain.AccessResolver
	usageRepo domain.UsageRepository
	logger    domain.Logger
}

func NewUsageHandler(access domain.AccessResolver, usageRepo domain.UsageRepository, logger domain.Logger) *UsageHandler {
	return &UsageHandler{
		access:    access,
		usageRepo: usageRepo,
		logger:    logger,
	}
}

// Check handles POST /usage/check
func (h *UsageHandler) Check(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	var body struct {
		WordsToAdd *int `json:"wordsToAdd"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.WordsToAdd == nil {
		writeError(w, http.StatusBadRequest, "Invalid wordsToAdd parameter")
		return
	}
	if *body.WordsToAdd < 0 {
		writeError(w, http.StatusBadRequest, "Invalid wordsToAdd parameter")
		return
	}

	result, err := h.access.CheckWordLimit(r.Context(), user.ID, *body.WordsToAdd)
	if err != nil {
		h.logger.Error("Word limit check failed", err, "user_id", user.ID)
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Increment handles POST /usage/increment
func (h *UsageHandler) Increment(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	var body struct {
		WordsUsed *int `json:"wordsUsed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.WordsUsed == nil {
		writeError(w, http.StatusBadRequest, "Invalid wordsUsed parameter")
		return
	}
	if *body.WordsUsed < 0 {
		writeError(w, http.StatusBadRequest, "Invalid wordsUsed parameter")
		return
	}

	day := domain.UsageDay(time.Now())
	if err := h.usageRepo.IncrementUsage(r.Context(), user.ID, day, *body.WordsUsed); err != nil {
		h.logger.Error("Usage increment failed", err, "user_id", user.ID, "words", *body.WordsUsed)
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
