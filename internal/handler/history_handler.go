package handler

import (
	"encoding/json"
	"net/http"

	"stylesensai-server/internal/domain"
	"stylesensai-server/internal/service"

	"github.com/gorilla/mux"
)

type HistoryHandler struct {
	historyService service.HistoryService
	logger         domain.Logger
}

func NewHistoryHandler(historyService service.HistoryService, logger domain.Logger) *HistoryHandler {
	return &HistoryHandler{
		historyService: historyService,
		logger:         logger,
	}
}

// Save handles POST /history
func (h *HistoryHandler) Save(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	var body struct {
		Text         string   `json:"text"`
		Tone         string   `json:"tone"`
		Revised      string   `json:"revised"`
		Explanations []string `json:"explanations"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if body.Text == "" || body.Revised == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	id, err := h.historyService.Save(r.Context(), user.ID, &domain.History{
		Tone:         body.Tone,
		InputText:    body.Text,
		OutputText:   body.Revised,
		Explanations: body.Explanations,
	})
	if err != nil {
		h.logger.Error("Failed to save history", err, "user_id", user.ID)
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

// List handles GET /history
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	entries, err := h.historyService.List(r.Context(), user.ID)
	if err != nil {
		h.logger.Error("Failed to list history", err, "user_id", user.ID)
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

// Get handles GET /history/{id}
func (h *HistoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	id := mux.Vars(r)["id"]
	if id == "" {
		writeError(w, http.StatusBadRequest, "History ID is required")
		return
	}

	entry, err := h.historyService.Get(r.Context(), user.ID, id)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

// Delete handles DELETE /history/{id}
func (h *HistoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	id := mux.Vars(r)["id"]
	if id == "" {
		writeError(w, http.StatusBadRequest, "History ID is required")
		return
	}

	if err := h.historyService.Delete(r.Context(), user.ID, id); err != nil {
		h.logger.Error("Failed to delete history", err, "user_id", user.ID, "id", id)
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
