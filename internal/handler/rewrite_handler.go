package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"stylesensai-server/internal/domain"
)

type RewriteHandler struct {
	rewriteService domain.RewriteService
	logger         domain.Logger
}

func NewRewriteHandler(rewriteService domain.RewriteService, logger domain.Logger) *RewriteHandler {
	return &RewriteHandler{
		rewriteService: rewriteService,
		logger:         logger,
	}
}

// Rewrite handles POST /rewrite
func (h *RewriteHandler) Rewrite(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	var req domain.RewriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Text) == "" || strings.TrimSpace(req.Style) == "" {
		writeError(w, http.StatusBadRequest, "Missing text or style")
		return
	}

	resp, err := h.rewriteService.Rewrite(r.Context(), user.ID, req)
	if err != nil {
		h.logger.Error("Rewrite failed", err, "user_id", user.ID)
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
