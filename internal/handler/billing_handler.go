package handler

import (
	"encoding/json"
	"net/http"

	"stylesensai-server/internal/domain"
)

type BillingHandler struct {
	billingService domain.BillingService
	logger         domain.Logger
}

func NewBillingHandler(billingService domain.BillingService, logger domain.Logger) *BillingHandler {
	return &BillingHandler{
		billingService: billingService,
		logger:         logger,
	}
}

// Checkout handles POST /billing/checkout
func (h *BillingHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	var body struct {
		Plan string `json:"plan"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Plan == "" {
		writeError(w, http.StatusBadRequest, "Missing plan")
		return
	}

	session, err := h.billingService.CreateCheckout(r.Context(), user.ID, domain.PlanTier(body.Plan))
	if err != nil {
		h.logger.Error("Checkout creation failed", err, "user_id", user.ID, "plan", body.Plan)
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// Confirm handles POST /billing/confirm
func (h *BillingHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	if _, ok := GetUserFromContext(r); !ok {
		writeError(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	var body struct {
		SessionID string `json:"sessionId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.SessionID == "" {
		writeError(w, http.StatusBadRequest, "Missing session ID")
		return
	}

	sub, err := h.billingService.ConfirmCheckout(r.Context(), body.SessionID)
	if err != nil {
		h.logger.Error("Subscription confirmation failed", err, "session_id", body.SessionID)
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Subscription confirmed",
		"plan":    sub.Plan,
		"status":  sub.Status,
	})
}
