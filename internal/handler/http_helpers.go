package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"stylesensai-server/internal/domain"
	apperrors "stylesensai-server/pkg/errors"
)

type contextKey string

const userContextKey contextKey = "user"

// GetUserFromContext extracts the authenticated user from request context
func GetUserFromContext(r *http.Request) (*domain.SupabaseUser, bool) {
	user, ok := r.Context().Value(userContextKey).(*domain.SupabaseUser)
	return user, ok
}

// GetTokenFromContext extracts the authentication token from request context
func GetTokenFromContext(r *http.Request) (string, bool) {
	return domain.AccessTokenFromContext(r.Context())
}

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write([]byte(`{"error":"` + message + `"}`))
}

// writeJSON writes a JSON response with the given status
func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// writeAppError maps an AppError to its HTTP status, even when wrapped.
// Quota errors carry the user's remaining balance in the body.
func writeAppError(w http.ResponseWriter, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Type == apperrors.ErrorTypeQuota {
			writeJSON(w, appErr.StatusCode, map[string]interface{}{
				"error":     appErr.Message,
				"remaining": appErr.Remaining,
			})
			return
		}
		writeError(w, appErr.StatusCode, appErr.Message)
		return
	}
	writeError(w, http.StatusInternalServerError, "Internal server error")
}
