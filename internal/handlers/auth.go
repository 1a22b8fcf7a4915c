package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-delegation-wallet/internal/logger"
	"github.com/sbilibin2017/gw-delegation-wallet/internal/middlewares"
)

// ErrorResponse is the body of every failed request.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`

	// Machine readable reason, set for validation failures
	// default: exceeds_total
	Code string `json:"code,omitempty"`
}

// userIDFromRequest reads the caller stored by AuthMiddleware or writes 401 and returns false.
func userIDFromRequest(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID := middlewares.UserIDFromContext(r.Context())
	if userID == uuid.Nil {
		logger.Log.Errorw("request reached a protected handler without a user", "request_id", middlewares.RequestIDFromContext(r.Context()))
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return uuid.Nil, false
	}
	return userID, true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}
