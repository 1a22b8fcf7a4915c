package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-delegation-wallet/internal/logger"
	"github.com/sbilibin2017/gw-delegation-wallet/internal/services"
)

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

// Loginer issues a token for valid credentials.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// LoginRequest holds the credentials of a delegator
// swagger:model LoginRequest
type LoginRequest struct {
	// required: true
	// default: delegator_1
	Username string `json:"username"`

	// required: true
	// default: secret123
	Password string `json:"password"`
}

// LoginResponse carries the bearer token for the protected delegation routes
// swagger:model LoginResponse
type LoginResponse struct {
	// default: JWT_TOKEN
	Token string `json:"token"`
}

// NewLoginHandler returns an HTTP handler that exchanges credentials for a bearer token.
// @Summary Log in
// @Description Authenticates a delegator and returns the token required by the delegation and withdrawal routes
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Credentials"
// @Success 200 {object} handlers.LoginResponse "Bearer token"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body or missing credentials"
// @Failure 401 {object} handlers.ErrorResponse "Invalid username or password"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}
		if req.Username == "" || req.Password == "" {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "username and password are required"})
			return
		}

		token, err := svc.Login(r.Context(), req.Username, req.Password)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, LoginResponse{Token: token})
		case errors.Is(err, services.ErrInvalidCredentials), errors.Is(err, services.ErrUserDoesNotExist):
			// one message for both so usernames cannot be enumerated
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Invalid username or password"})
		default:
			logger.Log.Errorw("login failed", "username", req.Username, "error", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
	}
}
