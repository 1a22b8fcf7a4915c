package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-delegation-wallet/internal/logger"
	"github.com/sbilibin2017/gw-delegation-wallet/internal/services"
)

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

// Registerer creates delegator accounts.
type Registerer interface {
	Register(ctx context.Context, username, password, email string) error
}

// RegisterRequest is the body of a new delegator account
// swagger:model RegisterRequest
type RegisterRequest struct {
	// required: true
	// default: delegator_1
	Username string `json:"username"`

	// required: true
	// default: secret123
	Password string `json:"password"`

	// required: true
	// default: delegator@example.com
	Email string `json:"email"`
}

// RegisterResponse acknowledges a created account
// swagger:model RegisterResponse
type RegisterResponse struct {
	// default: User registered successfully
	Message string `json:"message"`
}

// NewRegisterHandler returns an HTTP handler that creates a delegator account.
// @Summary Register
// @Description Creates a delegator account with a unique username and email. The password is stored as a bcrypt hash.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "New account"
// @Success 201 {object} handlers.RegisterResponse "Account created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request or missing fields"
// @Failure 409 {object} handlers.ErrorResponse "Username or email already exists"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}
		if req.Username == "" || req.Password == "" || req.Email == "" {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "username, password and email are required"})
			return
		}

		err := svc.Register(r.Context(), req.Username, req.Password, req.Email)
		switch {
		case err == nil:
			writeJSON(w, http.StatusCreated, RegisterResponse{Message: "User registered successfully"})
		case errors.Is(err, services.ErrUserAlreadyExists):
			writeJSON(w, http.StatusConflict, ErrorResponse{Error: "Username or email already exists"})
		default:
			logger.Log.Errorw("registration failed", "username", req.Username, "error", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
	}
}
