package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-delegation-wallet/internal/models"
)

//go:generate mockgen -source=confirm.go -destination=confirm_mock.go -package=handlers

// WithdrawalConfirmer defines the interface that the service must implement.
type WithdrawalConfirmer interface {
	Confirm(ctx context.Context, userID, confirmationID uuid.UUID) (*models.WithdrawalResult, error)
}

// WithdrawalCanceller defines the interface that the service must implement.
type WithdrawalCanceller interface {
	Cancel(ctx context.Context, userID, confirmationID uuid.UUID) (*models.WithdrawalResult, error)
}

// NewConfirmWithdrawalHandler returns an HTTP handler that accepts the freeze and submits a parked withdrawal.
// @Summary Confirm withdrawal
// @Description Re-validates the parked amount against the current delegation and submits it
// @Tags withdrawals
// @Produce json
// @Param confirmationID path string true "Confirmation ID"
// @Success 200 {object} handlers.WithdrawResponse "Withdrawal submitted"
// @Failure 400 {object} handlers.ErrorResponse "Amount no longer valid"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Confirmation not found or expired"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /withdrawals/{confirmationID}/confirm [post]
// @Security BearerAuth
func NewConfirmWithdrawalHandler(svc WithdrawalConfirmer) http.HandlerFunc {
	return newConfirmationHandler(svc.Confirm)
}

// NewCancelWithdrawalHandler returns an HTTP handler that discards a parked withdrawal.
// @Summary Cancel withdrawal
// @Description Discards the parked withdrawal; nothing is submitted
// @Tags withdrawals
// @Produce json
// @Param confirmationID path string true "Confirmation ID"
// @Success 200 {object} handlers.WithdrawResponse "Withdrawal cancelled"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Confirmation not found or expired"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /withdrawals/{confirmationID}/cancel [post]
// @Security BearerAuth
func NewCancelWithdrawalHandler(svc WithdrawalCanceller) http.HandlerFunc {
	return newConfirmationHandler(svc.Cancel)
}

func newConfirmationHandler(
	resolve func(ctx context.Context, userID, confirmationID uuid.UUID) (*models.WithdrawalResult, error),
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(w, r)
		if !ok {
			return
		}

		confirmationID, err := uuid.Parse(chi.URLParam(r, "confirmationID"))
		if err != nil {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Confirmation not found or expired"})
			return
		}

		result, err := resolve(r.Context(), userID, confirmationID)
		if err != nil {
			writeWithdrawalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newWithdrawResponse(result))
	}
}
