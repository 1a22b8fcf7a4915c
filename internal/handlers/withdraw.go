package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-delegation-wallet/internal/logger"
	"github.com/sbilibin2017/gw-delegation-wallet/internal/models"
	"github.com/sbilibin2017/gw-delegation-wallet/internal/services"
	"github.com/sbilibin2017/gw-delegation-wallet/internal/withdrawal"
)

//go:generate mockgen -source=withdraw.go -destination=withdraw_mock.go -package=handlers

// Denomination is the token symbol used in user facing messages.
const Denomination = "LAT"

// WithdrawalSubmitter defines the interface that the service must implement.
type WithdrawalSubmitter interface {
	Submit(ctx context.Context, userID uuid.UUID, nodeID, amountText string) (*models.WithdrawalResult, error)
}

// WithdrawalPreviewer defines the interface that the service must implement.
type WithdrawalPreviewer interface {
	Preview(ctx context.Context, userID uuid.UUID, nodeID, amountText string) (withdrawal.Outcome, error)
}

// WithdrawRequest represents the JSON body for a withdrawal
// swagger:model WithdrawRequest
type WithdrawRequest struct {
	// Amount as decimal text
	// required: true
	// default: 90
	Amount string `json:"amount"`
}

// WithdrawResponse describes an accepted or parked withdrawal
// swagger:model WithdrawResponse
type WithdrawResponse struct {
	// submitted or awaiting_confirmation
	// default: submitted
	Status string `json:"status"`

	// Set once the withdrawal was handed over
	WithdrawalID string `json:"withdrawal_id,omitempty"`

	// Set while the withdrawal waits for confirmation
	ConfirmationID string `json:"confirmation_id,omitempty"`

	// Validated amount
	// default: 90
	Amount string `json:"amount"`

	// Part drawn from locked funds
	// default: 30
	FrozenAmount string `json:"frozen_amount"`

	// Days the frozen part stays locked
	// default: 168
	UnlockDelayDays int `json:"unlock_delay_days,omitempty"`

	// Human readable notice
	Message string `json:"message,omitempty"`
}

// PreviewResponse is the live validation result for an amount being typed
// swagger:model PreviewResponse
type PreviewResponse struct {
	// invalid, valid or requires_confirmation
	// default: valid
	Kind string `json:"kind"`

	// Reason code when kind is invalid
	Code string `json:"code,omitempty"`

	// Validated amount
	Amount string `json:"amount,omitempty"`

	// Part drawn from locked funds
	FrozenAmount string `json:"frozen_amount,omitempty"`
}

// NewWithdrawHandler returns an HTTP handler that submits a withdrawal.
// @Summary Withdraw from delegation
// @Description Validates the amount against the delegation. Amounts within unlocked funds are submitted at once; amounts reaching into locked funds return a confirmation id.
// @Tags delegations
// @Accept json
// @Produce json
// @Param nodeID path string true "Node ID"
// @Param request body handlers.WithdrawRequest true "Withdraw Request"
// @Success 200 {object} handlers.WithdrawResponse "Withdrawal submitted"
// @Success 202 {object} handlers.WithdrawResponse "Withdrawal awaits confirmation"
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Delegation not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /delegations/{nodeID}/withdraw [post]
// @Security BearerAuth
func NewWithdrawHandler(svc WithdrawalSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(w, r)
		if !ok {
			return
		}
		nodeID := chi.URLParam(r, "nodeID")

		var req WithdrawRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}

		result, err := svc.Submit(r.Context(), userID, nodeID, req.Amount)
		if err != nil {
			writeWithdrawalError(w, err)
			return
		}

		status := http.StatusOK
		if result.Status == models.WithdrawalStatusAwaitingConfirmation {
			status = http.StatusAccepted
		}
		writeJSON(w, status, newWithdrawResponse(result))
	}
}

// NewPreviewWithdrawHandler returns an HTTP handler that validates an amount without submitting it.
// @Summary Preview withdrawal
// @Description Evaluates the amount against the delegation and reports whether it is invalid, valid or needs confirmation
// @Tags delegations
// @Produce json
// @Param nodeID path string true "Node ID"
// @Param amount query string false "Amount as decimal text"
// @Success 200 {object} handlers.PreviewResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Delegation not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /delegations/{nodeID}/withdraw/preview [get]
// @Security BearerAuth
func NewPreviewWithdrawHandler(svc WithdrawalPreviewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(w, r)
		if !ok {
			return
		}
		nodeID := chi.URLParam(r, "nodeID")

		outcome, err := svc.Preview(r.Context(), userID, nodeID, r.URL.Query().Get("amount"))
		if err != nil {
			writeWithdrawalError(w, err)
			return
		}

		resp := PreviewResponse{Kind: outcome.Kind.String()}
		if outcome.Invalid() {
			resp.Code = reasonCode(outcome.Reason)
		} else {
			resp.Amount = outcome.Amount.String()
			resp.FrozenAmount = outcome.FrozenPortion.String()
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func newWithdrawResponse(result *models.WithdrawalResult) WithdrawResponse {
	resp := WithdrawResponse{
		Status:          result.Status,
		WithdrawalID:    result.WithdrawalID,
		ConfirmationID:  result.ConfirmationID,
		Amount:          result.Amount,
		FrozenAmount:    result.FrozenAmount,
		UnlockDelayDays: result.UnlockDelayDays,
	}
	if result.Status == models.WithdrawalStatusAwaitingConfirmation {
		resp.Message = fmt.Sprintf("%s %s will be frozen for about %d days", result.FrozenAmount, Denomination, result.UnlockDelayDays)
	}
	return resp
}

func writeWithdrawalError(w http.ResponseWriter, err error) {
	var vErr *services.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: vErr.Error(), Code: reasonCode(vErr.Reason)})
	case errors.Is(err, services.ErrDelegationNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Delegation not found"})
	case errors.Is(err, services.ErrConfirmationNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Confirmation not found or expired"})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

func reasonCode(reason error) string {
	switch {
	case errors.Is(reason, withdrawal.ErrEmptyOrNonNumeric):
		return "empty_or_non_numeric"
	case errors.Is(reason, withdrawal.ErrNonPositive):
		return "non_positive"
	case errors.Is(reason, withdrawal.ErrExceedsTotal):
		return "exceeds_total"
	default:
		return ""
	}
}
