package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-delegation-wallet/internal/logger"
	"github.com/sbilibin2017/gw-delegation-wallet/internal/models"
	"github.com/sbilibin2017/gw-delegation-wallet/internal/services"
	"github.com/sbilibin2017/gw-delegation-wallet/internal/withdrawal"
)

//go:generate mockgen -source=delegation.go -destination=delegation_mock.go -package=handlers

// DelegationGetter defines the interface that the service must implement.
type DelegationGetter interface {
	GetDelegation(ctx context.Context, userID uuid.UUID, nodeID string) (*models.Delegation, error)
}

// DelegationResponse describes one delegation and how much of it can be withdrawn
// swagger:model DelegationResponse
type DelegationResponse struct {
	// Node identifier
	// default: 0x1f3a9c0e5b7d2a4c6e8f0a1b2c3d4e5f6a7b8c9d
	NodeID string `json:"node_id"`

	// Abbreviated node identifier for display
	// default: 0x1f3a...8c9d
	ShortNodeID string `json:"short_node_id"`

	// Node name
	// default: Validator One
	NodeName string `json:"node_name"`

	// Total withdrawable amount
	// default: 100
	TotalWithdrawable string `json:"total_withdrawable"`

	// Unlocked amount
	// default: 60
	Unlocked string `json:"unlocked"`

	// Locked amount
	// default: 40
	Locked string `json:"locked"`

	// Days a withdrawn locked amount stays frozen
	// default: 168
	UnlockDelayDays int `json:"unlock_delay_days"`
}

// NewGetDelegationHandler returns an HTTP handler for reading a delegation.
// @Summary Get delegation
// @Description Returns the withdrawable, unlocked and locked totals of the caller's delegation on a node
// @Tags delegations
// @Produce json
// @Param nodeID path string true "Node ID"
// @Success 200 {object} handlers.DelegationResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Delegation not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /delegations/{nodeID} [get]
// @Security BearerAuth
func NewGetDelegationHandler(svc DelegationGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(w, r)
		if !ok {
			return
		}
		nodeID := chi.URLParam(r, "nodeID")

		d, err := svc.GetDelegation(r.Context(), userID, nodeID)
		if err != nil {
			if errors.Is(err, services.ErrDelegationNotFound) {
				writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Delegation not found"})
				return
			}
			logger.Log.Errorw("failed to get delegation", "userID", userID, "nodeID", nodeID, "error", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			return
		}

		writeJSON(w, http.StatusOK, DelegationResponse{
			NodeID:            d.NodeID,
			ShortNodeID:       models.ShortNodeID(d.NodeID),
			NodeName:          d.NodeName,
			TotalWithdrawable: d.TotalWithdrawable.String(),
			Unlocked:          d.Unlocked.String(),
			Locked:            d.Locked.String(),
			UnlockDelayDays:   withdrawal.UnlockDelayDays,
		})
	}
}
