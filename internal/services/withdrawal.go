package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-delegation-wallet/internal/logger"
	"github.com/sbilibin2017/gw-delegation-wallet/internal/models"
	"github.com/sbilibin2017/gw-delegation-wallet/internal/withdrawal"
)

//go:generate mockgen -source=withdrawal.go -destination=withdrawal_mock.go -package=services

var (
	// ErrDelegationNotFound is returned when the user holds no delegation on the node.
	ErrDelegationNotFound = errors.New("delegation not found")
	// ErrConfirmationNotFound is returned for unknown, expired or foreign confirmation ids.
	ErrConfirmationNotFound = errors.New("withdrawal confirmation not found or expired")
)

// ValidationError carries the reason a withdrawal amount was rejected.
// The reason is one of the withdrawal.Err* sentinels.
type ValidationError struct {
	Reason error
}

func (e *ValidationError) Error() string { return e.Reason.Error() }

func (e *ValidationError) Unwrap() error { return e.Reason }

// DelegationReader loads delegation snapshots.
type DelegationReader interface {
	GetByUserAndNode(ctx context.Context, userID uuid.UUID, nodeID string) (*models.DelegationDB, error)
}

// ConfirmationStore keeps withdrawals that wait for the user's confirmation.
type ConfirmationStore interface {
	Set(ctx context.Context, pending models.PendingWithdrawal) error
	Get(ctx context.Context, id uuid.UUID) (*models.PendingWithdrawal, error)
	Take(ctx context.Context, id uuid.UUID) (*models.PendingWithdrawal, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// Withdrawer receives every accepted withdrawal.
type Withdrawer interface {
	Withdraw(ctx context.Context, instruction models.WithdrawInstruction) error
}

// WithdrawalService runs the two-phase withdrawal flow: submit, then confirm
// or cancel when the amount reaches into locked funds.
type WithdrawalService struct {
	delegations   DelegationReader
	confirmations ConfirmationStore
	withdrawer    Withdrawer
	now           func() time.Time
}

// NewWithdrawalService creates a new WithdrawalService.
func NewWithdrawalService(
	delegations DelegationReader,
	confirmations ConfirmationStore,
	withdrawer Withdrawer,
) *WithdrawalService {
	return &WithdrawalService{
		delegations:   delegations,
		confirmations: confirmations,
		withdrawer:    withdrawer,
		now:           time.Now,
	}
}

// GetDelegation returns the delegation of userID on nodeID with NULL totals read as zero.
func (s *WithdrawalService) GetDelegation(ctx context.Context, userID uuid.UUID, nodeID string) (*models.Delegation, error) {
	row, err := s.delegations.GetByUserAndNode(ctx, userID, nodeID)
	if err != nil {
		logger.Log.Errorw("failed to get delegation", "userID", userID, "nodeID", nodeID, "error", err)
		return nil, err
	}
	if row == nil {
		return nil, ErrDelegationNotFound
	}

	snapshot, err := withdrawal.SnapshotFromNullable(row.TotalWithdrawable, row.Unlocked, row.Locked)
	if err != nil {
		logger.Log.Errorw("delegation has invalid totals", "userID", userID, "nodeID", nodeID, "error", err)
		return nil, err
	}

	return &models.Delegation{
		UserID:            row.UserID,
		NodeID:            row.NodeID,
		NodeName:          row.NodeName,
		TotalWithdrawable: snapshot.TotalWithdrawable,
		Unlocked:          snapshot.Unlocked,
		Locked:            snapshot.Locked,
	}, nil
}

// Preview evaluates amountText without side effects.
func (s *WithdrawalService) Preview(ctx context.Context, userID uuid.UUID, nodeID, amountText string) (withdrawal.Outcome, error) {
	snapshot, err := s.snapshot(ctx, userID, nodeID)
	if err != nil {
		return withdrawal.Outcome{}, err
	}
	return withdrawal.Evaluate(amountText, snapshot), nil
}

// Submit validates amountText against the current delegation. A valid amount
// is withdrawn immediately; an amount touching locked funds is parked until
// Confirm or Cancel.
func (s *WithdrawalService) Submit(ctx context.Context, userID uuid.UUID, nodeID, amountText string) (*models.WithdrawalResult, error) {
	snapshot, err := s.snapshot(ctx, userID, nodeID)
	if err != nil {
		return nil, err
	}

	state := s.advance(withdrawal.StateIdle, withdrawal.EventSubmit, userID, nodeID)

	outcome := withdrawal.Evaluate(amountText, snapshot)
	state = s.advance(state, withdrawal.EventFor(outcome), userID, nodeID)

	switch state {
	case withdrawal.StateRejected:
		logger.Log.Warnw("withdrawal rejected", "userID", userID, "nodeID", nodeID, "amount", amountText, "reason", outcome.Reason)
		return nil, &ValidationError{Reason: outcome.Reason}

	case withdrawal.StateAwaitingConfirmation:
		pending := models.PendingWithdrawal{
			ConfirmationID: uuid.New(),
			UserID:         userID,
			NodeID:         nodeID,
			Amount:         outcome.Amount.String(),
			FrozenAmount:   outcome.FrozenPortion.String(),
			CreatedAt:      s.now().Unix(),
		}
		if err := s.confirmations.Set(ctx, pending); err != nil {
			logger.Log.Errorw("failed to store pending withdrawal", "userID", userID, "nodeID", nodeID, "error", err)
			return nil, err
		}

		return &models.WithdrawalResult{
			Status:          models.WithdrawalStatusAwaitingConfirmation,
			ConfirmationID:  pending.ConfirmationID.String(),
			Amount:          pending.Amount,
			FrozenAmount:    pending.FrozenAmount,
			UnlockDelayDays: withdrawal.UnlockDelayDays,
		}, nil

	case withdrawal.StateSubmitted:
		return s.withdraw(ctx, userID, nodeID, outcome)

	default:
		return nil, fmt.Errorf("unexpected withdrawal state %s", state)
	}
}

// Confirm withdraws a parked amount after re-checking it against the current delegation.
// The pending request is consumed only by a successful withdrawal or a failed
// re-check; infrastructure errors leave it in place so the user can retry.
func (s *WithdrawalService) Confirm(ctx context.Context, userID, confirmationID uuid.UUID) (*models.WithdrawalResult, error) {
	pending, err := s.ownedPending(ctx, userID, confirmationID)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.snapshot(ctx, userID, pending.NodeID)
	if err != nil {
		return nil, err
	}

	pending, err = s.takePending(ctx, confirmationID)
	if err != nil {
		return nil, err
	}

	state := s.advance(withdrawal.StateAwaitingConfirmation, withdrawal.EventConfirm, userID, pending.NodeID)
	if state != withdrawal.StateConfirmed {
		s.restorePending(ctx, *pending)
		return nil, fmt.Errorf("unexpected withdrawal state %s", state)
	}

	outcome := withdrawal.Evaluate(pending.Amount, snapshot)
	if outcome.Invalid() {
		logger.Log.Warnw("confirmed withdrawal no longer valid", "userID", userID, "nodeID", pending.NodeID, "amount", pending.Amount, "reason", outcome.Reason)
		return nil, &ValidationError{Reason: outcome.Reason}
	}

	result, err := s.withdraw(ctx, userID, pending.NodeID, outcome)
	if err != nil {
		s.restorePending(ctx, *pending)
		return nil, err
	}
	s.advance(state, withdrawal.EventSubmit, userID, pending.NodeID)

	return result, nil
}

// Cancel discards a parked withdrawal.
func (s *WithdrawalService) Cancel(ctx context.Context, userID, confirmationID uuid.UUID) (*models.WithdrawalResult, error) {
	pending, err := s.ownedPending(ctx, userID, confirmationID)
	if err != nil {
		return nil, err
	}

	existed, err := s.confirmations.Delete(ctx, confirmationID)
	if err != nil {
		logger.Log.Errorw("failed to delete pending withdrawal", "confirmationID", confirmationID, "error", err)
		return nil, err
	}
	if !existed {
		return nil, ErrConfirmationNotFound
	}

	state := s.advance(withdrawal.StateAwaitingConfirmation, withdrawal.EventCancel, userID, pending.NodeID)
	if state != withdrawal.StateCancelled {
		return nil, fmt.Errorf("unexpected withdrawal state %s", state)
	}

	return &models.WithdrawalResult{
		Status:         models.WithdrawalStatusCancelled,
		ConfirmationID: confirmationID.String(),
		Amount:         pending.Amount,
		FrozenAmount:   pending.FrozenAmount,
	}, nil
}

func (s *WithdrawalService) snapshot(ctx context.Context, userID uuid.UUID, nodeID string) (withdrawal.Snapshot, error) {
	d, err := s.GetDelegation(ctx, userID, nodeID)
	if err != nil {
		return withdrawal.Snapshot{}, err
	}
	return withdrawal.Snapshot{
		TotalWithdrawable: d.TotalWithdrawable,
		Unlocked:          d.Unlocked,
		Locked:            d.Locked,
	}, nil
}

func (s *WithdrawalService) withdraw(ctx context.Context, userID uuid.UUID, nodeID string, outcome withdrawal.Outcome) (*models.WithdrawalResult, error) {
	instruction := models.WithdrawInstruction{
		WithdrawalID: uuid.NewString(),
		UserID:       userID.String(),
		NodeID:       nodeID,
		Amount:       outcome.Amount.String(),
		FrozenAmount: outcome.FrozenPortion.String(),
		Timestamp:    s.now().Unix(),
		Operation:    models.OperationWithdrawDelegation,
	}

	if err := s.withdrawer.Withdraw(ctx, instruction); err != nil {
		logger.Log.Errorw("failed to withdraw", "userID", userID, "nodeID", nodeID, "amount", instruction.Amount, "error", err)
		return nil, err
	}

	logger.Log.Infow("withdrawal submitted", "withdrawalID", instruction.WithdrawalID, "userID", userID, "nodeID", nodeID, "amount", instruction.Amount, "frozen", instruction.FrozenAmount)

	return &models.WithdrawalResult{
		Status:       models.WithdrawalStatusSubmitted,
		WithdrawalID: instruction.WithdrawalID,
		Amount:       instruction.Amount,
		FrozenAmount: instruction.FrozenAmount,
	}, nil
}

// ownedPending returns the pending withdrawal if it exists and belongs to userID.
func (s *WithdrawalService) ownedPending(ctx context.Context, userID, confirmationID uuid.UUID) (*models.PendingWithdrawal, error) {
	pending, err := s.confirmations.Get(ctx, confirmationID)
	if err != nil {
		logger.Log.Errorw("failed to get pending withdrawal", "confirmationID", confirmationID, "error", err)
		return nil, err
	}
	if pending == nil || pending.UserID != userID {
		return nil, ErrConfirmationNotFound
	}
	return pending, nil
}

// takePending removes the pending withdrawal so that it can be confirmed only once.
func (s *WithdrawalService) takePending(ctx context.Context, confirmationID uuid.UUID) (*models.PendingWithdrawal, error) {
	pending, err := s.confirmations.Take(ctx, confirmationID)
	if err != nil {
		logger.Log.Errorw("failed to take pending withdrawal", "confirmationID", confirmationID, "error", err)
		return nil, err
	}
	if pending == nil {
		return nil, ErrConfirmationNotFound
	}
	return pending, nil
}

// restorePending puts back a pending withdrawal whose confirmation failed for
// reasons other than validation.
func (s *WithdrawalService) restorePending(ctx context.Context, pending models.PendingWithdrawal) {
	if err := s.confirmations.Set(context.WithoutCancel(ctx), pending); err != nil {
		logger.Log.Errorw("failed to restore pending withdrawal", "confirmationID", pending.ConfirmationID, "error", err)
		return
	}
	logger.Log.Infow("pending withdrawal restored", "confirmationID", pending.ConfirmationID)
}

func (s *WithdrawalService) advance(from withdrawal.State, e withdrawal.Event, userID uuid.UUID, nodeID string) withdrawal.State {
	to, err := withdrawal.Next(from, e)
	if err != nil {
		logger.Log.Errorw("unexpected withdrawal transition", "userID", userID, "nodeID", nodeID, "error", err)
		return from
	}
	logger.Log.Debugw("withdrawal state", "userID", userID, "nodeID", nodeID, "from", from, "to", to)
	return to
}
