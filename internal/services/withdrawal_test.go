package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-delegation-wallet/internal/logger"
	"github.com/sbilibin2017/gw-delegation-wallet/internal/models"
	"github.com/sbilibin2017/gw-delegation-wallet/internal/repositories"
	"github.com/sbilibin2017/gw-delegation-wallet/internal/withdrawal"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var fixedNow = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func delegationRow(userID uuid.UUID, nodeID, total, unlocked, locked string) *models.DelegationDB {
	nd := func(s string) decimal.NullDecimal {
		if s == "" {
			return decimal.NullDecimal{}
		}
		return decimal.NewNullDecimal(decimal.RequireFromString(s))
	}
	return &models.DelegationDB{
		DelegationID:      uuid.New(),
		UserID:            userID,
		NodeID:            nodeID,
		NodeName:          "Node One",
		TotalWithdrawable: nd(total),
		Unlocked:          nd(unlocked),
		Locked:            nd(locked),
	}
}

type withdrawalMocks struct {
	delegations   *MockDelegationReader
	confirmations *MockConfirmationStore
	withdrawer    *MockWithdrawer
}

func newWithdrawalService(t *testing.T) (*WithdrawalService, withdrawalMocks) {
	ctrl := gomock.NewController(t)
	m := withdrawalMocks{
		delegations:   NewMockDelegationReader(ctrl),
		confirmations: NewMockConfirmationStore(ctrl),
		withdrawer:    NewMockWithdrawer(ctrl),
	}
	svc := NewWithdrawalService(m.delegations, m.confirmations, m.withdrawer)
	svc.now = func() time.Time { return fixedNow }
	return svc, m
}

func TestWithdrawalService_GetDelegation(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("null totals read as zero", func(t *testing.T) {
		svc, m := newWithdrawalService(t)
		m.delegations.EXPECT().GetByUserAndNode(ctx, userID, "0xnode").
			Return(delegationRow(userID, "0xnode", "100", "", "40"), nil)

		d, err := svc.GetDelegation(ctx, userID, "0xnode")
		require.NoError(t, err)
		assert.Equal(t, "Node One", d.NodeName)
		assert.Equal(t, "100", d.TotalWithdrawable.String())
		assert.True(t, d.Unlocked.IsZero())
		assert.Equal(t, "40", d.Locked.String())
	})

	t.Run("missing", func(t *testing.T) {
		svc, m := newWithdrawalService(t)
		m.delegations.EXPECT().GetByUserAndNode(ctx, userID, "0xnode").Return(nil, nil)

		_, err := svc.GetDelegation(ctx, userID, "0xnode")
		assert.ErrorIs(t, err, ErrDelegationNotFound)
	})

	t.Run("negative total", func(t *testing.T) {
		svc, m := newWithdrawalService(t)
		m.delegations.EXPECT().GetByUserAndNode(ctx, userID, "0xnode").
			Return(delegationRow(userID, "0xnode", "-1", "0", "0"), nil)

		_, err := svc.GetDelegation(ctx, userID, "0xnode")
		assert.ErrorIs(t, err, withdrawal.ErrInvalidSnapshot)
	})

	t.Run("reader error", func(t *testing.T) {
		svc, m := newWithdrawalService(t)
		m.delegations.EXPECT().GetByUserAndNode(ctx, userID, "0xnode").Return(nil, errors.New("db down"))

		_, err := svc.GetDelegation(ctx, userID, "0xnode")
		assert.EqualError(t, err, "db down")
	})
}

func TestWithdrawalService_Submit(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	const nodeID = "0xnode"

	tests := []struct {
		name       string
		amount     string
		setup      func(m withdrawalMocks)
		wantStatus string
		wantFrozen string
		wantErr    error
	}{
		{
			name:   "within unlocked is withdrawn at once",
			amount: "50",
			setup: func(m withdrawalMocks) {
				m.withdrawer.EXPECT().Withdraw(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, in models.WithdrawInstruction) error {
						assert.Equal(t, userID.String(), in.UserID)
						assert.Equal(t, nodeID, in.NodeID)
						assert.Equal(t, "50", in.Amount)
						assert.Equal(t, "0", in.FrozenAmount)
						assert.Equal(t, fixedNow.Unix(), in.Timestamp)
						assert.Equal(t, models.OperationWithdrawDelegation, in.Operation)
						return nil
					})
			},
			wantStatus: models.WithdrawalStatusSubmitted,
			wantFrozen: "0",
		},
		{
			name:   "touching locked waits for confirmation",
			amount: "90",
			setup: func(m withdrawalMocks) {
				m.confirmations.EXPECT().Set(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, p models.PendingWithdrawal) error {
						assert.Equal(t, userID, p.UserID)
						assert.Equal(t, "90", p.Amount)
						assert.Equal(t, "30", p.FrozenAmount)
						assert.Equal(t, fixedNow.Unix(), p.CreatedAt)
						return nil
					})
			},
			wantStatus: models.WithdrawalStatusAwaitingConfirmation,
			wantFrozen: "30",
		},
		{name: "zero", amount: "0", wantErr: withdrawal.ErrNonPositive},
		{name: "too much", amount: "150", wantErr: withdrawal.ErrExceedsTotal},
		{name: "not a number", amount: "abc", wantErr: withdrawal.ErrEmptyOrNonNumeric},
		{
			name:   "withdrawer fails",
			amount: "10",
			setup: func(m withdrawalMocks) {
				m.withdrawer.EXPECT().Withdraw(ctx, gomock.Any()).Return(errors.New("tx aborted"))
			},
			wantErr: errors.New("tx aborted"),
		},
		{
			name:   "store fails",
			amount: "61",
			setup: func(m withdrawalMocks) {
				m.confirmations.EXPECT().Set(ctx, gomock.Any()).Return(errors.New("redis down"))
			},
			wantErr: errors.New("redis down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newWithdrawalService(t)
			m.delegations.EXPECT().GetByUserAndNode(ctx, userID, nodeID).
				Return(delegationRow(userID, nodeID, "100", "60", "40"), nil)
			if tt.setup != nil {
				tt.setup(m)
			}

			res, err := svc.Submit(ctx, userID, nodeID, tt.amount)

			if tt.wantErr != nil {
				assert.Nil(t, res)
				var verr *ValidationError
				if errors.As(err, &verr) {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.EqualError(t, err, tt.wantErr.Error())
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.Status)
			assert.Equal(t, tt.amount, res.Amount)
			assert.Equal(t, tt.wantFrozen, res.FrozenAmount)
			if tt.wantStatus == models.WithdrawalStatusAwaitingConfirmation {
				assert.NotEmpty(t, res.ConfirmationID)
				assert.Empty(t, res.WithdrawalID)
				assert.Equal(t, withdrawal.UnlockDelayDays, res.UnlockDelayDays)
			} else {
				assert.NotEmpty(t, res.WithdrawalID)
				assert.Empty(t, res.ConfirmationID)
			}
		})
	}
}

func TestWithdrawalService_Submit_UnknownDelegation(t *testing.T) {
	ctx := context.Background()
	svc, m := newWithdrawalService(t)
	userID := uuid.New()
	m.delegations.EXPECT().GetByUserAndNode(ctx, userID, "0xnone").Return(nil, nil)

	res, err := svc.Submit(ctx, userID, "0xnone", "1")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrDelegationNotFound)
}

func TestWithdrawalService_Submit_MalformedAmountNeverWithdrawn(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	const nodeID = "0xnode"

	for _, amount := range []string{"0.0000000000000000001", "10.0000000000000000001", "1e3", "1e2000000000", "+5", "Infinity"} {
		t.Run(amount, func(t *testing.T) {
			svc, m := newWithdrawalService(t)
			m.delegations.EXPECT().GetByUserAndNode(ctx, userID, nodeID).
				Return(delegationRow(userID, nodeID, "100", "60", "40"), nil)
			m.withdrawer.EXPECT().Withdraw(gomock.Any(), gomock.Any()).Times(0)
			m.confirmations.EXPECT().Set(gomock.Any(), gomock.Any()).Times(0)

			res, err := svc.Submit(ctx, userID, nodeID, amount)
			assert.Nil(t, res)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.ErrorIs(t, err, withdrawal.ErrEmptyOrNonNumeric)
		})
	}
}

func TestWithdrawalService_Preview(t *testing.T) {
	ctx := context.Background()
	svc, m := newWithdrawalService(t)
	userID := uuid.New()
	m.delegations.EXPECT().GetByUserAndNode(ctx, userID, "0xnode").
		Return(delegationRow(userID, "0xnode", "100", "60", "40"), nil)

	outcome, err := svc.Preview(ctx, userID, "0xnode", "90")
	require.NoError(t, err)
	assert.True(t, outcome.RequiresConfirmation())
	assert.Equal(t, "30", outcome.FrozenPortion.String())
}

func TestWithdrawalService_Confirm(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	confirmationID := uuid.New()
	const nodeID = "0xnode"

	pending := &models.PendingWithdrawal{
		ConfirmationID: confirmationID,
		UserID:         userID,
		NodeID:         nodeID,
		Amount:         "90",
		FrozenAmount:   "30",
	}

	t.Run("submits with fresh frozen portion", func(t *testing.T) {
		svc, m := newWithdrawalService(t)
		gomock.InOrder(
			m.confirmations.EXPECT().Get(ctx, confirmationID).Return(pending, nil),
			m.confirmations.EXPECT().Take(ctx, confirmationID).Return(pending, nil),
		)
		// unlocked grew since submit: 90 now only freezes 10
		m.delegations.EXPECT().GetByUserAndNode(ctx, userID, nodeID).
			Return(delegationRow(userID, nodeID, "100", "80", "20"), nil)
		m.withdrawer.EXPECT().Withdraw(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, in models.WithdrawInstruction) error {
				assert.Equal(t, "90", in.Amount)
				assert.Equal(t, "10", in.FrozenAmount)
				return nil
			})

		res, err := svc.Confirm(ctx, userID, confirmationID)
		require.NoError(t, err)
		assert.Equal(t, models.WithdrawalStatusSubmitted, res.Status)
		assert.Equal(t, "10", res.FrozenAmount)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc, m := newWithdrawalService(t)
		m.confirmations.EXPECT().Get(ctx, confirmationID).Return(nil, nil)

		_, err := svc.Confirm(ctx, userID, confirmationID)
		assert.ErrorIs(t, err, ErrConfirmationNotFound)
	})

	t.Run("someone else's confirmation", func(t *testing.T) {
		svc, m := newWithdrawalService(t)
		m.confirmations.EXPECT().Get(ctx, confirmationID).Return(pending, nil)

		_, err := svc.Confirm(ctx, uuid.New(), confirmationID)
		assert.ErrorIs(t, err, ErrConfirmationNotFound)
	})

	t.Run("already confirmed concurrently", func(t *testing.T) {
		svc, m := newWithdrawalService(t)
		m.confirmations.EXPECT().Get(ctx, confirmationID).Return(pending, nil)
		m.delegations.EXPECT().GetByUserAndNode(ctx, userID, nodeID).
			Return(delegationRow(userID, nodeID, "100", "60", "40"), nil)
		m.confirmations.EXPECT().Take(ctx, confirmationID).Return(nil, nil)

		_, err := svc.Confirm(ctx, userID, confirmationID)
		assert.ErrorIs(t, err, ErrConfirmationNotFound)
	})

	t.Run("no longer valid", func(t *testing.T) {
		svc, m := newWithdrawalService(t)
		m.confirmations.EXPECT().Get(ctx, confirmationID).Return(pending, nil)
		m.confirmations.EXPECT().Take(ctx, confirmationID).Return(pending, nil)
		m.delegations.EXPECT().GetByUserAndNode(ctx, userID, nodeID).
			Return(delegationRow(userID, nodeID, "50", "50", "0"), nil)

		_, err := svc.Confirm(ctx, userID, confirmationID)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.ErrorIs(t, err, withdrawal.ErrExceedsTotal)
	})

	t.Run("store error", func(t *testing.T) {
		svc, m := newWithdrawalService(t)
		m.confirmations.EXPECT().Get(ctx, confirmationID).Return(nil, errors.New("redis down"))

		_, err := svc.Confirm(ctx, userID, confirmationID)
		assert.EqualError(t, err, "redis down")
	})

	t.Run("delegation read error keeps the request", func(t *testing.T) {
		svc, m := newWithdrawalService(t)
		m.confirmations.EXPECT().Get(ctx, confirmationID).Return(pending, nil)
		m.delegations.EXPECT().GetByUserAndNode(ctx, userID, nodeID).Return(nil, errors.New("db blip"))
		m.confirmations.EXPECT().Take(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Confirm(ctx, userID, confirmationID)
		assert.EqualError(t, err, "db blip")
	})

	t.Run("withdraw error restores the request and a retry succeeds", func(t *testing.T) {
		svc, m := newWithdrawalService(t)
		row := delegationRow(userID, nodeID, "100", "60", "40")

		gomock.InOrder(
			m.confirmations.EXPECT().Get(ctx, confirmationID).Return(pending, nil),
			m.confirmations.EXPECT().Take(ctx, confirmationID).Return(pending, nil),
			m.withdrawer.EXPECT().Withdraw(ctx, gomock.Any()).Return(errors.New("db blip")),
			m.confirmations.EXPECT().Set(gomock.Any(), *pending).Return(nil),
			m.confirmations.EXPECT().Get(ctx, confirmationID).Return(pending, nil),
			m.confirmations.EXPECT().Take(ctx, confirmationID).Return(pending, nil),
			m.withdrawer.EXPECT().Withdraw(ctx, gomock.Any()).Return(nil),
		)
		m.delegations.EXPECT().GetByUserAndNode(ctx, userID, nodeID).Return(row, nil).Times(2)

		_, err := svc.Confirm(ctx, userID, confirmationID)
		assert.EqualError(t, err, "db blip")

		res, err := svc.Confirm(ctx, userID, confirmationID)
		require.NoError(t, err)
		assert.Equal(t, models.WithdrawalStatusSubmitted, res.Status)
		assert.Equal(t, "30", res.FrozenAmount)
	})

	t.Run("restore failure still reports the withdraw error", func(t *testing.T) {
		svc, m := newWithdrawalService(t)
		m.confirmations.EXPECT().Get(ctx, confirmationID).Return(pending, nil)
		m.delegations.EXPECT().GetByUserAndNode(ctx, userID, nodeID).
			Return(delegationRow(userID, nodeID, "100", "60", "40"), nil)
		m.confirmations.EXPECT().Take(ctx, confirmationID).Return(pending, nil)
		m.withdrawer.EXPECT().Withdraw(ctx, gomock.Any()).Return(errors.New("db blip"))
		m.confirmations.EXPECT().Set(gomock.Any(), *pending).Return(errors.New("redis down"))

		_, err := svc.Confirm(ctx, userID, confirmationID)
		assert.EqualError(t, err, "db blip")
	})
}

func TestWithdrawalService_ConfirmRetryWithRedis(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	const nodeID = "0xnode"

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	ctrl := gomock.NewController(t)
	delegations := NewMockDelegationReader(ctrl)
	withdrawer := NewMockWithdrawer(ctrl)
	svc := NewWithdrawalService(delegations, repositories.NewConfirmationCacheRepository(rdb, time.Minute), withdrawer)

	delegations.EXPECT().GetByUserAndNode(gomock.Any(), userID, nodeID).
		Return(delegationRow(userID, nodeID, "100", "60", "40"), nil).AnyTimes()

	submitted, err := svc.Submit(ctx, userID, nodeID, "90")
	require.NoError(t, err)
	require.Equal(t, models.WithdrawalStatusAwaitingConfirmation, submitted.Status)
	confirmationID := uuid.MustParse(submitted.ConfirmationID)

	gomock.InOrder(
		withdrawer.EXPECT().Withdraw(gomock.Any(), gomock.Any()).Return(errors.New("db blip")),
		withdrawer.EXPECT().Withdraw(gomock.Any(), gomock.Any()).Return(nil),
	)

	_, err = svc.Confirm(ctx, userID, confirmationID)
	assert.EqualError(t, err, "db blip")

	res, err := svc.Confirm(ctx, userID, confirmationID)
	require.NoError(t, err)
	assert.Equal(t, models.WithdrawalStatusSubmitted, res.Status)

	_, err = svc.Confirm(ctx, userID, confirmationID)
	assert.ErrorIs(t, err, ErrConfirmationNotFound)
}

func TestWithdrawalService_ConfirmWalksStateMachine(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := logger.Log
	logger.Log = zap.New(core).Sugar()
	t.Cleanup(func() { logger.Log = prev })

	ctx := context.Background()
	userID := uuid.New()
	confirmationID := uuid.New()
	pending := &models.PendingWithdrawal{ConfirmationID: confirmationID, UserID: userID, NodeID: "0xnode", Amount: "90", FrozenAmount: "30"}

	svc, m := newWithdrawalService(t)
	m.confirmations.EXPECT().Get(ctx, confirmationID).Return(pending, nil)
	m.delegations.EXPECT().GetByUserAndNode(ctx, userID, "0xnode").
		Return(delegationRow(userID, "0xnode", "100", "60", "40"), nil)
	m.confirmations.EXPECT().Take(ctx, confirmationID).Return(pending, nil)
	m.withdrawer.EXPECT().Withdraw(ctx, gomock.Any()).Return(nil)

	_, err := svc.Confirm(ctx, userID, confirmationID)
	require.NoError(t, err)

	var steps [][2]any
	for _, e := range logs.FilterMessage("withdrawal state").All() {
		fields := e.ContextMap()
		steps = append(steps, [2]any{fields["from"], fields["to"]})
	}
	assert.Equal(t, [][2]any{
		{withdrawal.StateAwaitingConfirmation, withdrawal.StateConfirmed},
		{withdrawal.StateConfirmed, withdrawal.StateSubmitted},
	}, steps)
}

func TestWithdrawalService_Cancel(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	confirmationID := uuid.New()

	pending := &models.PendingWithdrawal{
		ConfirmationID: confirmationID,
		UserID:         userID,
		NodeID:         "0xnode",
		Amount:         "90",
		FrozenAmount:   "30",
	}

	t.Run("cancelled", func(t *testing.T) {
		svc, m := newWithdrawalService(t)
		m.confirmations.EXPECT().Get(ctx, confirmationID).Return(pending, nil)
		m.confirmations.EXPECT().Delete(ctx, confirmationID).Return(true, nil)

		res, err := svc.Cancel(ctx, userID, confirmationID)
		require.NoError(t, err)
		assert.Equal(t, models.WithdrawalStatusCancelled, res.Status)
		assert.Equal(t, "90", res.Amount)
	})

	t.Run("raced with confirm", func(t *testing.T) {
		svc, m := newWithdrawalService(t)
		m.confirmations.EXPECT().Get(ctx, confirmationID).Return(pending, nil)
		m.confirmations.EXPECT().Delete(ctx, confirmationID).Return(false, nil)

		_, err := svc.Cancel(ctx, userID, confirmationID)
		assert.ErrorIs(t, err, ErrConfirmationNotFound)
	})

	t.Run("someone else's confirmation", func(t *testing.T) {
		svc, m := newWithdrawalService(t)
		m.confirmations.EXPECT().Get(ctx, confirmationID).Return(pending, nil)

		_, err := svc.Cancel(ctx, uuid.New(), confirmationID)
		assert.ErrorIs(t, err, ErrConfirmationNotFound)
	})

	t.Run("delete error", func(t *testing.T) {
		svc, m := newWithdrawalService(t)
		m.confirmations.EXPECT().Get(ctx, confirmationID).Return(pending, nil)
		m.confirmations.EXPECT().Delete(ctx, confirmationID).Return(false, errors.New("redis down"))

		_, err := svc.Cancel(ctx, userID, confirmationID)
		assert.EqualError(t, err, "redis down")
	})
}
