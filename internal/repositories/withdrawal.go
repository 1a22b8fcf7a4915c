package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-delegation-wallet/internal/logger"
	"github.com/sbilibin2017/gw-delegation-wallet/internal/models"
)

// WithdrawalWriterRepository records accepted withdraw instructions.
type WithdrawalWriterRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

// NewWithdrawalWriterRepository creates the repository. When txGetter returns a
// transaction for the request context, writes join it.
func NewWithdrawalWriterRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WithdrawalWriterRepository {
	return &WithdrawalWriterRepository{db: db, txGetter: txGetter}
}

// Save inserts one withdraw instruction.
func (r *WithdrawalWriterRepository) Save(ctx context.Context, instruction models.WithdrawInstruction) error {
	const query = `
		INSERT INTO withdrawals (withdrawal_id, user_id, node_id, amount, frozen_amount, operation, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, to_timestamp($7))
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	args := []any{
		instruction.WithdrawalID,
		instruction.UserID,
		instruction.NodeID,
		instruction.Amount,
		instruction.FrozenAmount,
		instruction.Operation,
		instruction.Timestamp,
	}
	res, err := executor.ExecContext(ctx, query, args...)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}
