package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-delegation-wallet/internal/logger"
	"github.com/sbilibin2017/gw-delegation-wallet/internal/models"
)

// DelegationReaderRepository reads delegation snapshots.
type DelegationReaderRepository struct {
	db *sqlx.DB
}

func NewDelegationReaderRepository(db *sqlx.DB) *DelegationReaderRepository {
	return &DelegationReaderRepository{db: db}
}

// GetByUserAndNode returns the delegation of userID to nodeID, or nil if there is none.
func (r *DelegationReaderRepository) GetByUserAndNode(ctx context.Context, userID uuid.UUID, nodeID string) (*models.DelegationDB, error) {
	const query = `
		SELECT delegation_id, user_id, node_id, node_name,
		       total_withdrawable, unlocked, locked, updated_at
		FROM delegations
		WHERE user_id = $1 AND node_id = $2
	`

	var delegation models.DelegationDB
	err := r.db.GetContext(ctx, &delegation, query, userID, nodeID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, nodeID},
		"result", delegation.DelegationID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &delegation, nil
}
