package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DelegationDB represents a delegation row in the database.
// Totals are nullable; a NULL total counts as zero.
type DelegationDB struct {
	DelegationID      uuid.UUID           `db:"delegation_id"`      // Unique delegation identifier
	UserID            uuid.UUID           `db:"user_id"`            // Delegator
	NodeID            string              `db:"node_id"`            // Validator node identifier
	NodeName          string              `db:"node_name"`          // Human readable node name
	TotalWithdrawable decimal.NullDecimal `db:"total_withdrawable"` // Maximum amount that can be withdrawn
	Unlocked          decimal.NullDecimal `db:"unlocked"`           // Part of the delegation that is not time-locked
	Locked            decimal.NullDecimal `db:"locked"`             // Part of the delegation that is time-locked
	UpdatedAt         time.Time           `db:"updated_at"`         // Last time the totals were refreshed
}

// Delegation is a delegation with its totals resolved to plain decimals.
type Delegation struct {
	UserID            uuid.UUID
	NodeID            string
	NodeName          string
	TotalWithdrawable decimal.Decimal
	Unlocked          decimal.Decimal
	Locked            decimal.Decimal
}

// ShortNodeID abbreviates a node id to its first 6 and last 4 characters.
func ShortNodeID(nodeID string) string {
	if len(nodeID) <= 10 {
		return nodeID
	}
	return nodeID[:6] + "..." + nodeID[len(nodeID)-4:]
}
