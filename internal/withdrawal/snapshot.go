package withdrawal

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidSnapshot is returned when a delegation total is not a non-negative decimal.
var ErrInvalidSnapshot = errors.New("invalid delegation snapshot")

// Snapshot holds the totals of one delegation to one node.
// The three values are independent; nothing here assumes Unlocked+Locked
// matches TotalWithdrawable.
type Snapshot struct {
	TotalWithdrawable decimal.Decimal
	Unlocked          decimal.Decimal
	Locked            decimal.Decimal
}

// SnapshotFromNullable builds a Snapshot from nullable values, mapping NULL to zero.
func SnapshotFromNullable(totalWithdrawable, unlocked, locked decimal.NullDecimal) (Snapshot, error) {
	s := Snapshot{
		TotalWithdrawable: orZero(totalWithdrawable),
		Unlocked:          orZero(unlocked),
		Locked:            orZero(locked),
	}
	if err := s.Validate(); err != nil {
		return Snapshot{}, err
	}
	return s, nil
}

// Validate checks that every total is non-negative.
func (s Snapshot) Validate() error {
	for name, v := range map[string]decimal.Decimal{
		"total_withdrawable": s.TotalWithdrawable,
		"unlocked":           s.Unlocked,
		"locked":             s.Locked,
	} {
		if v.IsNegative() {
			return fmt.Errorf("%w: %s is negative", ErrInvalidSnapshot, name)
		}
	}
	return nil
}

func orZero(v decimal.NullDecimal) decimal.Decimal {
	if !v.Valid {
		return decimal.Zero
	}
	return v.Decimal
}
