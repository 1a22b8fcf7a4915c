package withdrawal

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// UnlockDelayDays is the waiting period before a frozen portion becomes spendable again.
const UnlockDelayDays = 168

// AmountScale is the number of fractional digits an amount may carry.
// The NUMERIC(78,18) columns in migrations use the same scale.
const AmountScale = 18

// Rejection reasons reported in Outcome.Reason.
var (
	ErrEmptyOrNonNumeric = errors.New("amount is empty or not a number")
	ErrNonPositive       = errors.New("amount must be greater than zero")
	ErrExceedsTotal      = errors.New("amount exceeds total withdrawable")
)

// Kind tags an Outcome.
type Kind int

const (
	KindInvalid Kind = iota
	KindValid
	KindRequiresConfirmation
)

func (k Kind) String() string {
	switch k {
	case KindValid:
		return "valid"
	case KindRequiresConfirmation:
		return "requires_confirmation"
	default:
		return "invalid"
	}
}

// Outcome is the result of evaluating one withdrawal request.
//
// For KindInvalid only Reason is set. For KindValid FrozenPortion is zero.
// For KindRequiresConfirmation FrozenPortion is strictly positive and the
// caller must get an explicit yes from the user before withdrawing.
type Outcome struct {
	Kind          Kind
	Amount        decimal.Decimal
	FrozenPortion decimal.Decimal
	Reason        error
}

// Invalid reports whether the request was rejected.
func (o Outcome) Invalid() bool { return o.Kind == KindInvalid }

// RequiresConfirmation reports whether part of the amount is drawn from locked funds.
func (o Outcome) RequiresConfirmation() bool { return o.Kind == KindRequiresConfirmation }

// Evaluate validates requestedAmountText against the snapshot totals.
func Evaluate(requestedAmountText string, s Snapshot) Outcome {
	requested, err := ParseAmount(requestedAmountText)
	if err != nil {
		return Outcome{Kind: KindInvalid, Reason: err}
	}

	if requested.GreaterThan(s.TotalWithdrawable) {
		return Outcome{Kind: KindInvalid, Reason: ErrExceedsTotal}
	}

	frozen := FrozenPortion(requested, s)
	if frozen.IsPositive() {
		return Outcome{Kind: KindRequiresConfirmation, Amount: requested, FrozenPortion: frozen}
	}

	return Outcome{Kind: KindValid, Amount: requested, FrozenPortion: decimal.Zero}
}

// plainDecimal accepts digits with an optional single dot: "5", "5.", ".5", "5.25".
// A leading minus is let through so negatives report ErrNonPositive. Plus
// signs, exponents and words such as Infinity are not amounts.
var plainDecimal = regexp.MustCompile(`^-?[0-9]*\.?[0-9]*$`)

// ParseAmount parses user-entered text as a strictly positive decimal amount
// with at most AmountScale fractional digits.
func ParseAmount(text string) (decimal.Decimal, error) {
	text = strings.TrimSpace(text)
	if !plainDecimal.MatchString(text) || strings.Trim(text, "-.") == "" {
		return decimal.Zero, ErrEmptyOrNonNumeric
	}

	if i := strings.IndexByte(text, '.'); i >= 0 {
		if frac := strings.TrimRight(text[i+1:], "0"); len(frac) > AmountScale {
			return decimal.Zero, fmt.Errorf("%w: more than %d decimal places", ErrEmptyOrNonNumeric, AmountScale)
		}
	}

	amount, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, ErrEmptyOrNonNumeric
	}
	if !amount.IsPositive() {
		return decimal.Zero, ErrNonPositive
	}

	return amount, nil
}

// FrozenPortion returns min(max(requested-unlocked, 0), locked): the part of
// requested that would be drawn from the locked balance.
func FrozenPortion(requested decimal.Decimal, s Snapshot) decimal.Decimal {
	overflow := decimal.Max(requested.Sub(s.Unlocked), decimal.Zero)
	return decimal.Min(overflow, s.Locked)
}
