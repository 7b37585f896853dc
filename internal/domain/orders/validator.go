package orders

import (
	"context"
	"fmt"
	"time"

	"freshstock/internal/core/apperror"
	"freshstock/internal/core/clock"
	"freshstock/internal/core/id"
	"freshstock/internal/domain/batches"
)

// Ledger is the slice of the batch ledger the order workflow needs.
// Implemented by batches.Service.
type Ledger interface {
	// AvailableQuantity sums non-expiring stock of a product.
	AvailableQuantity(ctx context.Context, productID id.ID, notExpiringBefore time.Time) (int, error)

	// Consume drains stock first-expire-first-out, all-or-nothing.
	Consume(ctx context.Context, productID id.ID, quantity int) error
}

// LineRequest is one requested (product, quantity) pair.
type LineRequest struct {
	ProductID id.ID
	Quantity  int
}

// Validator checks a proposed order's line items against available,
// non-expiring-soon stock. Results are never cached: the workflow re-runs
// validation at creation and again at close, because stock may have changed
// between the two events.
type Validator struct {
	ledger    Ledger
	clock     clock.Clock
	lookAhead time.Duration
}

// NewValidator creates a validator with the standard three-week window.
func NewValidator(ledger Ledger, clk clock.Clock) *Validator {
	return NewValidatorWithWindow(ledger, clk, batches.DefaultLookAhead)
}

// NewValidatorWithWindow creates a validator with a custom look-ahead window.
func NewValidatorWithWindow(ledger Ledger, clk clock.Clock, lookAhead time.Duration) *Validator {
	return &Validator{
		ledger:    ledger,
		clock:     clk,
		lookAhead: lookAhead,
	}
}

// Validate checks each line item against the ledger. A line is satisfied iff
// its requested quantity does not exceed the available quantity of stock due
// on/after now plus the look-ahead window. Returns InvalidOrder carrying the
// distinct set of failing product IDs, or nil when every line is satisfied.
func (v *Validator) Validate(ctx context.Context, items []LineRequest) error {
	cutoff := v.clock.Now().Add(v.lookAhead)

	seen := make(map[id.ID]struct{})
	var failing []string

	for _, item := range items {
		available, err := v.ledger.AvailableQuantity(ctx, item.ProductID, cutoff)
		if err != nil {
			return fmt.Errorf("availability for product %s: %w", item.ProductID, err)
		}

		if item.Quantity > available {
			if _, dup := seen[item.ProductID]; !dup {
				seen[item.ProductID] = struct{}{}
				failing = append(failing, item.ProductID.String())
			}
		}
	}

	if len(failing) > 0 {
		return apperror.NewInvalidOrder(failing)
	}
	return nil
}
