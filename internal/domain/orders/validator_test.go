package orders

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freshstock/internal/core/apperror"
	"freshstock/internal/core/clock"
	"freshstock/internal/core/id"
)

// fakeLedger answers availability from a fixed map and records what it saw.
type fakeLedger struct {
	available  map[id.ID]int
	lastCutoff time.Time
	consumed   []LineRequest
	consumeErr error
}

func (l *fakeLedger) AvailableQuantity(ctx context.Context, productID id.ID, notExpiringBefore time.Time) (int, error) {
	l.lastCutoff = notExpiringBefore
	return l.available[productID], nil
}

func (l *fakeLedger) Consume(ctx context.Context, productID id.ID, quantity int) error {
	if l.consumeErr != nil {
		return l.consumeErr
	}
	l.consumed = append(l.consumed, LineRequest{ProductID: productID, Quantity: quantity})
	l.available[productID] -= quantity
	return nil
}

var validatorNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestValidate_AllLinesSatisfied(t *testing.T) {
	milk, peas := id.New(), id.New()
	ledger := &fakeLedger{available: map[id.ID]int{milk: 100, peas: 50}}
	v := NewValidator(ledger, clock.At(validatorNow))

	err := v.Validate(context.Background(), []LineRequest{
		{ProductID: milk, Quantity: 100},
		{ProductID: peas, Quantity: 1},
	})
	require.NoError(t, err)
}

func TestValidate_UsesThreeWeekCutoff(t *testing.T) {
	milk := id.New()
	ledger := &fakeLedger{available: map[id.ID]int{milk: 10}}
	v := NewValidator(ledger, clock.At(validatorNow))

	require.NoError(t, v.Validate(context.Background(), []LineRequest{{ProductID: milk, Quantity: 1}}))
	assert.Equal(t, validatorNow.Add(21*24*time.Hour), ledger.lastCutoff)
}

func TestValidate_CollectsFailingProducts(t *testing.T) {
	milk, peas, eggs := id.New(), id.New(), id.New()
	ledger := &fakeLedger{available: map[id.ID]int{milk: 5, peas: 100, eggs: 0}}
	v := NewValidator(ledger, clock.At(validatorNow))

	err := v.Validate(context.Background(), []LineRequest{
		{ProductID: milk, Quantity: 10},
		{ProductID: peas, Quantity: 10},
		{ProductID: eggs, Quantity: 1},
	})
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInvalidOrder, appErr.Code)

	failing, ok := appErr.Details["product_ids"].([]string)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{milk.String(), eggs.String()}, failing)
}

func TestValidate_IdempotentRejection(t *testing.T) {
	milk, peas := id.New(), id.New()
	ledger := &fakeLedger{available: map[id.ID]int{milk: 5, peas: 100}}
	v := NewValidator(ledger, clock.At(validatorNow))

	items := []LineRequest{
		{ProductID: milk, Quantity: 10},
		{ProductID: peas, Quantity: 10},
	}

	// Validation never mutates stock, so re-running it against unchanged
	// availability yields the same verdict and the same failing set.
	first := v.Validate(context.Background(), items)
	second := v.Validate(context.Background(), items)

	require.Error(t, first)
	require.Error(t, second)

	firstErr, _ := apperror.AsAppError(first)
	secondErr, _ := apperror.AsAppError(second)
	assert.Equal(t, firstErr.Code, secondErr.Code)
	assert.Equal(t, firstErr.Details["product_ids"], secondErr.Details["product_ids"])
	assert.Equal(t, 100, ledger.available[peas])
	assert.Equal(t, 5, ledger.available[milk])
}

func TestValidate_DeduplicatesFailingProduct(t *testing.T) {
	milk := id.New()
	ledger := &fakeLedger{available: map[id.ID]int{milk: 1}}
	v := NewValidator(ledger, clock.At(validatorNow))

	err := v.Validate(context.Background(), []LineRequest{
		{ProductID: milk, Quantity: 5},
		{ProductID: milk, Quantity: 7},
	})
	require.Error(t, err)

	appErr, _ := apperror.AsAppError(err)
	failing := appErr.Details["product_ids"].([]string)
	assert.Len(t, failing, 1)
}
