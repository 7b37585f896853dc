package orders

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"freshstock/internal/core/id"
)

func TestParseStatus(t *testing.T) {
	status, err := ParseStatus("CLOSED")
	assert.NoError(t, err)
	assert.Equal(t, StatusClosed, status)

	_, err = ParseStatus("SHIPPED")
	assert.Error(t, err)
}

func TestPurchaseOrder_Validate(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	order := NewPurchaseOrder(id.New(), date)
	order.AddLine(id.New(), 5)
	assert.NoError(t, order.Validate(context.Background()))

	noLines := NewPurchaseOrder(id.New(), date)
	assert.Error(t, noLines.Validate(context.Background()))

	badQty := NewPurchaseOrder(id.New(), date)
	badQty.AddLine(id.New(), 0)
	assert.Error(t, badQty.Validate(context.Background()))

	noBuyer := NewPurchaseOrder(id.Nil(), date)
	noBuyer.AddLine(id.New(), 1)
	assert.Error(t, noBuyer.Validate(context.Background()))
}

func TestAddLine_BindsToOrder(t *testing.T) {
	order := NewPurchaseOrder(id.New(), time.Now())
	productID := id.New()
	order.AddLine(productID, 3)

	assert.Equal(t, order.ID, order.Lines[0].OrderID)
	assert.Equal(t, productID, order.Lines[0].ProductID)
	assert.False(t, id.IsNil(order.Lines[0].ID))
}
