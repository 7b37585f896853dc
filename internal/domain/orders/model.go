// Package orders provides the purchase order workflow: creation with stock
// validation and pricing, and the OPEN → CLOSED transition that consumes
// batch stock.
package orders

import (
	"context"
	"time"

	"freshstock/internal/core/apperror"
	"freshstock/internal/core/entity"
	"freshstock/internal/core/id"
)

// OrderStatus is the purchase order state machine.
// OPEN is the initial state; CLOSED is terminal. No other transitions exist.
type OrderStatus string

const (
	StatusOpen   OrderStatus = "OPEN"
	StatusClosed OrderStatus = "CLOSED"
)

// ParseStatus validates a status value from the wire.
func ParseStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case StatusOpen, StatusClosed:
		return OrderStatus(s), nil
	}
	return "", apperror.NewValidation("unknown order status").
		WithDetail("value", s).
		WithDetail("accepted", []string{string(StatusOpen), string(StatusClosed)})
}

// PurchaseOrder represents a buyer's order. Created once with status OPEN;
// the only mutation is the transition to CLOSED.
type PurchaseOrder struct {
	entity.Document

	// Date is the business date of the order
	Date time.Time `db:"date" json:"date"`

	// Status is the current workflow state
	Status OrderStatus `db:"status" json:"status"`

	// BuyerID is the ordering buyer
	BuyerID id.ID `db:"buyer_id" json:"buyerId"`

	// Lines are the ordered products. Composition: line items never outlive
	// the order.
	Lines []OrderLineItem `db:"-" json:"lines"`
}

// OrderLineItem is one (product, quantity) pair within a purchase order.
// Immutable after creation.
type OrderLineItem struct {
	ID        id.ID `db:"id" json:"id"`
	OrderID   id.ID `db:"order_id" json:"orderId"`
	ProductID id.ID `db:"product_id" json:"productId"`
	Quantity  int   `db:"quantity" json:"quantity"`
}

// NewPurchaseOrder creates an order in the OPEN state.
func NewPurchaseOrder(buyerID id.ID, date time.Time) *PurchaseOrder {
	return &PurchaseOrder{
		Document: entity.NewDocument(),
		Date:     date,
		Status:   StatusOpen,
		BuyerID:  buyerID,
	}
}

// AddLine appends a line item bound to this order.
func (o *PurchaseOrder) AddLine(productID id.ID, quantity int) {
	o.Lines = append(o.Lines, OrderLineItem{
		ID:        id.New(),
		OrderID:   o.ID,
		ProductID: productID,
		Quantity:  quantity,
	})
}

// Validate implements entity.Validatable.
func (o *PurchaseOrder) Validate(ctx context.Context) error {
	if id.IsNil(o.BuyerID) {
		return apperror.NewValidation("buyer is required").
			WithDetail("field", "buyerId")
	}

	if o.Date.IsZero() {
		return apperror.NewValidation("date is required").
			WithDetail("field", "date")
	}

	if len(o.Lines) == 0 {
		return apperror.NewValidation("at least one line item is required").
			WithDetail("field", "products")
	}

	for i, line := range o.Lines {
		if id.IsNil(line.ProductID) {
			return apperror.NewValidation("product is required").
				WithDetail("field", "products").
				WithDetail("lineNo", i+1)
		}
		if line.Quantity <= 0 {
			return apperror.NewValidation("quantity must be positive").
				WithDetail("field", "products").
				WithDetail("lineNo", i+1)
		}
	}

	return nil
}

// IsClosed reports whether the order reached its terminal state.
func (o *PurchaseOrder) IsClosed() bool {
	return o.Status == StatusClosed
}
