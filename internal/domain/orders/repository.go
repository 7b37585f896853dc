package orders

import (
	"context"

	"freshstock/internal/core/id"
	"freshstock/internal/domain"
)

// Repository defines persistence operations for purchase orders.
type Repository interface {
	// Create inserts a new order header.
	Create(ctx context.Context, order *PurchaseOrder) error

	// SaveLines inserts the order's line items.
	SaveLines(ctx context.Context, orderID id.ID, lines []OrderLineItem) error

	// GetByID retrieves an order header (without lines).
	GetByID(ctx context.Context, orderID id.ID) (*PurchaseOrder, error)

	// GetLines retrieves the persisted line items of an order.
	GetLines(ctx context.Context, orderID id.ID) ([]OrderLineItem, error)

	// Update saves header changes with optimistic locking.
	Update(ctx context.Context, order *PurchaseOrder) error

	// List retrieves orders with pagination.
	List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*PurchaseOrder], error)
}
