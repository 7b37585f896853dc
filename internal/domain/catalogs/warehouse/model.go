// Package warehouse provides the Warehouse catalog.
// A warehouse is a physical site split into storage sections.
package warehouse

import (
	"context"

	"freshstock/internal/core/entity"
)

// Warehouse represents a storage site.
type Warehouse struct {
	entity.Catalog

	// Address is the physical address
	Address *string `db:"address" json:"address,omitempty"`

	// IsActive indicates if warehouse is operational
	IsActive bool `db:"is_active" json:"isActive"`
}

// NewWarehouse creates a new Warehouse with required fields.
func NewWarehouse(code, name string) *Warehouse {
	return &Warehouse{
		Catalog:  entity.NewCatalog(code, name),
		IsActive: true,
	}
}

// Validate implements entity.Validatable.
func (w *Warehouse) Validate(ctx context.Context) error {
	return w.Catalog.Validate(ctx)
}

// CanAcceptStock returns true if the warehouse can take new sections or batches.
func (w *Warehouse) CanAcceptStock() bool {
	return w.IsActive
}
