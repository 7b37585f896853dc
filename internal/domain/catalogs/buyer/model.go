// Package buyer provides the Buyer catalog.
package buyer

import (
	"context"

	"freshstock/internal/core/apperror"
	"freshstock/internal/core/entity"
)

// Buyer represents a purchase order customer.
type Buyer struct {
	entity.Catalog

	// TaxID is the buyer's fiscal identifier (unique)
	TaxID string `db:"tax_id" json:"taxId"`
}

// NewBuyer creates a new Buyer with required fields.
func NewBuyer(code, name, taxID string) *Buyer {
	return &Buyer{
		Catalog: entity.NewCatalog(code, name),
		TaxID:   taxID,
	}
}

// Validate implements entity.Validatable.
func (b *Buyer) Validate(ctx context.Context) error {
	if err := b.Catalog.Validate(ctx); err != nil {
		return err
	}

	if b.TaxID == "" {
		return apperror.NewValidation("tax id is required").
			WithDetail("field", "taxId")
	}

	return nil
}
