// Package seller provides the Seller catalog.
// Sellers own products and supply the batches stocked in warehouse sections.
package seller

import (
	"context"

	"freshstock/internal/core/apperror"
	"freshstock/internal/core/entity"
)

// Seller represents a product supplier.
type Seller struct {
	entity.Catalog

	// TaxID is the seller's fiscal identifier (unique)
	TaxID string `db:"tax_id" json:"taxId"`

	// Address is the seller's registered address
	Address *string `db:"address" json:"address,omitempty"`

	// Rating is a 0..5 supplier rating
	Rating int `db:"rating" json:"rating"`
}

// NewSeller creates a new Seller with required fields.
func NewSeller(code, name, taxID string) *Seller {
	return &Seller{
		Catalog: entity.NewCatalog(code, name),
		TaxID:   taxID,
	}
}

// Validate implements entity.Validatable.
func (s *Seller) Validate(ctx context.Context) error {
	if err := s.Catalog.Validate(ctx); err != nil {
		return err
	}

	if s.TaxID == "" {
		return apperror.NewValidation("tax id is required").
			WithDetail("field", "taxId")
	}

	if s.Rating < 0 || s.Rating > 5 {
		return apperror.NewValidation("rating must be between 0 and 5").
			WithDetail("field", "rating")
	}

	return nil
}
