// Package product provides the Product catalog.
// Products are immutable for the allocation core: price, volume and category
// are fixed once batches reference them.
package product

import (
	"context"

	"freshstock/internal/core/apperror"
	"freshstock/internal/core/entity"
	"freshstock/internal/core/id"
	"freshstock/internal/core/types"
	"freshstock/internal/domain"
)

// Product represents a sellable item with a storage class.
type Product struct {
	entity.Catalog

	// Description is a detailed description
	Description *string `db:"description" json:"description,omitempty"`

	// Category is the storage class (must match the section it is stocked in)
	Category domain.StorageCategory `db:"category" json:"category"`

	// UnitVolume is the volume one unit occupies in a section
	UnitVolume types.Volume `db:"unit_volume" json:"unitVolume"`

	// UnitPrice is the sale price per unit
	UnitPrice types.Money `db:"unit_price" json:"unitPrice"`

	// SellerID is the owning seller
	SellerID id.ID `db:"seller_id" json:"sellerId"`
}

// NewProduct creates a new Product with required fields.
func NewProduct(code, name string, category domain.StorageCategory, unitVolume types.Volume, unitPrice types.Money, sellerID id.ID) *Product {
	return &Product{
		Catalog:    entity.NewCatalog(code, name),
		Category:   category,
		UnitVolume: unitVolume,
		UnitPrice:  unitPrice,
		SellerID:   sellerID,
	}
}

// Validate implements entity.Validatable.
func (p *Product) Validate(ctx context.Context) error {
	if err := p.Catalog.Validate(ctx); err != nil {
		return err
	}

	if !p.Category.Valid() {
		return apperror.NewValidation("invalid storage category").
			WithDetail("field", "category").
			WithDetail("value", string(p.Category))
	}

	if !p.UnitVolume.IsPositive() {
		return apperror.NewValidation("unit volume must be positive").
			WithDetail("field", "unitVolume")
	}

	if p.UnitPrice.IsNegative() {
		return apperror.NewValidation("unit price cannot be negative").
			WithDetail("field", "unitPrice")
	}

	if id.IsNil(p.SellerID) {
		return apperror.NewValidation("seller is required").
			WithDetail("field", "sellerId")
	}

	return nil
}
