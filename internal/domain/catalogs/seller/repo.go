package seller

import (
	"context"

	"freshstock/internal/domain"
)

// Repository defines the interface for Seller persistence.
type Repository interface {
	domain.CatalogRepository[*Seller]

	// FindByTaxID retrieves a seller by fiscal identifier.
	FindByTaxID(ctx context.Context, taxID string) (*Seller, error)
}
