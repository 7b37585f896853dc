package buyer

import (
	"context"

	"freshstock/internal/domain"
)

// Repository defines the interface for Buyer persistence.
type Repository interface {
	domain.CatalogRepository[*Buyer]

	// FindByTaxID retrieves a buyer by fiscal identifier.
	FindByTaxID(ctx context.Context, taxID string) (*Buyer, error)
}
