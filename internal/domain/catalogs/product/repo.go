package product

import (
	"context"

	"freshstock/internal/core/id"
	"freshstock/internal/domain"
)

// Repository defines the interface for Product persistence.
type Repository interface {
	domain.CatalogRepository[*Product]

	// FindBySeller retrieves all products owned by a seller.
	FindBySeller(ctx context.Context, sellerID id.ID) ([]*Product, error)

	// FindByCategory retrieves products of one storage class.
	FindByCategory(ctx context.Context, category domain.StorageCategory) ([]*Product, error)
}
