package section

import (
	"context"

	"freshstock/internal/core/id"
	"freshstock/internal/domain"
)

// Repository defines the interface for Section persistence.
type Repository interface {
	domain.CatalogRepository[*Section]

	// FindByWarehouse retrieves all sections of a warehouse.
	FindByWarehouse(ctx context.Context, warehouseID id.ID) ([]*Section, error)
}
