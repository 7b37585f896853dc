package batches

import (
	"context"
	"time"

	"freshstock/internal/core/id"
	"freshstock/internal/core/types"
)

// Repository defines persistence operations for the batch ledger.
type Repository interface {
	// Create inserts an admitted batch.
	Create(ctx context.Context, batch *BatchStock) error

	// GetByID retrieves a batch by ID.
	GetByID(ctx context.Context, batchID id.ID) (*BatchStock, error)

	// FindByProduct retrieves all batches of a product, any due date.
	FindByProduct(ctx context.Context, productID id.ID) ([]*BatchStock, error)

	// FindBySection retrieves all batches currently held in a section.
	FindBySection(ctx context.Context, sectionID id.ID) ([]*BatchStock, error)

	// FindAvailable retrieves batches of a product with positive quantity
	// whose due date is on/after notExpiringBefore. Order unspecified.
	FindAvailable(ctx context.Context, productID id.ID, notExpiringBefore time.Time) ([]*BatchStock, error)

	// FindAvailableForUpdate is FindAvailable with row locks, ordered by due
	// date ascending (FEFO candidates). Must run inside a transaction so two
	// concurrent consumers of the same product serialize.
	FindAvailableForUpdate(ctx context.Context, productID id.ID, notExpiringBefore time.Time) ([]*BatchStock, error)

	// SetQuantity writes a batch's remaining quantity after consumption.
	SetQuantity(ctx context.Context, batchID id.ID, quantity int) error

	// UsedVolume returns Σ quantity × product unit volume over a section.
	UsedVolume(ctx context.Context, sectionID id.ID) (types.Volume, error)
}
