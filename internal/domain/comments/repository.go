package comments

import (
	"context"

	"freshstock/internal/core/id"
)

// Repository defines persistence operations for comments.
type Repository interface {
	Create(ctx context.Context, comment *Comment) error
	GetByID(ctx context.Context, commentID id.ID) (*Comment, error)

	// FindByProduct lists a product's comments, newest first.
	FindByProduct(ctx context.Context, productID id.ID) ([]*Comment, error)

	// Update saves text changes with optimistic locking.
	Update(ctx context.Context, comment *Comment) error

	// Delete marks a comment as deleted.
	Delete(ctx context.Context, commentID id.ID) error
}
