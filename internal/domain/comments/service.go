package comments

import (
	"context"
	"time"

	"freshstock/internal/core/apperror"
	"freshstock/internal/core/id"
	"freshstock/internal/core/tx"
	"freshstock/internal/domain/catalogs/buyer"
	"freshstock/internal/domain/catalogs/product"
	"freshstock/pkg/logger"
)

// ProductLookup resolves the commented product.
type ProductLookup interface {
	GetByID(ctx context.Context, id id.ID) (*product.Product, error)
}

// BuyerLookup resolves the commenting buyer.
type BuyerLookup interface {
	GetByID(ctx context.Context, id id.ID) (*buyer.Buyer, error)
}

// Service provides business logic for product comments.
type Service struct {
	repo      Repository
	products  ProductLookup
	buyers    BuyerLookup
	txManager tx.Manager
}

// NewService creates a new comment service.
func NewService(repo Repository, products ProductLookup, buyers BuyerLookup, txManager tx.Manager) *Service {
	return &Service{
		repo:      repo,
		products:  products,
		buyers:    buyers,
		txManager: txManager,
	}
}

// Create validates references and persists a new comment.
func (s *Service) Create(ctx context.Context, comment *Comment) error {
	if err := comment.Validate(ctx); err != nil {
		return err
	}

	if _, err := s.products.GetByID(ctx, comment.ProductID); err != nil {
		return err
	}
	if _, err := s.buyers.GetByID(ctx, comment.BuyerID); err != nil {
		return err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, comment)
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "comment created",
		"comment_id", comment.ID,
		"product_id", comment.ProductID,
		"buyer_id", comment.BuyerID,
	)
	return nil
}

// GetByID retrieves a comment.
func (s *Service) GetByID(ctx context.Context, commentID id.ID) (*Comment, error) {
	comment, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("comment", commentID.String())
		}
		return nil, err
	}
	return comment, nil
}

// FindByProduct lists a product's comments, newest first.
func (s *Service) FindByProduct(ctx context.Context, productID id.ID) ([]*Comment, error) {
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	return s.repo.FindByProduct(ctx, productID)
}

// UpdateText replaces a comment's text. Only the author's text is mutable;
// product and buyer references are fixed at creation.
func (s *Service) UpdateText(ctx context.Context, commentID id.ID, text string) (*Comment, error) {
	comment, err := s.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	comment.Text = text
	if err := comment.Validate(ctx); err != nil {
		return nil, err
	}
	comment.UpdatedAt = time.Now().UTC()

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, comment)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "comment updated", "comment_id", comment.ID)
	return comment, nil
}

// Delete marks a comment as deleted.
func (s *Service) Delete(ctx context.Context, commentID id.ID) error {
	if _, err := s.GetByID(ctx, commentID); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, commentID)
	})
}
