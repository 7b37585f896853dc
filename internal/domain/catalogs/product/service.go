package product

import (
	"context"

	"freshstock/internal/core/apperror"
	"freshstock/internal/core/id"
	"freshstock/internal/core/tx"
	"freshstock/internal/domain"
)

// SellerLookup resolves seller references.
// Implemented by the seller repository.
type SellerLookup interface {
	Exists(ctx context.Context, id id.ID) (bool, error)
}

// Service provides business logic for the Product catalog.
type Service struct {
	*domain.CatalogService[*Product]
	repo    Repository
	sellers SellerLookup
}

// NewService creates a new Product service.
func NewService(repo Repository, sellers SellerLookup, txManager tx.Manager) *Service {
	base := domain.NewCatalogService[*Product](repo, txManager, "product")

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		sellers:        sellers,
	}
	base.BeforeSave = svc.checkSellerExists

	return svc
}

// FindBySeller retrieves all products owned by a seller.
func (s *Service) FindBySeller(ctx context.Context, sellerID id.ID) ([]*Product, error) {
	return s.repo.FindBySeller(ctx, sellerID)
}

// FindByCategory retrieves products of one storage class.
func (s *Service) FindByCategory(ctx context.Context, category domain.StorageCategory) ([]*Product, error) {
	if !category.Valid() {
		return nil, apperror.NewValidation("invalid storage category").
			WithDetail("value", string(category))
	}
	return s.repo.FindByCategory(ctx, category)
}

func (s *Service) checkSellerExists(ctx context.Context, item *Product) error {
	ok, err := s.sellers.Exists(ctx, item.SellerID)
	if err != nil {
		return apperror.NewInternal(err).WithDetail("lookup", "seller")
	}
	if !ok {
		return apperror.NewNotFound("seller", item.SellerID.String())
	}
	return nil
}
