package seller

import (
	"context"

	"freshstock/internal/core/apperror"
	"freshstock/internal/core/tx"
	"freshstock/internal/domain"
)

// Service provides business logic for the Seller catalog.
type Service struct {
	*domain.CatalogService[*Seller]
	repo Repository
}

// NewService creates a new Seller service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService[*Seller](repo, txManager, "seller")

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}
	base.BeforeSave = svc.checkTaxIDUnique

	return svc
}

// FindByTaxID retrieves a seller by fiscal identifier.
func (s *Service) FindByTaxID(ctx context.Context, taxID string) (*Seller, error) {
	return s.repo.FindByTaxID(ctx, taxID)
}

func (s *Service) checkTaxIDUnique(ctx context.Context, item *Seller) error {
	existing, err := s.repo.FindByTaxID(ctx, item.TaxID)
	if err != nil {
		return nil // not found or lookup failure; Create will surface real errors
	}
	if existing.ID != item.ID {
		return apperror.NewDuplicate("seller", "taxId", item.TaxID)
	}
	return nil
}
