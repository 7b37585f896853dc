package buyer

import (
	"context"

	"freshstock/internal/core/apperror"
	"freshstock/internal/core/tx"
	"freshstock/internal/domain"
)

// Service provides business logic for the Buyer catalog.
type Service struct {
	*domain.CatalogService[*Buyer]
	repo Repository
}

// NewService creates a new Buyer service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService[*Buyer](repo, txManager, "buyer")

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}
	base.BeforeSave = svc.checkTaxIDUnique

	return svc
}

// FindByTaxID retrieves a buyer by fiscal identifier.
func (s *Service) FindByTaxID(ctx context.Context, taxID string) (*Buyer, error) {
	return s.repo.FindByTaxID(ctx, taxID)
}

func (s *Service) checkTaxIDUnique(ctx context.Context, item *Buyer) error {
	existing, err := s.repo.FindByTaxID(ctx, item.TaxID)
	if err != nil {
		return nil
	}
	if existing.ID != item.ID {
		return apperror.NewDuplicate("buyer", "taxId", item.TaxID)
	}
	return nil
}
