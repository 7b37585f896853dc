package section

import (
	"context"

	"freshstock/internal/core/apperror"
	"freshstock/internal/core/id"
	"freshstock/internal/core/tx"
	"freshstock/internal/domain"
)

// WarehouseLookup resolves warehouse references.
// Implemented by the warehouse repository.
type WarehouseLookup interface {
	Exists(ctx context.Context, id id.ID) (bool, error)
}

// Service provides business logic for the Section catalog.
type Service struct {
	*domain.CatalogService[*Section]
	repo       Repository
	warehouses WarehouseLookup
}

// NewService creates a new Section service.
func NewService(repo Repository, warehouses WarehouseLookup, txManager tx.Manager) *Service {
	base := domain.NewCatalogService[*Section](repo, txManager, "section")

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		warehouses:     warehouses,
	}
	base.BeforeSave = svc.checkWarehouseExists

	return svc
}

// FindByWarehouse retrieves all sections of a warehouse.
func (s *Service) FindByWarehouse(ctx context.Context, warehouseID id.ID) ([]*Section, error) {
	return s.repo.FindByWarehouse(ctx, warehouseID)
}

func (s *Service) checkWarehouseExists(ctx context.Context, item *Section) error {
	ok, err := s.warehouses.Exists(ctx, item.WarehouseID)
	if err != nil {
		return apperror.NewInternal(err).WithDetail("lookup", "warehouse")
	}
	if !ok {
		return apperror.NewNotFound("warehouse", item.WarehouseID.String())
	}
	return nil
}
