package warehouse

import (
	"freshstock/internal/core/tx"
	"freshstock/internal/domain"
)

// Service provides business logic for the Warehouse catalog.
type Service struct {
	*domain.CatalogService[*Warehouse]
	repo Repository
}

// NewService creates a new Warehouse service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	return &Service{
		CatalogService: domain.NewCatalogService[*Warehouse](repo, txManager, "warehouse"),
		repo:           repo,
	}
}
