package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"freshstock/internal/core/id"
	"freshstock/internal/domain/catalogs/section"
	"freshstock/internal/infrastructure/storage/postgres"
)

const sectionTable = "cat_sections"

// SectionRepo implements section.Repository.
type SectionRepo struct {
	*BaseCatalogRepo[*section.Section]
}

// NewSectionRepo creates a new section repository.
func NewSectionRepo(txManager *postgres.TxManager) *SectionRepo {
	return &SectionRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*section.Section](
			txManager,
			sectionTable,
			postgres.ExtractDBColumns[section.Section](),
			func() *section.Section { return &section.Section{} },
		),
	}
}

// FindByWarehouse retrieves all sections of a warehouse.
func (r *SectionRepo) FindByWarehouse(ctx context.Context, warehouseID id.ID) ([]*section.Section, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"warehouse_id": warehouseID}).
		Where(squirrel.Eq{"deletion_mark": false}).
		OrderBy("name ASC")

	return r.FindMany(ctx, q)
}
