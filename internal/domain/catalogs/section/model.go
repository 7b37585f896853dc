// Package section provides the Section catalog.
// A section is a temperature-controlled area of a warehouse holding batches
// of exactly one storage category.
package section

import (
	"context"

	"github.com/shopspring/decimal"

	"freshstock/internal/core/apperror"
	"freshstock/internal/core/entity"
	"freshstock/internal/core/id"
	"freshstock/internal/core/types"
	"freshstock/internal/domain"
)

// Section represents a storage area inside a warehouse.
type Section struct {
	entity.Catalog

	// Category is the storage class this section accepts
	Category domain.StorageCategory `db:"category" json:"category"`

	// TotalSize is the section capacity in volume units
	TotalSize types.Volume `db:"total_size" json:"totalSize"`

	// Temperature is the current temperature in °C
	Temperature decimal.Decimal `db:"temperature" json:"temperature"`

	// WarehouseID is the owning warehouse
	WarehouseID id.ID `db:"warehouse_id" json:"warehouseId"`
}

// NewSection creates a new Section with required fields.
func NewSection(code, name string, category domain.StorageCategory, totalSize types.Volume, warehouseID id.ID) *Section {
	return &Section{
		Catalog:     entity.NewCatalog(code, name),
		Category:    category,
		TotalSize:   totalSize,
		WarehouseID: warehouseID,
	}
}

// Validate implements entity.Validatable.
func (s *Section) Validate(ctx context.Context) error {
	if err := s.Catalog.Validate(ctx); err != nil {
		return err
	}

	if !s.Category.Valid() {
		return apperror.NewValidation("invalid storage category").
			WithDetail("field", "category").
			WithDetail("value", string(s.Category))
	}

	if !s.TotalSize.IsPositive() {
		return apperror.NewValidation("total size must be positive").
			WithDetail("field", "totalSize")
	}

	if id.IsNil(s.WarehouseID) {
		return apperror.NewValidation("warehouse is required").
			WithDetail("field", "warehouseId")
	}

	return nil
}
