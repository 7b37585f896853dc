package dto

import (
	"github.com/shopspring/decimal"

	"freshstock/internal/core/id"
	"freshstock/internal/domain"
	"freshstock/internal/domain/catalogs/section"
)

// CreateSectionRequest is the request body for creating a warehouse section.
type CreateSectionRequest struct {
	Code        string                 `json:"code"`
	Name        string                 `json:"name" binding:"required"`
	Category    domain.StorageCategory `json:"category" binding:"required"`
	TotalSize   decimal.Decimal        `json:"totalSize" binding:"required"`
	Temperature decimal.Decimal        `json:"temperature"`
	WarehouseID id.ID                  `json:"warehouseId" binding:"required"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateSectionRequest) ToEntity() *section.Section {
	s := section.NewSection(r.Code, r.Name, r.Category, r.TotalSize, r.WarehouseID)
	s.Temperature = r.Temperature
	return s
}

// UpdateSectionRequest is the request body for updating a section.
type UpdateSectionRequest struct {
	Code        string                 `json:"code"`
	Name        string                 `json:"name" binding:"required"`
	Category    domain.StorageCategory `json:"category" binding:"required"`
	TotalSize   decimal.Decimal        `json:"totalSize" binding:"required"`
	Temperature decimal.Decimal        `json:"temperature"`
	WarehouseID id.ID                  `json:"warehouseId" binding:"required"`
	Version     int                    `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateSectionRequest) ApplyTo(s *section.Section) {
	s.Code = r.Code
	s.Name = r.Name
	s.Category = r.Category
	s.TotalSize = r.TotalSize
	s.Temperature = r.Temperature
	s.WarehouseID = r.WarehouseID
	s.Version = r.Version
}

// SectionResponse is the response body for a section.
type SectionResponse struct {
	CatalogResponse
	Category    domain.StorageCategory `json:"category"`
	TotalSize   decimal.Decimal        `json:"totalSize"`
	Temperature decimal.Decimal        `json:"temperature"`
	WarehouseID string                 `json:"warehouseId"`
}

// FromSection creates response DTO from domain entity.
func FromSection(s *section.Section) *SectionResponse {
	return &SectionResponse{
		CatalogResponse: FromCatalog(s.Catalog),
		Category:        s.Category,
		TotalSize:       s.TotalSize,
		Temperature:     s.Temperature,
		WarehouseID:     s.WarehouseID.String(),
	}
}
