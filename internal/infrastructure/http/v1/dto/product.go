package dto

import (
	"github.com/shopspring/decimal"

	"freshstock/internal/core/id"
	"freshstock/internal/domain"
	"freshstock/internal/domain/catalogs/product"
)

// CreateProductRequest is the request body for creating a product.
type CreateProductRequest struct {
	Code        string                 `json:"code"`
	Name        string                 `json:"name" binding:"required"`
	Description *string                `json:"description"`
	Category    domain.StorageCategory `json:"category" binding:"required"`
	UnitVolume  decimal.Decimal        `json:"unitVolume" binding:"required"`
	UnitPrice   decimal.Decimal        `json:"unitPrice" binding:"required"`
	SellerID    id.ID                  `json:"sellerId" binding:"required"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateProductRequest) ToEntity() *product.Product {
	p := product.NewProduct(r.Code, r.Name, r.Category, r.UnitVolume, r.UnitPrice, r.SellerID)
	p.Description = r.Description
	return p
}

// UpdateProductRequest is the request body for updating a product.
type UpdateProductRequest struct {
	Code        string                 `json:"code"`
	Name        string                 `json:"name" binding:"required"`
	Description *string                `json:"description,omitempty"`
	Category    domain.StorageCategory `json:"category" binding:"required"`
	UnitVolume  decimal.Decimal        `json:"unitVolume" binding:"required"`
	UnitPrice   decimal.Decimal        `json:"unitPrice" binding:"required"`
	SellerID    id.ID                  `json:"sellerId" binding:"required"`
	Version     int                    `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateProductRequest) ApplyTo(p *product.Product) {
	p.Code = r.Code
	p.Name = r.Name
	p.Description = r.Description
	p.Category = r.Category
	p.UnitVolume = r.UnitVolume
	p.UnitPrice = r.UnitPrice
	p.SellerID = r.SellerID
	p.Version = r.Version
}

// ProductResponse is the response body for a product.
type ProductResponse struct {
	CatalogResponse
	Description *string                `json:"description,omitempty"`
	Category    domain.StorageCategory `json:"category"`
	UnitVolume  decimal.Decimal        `json:"unitVolume"`
	UnitPrice   decimal.Decimal        `json:"unitPrice"`
	SellerID    string                 `json:"sellerId"`
}

// FromProduct creates response DTO from domain entity.
func FromProduct(p *product.Product) *ProductResponse {
	return &ProductResponse{
		CatalogResponse: FromCatalog(p.Catalog),
		Description:     p.Description,
		Category:        p.Category,
		UnitVolume:      p.UnitVolume,
		UnitPrice:       p.UnitPrice,
		SellerID:        p.SellerID.String(),
	}
}
