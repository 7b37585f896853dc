package dto

import (
	"freshstock/internal/domain/catalogs/buyer"
)

// CreateBuyerRequest is the request body for creating a buyer.
type CreateBuyerRequest struct {
	Code  string `json:"code"`
	Name  string `json:"name" binding:"required"`
	TaxID string `json:"taxId" binding:"required"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateBuyerRequest) ToEntity() *buyer.Buyer {
	return buyer.NewBuyer(r.Code, r.Name, r.TaxID)
}

// UpdateBuyerRequest is the request body for updating a buyer.
type UpdateBuyerRequest struct {
	Code    string `json:"code"`
	Name    string `json:"name" binding:"required"`
	TaxID   string `json:"taxId" binding:"required"`
	Version int    `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateBuyerRequest) ApplyTo(b *buyer.Buyer) {
	b.Code = r.Code
	b.Name = r.Name
	b.TaxID = r.TaxID
	b.Version = r.Version
}

// BuyerResponse is the response body for a buyer.
type BuyerResponse struct {
	CatalogResponse
	TaxID string `json:"taxId"`
}

// FromBuyer creates response DTO from domain entity.
func FromBuyer(b *buyer.Buyer) *BuyerResponse {
	return &BuyerResponse{
		CatalogResponse: FromCatalog(b.Catalog),
		TaxID:           b.TaxID,
	}
}
