package dto

import (
	"freshstock/internal/domain/catalogs/seller"
)

// --- Request DTOs ---

// CreateSellerRequest is the request body for creating a seller.
type CreateSellerRequest struct {
	Code    string  `json:"code"`
	Name    string  `json:"name" binding:"required"`
	TaxID   string  `json:"taxId" binding:"required"`
	Address *string `json:"address"`
	Rating  int     `json:"rating"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateSellerRequest) ToEntity() *seller.Seller {
	s := seller.NewSeller(r.Code, r.Name, r.TaxID)
	s.Address = r.Address
	s.Rating = r.Rating
	return s
}

// UpdateSellerRequest is the request body for updating a seller.
type UpdateSellerRequest struct {
	Code    string  `json:"code"`
	Name    string  `json:"name" binding:"required"`
	TaxID   string  `json:"taxId" binding:"required"`
	Address *string `json:"address,omitempty"`
	Rating  int     `json:"rating"`
	Version int     `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateSellerRequest) ApplyTo(s *seller.Seller) {
	s.Code = r.Code
	s.Name = r.Name
	s.TaxID = r.TaxID
	s.Address = r.Address
	s.Rating = r.Rating
	s.Version = r.Version
}

// --- Response DTOs ---

// SellerResponse is the response body for a seller.
type SellerResponse struct {
	CatalogResponse
	TaxID   string  `json:"taxId"`
	Address *string `json:"address,omitempty"`
	Rating  int     `json:"rating"`
}

// FromSeller creates response DTO from domain entity.
func FromSeller(s *seller.Seller) *SellerResponse {
	return &SellerResponse{
		CatalogResponse: FromCatalog(s.Catalog),
		TaxID:           s.TaxID,
		Address:         s.Address,
		Rating:          s.Rating,
	}
}
