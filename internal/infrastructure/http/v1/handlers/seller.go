package handlers

import (
	"freshstock/internal/domain/catalogs/seller"
	"freshstock/internal/infrastructure/http/v1/dto"
)

// SellerHTTPHandler handles the seller catalog.
type SellerHTTPHandler = CatalogHandler[
	*seller.Seller,
	dto.CreateSellerRequest,
	dto.UpdateSellerRequest,
]

// NewSellerHandler creates a new seller handler.
func NewSellerHandler(base *BaseHandler, service *seller.Service) *SellerHTTPHandler {
	config := CatalogHandlerConfig[
		*seller.Seller,
		dto.CreateSellerRequest,
		dto.UpdateSellerRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "seller",

		MapCreateDTO: func(req dto.CreateSellerRequest) *seller.Seller {
			return req.ToEntity()
		},

		MapUpdateDTO: func(req dto.UpdateSellerRequest, existing *seller.Seller) *seller.Seller {
			req.ApplyTo(existing)
			return existing
		},

		MapToDTO: func(s *seller.Seller) any {
			return dto.FromSeller(s)
		},
	}

	return NewCatalogHandler(base, config)
}
