package handlers

import (
	"freshstock/internal/domain/catalogs/buyer"
	"freshstock/internal/infrastructure/http/v1/dto"
)

// BuyerHTTPHandler handles the buyer catalog.
type BuyerHTTPHandler = CatalogHandler[
	*buyer.Buyer,
	dto.CreateBuyerRequest,
	dto.UpdateBuyerRequest,
]

// NewBuyerHandler creates a new buyer handler.
func NewBuyerHandler(base *BaseHandler, service *buyer.Service) *BuyerHTTPHandler {
	config := CatalogHandlerConfig[
		*buyer.Buyer,
		dto.CreateBuyerRequest,
		dto.UpdateBuyerRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "buyer",

		MapCreateDTO: func(req dto.CreateBuyerRequest) *buyer.Buyer {
			return req.ToEntity()
		},

		MapUpdateDTO: func(req dto.UpdateBuyerRequest, existing *buyer.Buyer) *buyer.Buyer {
			req.ApplyTo(existing)
			return existing
		},

		MapToDTO: func(b *buyer.Buyer) any {
			return dto.FromBuyer(b)
		},
	}

	return NewCatalogHandler(base, config)
}
