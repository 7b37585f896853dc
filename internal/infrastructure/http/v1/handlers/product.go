package handlers

import (
	"github.com/gin-gonic/gin"

	"freshstock/internal/core/apperror"
	"freshstock/internal/core/id"
	"freshstock/internal/domain"
	"freshstock/internal/domain/catalogs/product"
	"freshstock/internal/infrastructure/http/v1/dto"
)

// ProductHandler handles the product catalog plus seller and category
// scoped listings.
type ProductHandler struct {
	*CatalogHandler[*product.Product, dto.CreateProductRequest, dto.UpdateProductRequest]
	service *product.Service
}

// NewProductHandler creates a new product handler.
func NewProductHandler(base *BaseHandler, service *product.Service) *ProductHandler {
	config := CatalogHandlerConfig[
		*product.Product,
		dto.CreateProductRequest,
		dto.UpdateProductRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "product",

		MapCreateDTO: func(req dto.CreateProductRequest) *product.Product {
			return req.ToEntity()
		},

		MapUpdateDTO: func(req dto.UpdateProductRequest, existing *product.Product) *product.Product {
			req.ApplyTo(existing)
			return existing
		},

		MapToDTO: func(p *product.Product) any {
			return dto.FromProduct(p)
		},
	}

	return &ProductHandler{
		CatalogHandler: NewCatalogHandler(base, config),
		service:        service,
	}
}

// ListBySeller handles GET /products/seller/:id.
func (h *ProductHandler) ListBySeller(c *gin.Context) {
	ctx := c.Request.Context()

	sellerID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	list, err := h.service.FindBySeller(ctx, sellerID)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(list))
	for i, p := range list {
		items[i] = dto.FromProduct(p)
	}
	h.OK(c, items)
}

// ListByCategory handles GET /products/category/:category.
func (h *ProductHandler) ListByCategory(c *gin.Context) {
	ctx := c.Request.Context()

	category := domain.StorageCategory(c.Param("category"))

	list, err := h.service.FindByCategory(ctx, category)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(list))
	for i, p := range list {
		items[i] = dto.FromProduct(p)
	}
	h.OK(c, items)
}
