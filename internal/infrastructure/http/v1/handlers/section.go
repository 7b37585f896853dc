package handlers

import (
	"github.com/gin-gonic/gin"

	"freshstock/internal/core/apperror"
	"freshstock/internal/core/id"
	"freshstock/internal/domain/catalogs/section"
	"freshstock/internal/infrastructure/http/v1/dto"
)

// SectionHandler handles the section catalog plus warehouse-scoped listing.
type SectionHandler struct {
	*CatalogHandler[*section.Section, dto.CreateSectionRequest, dto.UpdateSectionRequest]
	service *section.Service
}

// NewSectionHandler creates a new section handler.
func NewSectionHandler(base *BaseHandler, service *section.Service) *SectionHandler {
	config := CatalogHandlerConfig[
		*section.Section,
		dto.CreateSectionRequest,
		dto.UpdateSectionRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "section",

		MapCreateDTO: func(req dto.CreateSectionRequest) *section.Section {
			return req.ToEntity()
		},

		MapUpdateDTO: func(req dto.UpdateSectionRequest, existing *section.Section) *section.Section {
			req.ApplyTo(existing)
			return existing
		},

		MapToDTO: func(s *section.Section) any {
			return dto.FromSection(s)
		},
	}

	return &SectionHandler{
		CatalogHandler: NewCatalogHandler(base, config),
		service:        service,
	}
}

// ListByWarehouse handles GET /sections/warehouse/:id.
func (h *SectionHandler) ListByWarehouse(c *gin.Context) {
	ctx := c.Request.Context()

	warehouseID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	list, err := h.service.FindByWarehouse(ctx, warehouseID)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(list))
	for i, s := range list {
		items[i] = dto.FromSection(s)
	}
	h.OK(c, items)
}
