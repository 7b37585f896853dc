package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"freshstock/internal/core/apperror"
	"freshstock/internal/core/id"
	"freshstock/internal/domain/batches"
	"freshstock/internal/infrastructure/http/v1/dto"
)

// BatchHandler handles batch stock endpoints: admission, listings and
// availability.
type BatchHandler struct {
	*BaseHandler
	service *batches.Service
}

// NewBatchHandler creates a new batch handler.
func NewBatchHandler(base *BaseHandler, service *batches.Service) *BatchHandler {
	return &BatchHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Admit handles POST /batches - admit a new lot into a section.
func (h *BatchHandler) Admit(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.AdmitBatchRequest
	if !h.BindJSON(c, &req) {
		return
	}

	batch := req.ToEntity()
	if err := h.service.Admit(ctx, batch); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromBatch(batch))
}

// Get handles GET /batches/:id.
func (h *BatchHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	batchID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	batch, err := h.service.GetByID(ctx, batchID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromBatch(batch))
}

// ListByProduct handles GET /batches?productId=...&sort=L|Q|V.
func (h *BatchHandler) ListByProduct(c *gin.Context) {
	ctx := c.Request.Context()

	productID, err := id.Parse(c.Query("productId"))
	if err != nil {
		h.Error(c, apperror.NewValidation("productId query parameter is required"))
		return
	}

	key, sorted, err := batches.ParseSortKey(c.Query("sort"))
	if err != nil {
		h.Error(c, err)
		return
	}

	list, err := h.service.FindByProduct(ctx, productID, key, sorted)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromBatches(list))
}

// ListBySection handles GET /batches/section/:id.
func (h *BatchHandler) ListBySection(c *gin.Context) {
	ctx := c.Request.Context()

	sectionID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	list, err := h.service.FindBySection(ctx, sectionID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromBatches(list))
}

// Availability handles GET /batches/availability/:productId.
// Reports stock that will still be fresh three weeks out.
func (h *BatchHandler) Availability(c *gin.Context) {
	ctx := c.Request.Context()

	productID, err := id.Parse(c.Param("productId"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	cutoff := h.service.FreshnessCutoff()
	quantity, err := h.service.AvailableQuantity(ctx, productID, cutoff)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.AvailabilityResponse{
		ProductID:         productID.String(),
		AvailableQuantity: quantity,
		NotExpiringBefore: cutoff,
	})
}
