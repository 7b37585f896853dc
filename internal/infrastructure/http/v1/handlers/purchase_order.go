package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"freshstock/internal/core/apperror"
	"freshstock/internal/core/id"
	"freshstock/internal/domain"
	"freshstock/internal/domain/orders"
	"freshstock/internal/infrastructure/http/v1/dto"
)

// PurchaseOrderHandler handles the purchase order workflow.
type PurchaseOrderHandler struct {
	*BaseHandler
	service *orders.Service
}

// NewPurchaseOrderHandler creates a new purchase order handler.
func NewPurchaseOrderHandler(base *BaseHandler, service *orders.Service) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Create handles POST /purchase-orders.
func (h *PurchaseOrderHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreatePurchaseOrderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	order, total, err := h.service.Create(ctx, req.BuyerID, req.Date, req.ToLineRequests())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromPurchaseOrder(order).WithTotal(total))
}

// Get handles GET /purchase-orders/:id.
func (h *PurchaseOrderHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	orderID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	order, err := h.service.GetByID(ctx, orderID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromPurchaseOrder(order))
}

// List handles GET /purchase-orders.
func (h *PurchaseOrderHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := domain.DefaultListFilter()
	filter.Limit = h.ParseIntQuery(c, "limit", 50)
	filter.Offset = h.ParseIntQuery(c, "offset", 0)
	filter.OrderBy = c.DefaultQuery("orderBy", "-created_at")
	filter.IncludeDeleted = c.Query("includeDeleted") == "true"

	result, err := h.service.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(result.Items))
	for i, order := range result.Items {
		items[i] = dto.FromPurchaseOrder(order)
	}

	h.OK(c, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// UpdateStatus handles PATCH /purchase-orders/:id/status.
// The only accepted transition is OPEN to CLOSED; closing consumes stock.
func (h *PurchaseOrderHandler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()

	orderID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.UpdateOrderStatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	status, err := orders.ParseStatus(req.Status)
	if err != nil {
		h.Error(c, err)
		return
	}

	if status != orders.StatusClosed {
		h.Error(c, apperror.NewValidation("only the CLOSED transition is supported").
			WithDetail("status", req.Status))
		return
	}

	order, err := h.service.Close(ctx, orderID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromPurchaseOrder(order))
}
