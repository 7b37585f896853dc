package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"freshstock/internal/core/id"
	"freshstock/internal/domain/orders"
)

// OrderLineRequest is one requested (product, quantity) pair.
type OrderLineRequest struct {
	ProductID id.ID `json:"productId" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,min=1"`
}

// CreatePurchaseOrderRequest is the request body for creating an order.
type CreatePurchaseOrderRequest struct {
	BuyerID  id.ID              `json:"buyerId" binding:"required"`
	Date     time.Time          `json:"date" binding:"required"`
	Products []OrderLineRequest `json:"products" binding:"required,min=1,dive"`
}

// ToLineRequests converts the requested products to domain line requests.
func (r *CreatePurchaseOrderRequest) ToLineRequests() []orders.LineRequest {
	items := make([]orders.LineRequest, 0, len(r.Products))
	for _, line := range r.Products {
		items = append(items, orders.LineRequest{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}
	return items
}

// UpdateOrderStatusRequest is the request body for a status transition.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderLineResponse is one line of a purchase order.
type OrderLineResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// PurchaseOrderResponse is the response body for a purchase order.
type PurchaseOrderResponse struct {
	BaseResponse
	Date       time.Time           `json:"date"`
	Status     orders.OrderStatus  `json:"status"`
	BuyerID    string              `json:"buyerId"`
	Lines      []OrderLineResponse `json:"lines,omitempty"`
	TotalPrice *decimal.Decimal    `json:"totalPrice,omitempty"`
}

// FromPurchaseOrder creates response DTO from domain entity.
func FromPurchaseOrder(o *orders.PurchaseOrder) *PurchaseOrderResponse {
	lines := make([]OrderLineResponse, 0, len(o.Lines))
	for _, line := range o.Lines {
		lines = append(lines, OrderLineResponse{
			ID:        line.ID.String(),
			ProductID: line.ProductID.String(),
			Quantity:  line.Quantity,
		})
	}

	return &PurchaseOrderResponse{
		BaseResponse: FromDocument(o.Document),
		Date:         o.Date,
		Status:       o.Status,
		BuyerID:      o.BuyerID.String(),
		Lines:        lines,
	}
}

// WithTotal attaches the order's total price.
func (r *PurchaseOrderResponse) WithTotal(total decimal.Decimal) *PurchaseOrderResponse {
	r.TotalPrice = &total
	return r
}
