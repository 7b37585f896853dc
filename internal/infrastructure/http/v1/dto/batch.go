package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"freshstock/internal/core/id"
	"freshstock/internal/domain/batches"
)

// AdmitBatchRequest is the request body for admitting a batch into a section.
type AdmitBatchRequest struct {
	BatchNumber        string          `json:"batchNumber" binding:"required"`
	ProductID          id.ID           `json:"productId" binding:"required"`
	SectionID          id.ID           `json:"sectionId" binding:"required"`
	Quantity           int             `json:"quantity" binding:"required"`
	CurrentTemperature decimal.Decimal `json:"currentTemperature"`
	ManufacturingTime  time.Time       `json:"manufacturingTime" binding:"required"`
	DueDate            time.Time       `json:"dueDate" binding:"required"`
}

// ToEntity converts DTO to domain entity.
func (r *AdmitBatchRequest) ToEntity() *batches.BatchStock {
	b := batches.NewBatchStock(r.BatchNumber, r.ProductID, r.SectionID, r.Quantity, r.ManufacturingTime, r.DueDate)
	b.CurrentTemperature = r.CurrentTemperature
	return b
}

// BatchResponse is the response body for a batch.
type BatchResponse struct {
	BaseResponse
	BatchNumber        string          `json:"batchNumber"`
	ProductID          string          `json:"productId"`
	SectionID          string          `json:"sectionId"`
	Quantity           int             `json:"quantity"`
	CurrentTemperature decimal.Decimal `json:"currentTemperature"`
	ManufacturingTime  time.Time       `json:"manufacturingTime"`
	DueDate            time.Time       `json:"dueDate"`
}

// FromBatch creates response DTO from domain entity.
func FromBatch(b *batches.BatchStock) *BatchResponse {
	return &BatchResponse{
		BaseResponse:       FromDocument(b.Document),
		BatchNumber:        b.BatchNumber,
		ProductID:          b.ProductID.String(),
		SectionID:          b.SectionID.String(),
		Quantity:           b.Quantity,
		CurrentTemperature: b.CurrentTemperature,
		ManufacturingTime:  b.ManufacturingTime,
		DueDate:            b.DueDate,
	}
}

// FromBatches maps a batch list.
func FromBatches(list []*batches.BatchStock) []*BatchResponse {
	out := make([]*BatchResponse, len(list))
	for i, b := range list {
		out[i] = FromBatch(b)
	}
	return out
}

// AvailabilityResponse reports available stock of a product inside the
// freshness window.
type AvailabilityResponse struct {
	ProductID         string    `json:"productId"`
	AvailableQuantity int       `json:"availableQuantity"`
	NotExpiringBefore time.Time `json:"notExpiringBefore"`
}
