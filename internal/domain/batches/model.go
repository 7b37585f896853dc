// Package batches provides the batch stock ledger.
// A batch is a discrete physical lot of one product in one section, with its
// own quantity and expiry. The ledger answers availability queries against a
// freshness cutoff and consumes stock first-expire-first-out.
package batches

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"freshstock/internal/core/apperror"
	"freshstock/internal/core/entity"
	"freshstock/internal/core/id"
)

// BatchStock represents a physical, section-scoped quantity of one product.
// Quantity only ever decreases after admission and never goes negative.
type BatchStock struct {
	entity.Document

	// BatchNumber is the supplier's lot number
	BatchNumber string `db:"batch_number" json:"batchNumber"`

	// ProductID is the stocked product
	ProductID id.ID `db:"product_id" json:"productId"`

	// SectionID is the section physically holding this lot
	SectionID id.ID `db:"section_id" json:"sectionId"`

	// Quantity is the remaining unit count (never negative)
	Quantity int `db:"quantity" json:"quantity"`

	// CurrentTemperature is the lot temperature at admission, °C
	CurrentTemperature decimal.Decimal `db:"current_temperature" json:"currentTemperature"`

	// ManufacturingTime is when the lot was produced
	ManufacturingTime time.Time `db:"manufacturing_time" json:"manufacturingTime"`

	// DueDate is the expiry date; the lot counts as available only while
	// DueDate is on/after the freshness cutoff
	DueDate time.Time `db:"due_date" json:"dueDate"`
}

// NewBatchStock creates a batch lot pending admission.
func NewBatchStock(batchNumber string, productID, sectionID id.ID, quantity int, manufacturingTime, dueDate time.Time) *BatchStock {
	return &BatchStock{
		Document:          entity.NewDocument(),
		BatchNumber:       batchNumber,
		ProductID:         productID,
		SectionID:         sectionID,
		Quantity:          quantity,
		ManufacturingTime: manufacturingTime,
		DueDate:           dueDate,
	}
}

// Validate implements entity.Validatable.
func (b *BatchStock) Validate(ctx context.Context) error {
	if b.BatchNumber == "" {
		return apperror.NewValidation("batch number is required").
			WithDetail("field", "batchNumber")
	}

	if id.IsNil(b.ProductID) {
		return apperror.NewValidation("product is required").
			WithDetail("field", "productId")
	}

	if id.IsNil(b.SectionID) {
		return apperror.NewValidation("section is required").
			WithDetail("field", "sectionId")
	}

	if b.Quantity < 0 {
		return apperror.NewValidation("quantity cannot be negative").
			WithDetail("field", "quantity")
	}

	if b.DueDate.IsZero() {
		return apperror.NewValidation("due date is required").
			WithDetail("field", "dueDate")
	}

	if !b.ManufacturingTime.IsZero() && b.DueDate.Before(b.ManufacturingTime) {
		return apperror.NewValidation("due date cannot precede manufacturing time").
			WithDetail("field", "dueDate")
	}

	return nil
}

// AvailableOn reports whether this lot still counts as available against the
// given freshness cutoff.
func (b *BatchStock) AvailableOn(cutoff time.Time) bool {
	return !b.DueDate.Before(cutoff)
}
