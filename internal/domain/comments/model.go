// Package comments lets buyers leave free-text comments on products.
package comments

import (
	"context"

	"freshstock/internal/core/apperror"
	"freshstock/internal/core/entity"
	"freshstock/internal/core/id"
)

const maxTextLength = 2000

// Comment is a buyer's remark about a product.
type Comment struct {
	entity.Document

	ProductID id.ID  `db:"product_id" json:"productId"`
	BuyerID   id.ID  `db:"buyer_id" json:"buyerId"`
	Text      string `db:"text" json:"text"`
}

// NewComment creates a comment bound to a product and buyer.
func NewComment(productID, buyerID id.ID, text string) *Comment {
	return &Comment{
		Document:  entity.NewDocument(),
		ProductID: productID,
		BuyerID:   buyerID,
		Text:      text,
	}
}

// Validate implements entity.Validatable.
func (c *Comment) Validate(ctx context.Context) error {
	if id.IsNil(c.ProductID) {
		return apperror.NewValidation("product is required").
			WithDetail("field", "productId")
	}
	if id.IsNil(c.BuyerID) {
		return apperror.NewValidation("buyer is required").
			WithDetail("field", "buyerId")
	}
	if c.Text == "" {
		return apperror.NewValidation("text is required").
			WithDetail("field", "text")
	}
	if len(c.Text) > maxTextLength {
		return apperror.NewValidation("text is too long").
			WithDetail("field", "text").
			WithDetail("maxLength", maxTextLength)
	}
	return nil
}
