package dto

import (
	"freshstock/internal/core/id"
	"freshstock/internal/domain/comments"
)

// CreateCommentRequest is the request body for commenting on a product.
type CreateCommentRequest struct {
	ProductID id.ID  `json:"productId" binding:"required"`
	BuyerID   id.ID  `json:"buyerId" binding:"required"`
	Text      string `json:"text" binding:"required"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateCommentRequest) ToEntity() *comments.Comment {
	return comments.NewComment(r.ProductID, r.BuyerID, r.Text)
}

// UpdateCommentRequest is the request body for editing a comment's text.
type UpdateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// CommentResponse is the response body for a comment.
type CommentResponse struct {
	BaseResponse
	ProductID string `json:"productId"`
	BuyerID   string `json:"buyerId"`
	Text      string `json:"text"`
}

// FromComment creates response DTO from domain entity.
func FromComment(c *comments.Comment) *CommentResponse {
	return &CommentResponse{
		BaseResponse: FromDocument(c.Document),
		ProductID:    c.ProductID.String(),
		BuyerID:      c.BuyerID.String(),
		Text:         c.Text,
	}
}

// FromComments maps a comment list.
func FromComments(list []*comments.Comment) []*CommentResponse {
	out := make([]*CommentResponse, len(list))
	for i, c := range list {
		out[i] = FromComment(c)
	}
	return out
}
