package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"freshstock/internal/core/apperror"
	"freshstock/internal/core/id"
	"freshstock/internal/domain/comments"
	"freshstock/internal/infrastructure/http/v1/dto"
)

// CommentHandler handles product comment endpoints.
type CommentHandler struct {
	*BaseHandler
	service *comments.Service
}

// NewCommentHandler creates a new comment handler.
func NewCommentHandler(base *BaseHandler, service *comments.Service) *CommentHandler {
	return &CommentHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Create handles POST /comments.
func (h *CommentHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateCommentRequest
	if !h.BindJSON(c, &req) {
		return
	}

	comment := req.ToEntity()
	if err := h.service.Create(ctx, comment); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromComment(comment))
}

// Get handles GET /comments/:id.
func (h *CommentHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	commentID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	comment, err := h.service.GetByID(ctx, commentID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromComment(comment))
}

// ListByProduct handles GET /comments/product/:id.
func (h *CommentHandler) ListByProduct(c *gin.Context) {
	ctx := c.Request.Context()

	productID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	list, err := h.service.FindByProduct(ctx, productID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromComments(list))
}

// Update handles PUT /comments/:id.
func (h *CommentHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	commentID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.UpdateCommentRequest
	if !h.BindJSON(c, &req) {
		return
	}

	comment, err := h.service.UpdateText(ctx, commentID, req.Text)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromComment(comment))
}

// Delete handles DELETE /comments/:id.
func (h *CommentHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	commentID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.service.Delete(ctx, commentID); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
