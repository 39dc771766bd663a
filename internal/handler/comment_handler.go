package handler

import (
	"net/http"

	"adboard-service/internal/dto"
	"adboard-service/internal/middleware"
	"adboard-service/internal/service"
	"adboard-service/pkg/logger"
	"adboard-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CommentHandler serves the /ads/:id/comments endpoints.
type CommentHandler struct {
	comments *service.CommentService
}

func NewCommentHandler(comments *service.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// List returns a listing's comments with their count.
func (h *CommentHandler) List(c echo.Context) error {
	log := logger.FromContext(c)

	listingID, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	out, err := h.comments.List(c.Request().Context(), listingID)
	if err != nil {
		return respondError(c, log, err)
	}
	return c.JSON(http.StatusOK, out)
}

// Add creates a comment on a listing.
func (h *CommentHandler) Add(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordCommentOperation("create")

	listingID, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req dto.CreateOrUpdateComment
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse comment", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	out, err := h.comments.Add(c.Request().Context(), listingID, req, middleware.Caller(c))
	if err != nil {
		return respondError(c, log, err)
	}

	log.Info("Comment added", zap.Uint("listing_id", listingID), zap.Uint("comment_id", out.Pk))
	return c.JSON(http.StatusOK, out)
}

// Delete removes a comment.
func (h *CommentHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordCommentOperation("delete")

	listingID, err := paramID(c, "adId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	commentID, err := paramID(c, "commentId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	if err := h.comments.Delete(c.Request().Context(), listingID, commentID, middleware.Caller(c)); err != nil {
		return respondError(c, log, err)
	}

	log.Info("Comment deleted", zap.Uint("listing_id", listingID), zap.Uint("comment_id", commentID))
	return c.NoContent(http.StatusOK)
}

// Update overwrites the comment text.
func (h *CommentHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordCommentOperation("update")

	listingID, err := paramID(c, "adId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	commentID, err := paramID(c, "commentId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req dto.CreateOrUpdateComment
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse comment update", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	out, err := h.comments.Update(c.Request().Context(), listingID, commentID, req, middleware.Caller(c))
	if err != nil {
		return respondError(c, log, err)
	}
	return c.JSON(http.StatusOK, out)
}
