package handler

import (
	"encoding/json"
	"net/http"

	"adboard-service/internal/dto"
	"adboard-service/internal/middleware"
	"adboard-service/internal/service"
	"adboard-service/pkg/logger"
	"adboard-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ListingHandler serves the /ads endpoints.
type ListingHandler struct {
	listings *service.ListingService
	images   *service.ImageService
}

func NewListingHandler(listings *service.ListingService, images *service.ImageService) *ListingHandler {
	return &ListingHandler{listings: listings, images: images}
}

// GetAll returns every listing with its count.
func (h *ListingHandler) GetAll(c echo.Context) error {
	log := logger.FromContext(c)
	out, err := h.listings.GetAll(c.Request().Context())
	if err != nil {
		return respondError(c, log, err)
	}
	return c.JSON(http.StatusOK, out)
}

// Add creates a listing from a multipart request: a "properties" JSON
// part plus an "image" file part.
func (h *ListingHandler) Add(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordListingOperation("create")

	raw := c.FormValue("properties")
	if raw == "" {
		log.Error("Missing properties part")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "properties is required"})
	}
	var props dto.CreateOrUpdateListing
	if err := json.Unmarshal([]byte(raw), &props); err != nil {
		log.Error("Failed to parse listing properties", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid properties"})
	}
	if props.Price < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "price must not be negative"})
	}

	fh, err := c.FormFile("image")
	if err != nil {
		log.Error("Missing image part", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "image is required"})
	}
	upload, err := readUpload(fh)
	if err != nil {
		log.Error("Failed to read image upload", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "upload failed"})
	}

	out, err := h.listings.Add(c.Request().Context(), props, upload, middleware.Caller(c))
	if err != nil {
		return respondError(c, log, err)
	}

	log.Info("Listing created", zap.Uint("listing_id", out.Pk), zap.String("title", out.Title))
	return c.JSON(http.StatusCreated, out)
}

// Get returns the extended listing detail.
func (h *ListingHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordListingOperation("read")

	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	out, err := h.listings.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, log, err)
	}
	return c.JSON(http.StatusOK, out)
}

// Delete removes a listing with its comments and image.
func (h *ListingHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordListingOperation("delete")

	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.listings.Delete(c.Request().Context(), id, middleware.Caller(c)); err != nil {
		return respondError(c, log, err)
	}

	log.Info("Listing deleted", zap.Uint("listing_id", id))
	return c.NoContent(http.StatusNoContent)
}

// Update overwrites title, description and price.
func (h *ListingHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordListingOperation("update")

	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req dto.CreateOrUpdateListing
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse listing update", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if req.Price < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "price must not be negative"})
	}

	out, err := h.listings.Update(c.Request().Context(), id, req, middleware.Caller(c))
	if err != nil {
		return respondError(c, log, err)
	}
	return c.JSON(http.StatusOK, out)
}

// Mine returns the caller's own listings.
func (h *ListingHandler) Mine(c echo.Context) error {
	log := logger.FromContext(c)
	out, err := h.listings.Mine(c.Request().Context(), middleware.Caller(c))
	if err != nil {
		return respondError(c, log, err)
	}
	return c.JSON(http.StatusOK, out)
}

// UpdateImage replaces the listing picture.
func (h *ListingHandler) UpdateImage(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordListingOperation("update_image")

	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	fh, err := c.FormFile("image")
	if err != nil {
		log.Error("Missing image part", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "image is required"})
	}
	upload, err := readUpload(fh)
	if err != nil {
		log.Error("Failed to read image upload", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "upload failed"})
	}

	if err := h.listings.UpdateImage(c.Request().Context(), id, upload, middleware.Caller(c)); err != nil {
		return respondError(c, log, err)
	}

	log.Info("Listing image updated", zap.Uint("listing_id", id))
	return c.NoContent(http.StatusOK)
}

// GetImage serves the raw image bytes of a listing picture.
func (h *ListingHandler) GetImage(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	img, err := h.images.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, log, err)
	}
	return c.Blob(http.StatusOK, img.MediaType, img.Data)
}
