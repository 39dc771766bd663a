package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"adboard-service/internal/errs"
	"adboard-service/internal/service"
	"adboard-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// respondError maps the domain error taxonomy onto HTTP status codes.
// Anything outside the taxonomy is a 500.
func respondError(c echo.Context, log *zap.Logger, err error) error {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	case errors.Is(err, errs.ErrForbidden):
		prometheus.RecordAuthError("access_denied")
		return c.JSON(http.StatusForbidden, echo.Map{"error": "you can only modify your own resources"})
	case errors.Is(err, errs.ErrAlreadyExists):
		return c.JSON(http.StatusConflict, echo.Map{"error": "already exists"})
	case errors.Is(err, errs.ErrIncorrectPassword):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "incorrect password"})
	default:
		log.Error("Request failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}

// paramID parses a numeric path parameter.
func paramID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// readUpload reads a multipart file part fully into memory so the
// service layer never sees HTTP types.
func readUpload(fh *multipart.FileHeader) (service.Upload, error) {
	f, err := fh.Open()
	if err != nil {
		return service.Upload{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return service.Upload{}, err
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	return service.Upload{
		Name:        fh.Filename,
		Size:        fh.Size,
		ContentType: contentType,
		Data:        data,
	}, nil
}
