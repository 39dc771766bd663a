package handler

import (
	"net/http"

	"adboard-service/internal/dto"
	"adboard-service/internal/middleware"
	"adboard-service/internal/service"
	"adboard-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// UserHandler serves the /users endpoints.
type UserHandler struct {
	users   *service.UserService
	avatars *service.AvatarService
}

func NewUserHandler(users *service.UserService, avatars *service.AvatarService) *UserHandler {
	return &UserHandler{users: users, avatars: avatars}
}

// SetPassword changes the caller's password.
func (h *UserHandler) SetPassword(c echo.Context) error {
	log := logger.FromContext(c)

	var req dto.NewPassword
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse password change", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if req.NewPassword == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "new password is required"})
	}

	if err := h.users.SetPassword(c.Request().Context(), req, middleware.Caller(c)); err != nil {
		return respondError(c, log, err)
	}

	log.Info("Password changed")
	return c.NoContent(http.StatusOK)
}

// Me returns the caller's profile.
func (h *UserHandler) Me(c echo.Context) error {
	log := logger.FromContext(c)
	out, err := h.users.Get(c.Request().Context(), middleware.Caller(c))
	if err != nil {
		return respondError(c, log, err)
	}
	return c.JSON(http.StatusOK, out)
}

// UpdateMe overwrites the caller's name and phone.
func (h *UserHandler) UpdateMe(c echo.Context) error {
	log := logger.FromContext(c)

	var req dto.UpdateUser
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse profile update", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	out, err := h.users.UpdateInfo(c.Request().Context(), req, middleware.Caller(c))
	if err != nil {
		return respondError(c, log, err)
	}
	return c.JSON(http.StatusOK, out)
}

// UpdateAvatar replaces the caller's profile picture.
func (h *UserHandler) UpdateAvatar(c echo.Context) error {
	log := logger.FromContext(c)

	fh, err := c.FormFile("image")
	if err != nil {
		log.Error("Missing image part", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "image is required"})
	}
	upload, err := readUpload(fh)
	if err != nil {
		log.Error("Failed to read avatar upload", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "upload failed"})
	}

	if err := h.users.UpdateAvatar(c.Request().Context(), upload, middleware.Caller(c)); err != nil {
		return respondError(c, log, err)
	}

	log.Info("Avatar updated")
	return c.NoContent(http.StatusOK)
}

// GetAvatar serves the raw avatar bytes.
func (h *UserHandler) GetAvatar(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	avatar, err := h.avatars.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, log, err)
	}
	return c.Blob(http.StatusOK, avatar.MediaType, avatar.Data)
}
