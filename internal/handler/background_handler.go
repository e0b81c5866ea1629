package handler

import (
	"database/sql"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"lumiere-photography/internal/domain"
	"lumiere-photography/internal/middleware"
	"lumiere-photography/internal/service/background"
)

type BackgroundHandler struct {
	backgroundService background.Service
}

func NewBackgroundHandler(backgroundService background.Service) *BackgroundHandler {
	return &BackgroundHandler{backgroundService: backgroundService}
}

func (h *BackgroundHandler) List(c *fiber.Ctx) error {
	backgrounds, err := h.backgroundService.List(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(domain.Response{
		Success: true,
		Data:    backgrounds,
		Message: "All background images fetched successfully",
	})
}

func (h *BackgroundHandler) ListBySectionType(c *fiber.Ctx) error {
	backgrounds, err := h.backgroundService.ListBySectionType(c.Context(), c.Params("sectionType"))
	if err != nil {
		if errors.Is(err, background.ErrInvalidSectionType) {
			return middleware.BadRequest(`Invalid section type. Must be "services" or "portfolio"`)
		}
		return err
	}

	return c.JSON(domain.Response{
		Success: true,
		Data:    backgrounds,
		Message: "Background images fetched successfully",
	})
}

func (h *BackgroundHandler) Upload(c *fiber.Ctx) error {
	sectionType := c.FormValue("sectionType")
	sectionName := c.FormValue("sectionName")

	if sectionType == "" || sectionName == "" {
		return middleware.BadRequest("Section type and section name are required")
	}

	file, err := c.FormFile("backgroundImage")
	if err != nil {
		return middleware.BadRequest("Background image file is required")
	}

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	fileReader, err := file.Open()
	if err != nil {
		return middleware.BadRequest("Failed to read file")
	}
	defer fileReader.Close()

	bg, err := h.backgroundService.Upload(c.Context(),
		sectionType, sectionName, file.Filename, file.Size, mimeType, fileReader)
	if err != nil {
		if errors.Is(err, background.ErrInvalidSectionType) {
			return middleware.BadRequest(`Invalid section type. Must be "services" or "portfolio"`)
		}
		if errors.Is(err, background.ErrUnsupportedType) || errors.Is(err, background.ErrFileTooLarge) {
			return middleware.BadRequest(err.Error())
		}
		return err
	}

	return c.JSON(domain.Response{
		Success: true,
		Data:    bg,
		Message: "Background image uploaded successfully",
	})
}

func (h *BackgroundHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return middleware.BadRequest("Invalid background image ID")
	}

	if err := h.backgroundService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return middleware.NotFound("Background image not found")
		}
		return err
	}

	return c.JSON(domain.Response{
		Success: true,
		Message: "Background image deleted successfully",
	})
}
