package handler

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"lumiere-photography/internal/domain"
	"lumiere-photography/internal/middleware"
	"lumiere-photography/internal/service/media"
)

type MediaHandler struct {
	mediaService media.Service
}

func NewMediaHandler(mediaService media.Service) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

func (h *MediaHandler) List(c *fiber.Ctx) error {
	items, err := h.mediaService.List(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(domain.Response{
		Success: true,
		Data:    items,
		Message: "Media fetched successfully",
	})
}

func (h *MediaHandler) ListByCategory(c *fiber.Ctx) error {
	items, err := h.mediaService.ListByCategory(c.Context(), c.Params("category"))
	if err != nil {
		return err
	}

	return c.JSON(domain.Response{
		Success: true,
		Data:    items,
		Message: "Media fetched successfully",
	})
}

func (h *MediaHandler) Get(c *fiber.Ctx) error {
	item, err := h.mediaService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return middleware.NotFound("Media not found")
		}
		return err
	}

	return c.JSON(domain.Response{
		Success: true,
		Data:    item,
		Message: "Media fetched successfully",
	})
}

func (h *MediaHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return middleware.BadRequest("No file uploaded")
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

	item, err := h.mediaService.Upload(c.Context(),
		file.Filename, file.Size, mimeType, fileReader,
		c.FormValue("title"), c.FormValue("caption"), c.FormValue("category"))
	if err != nil {
		if errors.Is(err, media.ErrFileTooLarge) || errors.Is(err, media.ErrUnsupportedType) {
			return middleware.BadRequest(err.Error())
		}
		return err
	}

	return c.JSON(domain.Response{
		Success: true,
		Data:    item,
		Message: "Media uploaded successfully",
	})
}

func (h *MediaHandler) Update(c *fiber.Ctx) error {
	var input domain.UpdateMediaInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	item, err := h.mediaService.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return middleware.NotFound("Media not found")
		}
		if errors.Is(err, media.ErrInvalidMediaType) {
			return middleware.BadRequest(err.Error())
		}
		return err
	}

	return c.JSON(domain.Response{
		Success: true,
		Data:    item,
		Message: "Media updated successfully",
	})
}

func (h *MediaHandler) Delete(c *fiber.Ctx) error {
	if err := h.mediaService.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return middleware.NotFound("Media not found")
		}
		return err
	}

	return c.JSON(domain.Response{
		Success: true,
		Message: "Media deleted successfully",
	})
}
