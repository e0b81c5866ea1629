package handler

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"lumiere-photography/internal/domain"
	"lumiere-photography/internal/middleware"
	"lumiere-photography/internal/service/textcontent"
)

type TextContentHandler struct {
	textContentService textcontent.Service
}

func NewTextContentHandler(textContentService textcontent.Service) *TextContentHandler {
	return &TextContentHandler{textContentService: textContentService}
}

func (h *TextContentHandler) List(c *fiber.Ctx) error {
	entries, err := h.textContentService.List(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(domain.Response{
		Success: true,
		Data:    entries,
		Message: "Text content fetched successfully",
	})
}

func (h *TextContentHandler) GetByKey(c *fiber.Ctx) error {
	entry, err := h.textContentService.GetByKey(c.Context(), c.Params("key"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return middleware.NotFound("Text content not found")
		}
		return err
	}

	return c.JSON(domain.Response{
		Success: true,
		Data:    entry,
		Message: "Text content fetched successfully",
	})
}

func (h *TextContentHandler) Update(c *fiber.Ctx) error {
	var update domain.TextContentUpdate
	if err := c.BodyParser(&update); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	entry, err := h.textContentService.Upsert(c.Context(), update)
	if err != nil {
		if errors.Is(err, textcontent.ErrMissingKey) {
			return middleware.BadRequest("Key and value are required")
		}
		return err
	}

	return c.JSON(domain.Response{
		Success: true,
		Data:    entry,
		Message: "Text content updated successfully",
	})
}

func (h *TextContentHandler) UpdateMultiple(c *fiber.Ctx) error {
	var updates []domain.TextContentUpdate
	if err := c.BodyParser(&updates); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if len(updates) == 0 {
		return middleware.BadRequest("Updates array is required")
	}

	entries, err := h.textContentService.UpsertMany(c.Context(), updates)
	if err != nil {
		if errors.Is(err, textcontent.ErrMissingKey) {
			return middleware.BadRequest("Each update must have key and value")
		}
		return err
	}

	return c.JSON(domain.Response{
		Success: true,
		Data:    entries,
		Message: "Text content updated successfully",
	})
}
