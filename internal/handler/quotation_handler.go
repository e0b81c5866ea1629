package handler

import (
	"database/sql"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"lumiere-photography/internal/domain"
	"lumiere-photography/internal/middleware"
	"lumiere-photography/internal/service/quotation"
)

type QuotationHandler struct {
	quotationService quotation.Service
}

func NewQuotationHandler(quotationService quotation.Service) *QuotationHandler {
	return &QuotationHandler{quotationService: quotationService}
}

func (h *QuotationHandler) Submit(c *fiber.Ctx) error {
	var input domain.CreateQuotationInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	q, err := h.quotationService.Create(c.Context(), input)
	if err != nil {
		if errors.Is(err, quotation.ErrMissingFields) {
			return middleware.BadRequest("All fields are required")
		}
		if errors.Is(err, quotation.ErrInvalidEmail) {
			return middleware.BadRequest("Please provide a valid email address")
		}
		if errors.Is(err, quotation.ErrInvalidPhone) {
			return middleware.BadRequest("Please provide a valid phone number")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(domain.Response{
		Success: true,
		Data:    q,
		Message: "Quotation submitted successfully",
	})
}

func (h *QuotationHandler) List(c *fiber.Ctx) error {
	quotations, err := h.quotationService.List(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(domain.Response{
		Success: true,
		Data:    quotations,
		Message: "Quotations fetched successfully",
	})
}

func (h *QuotationHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return middleware.BadRequest("Invalid quotation ID")
	}

	q, err := h.quotationService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return middleware.NotFound("Quotation not found")
		}
		return err
	}

	return c.JSON(domain.Response{
		Success: true,
		Data:    q,
		Message: "Quotation fetched successfully",
	})
}

func (h *QuotationHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return middleware.BadRequest("Invalid quotation ID")
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if err := h.quotationService.UpdateStatus(c.Context(), id, body.Status); err != nil {
		if errors.Is(err, quotation.ErrInvalidStatus) {
			return middleware.BadRequest("Invalid status. Must be pending, contacted, or completed")
		}
		if errors.Is(err, sql.ErrNoRows) {
			return middleware.NotFound("Quotation not found")
		}
		return err
	}

	return c.JSON(domain.Response{
		Success: true,
		Message: "Quotation status updated successfully",
	})
}

func (h *QuotationHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return middleware.BadRequest("Invalid quotation ID")
	}

	if err := h.quotationService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return middleware.NotFound("Quotation not found")
		}
		return err
	}

	return c.JSON(domain.Response{
		Success: true,
		Message: "Quotation deleted successfully",
	})
}
