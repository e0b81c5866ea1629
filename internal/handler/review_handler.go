package handler

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"lumiere-photography/internal/domain"
	"lumiere-photography/internal/middleware"
	"lumiere-photography/internal/service/review"
)

type ReviewHandler struct {
	reviewService review.Service
}

func NewReviewHandler(reviewService review.Service) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

func (h *ReviewHandler) Submit(c *fiber.Ctx) error {
	var input domain.CreateReviewInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	r, err := h.reviewService.Create(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, review.ErrMissingFields):
			return middleware.BadRequest("All fields are required")
		case errors.Is(err, review.ErrInvalidEmail):
			return middleware.BadRequest("Please provide a valid email address")
		case errors.Is(err, review.ErrInvalidRating):
			return middleware.BadRequest("Rating must be an integer between 1 and 5")
		case errors.Is(err, review.ErrCommentTooShort):
			return middleware.BadRequest("Comment must be at least 10 characters long")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(domain.Response{
		Success: true,
		Data:    r,
		Message: "Review submitted successfully. It will be published after approval.",
	})
}

func (h *ReviewHandler) ListApproved(c *fiber.Ctx) error {
	reviews, err := h.reviewService.ListApproved(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(domain.Response{
		Success: true,
		Data:    reviews,
		Message: "Approved reviews retrieved successfully",
	})
}

func (h *ReviewHandler) List(c *fiber.Ctx) error {
	reviews, err := h.reviewService.List(c.Context(), c.Query("status"))
	if err != nil {
		if errors.Is(err, review.ErrInvalidStatus) {
			return middleware.BadRequest("Invalid status. Must be one of: pending, approved, rejected")
		}
		return err
	}

	return c.JSON(domain.Response{
		Success: true,
		Data:    reviews,
		Message: "Reviews retrieved successfully",
	})
}

func (h *ReviewHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return middleware.BadRequest("Invalid review ID")
	}

	r, err := h.reviewService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return middleware.NotFound("Review not found")
		}
		return err
	}

	return c.JSON(domain.Response{
		Success: true,
		Data:    r,
		Message: "Review retrieved successfully",
	})
}

func (h *ReviewHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return middleware.BadRequest("Invalid review ID")
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	r, err := h.reviewService.UpdateStatus(c.Context(), id, body.Status)
	if err != nil {
		if errors.Is(err, review.ErrInvalidStatus) {
			return middleware.BadRequest("Invalid status. Must be one of: pending, approved, rejected")
		}
		if errors.Is(err, sql.ErrNoRows) {
			return middleware.NotFound("Review not found")
		}
		return err
	}

	return c.JSON(domain.Response{
		Success: true,
		Data:    r,
		Message: fmt.Sprintf("Review status updated to %s successfully", body.Status),
	})
}

func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return middleware.BadRequest("Invalid review ID")
	}

	if err := h.reviewService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return middleware.NotFound("Review not found")
		}
		return err
	}

	return c.JSON(domain.Response{
		Success: true,
		Message: "Review deleted successfully",
	})
}
