package handlers

import (
	"errors"
	"log"
	"strconv"

	"cineplus-api/internal/adapters/http/middleware"
	"cineplus-api/internal/core/domain"
	"cineplus-api/internal/core/services"
	"cineplus-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ReviewHandler handles review and moderation endpoints
type ReviewHandler struct {
	reviewService *services.ReviewService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// ReplyRequest represents a moderator reply body
type ReplyRequest struct {
	Reply string `json:"reply"`
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// Create handles review creation
// @Summary Create review
// @Description Create a review for a movie
// @Tags Reviews
// @Accept json
// @Produce json
// @Param body body services.CreateReviewInput true "Review data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	var input services.CreateReviewInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	review, err := h.reviewService.Create(c.Context(), &input)
	if err != nil {
		if ve, ok := domain.AsValidationError(err); ok {
			return response.ValidationFailed(c, ve.Violations)
		}
		log.Printf("❌ Failed to create review: %v", err)
		return response.InternalServerError(c, "Failed to create review")
	}

	return response.Created(c, "Review created successfully", review)
}

// List handles listing all reviews
// @Summary List reviews
// @Description List all reviews, newest first, with customer and movie summaries
// @Tags Reviews
// @Produce json
// @Success 200 {object} response.Response
// @Router /reviews [get]
func (h *ReviewHandler) List(c *fiber.Ctx) error {
	reviews, err := h.reviewService.List(c.Context())
	if err != nil {
		log.Printf("❌ Failed to list reviews: %v", err)
		return response.InternalServerError(c, "Failed to list reviews")
	}
	return response.Success(c, "", reviews)
}

// ListFlagged handles listing flagged reviews only
// @Summary List flagged reviews
// @Description List reviews marked for moderator attention, newest first
// @Tags Reviews
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /reviews/flagged [get]
func (h *ReviewHandler) ListFlagged(c *fiber.Ctx) error {
	reviews, err := h.reviewService.ListFlagged(c.Context())
	if err != nil {
		log.Printf("❌ Failed to list flagged reviews: %v", err)
		return response.InternalServerError(c, "Failed to list flagged reviews")
	}
	return response.Success(c, "", reviews)
}

// ListByMovie handles listing reviews for a movie
// @Summary List reviews by movie
// @Tags Reviews
// @Produce json
// @Param movieId path int true "Movie ID"
// @Success 200 {object} response.Response
// @Router /reviews/movie/{movieId} [get]
func (h *ReviewHandler) ListByMovie(c *fiber.Ctx) error {
	movieID, err := strconv.ParseUint(c.Params("movieId"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid movie ID")
	}

	reviews, err := h.reviewService.ListByMovie(c.Context(), uint(movieID))
	if err != nil {
		log.Printf("❌ Failed to list reviews for movie %d: %v", movieID, err)
		return response.InternalServerError(c, "Failed to list reviews")
	}
	return response.Success(c, "", reviews)
}

// ListByCustomer handles listing reviews by a customer
// @Summary List reviews by customer
// @Tags Reviews
// @Produce json
// @Param customerId path string true "Customer UUID"
// @Success 200 {object} response.Response
// @Router /reviews/customer/{customerId} [get]
func (h *ReviewHandler) ListByCustomer(c *fiber.Ctx) error {
	customerID := c.Params("customerId")

	reviews, err := h.reviewService.ListByCustomer(c.Context(), customerID)
	if err != nil {
		log.Printf("❌ Failed to list reviews for customer %s: %v", customerID, err)
		return response.InternalServerError(c, "Failed to list reviews")
	}
	return response.Success(c, "", reviews)
}

// Get handles fetching a single review
// @Summary Get review
// @Tags Reviews
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /reviews/{id} [get]
func (h *ReviewHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid review ID")
	}

	review, err := h.reviewService.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrReviewNotFound) {
			return response.NotFound(c, "Review not found")
		}
		log.Printf("❌ Failed to get review %d: %v", id, err)
		return response.InternalServerError(c, "Failed to get review")
	}
	return response.Success(c, "", review)
}

// Flag handles flagging a review for moderation
// @Summary Flag review
// @Description Mark a review for moderator attention. Idempotent.
// @Tags Reviews
// @Produce json
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /reviews/{id}/flag [patch]
func (h *ReviewHandler) Flag(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid review ID")
	}

	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return response.Unauthorized(c, "Invalid or missing token")
	}

	review, err := h.reviewService.Flag(c.Context(), identity, id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrReviewNotFound):
			return response.NotFound(c, "Review not found")
		case errors.Is(err, domain.ErrForbidden):
			return response.Forbidden(c, "You don't have permission to access this resource")
		default:
			log.Printf("❌ Failed to flag review %d: %v", id, err)
			return response.InternalServerError(c, "Failed to flag review")
		}
	}
	return response.Success(c, "Review flagged successfully", review)
}

// Reply handles setting the moderator reply
// @Summary Reply to review
// @Description Set the moderator reply, overwriting any prior one
// @Tags Reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Param body body ReplyRequest true "Reply text"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /reviews/{id} [patch]
func (h *ReviewHandler) Reply(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid review ID")
	}

	var req ReplyRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return response.Unauthorized(c, "Invalid or missing token")
	}

	review, err := h.reviewService.Reply(c.Context(), identity, id, req.Reply)
	if err != nil {
		if ve, ok := domain.AsValidationError(err); ok {
			return response.ValidationFailed(c, ve.Violations)
		}
		switch {
		case errors.Is(err, domain.ErrReviewNotFound):
			return response.NotFound(c, "Review not found")
		case errors.Is(err, domain.ErrForbidden):
			return response.Forbidden(c, "You don't have permission to access this resource")
		default:
			log.Printf("❌ Failed to reply to review %d: %v", id, err)
			return response.InternalServerError(c, "Failed to reply to review")
		}
	}
	return response.Success(c, "Reply saved successfully", review)
}

// Update handles full or partial review updates
// @Summary Update review
// @Description Update review fields; absent fields are left unchanged
// @Tags Reviews
// @Accept json
// @Produce json
// @Param id path int true "Review ID"
// @Param body body services.UpdateReviewInput true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /reviews/{id} [put]
func (h *ReviewHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid review ID")
	}

	var input services.UpdateReviewInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	review, err := h.reviewService.Update(c.Context(), id, &input)
	if err != nil {
		if ve, ok := domain.AsValidationError(err); ok {
			return response.ValidationFailed(c, ve.Violations)
		}
		if errors.Is(err, domain.ErrReviewNotFound) {
			return response.NotFound(c, "Review not found")
		}
		log.Printf("❌ Failed to update review %d: %v", id, err)
		return response.InternalServerError(c, "Failed to update review")
	}
	return response.Success(c, "Review updated successfully", review)
}

// Delete handles review deletion
// @Summary Delete review
// @Tags Reviews
// @Param id path int true "Review ID"
// @Success 204
// @Failure 404 {object} response.Response
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid review ID")
	}

	if err := h.reviewService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrReviewNotFound) {
			return response.NotFound(c, "Review not found")
		}
		log.Printf("❌ Failed to delete review %d: %v", id, err)
		return response.InternalServerError(c, "Failed to delete review")
	}
	return response.NoContent(c)
}
