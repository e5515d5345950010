package handlers

import (
	"errors"
	"log"
	"strconv"

	"cineplus-api/internal/core/domain"
	"cineplus-api/internal/core/services"
	"cineplus-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// GenreHandler handles genre endpoints
type GenreHandler struct {
	genreService *services.GenreService
}

// NewGenreHandler creates a new genre handler
func NewGenreHandler(genreService *services.GenreService) *GenreHandler {
	return &GenreHandler{genreService: genreService}
}

// List handles listing genres
// @Summary List genres
// @Tags Genres
// @Produce json
// @Success 200 {object} response.Response
// @Router /genres [get]
func (h *GenreHandler) List(c *fiber.Ctx) error {
	genres, err := h.genreService.List(c.Context())
	if err != nil {
		log.Printf("❌ Failed to list genres: %v", err)
		return response.InternalServerError(c, "Failed to list genres")
	}
	return response.Success(c, "", genres)
}

// Create handles genre creation
// @Summary Create genre
// @Tags Genres
// @Accept json
// @Produce json
// @Param body body services.GenreInput true "Genre data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /genres [post]
func (h *GenreHandler) Create(c *fiber.Ctx) error {
	var input services.GenreInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	genre, err := h.genreService.Create(c.Context(), &input)
	if err != nil {
		if ve, ok := domain.AsValidationError(err); ok {
			return response.ValidationFailed(c, ve.Violations)
		}
		log.Printf("❌ Failed to create genre: %v", err)
		return response.InternalServerError(c, "Failed to create genre")
	}
	return response.Created(c, "Genre created successfully", genre)
}

// Update handles genre rename
// @Summary Update genre
// @Tags Genres
// @Accept json
// @Produce json
// @Param id path int true "Genre ID"
// @Param body body services.GenreInput true "Genre data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /genres/{id} [put]
func (h *GenreHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid genre ID")
	}

	var input services.GenreInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	genre, err := h.genreService.Update(c.Context(), uint(id), &input)
	if err != nil {
		if ve, ok := domain.AsValidationError(err); ok {
			return response.ValidationFailed(c, ve.Violations)
		}
		if errors.Is(err, domain.ErrGenreNotFound) {
			return response.NotFound(c, "Genre not found")
		}
		log.Printf("❌ Failed to update genre %d: %v", id, err)
		return response.InternalServerError(c, "Failed to update genre")
	}
	return response.Success(c, "Genre updated successfully", genre)
}

// Delete handles genre deletion
// @Summary Delete genre
// @Tags Genres
// @Param id path int true "Genre ID"
// @Success 204
// @Failure 404 {object} response.Response
// @Router /genres/{id} [delete]
func (h *GenreHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid genre ID")
	}

	if err := h.genreService.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, domain.ErrGenreNotFound) {
			return response.NotFound(c, "Genre not found")
		}
		log.Printf("❌ Failed to delete genre %d: %v", id, err)
		return response.InternalServerError(c, "Failed to delete genre")
	}
	return response.NoContent(c)
}
