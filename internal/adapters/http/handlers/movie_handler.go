package handlers

import (
	"errors"
	"log"
	"strconv"

	"cineplus-api/internal/core/domain"
	"cineplus-api/internal/core/services"
	"cineplus-api/internal/pkg/pagination"
	"cineplus-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// MovieHandler handles movie catalog endpoints
type MovieHandler struct {
	movieService *services.MovieService
}

// NewMovieHandler creates a new movie handler
func NewMovieHandler(movieService *services.MovieService) *MovieHandler {
	return &MovieHandler{movieService: movieService}
}

// List handles listing movies
// @Summary List movies
// @Tags Movies
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} pagination.Response
// @Router /movies [get]
func (h *MovieHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	movies, total, err := h.movieService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		log.Printf("❌ Failed to list movies: %v", err)
		return response.InternalServerError(c, "Failed to list movies")
	}

	return c.JSON(pagination.NewResponse(movies, params, total))
}

// Get handles fetching a single movie
// @Summary Get movie
// @Tags Movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /movies/{id} [get]
func (h *MovieHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid movie ID")
	}

	movie, err := h.movieService.Get(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrMovieNotFound) {
			return response.NotFound(c, "Movie not found")
		}
		log.Printf("❌ Failed to get movie %d: %v", id, err)
		return response.InternalServerError(c, "Failed to get movie")
	}
	return response.Success(c, "", movie)
}

// Search handles free-form movie search
// @Summary Search movies
// @Description Search by title/genre text, release year, or price ceiling
// @Tags Movies
// @Produce json
// @Param term path string true "Search term"
// @Success 200 {object} response.Response
// @Router /movies/search/{term} [get]
func (h *MovieHandler) Search(c *fiber.Ctx) error {
	term := c.Params("term")

	movies, err := h.movieService.Search(c.Context(), term)
	if err != nil {
		log.Printf("❌ Failed to search movies for %q: %v", term, err)
		return response.InternalServerError(c, "Failed to search movies")
	}
	return response.Success(c, "", movies)
}

// Create handles movie creation
// @Summary Create movie
// @Tags Movies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.MovieInput true "Movie data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /movies [post]
func (h *MovieHandler) Create(c *fiber.Ctx) error {
	var input services.MovieInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	movie, err := h.movieService.Create(c.Context(), &input)
	if err != nil {
		if ve, ok := domain.AsValidationError(err); ok {
			return response.ValidationFailed(c, ve.Violations)
		}
		if errors.Is(err, domain.ErrGenreNotFound) {
			return response.NotFound(c, "Genre not found")
		}
		log.Printf("❌ Failed to create movie: %v", err)
		return response.InternalServerError(c, "Failed to create movie")
	}
	return response.Created(c, "Movie created successfully", movie)
}

// Update handles a full movie update
// @Summary Update movie
// @Tags Movies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Movie ID"
// @Param body body services.MovieInput true "Movie data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /movies/{id} [put]
func (h *MovieHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid movie ID")
	}

	var input services.MovieInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	movie, err := h.movieService.Update(c.Context(), uint(id), &input)
	if err != nil {
		if ve, ok := domain.AsValidationError(err); ok {
			return response.ValidationFailed(c, ve.Violations)
		}
		if errors.Is(err, domain.ErrMovieNotFound) {
			return response.NotFound(c, "Movie not found")
		}
		log.Printf("❌ Failed to update movie %d: %v", id, err)
		return response.InternalServerError(c, "Failed to update movie")
	}
	return response.Success(c, "Movie updated successfully", movie)
}

// Patch handles a partial movie update
// @Summary Patch movie
// @Tags Movies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Movie ID"
// @Param body body services.PatchMovieInput true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /movies/{id} [patch]
func (h *MovieHandler) Patch(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid movie ID")
	}

	var input services.PatchMovieInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	movie, err := h.movieService.Patch(c.Context(), uint(id), &input)
	if err != nil {
		if ve, ok := domain.AsValidationError(err); ok {
			return response.ValidationFailed(c, ve.Violations)
		}
		if errors.Is(err, domain.ErrMovieNotFound) {
			return response.NotFound(c, "Movie not found")
		}
		log.Printf("❌ Failed to patch movie %d: %v", id, err)
		return response.InternalServerError(c, "Failed to patch movie")
	}
	return response.Success(c, "Movie updated successfully", movie)
}

// ToggleFeatured handles flipping the featured bit
// @Summary Toggle featured
// @Tags Movies
// @Produce json
// @Security BearerAuth
// @Param id path int true "Movie ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /movies/{id}/feature [patch]
func (h *MovieHandler) ToggleFeatured(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid movie ID")
	}

	movie, err := h.movieService.ToggleFeatured(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrMovieNotFound) {
			return response.NotFound(c, "Movie not found")
		}
		log.Printf("❌ Failed to toggle featured on movie %d: %v", id, err)
		return response.InternalServerError(c, "Failed to update movie")
	}
	return response.Success(c, "Movie updated successfully", movie)
}

// Delete handles movie deletion with review cascade
// @Summary Delete movie
// @Description Delete a movie; its reviews are deleted first
// @Tags Movies
// @Security BearerAuth
// @Param id path int true "Movie ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /movies/{id} [delete]
func (h *MovieHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid movie ID")
	}

	if err := h.movieService.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, domain.ErrMovieNotFound) {
			return response.NotFound(c, "Movie not found")
		}
		log.Printf("❌ Failed to delete movie %d: %v", id, err)
		return response.InternalServerError(c, "Failed to delete movie")
	}
	return response.Success(c, "Movie deleted successfully", nil)
}
