package handlers

import (
	"log"

	"cineplus-api/internal/core/services"
	"cineplus-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles dashboard endpoints
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// General handles the top-level counts
// @Summary General stats
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Response
// @Router /dashboard/general [get]
func (h *DashboardHandler) General(c *fiber.Ctx) error {
	stats, err := h.dashboardService.GetGeneralStats(c.Context())
	if err != nil {
		log.Printf("❌ Failed to load general stats: %v", err)
		return response.InternalServerError(c, "Failed to load dashboard")
	}
	return response.Success(c, "", stats)
}

// MoviesByGenre handles the movies-per-genre aggregation
// @Summary Movies by genre
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Response
// @Router /dashboard/moviesByGenre [get]
func (h *DashboardHandler) MoviesByGenre(c *fiber.Ctx) error {
	counts, err := h.dashboardService.GetMoviesByGenre(c.Context())
	if err != nil {
		log.Printf("❌ Failed to load movies by genre: %v", err)
		return response.InternalServerError(c, "Failed to load dashboard")
	}
	return response.Success(c, "", counts)
}

// MoviesByAccess handles the movies-per-access-type aggregation
// @Summary Movies by access type
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Response
// @Router /dashboard/moviesByAccess [get]
func (h *DashboardHandler) MoviesByAccess(c *fiber.Ctx) error {
	counts, err := h.dashboardService.GetMoviesByAccess(c.Context())
	if err != nil {
		log.Printf("❌ Failed to load movies by access type: %v", err)
		return response.InternalServerError(c, "Failed to load dashboard")
	}
	return response.Success(c, "", counts)
}
