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

// AdminHandler handles admin account management endpoints
type AdminHandler struct {
	adminService *services.AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// List handles listing admins
// @Summary List admins
// @Tags Admins
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} pagination.Response
// @Router /admins [get]
func (h *AdminHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	admins, total, err := h.adminService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		log.Printf("❌ Failed to list admins: %v", err)
		return response.InternalServerError(c, "Failed to list admins")
	}

	return c.JSON(pagination.NewResponse(admins, params, total))
}

// Create handles admin creation
// @Summary Create admin
// @Description Create an administrative account; the password is checked against the strength policy
// @Tags Admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateAdminInput true "Admin data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admins [post]
func (h *AdminHandler) Create(c *fiber.Ctx) error {
	var input services.CreateAdminInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	admin, err := h.adminService.Create(c.Context(), &input)
	if err != nil {
		if ve, ok := domain.AsValidationError(err); ok {
			return response.ValidationFailed(c, ve.Violations)
		}
		if errors.Is(err, domain.ErrEmailTaken) {
			return response.Conflict(c, "Email already registered")
		}
		log.Printf("❌ Failed to create admin: %v", err)
		return response.InternalServerError(c, "Failed to create admin")
	}

	return response.Created(c, "Admin created successfully", admin)
}

// Get handles fetching a single admin
// @Summary Get admin
// @Tags Admins
// @Produce json
// @Security BearerAuth
// @Param id path int true "Admin ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admins/{id} [get]
func (h *AdminHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid admin ID")
	}

	admin, err := h.adminService.Get(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			return response.NotFound(c, "Admin not found")
		}
		log.Printf("❌ Failed to get admin %d: %v", id, err)
		return response.InternalServerError(c, "Failed to get admin")
	}

	return response.Success(c, "", admin)
}
