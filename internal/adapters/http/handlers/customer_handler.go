package handlers

import (
	"errors"
	"log"

	"cineplus-api/internal/core/domain"
	"cineplus-api/internal/core/services"
	"cineplus-api/internal/pkg/pagination"
	"cineplus-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CustomerHandler handles customer account endpoints
type CustomerHandler struct {
	customerService *services.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// Register handles customer registration
// @Summary Register customer
// @Tags Customers
// @Accept json
// @Produce json
// @Param body body services.RegisterCustomerInput true "Customer data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /customers [post]
func (h *CustomerHandler) Register(c *fiber.Ctx) error {
	var input services.RegisterCustomerInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	customer, err := h.customerService.Register(c.Context(), &input)
	if err != nil {
		if ve, ok := domain.AsValidationError(err); ok {
			return response.ValidationFailed(c, ve.Violations)
		}
		if errors.Is(err, domain.ErrEmailTaken) {
			return response.Conflict(c, "Email already registered")
		}
		log.Printf("❌ Failed to register customer: %v", err)
		return response.InternalServerError(c, "Failed to register customer")
	}

	return response.Created(c, "Customer registered successfully", customer)
}

// List handles listing customers
// @Summary List customers
// @Tags Customers
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} pagination.Response
// @Router /customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	customers, total, err := h.customerService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		log.Printf("❌ Failed to list customers: %v", err)
		return response.InternalServerError(c, "Failed to list customers")
	}

	return c.JSON(pagination.NewResponse(customers, params, total))
}

// Get handles fetching a single customer
// @Summary Get customer
// @Tags Customers
// @Produce json
// @Param id path string true "Customer UUID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /customers/{id} [get]
func (h *CustomerHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")

	customer, err := h.customerService.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return response.NotFound(c, "Customer not found")
		}
		log.Printf("❌ Failed to get customer %s: %v", id, err)
		return response.InternalServerError(c, "Failed to get customer")
	}

	return response.Success(c, "", customer)
}
