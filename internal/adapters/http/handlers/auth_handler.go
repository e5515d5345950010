package handlers

import (
	"errors"
	"log"
	"strings"

	"cineplus-api/internal/core/domain"
	"cineplus-api/internal/core/services"
	"cineplus-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// The same message is returned whether the email is unknown or the
// password is wrong, so responses cannot be used to enumerate accounts.
const loginErrorMessage = "Email or password incorrect"

// AdminLogin handles admin login
// @Summary Admin login
// @Description Authenticate an admin and return a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /admins/login [post]
func (h *AuthHandler) AdminLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Email == "" || req.Password == "" {
		return response.BadRequest(c, loginErrorMessage)
	}

	input := &services.LoginInput{
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	}

	result, err := h.authService.AdminLogin(c.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return response.Unauthorized(c, loginErrorMessage)
		}
		log.Printf("❌ Admin login failed: %v", err)
		return response.InternalServerError(c, "Failed to login")
	}

	return response.Success(c, "Login successful", result)
}

// CustomerLogin handles customer login
// @Summary Customer login
// @Description Authenticate a customer and return a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /customers/login [post]
func (h *AuthHandler) CustomerLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Email == "" || req.Password == "" {
		return response.BadRequest(c, loginErrorMessage)
	}

	input := &services.LoginInput{
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	}

	result, err := h.authService.CustomerLogin(c.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return response.Unauthorized(c, loginErrorMessage)
		}
		log.Printf("❌ Customer login failed: %v", err)
		return response.InternalServerError(c, "Failed to login")
	}

	return response.Success(c, "Login successful", result)
}
