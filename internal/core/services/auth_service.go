package services

import (
	"context"
	"errors"
	"log"

	"cineplus-api/internal/adapters/persistence/repositories"
	"cineplus-api/internal/config"
	"cineplus-api/internal/core/domain"
	"cineplus-api/internal/pkg/jwt"
	"cineplus-api/internal/pkg/password"

	"gorm.io/gorm"
)

// AuthService handles credential verification and session-token issuance
type AuthService struct {
	adminRepo    repositories.AdminRepository
	customerRepo repositories.CustomerRepository
	cfg          *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(
	adminRepo repositories.AdminRepository,
	customerRepo repositories.CustomerRepository,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		adminRepo:    adminRepo,
		customerRepo: customerRepo,
		cfg:          cfg,
	}
}

// LoginInput represents login input
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminAuthResponse represents an admin login response
type AdminAuthResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Level int    `json:"level"`
	Token string `json:"token"`
}

// CustomerAuthResponse represents a customer login response
type CustomerAuthResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// AdminLogin verifies admin credentials and issues a session token.
// Unknown email and wrong password both yield ErrInvalidCredentials so the
// response cannot be used to enumerate accounts.
func (s *AuthService) AdminLogin(ctx context.Context, input *LoginInput) (*AdminAuthResponse, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(input.Password, admin.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.Generate(admin.ID, admin.Name, admin.Level, s.cfg.JWT.Secret)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Admin login: %s (level %d)", admin.Email, admin.Level)

	return &AdminAuthResponse{
		ID:    admin.ID,
		Name:  admin.Name,
		Email: admin.Email,
		Level: admin.Level,
		Token: token,
	}, nil
}

// CustomerLogin verifies customer credentials and issues a session token
// with the base privilege level. Same anti-enumeration contract as
// AdminLogin.
func (s *AuthService) CustomerLogin(ctx context.Context, input *LoginInput) (*CustomerAuthResponse, error) {
	customer, err := s.customerRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(input.Password, customer.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	// Customer tokens reuse the claim shape with a synthetic numeric id of
	// zero; customer identity travels in the name claim. Privilege is the
	// lowest level, which grants no moderation rights.
	token, err := jwt.Generate(0, customer.Name, domain.LevelStaff, s.cfg.JWT.Secret)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Customer login: %s", customer.Email)

	return &CustomerAuthResponse{
		ID:    customer.ID,
		Name:  customer.Name,
		Email: customer.Email,
		Token: token,
	}, nil
}
