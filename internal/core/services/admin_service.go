package services

import (
	"context"
	"errors"
	"net/mail"

	"cineplus-api/internal/adapters/persistence/models"
	"cineplus-api/internal/adapters/persistence/repositories"
	"cineplus-api/internal/core/domain"
	"cineplus-api/internal/pkg/password"

	"gorm.io/gorm"
)

// AdminService handles administrative account management
type AdminService struct {
	adminRepo repositories.AdminRepository
}

// NewAdminService creates a new admin service
func NewAdminService(adminRepo repositories.AdminRepository) *AdminService {
	return &AdminService{adminRepo: adminRepo}
}

// CreateAdminInput represents admin creation input
type CreateAdminInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Level    int    `json:"level"`
}

// Create validates the account shape, then the password policy, and
// persists the admin with a hashed credential. Both validation passes
// report every violation, not just the first.
func (s *AdminService) Create(ctx context.Context, input *CreateAdminInput) (*models.AdminResponse, error) {
	var violations []string

	if len(input.Name) < 10 {
		violations = append(violations, "name must be at least 10 characters")
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		violations = append(violations, "email must be a valid address")
	}
	if input.Level < domain.LevelStaff || input.Level > domain.LevelManager {
		violations = append(violations, "level must be between 1 and 3")
	}
	if len(violations) > 0 {
		return nil, domain.NewValidationError(violations)
	}

	if policyViolations := password.Validate(input.Password); len(policyViolations) > 0 {
		return nil, domain.NewValidationError(policyViolations)
	}

	taken, err := s.adminRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrEmailTaken
	}

	hashed, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
		Level:    input.Level,
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	return admin.ToResponse(), nil
}

// Get returns an admin by id
func (s *AdminService) Get(ctx context.Context, id uint) (*models.AdminResponse, error) {
	admin, err := s.adminRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAdminNotFound
		}
		return nil, err
	}
	return admin.ToResponse(), nil
}

// List lists admins with pagination
func (s *AdminService) List(ctx context.Context, offset, limit int) ([]*models.AdminResponse, int64, error) {
	admins, total, err := s.adminRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*models.AdminResponse, 0, len(admins))
	for _, a := range admins {
		responses = append(responses, a.ToResponse())
	}
	return responses, total, nil
}
