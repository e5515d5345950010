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

// CustomerService handles customer account management
type CustomerService struct {
	customerRepo repositories.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repositories.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// RegisterCustomerInput represents customer registration input
type RegisterCustomerInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register validates and persists a new customer account with a hashed
// credential and a generated UUID
func (s *CustomerService) Register(ctx context.Context, input *RegisterCustomerInput) (*models.CustomerResponse, error) {
	var violations []string

	if len(input.Name) < 3 {
		violations = append(violations, "name must be at least 3 characters")
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		violations = append(violations, "email must be a valid address")
	}
	if len(input.Password) < password.MinLength {
		violations = append(violations, "password must be at least 8 characters")
	}
	if len(violations) > 0 {
		return nil, domain.NewValidationError(violations)
	}

	taken, err := s.customerRepo.ExistsByEmail(ctx, input.Email)
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

	customer := &models.Customer{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer.ToResponse(), nil
}

// Get returns a customer by UUID
func (s *CustomerService) Get(ctx context.Context, id string) (*models.CustomerResponse, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, err
	}
	return customer.ToResponse(), nil
}

// List lists customers with pagination
func (s *CustomerService) List(ctx context.Context, offset, limit int) ([]*models.CustomerResponse, int64, error) {
	customers, total, err := s.customerRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*models.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		responses = append(responses, c.ToResponse())
	}
	return responses, total, nil
}
