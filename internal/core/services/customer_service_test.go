package services

import (
	"context"
	"testing"

	"cineplus-api/internal/core/domain"
	"cineplus-api/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCustomerInput() *RegisterCustomerInput {
	return &RegisterCustomerInput{
		Name:     "Alex",
		Email:    "alex@example.com",
		Password: "longenough",
	}
}

func TestRegisterCustomerAssignsIDAndHashesPassword(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewCustomerService(repo)

	resp, err := svc.Register(context.Background(), validCustomerInput())
	require.NoError(t, err)
	require.NotEmpty(t, resp.ID)

	stored, err := repo.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.True(t, password.Verify("longenough", stored.Password))
}

func TestRegisterCustomerReportsEveryViolation(t *testing.T) {
	svc := NewCustomerService(newFakeCustomerRepo())

	input := &RegisterCustomerInput{Name: "Al", Email: "nope", Password: "short"}
	_, err := svc.Register(context.Background(), input)

	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, []string{
		"name must be at least 3 characters",
		"email must be a valid address",
		"password must be at least 8 characters",
	}, ve.Violations)
}

func TestRegisterCustomerRejectsDuplicateEmail(t *testing.T) {
	svc := NewCustomerService(newFakeCustomerRepo())

	_, err := svc.Register(context.Background(), validCustomerInput())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), validCustomerInput())
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestGetUnknownCustomerIsNotFound(t *testing.T) {
	svc := NewCustomerService(newFakeCustomerRepo())

	_, err := svc.Get(context.Background(), "00000000-0000-0000-0000-00000000dead")
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}
