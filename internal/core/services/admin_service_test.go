package services

import (
	"context"
	"testing"

	"cineplus-api/internal/core/domain"
	"cineplus-api/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAdminInput() *CreateAdminInput {
	return &CreateAdminInput{
		Name:     "Alexandra Admin",
		Email:    "alexandra@cineplus.local",
		Password: "Sup3r$ecret",
		Level:    domain.LevelModerator,
	}
}

func TestCreateAdminHashesPassword(t *testing.T) {
	repo := newFakeAdminRepo()
	svc := NewAdminService(repo)

	resp, err := svc.Create(context.Background(), validAdminInput())
	require.NoError(t, err)

	stored, err := repo.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "Sup3r$ecret", stored.Password)
	assert.True(t, password.Verify("Sup3r$ecret", stored.Password))
}

func TestCreateAdminReportsShapeViolationsTogether(t *testing.T) {
	svc := NewAdminService(newFakeAdminRepo())

	input := &CreateAdminInput{Name: "Shorty", Email: "not-an-email", Password: "Sup3r$ecret", Level: 9}
	_, err := svc.Create(context.Background(), input)

	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, []string{
		"name must be at least 10 characters",
		"email must be a valid address",
		"level must be between 1 and 3",
	}, ve.Violations)
}

func TestCreateAdminEnforcesPasswordPolicy(t *testing.T) {
	svc := NewAdminService(newFakeAdminRepo())

	input := validAdminInput()
	input.Password = "weakpass"
	_, err := svc.Create(context.Background(), input)

	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, []string{
		"password must contain at least 1 uppercase letter",
		"password must contain at least 1 digit",
		"password must contain at least 1 symbol",
	}, ve.Violations)
}

func TestCreateAdminRejectsDuplicateEmail(t *testing.T) {
	svc := NewAdminService(newFakeAdminRepo())

	_, err := svc.Create(context.Background(), validAdminInput())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), validAdminInput())
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestGetUnknownAdminIsNotFound(t *testing.T) {
	svc := NewAdminService(newFakeAdminRepo())

	_, err := svc.Get(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrAdminNotFound)
}
