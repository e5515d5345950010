package services

import (
	"context"
	"testing"

	"cineplus-api/internal/adapters/persistence/models"
	"cineplus-api/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGenreValidatesName(t *testing.T) {
	svc := NewGenreService(newFakeGenreRepo())

	_, err := svc.Create(context.Background(), &GenreInput{Name: "Sc"})
	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, []string{"name must be at least 3 characters"}, ve.Violations)

	genre, err := svc.Create(context.Background(), &GenreInput{Name: "Sci-Fi"})
	require.NoError(t, err)
	assert.Equal(t, "Sci-Fi", genre.Name)
	assert.NotZero(t, genre.ID)
}

func TestUpdateGenreRenames(t *testing.T) {
	repo := newFakeGenreRepo(&models.Genre{ID: 1, Name: "Horor"})
	svc := NewGenreService(repo)

	genre, err := svc.Update(context.Background(), 1, &GenreInput{Name: "Horror"})
	require.NoError(t, err)
	assert.Equal(t, "Horror", genre.Name)

	_, err = svc.Update(context.Background(), 99, &GenreInput{Name: "Horror"})
	assert.ErrorIs(t, err, domain.ErrGenreNotFound)
}

func TestDeleteGenre(t *testing.T) {
	repo := newFakeGenreRepo(&models.Genre{ID: 1, Name: "Action"})
	svc := NewGenreService(repo)

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.ErrorIs(t, svc.Delete(context.Background(), 1), domain.ErrGenreNotFound)
}
