package services

import (
	"context"
	"errors"

	"cineplus-api/internal/adapters/persistence/models"
	"cineplus-api/internal/adapters/persistence/repositories"
	"cineplus-api/internal/core/domain"

	"gorm.io/gorm"
)

// GenreService handles the genre master data
type GenreService struct {
	genreRepo repositories.GenreRepository
}

// NewGenreService creates a new genre service
func NewGenreService(genreRepo repositories.GenreRepository) *GenreService {
	return &GenreService{genreRepo: genreRepo}
}

// GenreInput represents genre creation / update input
type GenreInput struct {
	Name string `json:"name"`
}

func (in *GenreInput) validate() []string {
	if len(in.Name) < 3 {
		return []string{"name must be at least 3 characters"}
	}
	return nil
}

// List lists all genres
func (s *GenreService) List(ctx context.Context) ([]*models.Genre, error) {
	return s.genreRepo.List(ctx)
}

// Create validates and persists a new genre
func (s *GenreService) Create(ctx context.Context, input *GenreInput) (*models.Genre, error) {
	if violations := input.validate(); len(violations) > 0 {
		return nil, domain.NewValidationError(violations)
	}

	genre := &models.Genre{Name: input.Name}
	if err := s.genreRepo.Create(ctx, genre); err != nil {
		return nil, err
	}
	return genre, nil
}

// Update renames a genre
func (s *GenreService) Update(ctx context.Context, id uint, input *GenreInput) (*models.Genre, error) {
	if violations := input.validate(); len(violations) > 0 {
		return nil, domain.NewValidationError(violations)
	}

	genre, err := s.genreRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGenreNotFound
		}
		return nil, err
	}

	genre.Name = input.Name
	if err := s.genreRepo.Update(ctx, genre); err != nil {
		return nil, err
	}
	return genre, nil
}

// Delete removes a genre
func (s *GenreService) Delete(ctx context.Context, id uint) error {
	if _, err := s.genreRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrGenreNotFound
		}
		return err
	}
	return s.genreRepo.Delete(ctx, id)
}
