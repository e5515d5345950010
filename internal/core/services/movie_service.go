package services

import (
	"context"
	"errors"
	"log"
	"strconv"

	"cineplus-api/internal/adapters/persistence/models"
	"cineplus-api/internal/adapters/persistence/repositories"
	"cineplus-api/internal/core/domain"

	"gorm.io/gorm"
)

// Search terms that parse as a number at or below this are treated as a
// release year; larger numbers are treated as a price ceiling.
const maxSearchYear = 3000

// MovieService handles the movie catalog, including the review cascade on
// delete
type MovieService struct {
	movieRepo  repositories.MovieRepository
	genreRepo  repositories.GenreRepository
	reviewRepo repositories.ReviewRepository
}

// NewMovieService creates a new movie service
func NewMovieService(
	movieRepo repositories.MovieRepository,
	genreRepo repositories.GenreRepository,
	reviewRepo repositories.ReviewRepository,
) *MovieService {
	return &MovieService{
		movieRepo:  movieRepo,
		genreRepo:  genreRepo,
		reviewRepo: reviewRepo,
	}
}

// MovieInput represents movie creation / full-update input
type MovieInput struct {
	Title      string   `json:"title"`
	Synopsis   string   `json:"synopsis"`
	Year       int      `json:"year"`
	Duration   int      `json:"duration"`
	Price      *float64 `json:"price,omitempty"`
	Photo      string   `json:"photo"`
	AccessType string   `json:"access_type"`
	Featured   *bool    `json:"featured,omitempty"`
	GenreID    uint     `json:"genre_id"`
}

// PatchMovieInput represents a partial movie update
type PatchMovieInput struct {
	Title      *string  `json:"title,omitempty"`
	Synopsis   *string  `json:"synopsis,omitempty"`
	Year       *int     `json:"year,omitempty"`
	Duration   *int     `json:"duration,omitempty"`
	Price      *float64 `json:"price,omitempty"`
	Photo      *string  `json:"photo,omitempty"`
	AccessType *string  `json:"access_type,omitempty"`
	Featured   *bool    `json:"featured,omitempty"`
	GenreID    *uint    `json:"genre_id,omitempty"`
}

func (in *MovieInput) validate() []string {
	var violations []string

	if len(in.Title) < 2 {
		violations = append(violations, "title must be at least 2 characters")
	}
	if in.Year == 0 {
		violations = append(violations, "year is required")
	}
	if in.Duration <= 0 {
		violations = append(violations, "duration must be a positive number of minutes")
	}
	if in.AccessType != "" && !domain.AccessType(in.AccessType).IsValid() {
		violations = append(violations, "access_type must be FREE or PLUS")
	}
	if in.GenreID == 0 {
		violations = append(violations, "genre_id is required")
	}

	return violations
}

// Create validates and persists a new movie
func (s *MovieService) Create(ctx context.Context, input *MovieInput) (*models.Movie, error) {
	if violations := input.validate(); len(violations) > 0 {
		return nil, domain.NewValidationError(violations)
	}

	if _, err := s.genreRepo.GetByID(ctx, input.GenreID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGenreNotFound
		}
		return nil, err
	}

	movie := &models.Movie{
		Title:      input.Title,
		Synopsis:   input.Synopsis,
		Year:       input.Year,
		Duration:   input.Duration,
		Photo:      input.Photo,
		AccessType: string(domain.AccessPlus),
		Featured:   true,
		GenreID:    input.GenreID,
	}
	if input.Price != nil {
		movie.Price = *input.Price
	}
	if input.AccessType != "" {
		movie.AccessType = input.AccessType
	}
	if input.Featured != nil {
		movie.Featured = *input.Featured
	}

	if err := s.movieRepo.Create(ctx, movie); err != nil {
		return nil, err
	}

	return s.movieRepo.GetByID(ctx, movie.ID)
}

// Get returns a movie by id with genre loaded
func (s *MovieService) Get(ctx context.Context, id uint) (*models.Movie, error) {
	movie, err := s.movieRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, err
	}
	return movie, nil
}

// List lists movies with pagination
func (s *MovieService) List(ctx context.Context, offset, limit int) ([]*models.Movie, int64, error) {
	return s.movieRepo.List(ctx, offset, limit)
}

// Search dispatches a free-form term: non-numeric terms match title or
// genre name; numeric terms up to 3000 match the release year; anything
// larger is a price ceiling.
func (s *MovieService) Search(ctx context.Context, term string) ([]*models.Movie, error) {
	number, err := strconv.Atoi(term)
	if err != nil {
		return s.movieRepo.SearchByText(ctx, term)
	}
	if number <= maxSearchYear {
		return s.movieRepo.SearchByYear(ctx, number)
	}
	return s.movieRepo.SearchByMaxPrice(ctx, float64(number))
}

// Update replaces every field of a movie (full update)
func (s *MovieService) Update(ctx context.Context, id uint, input *MovieInput) (*models.Movie, error) {
	if violations := input.validate(); len(violations) > 0 {
		return nil, domain.NewValidationError(violations)
	}

	movie, err := s.movieRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, err
	}

	movie.Title = input.Title
	movie.Synopsis = input.Synopsis
	movie.Year = input.Year
	movie.Duration = input.Duration
	movie.Photo = input.Photo
	movie.GenreID = input.GenreID
	movie.Genre = nil
	if input.Price != nil {
		movie.Price = *input.Price
	}
	if input.AccessType != "" {
		movie.AccessType = input.AccessType
	}
	if input.Featured != nil {
		movie.Featured = *input.Featured
	}

	if err := s.movieRepo.Update(ctx, movie); err != nil {
		return nil, err
	}

	return s.movieRepo.GetByID(ctx, id)
}

// Patch applies a partial update; provided fields are validated with the
// creation rules, absent fields stay untouched
func (s *MovieService) Patch(ctx context.Context, id uint, input *PatchMovieInput) (*models.Movie, error) {
	var violations []string
	fields := map[string]interface{}{}

	if input.Title != nil {
		if len(*input.Title) < 2 {
			violations = append(violations, "title must be at least 2 characters")
		} else {
			fields["title"] = *input.Title
		}
	}
	if input.Synopsis != nil {
		fields["synopsis"] = *input.Synopsis
	}
	if input.Year != nil {
		fields["year"] = *input.Year
	}
	if input.Duration != nil {
		if *input.Duration <= 0 {
			violations = append(violations, "duration must be a positive number of minutes")
		} else {
			fields["duration"] = *input.Duration
		}
	}
	if input.Price != nil {
		fields["price"] = *input.Price
	}
	if input.Photo != nil {
		fields["photo"] = *input.Photo
	}
	if input.AccessType != nil {
		if !domain.AccessType(*input.AccessType).IsValid() {
			violations = append(violations, "access_type must be FREE or PLUS")
		} else {
			fields["access_type"] = *input.AccessType
		}
	}
	if input.Featured != nil {
		fields["featured"] = *input.Featured
	}
	if input.GenreID != nil {
		if *input.GenreID == 0 {
			violations = append(violations, "genre_id is required")
		} else {
			fields["genre_id"] = *input.GenreID
		}
	}

	if len(violations) > 0 {
		return nil, domain.NewValidationError(violations)
	}

	if _, err := s.movieRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, err
	}

	if len(fields) > 0 {
		if err := s.movieRepo.UpdateFields(ctx, id, fields); err != nil {
			return nil, err
		}
	}

	return s.movieRepo.GetByID(ctx, id)
}

// ToggleFeatured flips the featured bit of a movie
func (s *MovieService) ToggleFeatured(ctx context.Context, id uint) (*models.Movie, error) {
	movie, err := s.movieRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, err
	}

	if err := s.movieRepo.SetFeatured(ctx, id, !movie.Featured); err != nil {
		return nil, err
	}
	movie.Featured = !movie.Featured

	return movie, nil
}

// Delete removes a movie and cascades to its reviews: every review
// referencing the movie is deleted first so no orphan review can survive
// the parent.
func (s *MovieService) Delete(ctx context.Context, id uint) error {
	if _, err := s.movieRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMovieNotFound
		}
		return err
	}

	if err := s.reviewRepo.DeleteByMovie(ctx, id); err != nil {
		return err
	}

	if err := s.movieRepo.Delete(ctx, id); err != nil {
		return err
	}

	log.Printf("🗑️ Movie %d deleted (reviews cascaded)", id)
	return nil
}
