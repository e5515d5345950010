package repositories

import (
	"context"

	"cineplus-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// movieRepository implements MovieRepository interface
type movieRepository struct {
	db *gorm.DB
}

// NewMovieRepository creates a new movie repository
func NewMovieRepository(db *gorm.DB) MovieRepository {
	return &movieRepository{db: db}
}

// Create creates a new movie
func (r *movieRepository) Create(ctx context.Context, movie *models.Movie) error {
	return r.db.WithContext(ctx).Create(movie).Error
}

// GetByID gets a movie by ID with its genre eager-loaded
func (r *movieRepository) GetByID(ctx context.Context, id uint) (*models.Movie, error) {
	var movie models.Movie
	err := r.db.WithContext(ctx).Preload("Genre").Where("id = ?", id).First(&movie).Error
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// List lists movies with pagination, genre eager-loaded
func (r *movieRepository) List(ctx context.Context, offset, limit int) ([]*models.Movie, int64, error) {
	var movies []*models.Movie
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Movie{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).Preload("Genre").Offset(offset).Limit(limit).Find(&movies).Error; err != nil {
		return nil, 0, err
	}

	return movies, total, nil
}

// SearchByText finds movies whose title contains the term or whose genre
// name equals it, case-insensitive
func (r *movieRepository) SearchByText(ctx context.Context, term string) ([]*models.Movie, error) {
	var movies []*models.Movie
	err := r.db.WithContext(ctx).
		Preload("Genre").
		Joins("JOIN genres ON genres.id = movies.genre_id").
		Where("LOWER(movies.title) LIKE LOWER(?) OR LOWER(genres.name) = LOWER(?)", "%"+term+"%", term).
		Find(&movies).Error
	return movies, err
}

// SearchByYear finds movies released in the given year
func (r *movieRepository) SearchByYear(ctx context.Context, year int) ([]*models.Movie, error) {
	var movies []*models.Movie
	err := r.db.WithContext(ctx).Preload("Genre").Where("year = ?", year).Find(&movies).Error
	return movies, err
}

// SearchByMaxPrice finds movies priced at or below the given value
func (r *movieRepository) SearchByMaxPrice(ctx context.Context, price float64) ([]*models.Movie, error) {
	var movies []*models.Movie
	err := r.db.WithContext(ctx).Preload("Genre").Where("price <= ?", price).Find(&movies).Error
	return movies, err
}

// Update saves a full movie row
func (r *movieRepository) Update(ctx context.Context, movie *models.Movie) error {
	return r.db.WithContext(ctx).Save(movie).Error
}

// UpdateFields updates only the given columns
func (r *movieRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&models.Movie{}).Where("id = ?", id).Updates(fields).Error
}

// SetFeatured is a targeted single-column update of the featured bit
func (r *movieRepository) SetFeatured(ctx context.Context, id uint, featured bool) error {
	return r.db.WithContext(ctx).Model(&models.Movie{}).Where("id = ?", id).Update("featured", featured).Error
}

// Delete deletes a movie
func (r *movieRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Movie{}, id).Error
}
