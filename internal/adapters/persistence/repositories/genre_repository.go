package repositories

import (
	"context"

	"cineplus-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// genreRepository implements GenreRepository interface
type genreRepository struct {
	db *gorm.DB
}

// NewGenreRepository creates a new genre repository
func NewGenreRepository(db *gorm.DB) GenreRepository {
	return &genreRepository{db: db}
}

// Create creates a new genre
func (r *genreRepository) Create(ctx context.Context, genre *models.Genre) error {
	return r.db.WithContext(ctx).Create(genre).Error
}

// GetByID gets a genre by ID
func (r *genreRepository) GetByID(ctx context.Context, id uint) (*models.Genre, error) {
	var genre models.Genre
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&genre).Error
	if err != nil {
		return nil, err
	}
	return &genre, nil
}

// List lists all genres ordered by name
func (r *genreRepository) List(ctx context.Context) ([]*models.Genre, error) {
	var genres []*models.Genre
	err := r.db.WithContext(ctx).Order("name ASC").Find(&genres).Error
	return genres, err
}

// Update updates a genre
func (r *genreRepository) Update(ctx context.Context, genre *models.Genre) error {
	return r.db.WithContext(ctx).Save(genre).Error
}

// Delete deletes a genre
func (r *genreRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Genre{}, id).Error
}
