package services

import (
	"context"

	"cineplus-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// DashboardService handles dashboard aggregation queries
type DashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// GeneralStats represents the top-level entity counts
type GeneralStats struct {
	Customers int64 `json:"customers"`
	Movies    int64 `json:"movies"`
	Reviews   int64 `json:"reviews"`
}

// GenreCount represents the number of movies in a genre
type GenreCount struct {
	Name   string `json:"name"`
	Movies int64  `json:"movies"`
}

// AccessCount represents the number of movies per access type
type AccessCount struct {
	AccessType string `json:"access_type"`
	Movies     int64  `json:"movies"`
}

// GetGeneralStats counts customers, movies and reviews
func (s *DashboardService) GetGeneralStats(ctx context.Context) (*GeneralStats, error) {
	stats := &GeneralStats{}

	if err := s.db.WithContext(ctx).Model(&models.Customer{}).Count(&stats.Customers).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&models.Movie{}).Count(&stats.Movies).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&models.Review{}).Count(&stats.Reviews).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

// GetMoviesByGenre counts movies per genre, ordered by genre name
func (s *DashboardService) GetMoviesByGenre(ctx context.Context) ([]GenreCount, error) {
	var counts []GenreCount

	err := s.db.WithContext(ctx).
		Table("genres").
		Select("genres.name AS name, COUNT(movies.id) AS movies").
		Joins("LEFT JOIN movies ON movies.genre_id = genres.id").
		Group("genres.id, genres.name").
		Order("genres.name ASC").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	return counts, nil
}

// GetMoviesByAccess counts movies per access type
func (s *DashboardService) GetMoviesByAccess(ctx context.Context) ([]AccessCount, error) {
	var counts []AccessCount

	err := s.db.WithContext(ctx).
		Table("movies").
		Select("access_type, COUNT(id) AS movies").
		Group("access_type").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	return counts, nil
}
