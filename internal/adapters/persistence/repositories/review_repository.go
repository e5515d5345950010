package repositories

import (
	"context"

	"cineplus-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// reviewRepository implements ReviewRepository interface
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// withSummaries eager-loads the customer and movie (with genre) summaries
// and applies the newest-first ordering shared by every listing
func (r *reviewRepository) withSummaries(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Movie").
		Preload("Movie.Genre").
		Order("created_at DESC")
}

// Create creates a new review
func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

// GetByID gets a review by ID with summaries eager-loaded
func (r *reviewRepository) GetByID(ctx context.Context, id uint) (*models.Review, error) {
	var review models.Review
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Movie").
		Preload("Movie.Genre").
		Where("id = ?", id).
		First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// List lists all reviews, newest first
func (r *reviewRepository) List(ctx context.Context) ([]*models.Review, error) {
	var reviews []*models.Review
	err := r.withSummaries(ctx).Find(&reviews).Error
	return reviews, err
}

// ListFlagged lists only flagged reviews, newest first
func (r *reviewRepository) ListFlagged(ctx context.Context) ([]*models.Review, error) {
	var reviews []*models.Review
	err := r.withSummaries(ctx).Where("flagged = ?", true).Find(&reviews).Error
	return reviews, err
}

// ListByMovie lists reviews for a movie, newest first
func (r *reviewRepository) ListByMovie(ctx context.Context, movieID uint) ([]*models.Review, error) {
	var reviews []*models.Review
	err := r.withSummaries(ctx).Where("movie_id = ?", movieID).Find(&reviews).Error
	return reviews, err
}

// ListByCustomer lists reviews by a customer, newest first
func (r *reviewRepository) ListByCustomer(ctx context.Context, customerID string) ([]*models.Review, error) {
	var reviews []*models.Review
	err := r.withSummaries(ctx).Where("customer_id = ?", customerID).Find(&reviews).Error
	return reviews, err
}

// Flag sets the flagged bit. Targeted single-column update so a concurrent
// reply never gets clobbered; writing true over true makes it idempotent.
func (r *reviewRepository) Flag(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&models.Review{}).Where("id = ?", id).Update("flagged", true).Error
}

// SetReply overwrites the moderator reply. Targeted single-column update.
func (r *reviewRepository) SetReply(ctx context.Context, id uint, reply string) error {
	return r.db.WithContext(ctx).Model(&models.Review{}).Where("id = ?", id).Update("reply", reply).Error
}

// UpdateFields updates only the given columns
func (r *reviewRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&models.Review{}).Where("id = ?", id).Updates(fields).Error
}

// Delete deletes a review
func (r *reviewRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Review{}, id).Error
}

// DeleteByMovie deletes every review referencing a movie (cascade step
// before the movie row itself is removed)
func (r *reviewRepository) DeleteByMovie(ctx context.Context, movieID uint) error {
	return r.db.WithContext(ctx).Where("movie_id = ?", movieID).Delete(&models.Review{}).Error
}

// CountByMovie counts reviews referencing a movie
func (r *reviewRepository) CountByMovie(ctx context.Context, movieID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Review{}).Where("movie_id = ?", movieID).Count(&count).Error
	return count, err
}
