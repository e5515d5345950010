package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"cineplus-api/internal/adapters/persistence/models"
	"cineplus-api/internal/adapters/persistence/repositories"
	"cineplus-api/internal/core/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewService owns the review lifecycle and its moderation facets
type ReviewService struct {
	reviewRepo repositories.ReviewRepository
}

// NewReviewService creates a new review service
func NewReviewService(reviewRepo repositories.ReviewRepository) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo}
}

// CreateReviewInput represents review creation input
type CreateReviewInput struct {
	CustomerID string  `json:"customer_id"`
	MovieID    uint    `json:"movie_id"`
	Comment    string  `json:"comment"`
	Rating     int     `json:"rating"`
	Reply      *string `json:"reply,omitempty"`
}

// UpdateReviewInput represents a partial review update. Nil fields are
// left unchanged and are not re-validated.
type UpdateReviewInput struct {
	CustomerID *string `json:"customer_id,omitempty"`
	MovieID    *uint   `json:"movie_id,omitempty"`
	Comment    *string `json:"comment,omitempty"`
	Rating     *int    `json:"rating,omitempty"`
	Reply      *string `json:"reply,omitempty"`
}

func validateCustomerID(id string) string {
	if _, err := uuid.Parse(id); err != nil {
		return "customer_id must be a valid UUID"
	}
	return ""
}

func validateComment(comment string) string {
	if len(comment) < 5 {
		return "comment must be at least 5 characters"
	}
	return ""
}

func validateRating(rating int) string {
	if rating < 1 || rating > 5 {
		return "rating must be between 1 and 5"
	}
	return ""
}

// Create validates the full input (every violation reported) and persists
// the review with flagged=false. Validation happens before any persistence
// call.
func (s *ReviewService) Create(ctx context.Context, input *CreateReviewInput) (*models.ReviewResponse, error) {
	var violations []string

	if v := validateCustomerID(input.CustomerID); v != "" {
		violations = append(violations, v)
	}
	if input.MovieID == 0 {
		violations = append(violations, "movie_id must be a positive integer")
	}
	if v := validateComment(input.Comment); v != "" {
		violations = append(violations, v)
	}
	if v := validateRating(input.Rating); v != "" {
		violations = append(violations, v)
	}
	if len(violations) > 0 {
		return nil, domain.NewValidationError(violations)
	}

	review := &models.Review{
		CustomerID: input.CustomerID,
		MovieID:    input.MovieID,
		Comment:    input.Comment,
		Rating:     input.Rating,
		Reply:      input.Reply,
		Flagged:    false,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	return review.ToResponse(), nil
}

// List returns all reviews, newest first
func (s *ReviewService) List(ctx context.Context) ([]*models.ReviewResponse, error) {
	reviews, err := s.reviewRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(reviews), nil
}

// ListFlagged returns only flagged reviews, newest first
func (s *ReviewService) ListFlagged(ctx context.Context) ([]*models.ReviewResponse, error) {
	reviews, err := s.reviewRepo.ListFlagged(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(reviews), nil
}

// ListByMovie returns reviews for a movie, newest first
func (s *ReviewService) ListByMovie(ctx context.Context, movieID uint) ([]*models.ReviewResponse, error) {
	reviews, err := s.reviewRepo.ListByMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}
	return toResponses(reviews), nil
}

// ListByCustomer returns reviews by a customer, newest first
func (s *ReviewService) ListByCustomer(ctx context.Context, customerID string) ([]*models.ReviewResponse, error) {
	reviews, err := s.reviewRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return toResponses(reviews), nil
}

// Get returns a single review by id
func (s *ReviewService) Get(ctx context.Context, id uint) (*models.ReviewResponse, error) {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, err
	}
	return review.ToResponse(), nil
}

// Flag marks a review for moderator attention. Idempotent: flagging an
// already-flagged review succeeds and returns the current state. Flagging
// is monotonic; nothing ever clears the bit.
func (s *ReviewService) Flag(ctx context.Context, actor domain.Identity, id uint) (*models.ReviewResponse, error) {
	if actor.Level < domain.LevelModerator {
		return nil, domain.ErrForbidden
	}

	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, err
	}

	if err := s.reviewRepo.Flag(ctx, id); err != nil {
		return nil, err
	}
	review.Flagged = true

	log.Printf("🚩 Review %d flagged by %s", id, actor.Name)

	return review.ToResponse(), nil
}

// Reply sets the moderator reply, overwriting any prior one. Blank or
// whitespace-only text is rejected.
func (s *ReviewService) Reply(ctx context.Context, actor domain.Identity, id uint, text string) (*models.ReviewResponse, error) {
	if actor.Level < domain.LevelModerator {
		return nil, domain.ErrForbidden
	}

	if strings.TrimSpace(text) == "" {
		return nil, domain.NewValidationError([]string{"reply must not be empty"})
	}

	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, err
	}

	if err := s.reviewRepo.SetReply(ctx, id, text); err != nil {
		return nil, err
	}
	review.Reply = &text

	return review.ToResponse(), nil
}

// Update applies a partial update. Provided fields are validated with the
// creation rules; absent fields stay untouched and are not re-validated.
func (s *ReviewService) Update(ctx context.Context, id uint, input *UpdateReviewInput) (*models.ReviewResponse, error) {
	var violations []string
	fields := map[string]interface{}{}

	if input.CustomerID != nil {
		if v := validateCustomerID(*input.CustomerID); v != "" {
			violations = append(violations, v)
		} else {
			fields["customer_id"] = *input.CustomerID
		}
	}
	if input.MovieID != nil {
		if *input.MovieID == 0 {
			violations = append(violations, "movie_id must be a positive integer")
		} else {
			fields["movie_id"] = *input.MovieID
		}
	}
	if input.Comment != nil {
		if v := validateComment(*input.Comment); v != "" {
			violations = append(violations, v)
		} else {
			fields["comment"] = *input.Comment
		}
	}
	if input.Rating != nil {
		if v := validateRating(*input.Rating); v != "" {
			violations = append(violations, v)
		} else {
			fields["rating"] = *input.Rating
		}
	}
	if input.Reply != nil {
		fields["reply"] = *input.Reply
	}

	if len(violations) > 0 {
		return nil, domain.NewValidationError(violations)
	}

	if _, err := s.reviewRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, err
	}

	if len(fields) > 0 {
		if err := s.reviewRepo.UpdateFields(ctx, id, fields); err != nil {
			return nil, err
		}
	}

	updated, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload review %d: %w", id, err)
	}
	return updated.ToResponse(), nil
}

// Delete removes a review
func (s *ReviewService) Delete(ctx context.Context, id uint) error {
	if _, err := s.reviewRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrReviewNotFound
		}
		return err
	}
	return s.reviewRepo.Delete(ctx, id)
}

func toResponses(reviews []*models.Review) []*models.ReviewResponse {
	responses := make([]*models.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		responses = append(responses, r.ToResponse())
	}
	return responses
}
