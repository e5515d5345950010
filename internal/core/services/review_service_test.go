package services

import (
	"context"
	"testing"
	"time"

	"cineplus-api/internal/adapters/persistence/models"
	"cineplus-api/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCustomerID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"

var moderator = domain.Identity{ID: 1, Name: "Moderator Morgan", Level: domain.LevelModerator}

func validReviewInput() *CreateReviewInput {
	return &CreateReviewInput{
		CustomerID: testCustomerID,
		MovieID:    10,
		Comment:    "Loved every minute of it",
		Rating:     5,
	}
}

func TestCreateReviewPersistsUnflagged(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo())

	review, err := svc.Create(context.Background(), validReviewInput())
	require.NoError(t, err)

	assert.False(t, review.Flagged)
	assert.Nil(t, review.Reply)
	assert.Equal(t, 5, review.Rating)
}

func TestCreateReviewReportsEveryViolation(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo())

	input := validReviewInput()
	input.Comment = "hi"
	input.Rating = 6

	_, err := svc.Create(context.Background(), input)
	require.Error(t, err)

	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, []string{
		"comment must be at least 5 characters",
		"rating must be between 1 and 5",
	}, ve.Violations)
}

func TestCreateReviewRejectsBadCustomerUUID(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo())

	input := validReviewInput()
	input.CustomerID = "not-a-uuid"

	_, err := svc.Create(context.Background(), input)
	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Violations, "customer_id must be a valid UUID")
}

func TestFlagIsIdempotent(t *testing.T) {
	repo := newFakeReviewRepo()
	svc := NewReviewService(repo)

	created, err := svc.Create(context.Background(), validReviewInput())
	require.NoError(t, err)

	first, err := svc.Flag(context.Background(), moderator, created.ID)
	require.NoError(t, err)
	assert.True(t, first.Flagged)

	second, err := svc.Flag(context.Background(), moderator, created.ID)
	require.NoError(t, err)
	assert.True(t, second.Flagged)
}

func TestFlagRequiresModeratorLevel(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo())
	staff := domain.Identity{ID: 2, Name: "Staff", Level: domain.LevelStaff}

	_, err := svc.Flag(context.Background(), staff, 1)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestFlagUnknownReviewIsNotFound(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo())

	_, err := svc.Flag(context.Background(), moderator, 99)
	assert.ErrorIs(t, err, domain.ErrReviewNotFound)
}

func TestReplyRejectsBlankText(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo())

	created, err := svc.Create(context.Background(), validReviewInput())
	require.NoError(t, err)

	_, err = svc.Reply(context.Background(), moderator, created.ID, "   ")
	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, []string{"reply must not be empty"}, ve.Violations)
}

func TestReplyOverwritesPriorReply(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo())

	created, err := svc.Create(context.Background(), validReviewInput())
	require.NoError(t, err)

	first, err := svc.Reply(context.Background(), moderator, created.ID, "Thanks for the feedback")
	require.NoError(t, err)
	require.NotNil(t, first.Reply)
	assert.Equal(t, "Thanks for the feedback", *first.Reply)

	second, err := svc.Reply(context.Background(), moderator, created.ID, "Updated answer")
	require.NoError(t, err)
	require.NotNil(t, second.Reply)
	assert.Equal(t, "Updated answer", *second.Reply)
}

func TestReplyDoesNotTouchFlag(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo())

	created, err := svc.Create(context.Background(), validReviewInput())
	require.NoError(t, err)

	flagged, err := svc.Flag(context.Background(), moderator, created.ID)
	require.NoError(t, err)
	require.True(t, flagged.Flagged)

	replied, err := svc.Reply(context.Background(), moderator, created.ID, "Noted")
	require.NoError(t, err)
	assert.True(t, replied.Flagged)
}

func TestListFlaggedReturnsOnlyFlaggedNewestFirst(t *testing.T) {
	repo := newFakeReviewRepo()
	svc := NewReviewService(repo)

	base := time.Now()
	seed := []*models.Review{
		{CustomerID: testCustomerID, MovieID: 1, Comment: "older flagged", Rating: 2, Flagged: true, CreatedAt: base.Add(-2 * time.Hour)},
		{CustomerID: testCustomerID, MovieID: 1, Comment: "never flagged", Rating: 4, CreatedAt: base.Add(-time.Hour)},
		{CustomerID: testCustomerID, MovieID: 2, Comment: "newer flagged", Rating: 1, Flagged: true, CreatedAt: base},
	}
	for _, r := range seed {
		require.NoError(t, repo.Create(context.Background(), r))
	}

	flagged, err := svc.ListFlagged(context.Background())
	require.NoError(t, err)

	require.Len(t, flagged, 2)
	assert.Equal(t, "newer flagged", flagged[0].Comment)
	assert.Equal(t, "older flagged", flagged[1].Comment)
	for _, r := range flagged {
		assert.True(t, r.Flagged)
	}
}

func TestPartialUpdateValidatesOnlyProvidedFields(t *testing.T) {
	repo := newFakeReviewRepo()
	svc := NewReviewService(repo)

	// Legacy row with a comment shorter than the creation rule allows.
	legacy := &models.Review{CustomerID: testCustomerID, MovieID: 1, Comment: "meh", Rating: 3}
	require.NoError(t, repo.Create(context.Background(), legacy))

	// Changing only the rating succeeds; the stored comment is not
	// re-validated.
	rating := 5
	updated, err := svc.Update(context.Background(), legacy.ID, &UpdateReviewInput{Rating: &rating})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Rating)
	assert.Equal(t, "meh", updated.Comment)

	// A provided comment is held to the creation rule.
	short := "hi"
	_, err = svc.Update(context.Background(), legacy.ID, &UpdateReviewInput{Comment: &short})
	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, []string{"comment must be at least 5 characters"}, ve.Violations)
}

func TestUpdateUnknownReviewIsNotFound(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo())

	rating := 4
	_, err := svc.Update(context.Background(), 404, &UpdateReviewInput{Rating: &rating})
	assert.ErrorIs(t, err, domain.ErrReviewNotFound)
}

func TestDeleteReview(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo())

	created, err := svc.Create(context.Background(), validReviewInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrReviewNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), domain.ErrReviewNotFound)
}
