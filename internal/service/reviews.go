package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/munchbox/munchbox/internal/models"
	"github.com/munchbox/munchbox/internal/storage"
)

// ReviewService owns the reviews/complaints collection.
type ReviewService struct {
	store storage.Store
	now   func() time.Time
}

// NewReviewService creates a ReviewService.
func NewReviewService(store storage.Store) *ReviewService {
	return &ReviewService{store: store, now: time.Now}
}

// Reviews returns all feedback entries, newest first.
func (s *ReviewService) Reviews(ctx context.Context) ([]models.Review, error) {
	return s.store.Reviews(ctx)
}

// AddReview accepts a feedback form submission. The id and date are
// assigned here, the entry starts as "new" and is prepended.
func (s *ReviewService) AddReview(ctx context.Context, review models.Review) (models.Review, error) {
	if review.Name == "" || review.Message == "" {
		return models.Review{}, ErrMissingFields
	}
	if review.Type != models.FeedbackComplaint {
		review.Type = models.FeedbackReview
	}
	if review.Rating < 1 || review.Rating > 5 {
		return models.Review{}, fmt.Errorf("%w: rating must be 1-5", ErrMissingFields)
	}

	now := s.now()
	review.ID = fmt.Sprintf("rev-%d", now.UnixMilli())
	review.Date = now.UTC().Format(time.RFC3339)
	review.Status = models.ReviewNew

	reviews, err := s.store.Reviews(ctx)
	if err != nil {
		return models.Review{}, fmt.Errorf("failed to load reviews: %w", err)
	}

	// Two submissions inside one millisecond would collide; fall back
	// to a uuid in that case.
	for _, existing := range reviews {
		if existing.ID == review.ID {
			review.ID = "rev-" + uuid.NewString()
			break
		}
	}

	reviews = append([]models.Review{review}, reviews...)
	if err := s.store.SaveReviews(ctx, reviews); err != nil {
		return models.Review{}, fmt.Errorf("failed to save reviews: %w", err)
	}

	slog.Info("Feedback received", "review_id", review.ID, "type", review.Type, "rating", review.Rating)
	return review, nil
}

// Resolve marks the identified entry resolved.
func (s *ReviewService) Resolve(ctx context.Context, id string) (models.Review, error) {
	reviews, err := s.store.Reviews(ctx)
	if err != nil {
		return models.Review{}, fmt.Errorf("failed to load reviews: %w", err)
	}

	for i := range reviews {
		if reviews[i].ID != id {
			continue
		}
		reviews[i].Status = models.ReviewResolved
		if err := s.store.SaveReviews(ctx, reviews); err != nil {
			return models.Review{}, fmt.Errorf("failed to save reviews: %w", err)
		}
		return reviews[i], nil
	}
	return models.Review{}, fmt.Errorf("review %s: %w", id, ErrNotFound)
}

// Delete removes the identified entry from the backing store.
func (s *ReviewService) Delete(ctx context.Context, id string) error {
	reviews, err := s.store.Reviews(ctx)
	if err != nil {
		return fmt.Errorf("failed to load reviews: %w", err)
	}

	filtered := reviews[:0:0]
	for _, review := range reviews {
		if review.ID != id {
			filtered = append(filtered, review)
		}
	}
	if len(filtered) == len(reviews) {
		return fmt.Errorf("review %s: %w", id, ErrNotFound)
	}
	if err := s.store.SaveReviews(ctx, filtered); err != nil {
		return fmt.Errorf("failed to save reviews: %w", err)
	}
	slog.Info("Review deleted", "review_id", id)
	return nil
}
