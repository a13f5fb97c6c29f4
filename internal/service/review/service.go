package review

import (
	"context"
	"strings"

	"github.com/Temutjin2k/car-rental-system/internal/domain/models"
	"github.com/Temutjin2k/car-rental-system/internal/domain/types"
	"github.com/Temutjin2k/car-rental-system/pkg/logger"
	"github.com/Temutjin2k/car-rental-system/pkg/metrics"
)

type ReviewAPI interface {
	GiveReview(ctx context.Context, token string, review models.Review) error
	GetAllReviews(ctx context.Context, token string) ([]models.Review, error)
}

type ReviewService struct {
	api ReviewAPI
	l   logger.Logger
}

func NewReviewService(api ReviewAPI, l logger.Logger) *ReviewService {
	return &ReviewService{
		api: api,
		l:   l,
	}
}

// Submit sends a review. Ratings outside 1..5 never reach the network.
func (s *ReviewService) Submit(ctx context.Context, sess *models.Session, review models.Review) error {
	if sess.IsAnonymous() {
		return types.ErrNotLoggedIn
	}
	if review.Rating < 1 || review.Rating > 5 {
		return types.ErrInvalidRating
	}
	if strings.TrimSpace(review.ReviewText) == "" {
		return types.ErrEmptyReviewText
	}

	review.Email = sess.Email
	err := s.api.GiveReview(ctx, sess.Token, review)

	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	metrics.ReviewsSubmitted.WithLabelValues("car-rental-web", outcome).Inc()

	return err
}

// All fetches every review. Bearer required by the remote API.
func (s *ReviewService) All(ctx context.Context, sess *models.Session) ([]models.Review, error) {
	if sess.IsAnonymous() {
		return nil, types.ErrNotLoggedIn
	}
	return s.api.GetAllReviews(ctx, sess.Token)
}
