package rentalapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Temutjin2k/car-rental-system/internal/domain/models"
	"github.com/Temutjin2k/car-rental-system/internal/domain/types"
	wrap "github.com/Temutjin2k/car-rental-system/pkg/logger/wrapper"
)

// GiveReview submits a review for a car the user rented. Email and plate
// travel as query parameters, the text and rating as the JSON body.
func (c *Client) GiveReview(ctx context.Context, token string, review models.Review) error {
	ctx = wrap.WithUserEmail(wrap.WithLicensePlate(ctx, review.LicensePlate), review.Email)

	params := url.Values{}
	params.Set("email", review.Email)
	params.Set("licensePlate", review.LicensePlate)

	payload := struct {
		ReviewText string `json:"reviewText"`
		Rating     int    `json:"rating"`
	}{
		ReviewText: review.ReviewText,
		Rating:     review.Rating,
	}

	raw, err := c.postJSON(ctx, "give_review", "/api/Review/give-review", params, token, payload)
	if err != nil {
		return err
	}

	if msg := businessMessage(raw); msg != "" && !isSuccessMessage(msg) {
		return wrap.Error(ctx, &types.RequestError{Status: http.StatusOK, Message: msg})
	}

	return nil
}

// GetAllReviews fetches every review. Bearer required.
func (c *Client) GetAllReviews(ctx context.Context, token string) ([]models.Review, error) {
	var reviews []models.Review
	if err := c.getJSON(ctx, "get_all_reviews", "/api/Review/get-all-Reviews", nil, token, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
