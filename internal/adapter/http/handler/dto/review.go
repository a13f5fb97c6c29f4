package dto

import (
	"strings"

	"github.com/Temutjin2k/car-rental-system/internal/domain/models"
	"github.com/Temutjin2k/car-rental-system/pkg/validator"
)

// ReviewRequest submits a review for a car. The email is taken from the
// session.
type ReviewRequest struct {
	LicensePlate string `json:"licensePlate"`
	ReviewText   string `json:"reviewText"`
	Rating       int    `json:"rating"`
}

func (r *ReviewRequest) ToModel(email string) models.Review {
	return models.Review{
		Email:        email,
		LicensePlate: r.LicensePlate,
		ReviewText:   strings.TrimSpace(r.ReviewText),
		Rating:       r.Rating,
	}
}

func ValidateReview(v *validator.Validator, req *ReviewRequest) {
	v.Check(req.LicensePlate != "", "licensePlate", "must be provided")
	v.Check(strings.TrimSpace(req.ReviewText) != "", "reviewText", "must be provided")
	v.Check(len(req.ReviewText) <= 2000, "reviewText", "must not be more than 2000 bytes long")
	v.Check(req.Rating >= 1 && req.Rating <= 5, "rating", "must be between 1 and 5")
}
