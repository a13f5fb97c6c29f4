package dto

import (
	"time"

	"github.com/Temutjin2k/car-rental-system/internal/domain/models"
	"github.com/Temutjin2k/car-rental-system/pkg/validator"
)

const dateLayout = "2006-01-02"

// QuoteRequest asks for the day count and total of a date range.
type QuoteRequest struct {
	PickUpDate  string  `json:"pickUpDate"`
	DropOffDate string  `json:"dropOffDate"`
	PricePerDay float64 `json:"pricePerDay"`
}

// ReserveRequest submits a reservation. The email is taken from the
// session, never from the request body.
type ReserveRequest struct {
	LicensePlate string `json:"licensePlate"`
	PickUpDate   string `json:"pickUpDate"`
	DropOffDate  string `json:"dropOffDate"`
}

func (r *ReserveRequest) ToModel(email string) models.ReservationRequest {
	return models.ReservationRequest{
		Email:        email,
		LicensePlate: r.LicensePlate,
		PickUpDate:   r.PickUpDate,
		DropOffDate:  r.DropOffDate,
	}
}

// CancelRequest cancels the reservation of one car for the session user.
type CancelRequest struct {
	LicensePlate string `json:"licensePlate"`
}

func ValidateQuote(v *validator.Validator, req *QuoteRequest) {
	validateDate(v, "pickUpDate", req.PickUpDate)
	validateDate(v, "dropOffDate", req.DropOffDate)
	v.Check(req.PricePerDay > 0, "pricePerDay", "must be greater than zero")
}

func ValidateReserve(v *validator.Validator, req *ReserveRequest) {
	v.Check(req.LicensePlate != "", "licensePlate", "must be provided")
	validateDate(v, "pickUpDate", req.PickUpDate)
	validateDate(v, "dropOffDate", req.DropOffDate)
}

func ValidateCancel(v *validator.Validator, req *CancelRequest) {
	v.Check(req.LicensePlate != "", "licensePlate", "must be provided")
}

func validateDate(v *validator.Validator, key, value string) {
	if value == "" {
		v.AddError(key, "must be provided")
		return
	}
	if _, err := time.Parse(dateLayout, value); err != nil {
		v.AddError(key, "must be a date in YYYY-MM-DD format")
	}
}
