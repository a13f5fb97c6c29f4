package models

import (
	"github.com/Temutjin2k/car-rental-system/internal/domain/types"
)

// Reservation mirrors the rental API reservation record.
type Reservation struct {
	UserEmail         string                  `json:"userEmail"`
	LicensePlate      string                  `json:"licensePlate"`
	PickUpDate        string                  `json:"pickUpDate"`
	DropOffDate       string                  `json:"dropOffDate"`
	ReservationStatus types.ReservationStatus `json:"reservationStatus"`
	TotalAmount       float64                 `json:"totalAmount"`
	CarMake           string                  `json:"carMake"`
	CarModel          string                  `json:"carModel"`
	Colour            string                  `json:"colour,omitempty"`
	ModelYear         int                     `json:"modelYear,omitempty"`
	TotalSeats        int                     `json:"totalSeats,omitempty"`
	ImageURL          string                  `json:"imageUrl,omitempty"`
	City              string                  `json:"city"`
	Address           string                  `json:"address,omitempty"`
	State             string                  `json:"state"`
	Country           string                  `json:"country,omitempty"`
	ZipCode           string                  `json:"zipCode,omitempty"`
}

// IsCancelled reports whether the reservation has already been cancelled.
func (r *Reservation) IsCancelled() bool {
	return r.ReservationStatus == types.StatusCancelled
}

// StatusClass returns the display class for the reservation status badge.
func (r *Reservation) StatusClass() string {
	switch r.ReservationStatus {
	case types.StatusConfirmed:
		return "status-confirmed"
	case types.StatusPending:
		return "status-pending"
	case types.StatusCancelled:
		return "status-cancelled"
	default:
		return "status-unknown"
	}
}

// ReservationRequest is the payload submitted to reserve a car.
type ReservationRequest struct {
	Email        string `json:"email"`
	LicensePlate string `json:"licensePlate"`
	PickUpDate   string `json:"pickUpDate"`
	DropOffDate  string `json:"dropOffDate"`
}

// Quote is the locally computed day count and total before submission.
type Quote struct {
	Days        int     `json:"days"`
	PricePerDay float64 `json:"price_per_day"`
	Total       float64 `json:"total"`
}
