package rentalapi

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/Temutjin2k/car-rental-system/internal/domain/models"
	"github.com/Temutjin2k/car-rental-system/internal/domain/types"
	wrap "github.com/Temutjin2k/car-rental-system/pkg/logger/wrapper"
)

// Reserve submits a reservation. A 2xx payload carrying a business
// failure message (e.g. "Car not available") is reported as
// types.ErrCarNotAvailable, never as success.
func (c *Client) Reserve(ctx context.Context, token string, req models.ReservationRequest) error {
	ctx = wrap.WithUserEmail(wrap.WithLicensePlate(ctx, req.LicensePlate), req.Email)

	raw, err := c.postJSON(ctx, "reserve_car", "/api/Reservation/reserve-car", nil, token, req)
	if err != nil {
		return err
	}

	if msg := businessMessage(raw); msg != "" && !isSuccessMessage(msg) {
		if strings.Contains(strings.ToLower(msg), "not available") {
			return wrap.Error(ctx, types.ErrCarNotAvailable)
		}
		return wrap.Error(ctx, &types.RequestError{Status: http.StatusOK, Message: msg})
	}

	return nil
}

// Cancel transitions a reservation to Cancelled.
func (c *Client) Cancel(ctx context.Context, token, email, licensePlate string) error {
	ctx = wrap.WithUserEmail(wrap.WithLicensePlate(ctx, licensePlate), email)

	params := url.Values{}
	params.Set("email", email)
	params.Set("licensePlate", licensePlate)

	raw, err := c.postJSON(ctx, "cancel_reservation", "/api/Reservation/Cancel", params, token, struct{}{})
	if err != nil {
		return err
	}

	if msg := businessMessage(raw); msg != "" && !isSuccessMessage(msg) {
		return wrap.Error(ctx, &types.RequestError{Status: http.StatusOK, Message: msg})
	}

	return nil
}

// GetReservationHistory fetches the reservation history of one user.
func (c *Client) GetReservationHistory(ctx context.Context, token, email string) ([]models.Reservation, error) {
	ctx = wrap.WithUserEmail(ctx, email)

	params := url.Values{}
	params.Set("email", email)

	var reservations []models.Reservation
	if err := c.getJSON(ctx, "get_reservation_history", "/api/Reservation/get-reservation-history-of-user", params, token, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

// GetAllReservations fetches every reservation record. Admin only.
func (c *Client) GetAllReservations(ctx context.Context, token string) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := c.getJSON(ctx, "get_all_reservations", "/api/Reservation/get-all-reservation-details", nil, token, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

func isSuccessMessage(msg string) bool {
	return strings.Contains(strings.ToLower(msg), "success")
}
