package booking

import (
	"context"

	"github.com/Temutjin2k/car-rental-system/internal/domain/models"
)

type ReservationAPI interface {
	Reserve(ctx context.Context, token string, req models.ReservationRequest) error
	Cancel(ctx context.Context, token, email, licensePlate string) error
	GetReservationHistory(ctx context.Context, token, email string) ([]models.Reservation, error)
	GetAllReservations(ctx context.Context, token string) ([]models.Reservation, error)
}
