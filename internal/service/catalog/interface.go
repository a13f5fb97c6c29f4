package catalog

import (
	"context"

	"github.com/Temutjin2k/car-rental-system/internal/domain/models"
	"github.com/Temutjin2k/car-rental-system/internal/service/filter"
)

type CarAPI interface {
	GetAllCars(ctx context.Context, token string) ([]models.Car, error)
	GetCarByLicensePlate(ctx context.Context, token, licensePlate string) (*models.Car, error)
	FilterCars(ctx context.Context, token string, q filter.Query) ([]models.Car, error)
}
