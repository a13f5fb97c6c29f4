package rentalapi

import (
	"context"
	"net/url"

	"github.com/Temutjin2k/car-rental-system/internal/domain/models"
	"github.com/Temutjin2k/car-rental-system/internal/service/filter"
	wrap "github.com/Temutjin2k/car-rental-system/pkg/logger/wrapper"
)

// GetAllCars fetches the full car inventory.
func (c *Client) GetAllCars(ctx context.Context, token string) ([]models.Car, error) {
	var cars []models.Car
	if err := c.getJSON(ctx, "get_all_cars", "/api/Car/get-all-cars", nil, token, &cars); err != nil {
		return nil, err
	}
	return cars, nil
}

// GetCarByLicensePlate fetches a single car by its unique key.
func (c *Client) GetCarByLicensePlate(ctx context.Context, token, licensePlate string) (*models.Car, error) {
	ctx = wrap.WithLicensePlate(ctx, licensePlate)

	params := url.Values{}
	params.Set("licensePlate", licensePlate)

	var car models.Car
	if err := c.getJSON(ctx, "get_car_by_license_plate", "/api/Car/get-car-by-license-plate", params, token, &car); err != nil {
		return nil, err
	}
	return &car, nil
}

// FilterCars queries the two-field combination endpoint described by q.
func (c *Client) FilterCars(ctx context.Context, token string, q filter.Query) ([]models.Car, error) {
	var cars []models.Car
	path := "/api/CarFilter/" + q.Path()
	if err := c.getJSON(ctx, "filter_cars", path, q.Params(), token, &cars); err != nil {
		return nil, err
	}
	return cars, nil
}
