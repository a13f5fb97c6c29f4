package catalog

import (
	"context"
	"slices"

	"github.com/Temutjin2k/car-rental-system/internal/domain/models"
	rentcalc "github.com/Temutjin2k/car-rental-system/internal/service/calculator"
	"github.com/Temutjin2k/car-rental-system/internal/service/filter"
	"github.com/Temutjin2k/car-rental-system/pkg/logger"
)

// CatalogService answers every car-inventory question a screen asks.
// There is no cache: each call goes to the rental API.
type CatalogService struct {
	api  CarAPI
	calc rentcalc.Calculator
	l    logger.Logger
}

func NewCatalogService(api CarAPI, calc rentcalc.Calculator, l logger.Logger) *CatalogService {
	return &CatalogService{
		api:  api,
		calc: calc,
		l:    l,
	}
}

func (s *CatalogService) ListAll(ctx context.Context, token string) ([]models.Car, error) {
	return s.api.GetAllCars(ctx, token)
}

func (s *CatalogService) GetByPlate(ctx context.Context, token, licensePlate string) (*models.Car, error) {
	return s.api.GetCarByLicensePlate(ctx, token, licensePlate)
}

// Search issues the two-field combination query built by the dashboard
// filter state machine.
func (s *CatalogService) Search(ctx context.Context, token string, q filter.Query) ([]models.Car, error) {
	return s.api.FilterCars(ctx, token, q)
}

// Dropdowns computes the distinct values of every searchable attribute
// from the full car list.
func (s *CatalogService) Dropdowns(cars []models.Car) models.DropdownData {
	d := models.DropdownData{}
	for _, car := range cars {
		d.Makes = appendUnique(d.Makes, car.Make)
		d.Models = appendUnique(d.Models, car.Model)
		d.Colours = appendUnique(d.Colours, car.Colour)
		d.Prices = appendUnique(d.Prices, car.PricePerDay)
		d.Seats = appendUnique(d.Seats, car.TotalSeats)
		d.AvailableDates = appendUnique(d.AvailableDates, car.AvailableDate)
	}
	return d
}

// Stats builds the dashboard summary block.
func (s *CatalogService) Stats(cars []models.Car) models.CatalogStats {
	rented, available := s.calc.AvailabilitySplit(cars)

	var cities, brands []string
	for _, car := range cars {
		cities = appendUnique(cities, car.City)
		brands = appendUnique(brands, car.Make)
	}

	return models.CatalogStats{
		TotalCars:   len(cars),
		TotalCities: len(cities),
		TotalBrands: len(brands),
		Rented:      rented,
		Available:   available,
	}
}

// SearchSubstring filters an already-fetched car list by the
// case-insensitive substring match used on the admin screens.
func (s *CatalogService) SearchSubstring(cars []models.Car, query string) []models.Car {
	return filter.Search(cars, query)
}

func appendUnique[T comparable](list []T, v T) []T {
	var zero T
	if v == zero || slices.Contains(list, v) {
		return list
	}
	return append(list, v)
}
