package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Temutjin2k/car-rental-system/internal/domain/models"
	rentcalc "github.com/Temutjin2k/car-rental-system/internal/service/calculator"
	"github.com/Temutjin2k/car-rental-system/pkg/logger"
)

func testService() *CatalogService {
	return NewCatalogService(nil, rentcalc.New(), logger.InitLogger("test", logger.LevelError))
}

func TestStats(t *testing.T) {
	s := testService()

	cars := []models.Car{
		{LicensePlate: "A1", Make: "Honda", City: "Indore", AvailableStatus: false},
		{LicensePlate: "B2", Make: "Honda", City: "Mumbai", AvailableStatus: false},
		{LicensePlate: "C3", Make: "Toyota", City: "Indore", AvailableStatus: true},
	}

	stats := s.Stats(cars)
	assert.Equal(t, 3, stats.TotalCars)
	assert.Equal(t, 2, stats.TotalCities)
	assert.Equal(t, 2, stats.TotalBrands)
	assert.Equal(t, 2, stats.Rented)
	assert.Equal(t, 1, stats.Available)
}

func TestDropdowns_Deduplicates(t *testing.T) {
	s := testService()

	cars := []models.Car{
		{Make: "Honda", Model: "City", Colour: "White", PricePerDay: 1500, TotalSeats: 5, AvailableDate: "2024-12-18"},
		{Make: "Honda", Model: "Civic", Colour: "White", PricePerDay: 2000, TotalSeats: 5, AvailableDate: "2024-12-20"},
	}

	d := s.Dropdowns(cars)
	assert.Equal(t, []string{"Honda"}, d.Makes)
	assert.Equal(t, []string{"City", "Civic"}, d.Models)
	assert.Equal(t, []string{"White"}, d.Colours)
	assert.Equal(t, []float64{1500, 2000}, d.Prices)
	assert.Equal(t, []int{5}, d.Seats)
	assert.Equal(t, []string{"2024-12-18", "2024-12-20"}, d.AvailableDates)
}

func TestSearchSubstring(t *testing.T) {
	s := testService()

	cars := []models.Car{
		{LicensePlate: "MP09CP7235", Make: "Honda", City: "Indore"},
		{LicensePlate: "MH12AB1234", Make: "Toyota", City: "Mumbai"},
	}

	got := s.SearchSubstring(cars, "indore")
	assert.Len(t, got, 1)
	assert.Equal(t, "MP09CP7235", got[0].LicensePlate)
}
