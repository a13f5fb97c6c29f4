package rentcalc

import (
	"math"
	"time"

	"github.com/Temutjin2k/car-rental-system/internal/domain/models"
)

const hoursPerDay = 24

type Calculator interface {
	DaysBetween(pickUp, dropOff time.Time) int
	TotalPrice(days int, pricePerDay float64) float64
	Quote(pickUp, dropOff time.Time, pricePerDay float64) models.Quote
	AvailabilitySplit(cars []models.Car) (rented, available int)
}

type CalculatorImpl struct{}

func New() *CalculatorImpl {
	return &CalculatorImpl{}
}

// DaysBetween returns the absolute difference between the two dates in
// calendar days, rounded up. Any partial day counts as a full day.
func (c *CalculatorImpl) DaysBetween(pickUp, dropOff time.Time) int {
	diff := dropOff.Sub(pickUp).Hours() / hoursPerDay
	return int(math.Ceil(math.Abs(diff)))
}

// TotalPrice is linear: days * pricePerDay. No proration, no discounts,
// no minimum-stay rule.
func (c *CalculatorImpl) TotalPrice(days int, pricePerDay float64) float64 {
	return float64(days) * pricePerDay
}

// Quote combines the day count and the total for a rental period.
func (c *CalculatorImpl) Quote(pickUp, dropOff time.Time, pricePerDay float64) models.Quote {
	days := c.DaysBetween(pickUp, dropOff)
	return models.Quote{
		Days:        days,
		PricePerDay: pricePerDay,
		Total:       c.TotalPrice(days, pricePerDay),
	}
}

// AvailabilitySplit counts cars that are currently rented (not available)
// against the rest. Used by the dashboard summary.
func (c *CalculatorImpl) AvailabilitySplit(cars []models.Car) (rented, available int) {
	for _, car := range cars {
		if !car.AvailableStatus {
			rented++
		}
	}
	return rented, len(cars) - rented
}
