package rentcalc

import (
	"testing"
	"time"

	"github.com/Temutjin2k/car-rental-system/internal/domain/models"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDaysBetween_WholeDays(t *testing.T) {
	c := New()

	got := c.DaysBetween(date("2024-03-01"), date("2024-03-03"))
	if got != 2 {
		t.Fatalf("expected 2 days, got %d", got)
	}
}

func TestDaysBetween_PartialDayRoundsUp(t *testing.T) {
	c := New()

	pickUp := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	dropOff := time.Date(2024, 3, 3, 18, 0, 0, 0, time.UTC)

	// 2 days and 8 hours counts as 3 full days
	if got := c.DaysBetween(pickUp, dropOff); got != 3 {
		t.Fatalf("expected 3 days, got %d", got)
	}
}

func TestDaysBetween_SameDate(t *testing.T) {
	c := New()

	if got := c.DaysBetween(date("2024-03-01"), date("2024-03-01")); got != 0 {
		t.Fatalf("expected 0 days, got %d", got)
	}
}

func TestDaysBetween_ReversedIsAbsolute(t *testing.T) {
	c := New()

	if got := c.DaysBetween(date("2024-03-03"), date("2024-03-01")); got != 2 {
		t.Fatalf("expected 2 days, got %d", got)
	}
}

func TestTotalPrice_Linear(t *testing.T) {
	c := New()

	if got := c.TotalPrice(2, 100); got != 200 {
		t.Fatalf("expected 200, got %v", got)
	}
	if got := c.TotalPrice(0, 100); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestQuote(t *testing.T) {
	c := New()

	q := c.Quote(date("2024-03-01"), date("2024-03-03"), 150)
	if q.Days != 2 {
		t.Fatalf("expected 2 days, got %d", q.Days)
	}
	if q.Total != 300 {
		t.Fatalf("expected total 300, got %v", q.Total)
	}
}

func TestAvailabilitySplit(t *testing.T) {
	c := New()

	cars := []models.Car{
		{LicensePlate: "MP09CP7235", AvailableStatus: false},
		{LicensePlate: "MH12AB1234", AvailableStatus: false},
		{LicensePlate: "DL10XYZ9876", AvailableStatus: true},
	}

	rented, available := c.AvailabilitySplit(cars)
	if rented != 2 || available != 1 {
		t.Fatalf("expected split {rented: 2, available: 1}, got {%d, %d}", rented, available)
	}
}
