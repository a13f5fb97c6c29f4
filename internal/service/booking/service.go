package booking

import (
	"context"
	"time"

	"github.com/Temutjin2k/car-rental-system/internal/domain/models"
	"github.com/Temutjin2k/car-rental-system/internal/domain/types"
	rentcalc "github.com/Temutjin2k/car-rental-system/internal/service/calculator"
	"github.com/Temutjin2k/car-rental-system/internal/service/filter"
	"github.com/Temutjin2k/car-rental-system/pkg/logger"
	wrap "github.com/Temutjin2k/car-rental-system/pkg/logger/wrapper"
	"github.com/Temutjin2k/car-rental-system/pkg/metrics"
)

// DateLayout is the wire format for reservation dates.
const DateLayout = "2006-01-02"

type BookingService struct {
	api  ReservationAPI
	calc rentcalc.Calculator
	l    logger.Logger
}

func NewBookingService(api ReservationAPI, calc rentcalc.Calculator, l logger.Logger) *BookingService {
	return &BookingService{
		api:  api,
		calc: calc,
		l:    l,
	}
}

// Quote computes the day count and total for a rental period before
// submission. The drop-off must be strictly after the pick-up.
func (s *BookingService) Quote(pickUpDate, dropOffDate string, pricePerDay float64) (models.Quote, error) {
	pickUp, err := time.Parse(DateLayout, pickUpDate)
	if err != nil {
		return models.Quote{}, types.ErrInvalidDateRange
	}
	dropOff, err := time.Parse(DateLayout, dropOffDate)
	if err != nil {
		return models.Quote{}, types.ErrInvalidDateRange
	}
	if !dropOff.After(pickUp) {
		return models.Quote{}, types.ErrInvalidDateRange
	}

	return s.calc.Quote(pickUp, dropOff, pricePerDay), nil
}

// Reserve submits the reservation for the logged-in user. The session
// precondition is checked before any network call is attempted.
func (s *BookingService) Reserve(ctx context.Context, sess *models.Session, req models.ReservationRequest) error {
	if sess.IsAnonymous() {
		return types.ErrNotLoggedIn
	}

	if _, err := s.Quote(req.PickUpDate, req.DropOffDate, 0); err != nil {
		return err
	}

	req.Email = sess.Email
	err := s.api.Reserve(ctx, sess.Token, req)

	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	metrics.ReservationsSubmitted.WithLabelValues("car-rental-web", outcome).Inc()

	if err != nil {
		s.l.Error(wrap.ErrorCtx(ctx, err), "reservation submission failed", err)
		return err
	}

	return nil
}

// Cancel transitions the user's reservation to Cancelled.
func (s *BookingService) Cancel(ctx context.Context, sess *models.Session, licensePlate string) error {
	if sess.IsAnonymous() {
		return types.ErrNotLoggedIn
	}
	return s.api.Cancel(ctx, sess.Token, sess.Email, licensePlate)
}

// History fetches the logged-in user's reservation history.
func (s *BookingService) History(ctx context.Context, sess *models.Session) ([]models.Reservation, error) {
	if sess.IsAnonymous() {
		return nil, types.ErrNotLoggedIn
	}
	return s.api.GetReservationHistory(ctx, sess.Token, sess.Email)
}

// All fetches every reservation record. Admin screens only.
func (s *BookingService) All(ctx context.Context, sess *models.Session) ([]models.Reservation, error) {
	if sess.IsAnonymous() {
		return nil, types.ErrNotLoggedIn
	}
	return s.api.GetAllReservations(ctx, sess.Token)
}

// SearchSubstring filters an already-fetched reservation list by the
// case-insensitive substring match across every field.
func (s *BookingService) SearchSubstring(reservations []models.Reservation, query string) []models.Reservation {
	return filter.Search(reservations, query)
}
