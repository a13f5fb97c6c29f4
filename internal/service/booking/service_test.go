package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/car-rental-system/internal/domain/models"
	"github.com/Temutjin2k/car-rental-system/internal/domain/types"
	rentcalc "github.com/Temutjin2k/car-rental-system/internal/service/calculator"
	"github.com/Temutjin2k/car-rental-system/pkg/logger"
)

type stubAPI struct {
	reserved  []models.ReservationRequest
	cancelled []string
	reserveErr error
	history   []models.Reservation
}

func (s *stubAPI) Reserve(ctx context.Context, token string, req models.ReservationRequest) error {
	if s.reserveErr != nil {
		return s.reserveErr
	}
	s.reserved = append(s.reserved, req)
	return nil
}

func (s *stubAPI) Cancel(ctx context.Context, token, email, licensePlate string) error {
	s.cancelled = append(s.cancelled, licensePlate)
	return nil
}

func (s *stubAPI) GetReservationHistory(ctx context.Context, token, email string) ([]models.Reservation, error) {
	return s.history, nil
}

func (s *stubAPI) GetAllReservations(ctx context.Context, token string) ([]models.Reservation, error) {
	return s.history, nil
}

func newService(api ReservationAPI) *BookingService {
	return NewBookingService(api, rentcalc.New(), logger.InitLogger("test", logger.LevelError))
}

func userSession() *models.Session {
	return &models.Session{Token: "tok123", Email: "john@example.com", Roles: []string{"User"}}
}

func TestQuote(t *testing.T) {
	s := newService(&stubAPI{})

	q, err := s.Quote("2024-03-01", "2024-03-03", 100)
	require.NoError(t, err)
	assert.Equal(t, 2, q.Days)
	assert.Equal(t, float64(200), q.Total)
}

func TestQuote_RejectsDropOffNotAfterPickUp(t *testing.T) {
	s := newService(&stubAPI{})

	_, err := s.Quote("2024-03-03", "2024-03-01", 100)
	assert.ErrorIs(t, err, types.ErrInvalidDateRange)

	_, err = s.Quote("2024-03-01", "2024-03-01", 100)
	assert.ErrorIs(t, err, types.ErrInvalidDateRange)
}

func TestQuote_RejectsMalformedDates(t *testing.T) {
	s := newService(&stubAPI{})

	_, err := s.Quote("01/03/2024", "2024-03-03", 100)
	assert.ErrorIs(t, err, types.ErrInvalidDateRange)
}

func TestReserve_SetsSessionEmail(t *testing.T) {
	api := &stubAPI{}
	s := newService(api)

	err := s.Reserve(context.Background(), userSession(), models.ReservationRequest{
		LicensePlate: "MP09CP7235",
		PickUpDate:   "2024-12-18",
		DropOffDate:  "2024-12-19",
	})
	require.NoError(t, err)
	require.Len(t, api.reserved, 1)
	assert.Equal(t, "john@example.com", api.reserved[0].Email)
}

func TestReserve_AnonymousShortCircuits(t *testing.T) {
	api := &stubAPI{}
	s := newService(api)

	err := s.Reserve(context.Background(), models.AnonymousSession(), models.ReservationRequest{
		LicensePlate: "MP09CP7235",
		PickUpDate:   "2024-12-18",
		DropOffDate:  "2024-12-19",
	})
	assert.ErrorIs(t, err, types.ErrNotLoggedIn)
	assert.Empty(t, api.reserved, "no network call may be attempted without a session")
}

func TestReserve_BusinessFailurePassesThrough(t *testing.T) {
	api := &stubAPI{reserveErr: types.ErrCarNotAvailable}
	s := newService(api)

	err := s.Reserve(context.Background(), userSession(), models.ReservationRequest{
		LicensePlate: "MP09CP7235",
		PickUpDate:   "2024-12-18",
		DropOffDate:  "2024-12-19",
	})
	assert.ErrorIs(t, err, types.ErrCarNotAvailable)
}

func TestCancel(t *testing.T) {
	api := &stubAPI{}
	s := newService(api)

	require.NoError(t, s.Cancel(context.Background(), userSession(), "MP09CP7235"))
	assert.Equal(t, []string{"MP09CP7235"}, api.cancelled)
}

func TestSearchSubstring_CaseInsensitive(t *testing.T) {
	s := newService(&stubAPI{})

	rs := []models.Reservation{
		{CarMake: "Honda", CarModel: "City", City: "Indore"},
		{CarMake: "Toyota", CarModel: "Corolla", City: "Mumbai"},
	}

	got := s.SearchSubstring(rs, "COROLLA")
	require.Len(t, got, 1)
	assert.Equal(t, "Toyota", got[0].CarMake)
}
