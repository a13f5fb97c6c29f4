package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/car-rental-system/internal/domain/models"
	"github.com/Temutjin2k/car-rental-system/internal/domain/types"
	"github.com/Temutjin2k/car-rental-system/internal/service/filter"
	"github.com/Temutjin2k/car-rental-system/pkg/logger"
)

type stubCatalog struct {
	searched filter.Query
	cars     []models.Car
}

func (s *stubCatalog) ListAll(ctx context.Context, token string) ([]models.Car, error) {
	return s.cars, nil
}

func (s *stubCatalog) GetByPlate(ctx context.Context, token, licensePlate string) (*models.Car, error) {
	return nil, types.ErrCarNotFound
}

func (s *stubCatalog) Search(ctx context.Context, token string, q filter.Query) ([]models.Car, error) {
	s.searched = q
	return s.cars, nil
}

func (s *stubCatalog) Dropdowns(cars []models.Car) models.DropdownData { return models.DropdownData{} }
func (s *stubCatalog) Stats(cars []models.Car) models.CatalogStats     { return models.CatalogStats{} }
func (s *stubCatalog) SearchSubstring(cars []models.Car, query string) []models.Car {
	return cars
}

type stubBooking struct {
	reserved   []models.ReservationRequest
	reserveErr error
}

func (s *stubBooking) Quote(pickUpDate, dropOffDate string, pricePerDay float64) (models.Quote, error) {
	if dropOffDate <= pickUpDate {
		return models.Quote{}, types.ErrInvalidDateRange
	}
	return models.Quote{Days: 2, PricePerDay: pricePerDay, Total: 2 * pricePerDay}, nil
}

func (s *stubBooking) Reserve(ctx context.Context, sess *models.Session, req models.ReservationRequest) error {
	if s.reserveErr != nil {
		return s.reserveErr
	}
	s.reserved = append(s.reserved, req)
	return nil
}

func (s *stubBooking) Cancel(ctx context.Context, sess *models.Session, licensePlate string) error {
	return nil
}

func (s *stubBooking) History(ctx context.Context, sess *models.Session) ([]models.Reservation, error) {
	return nil, nil
}

func (s *stubBooking) All(ctx context.Context, sess *models.Session) ([]models.Reservation, error) {
	return nil, nil
}

func (s *stubBooking) SearchSubstring(reservations []models.Reservation, query string) []models.Reservation {
	return reservations
}

type stubReviews struct {
	submitted []models.Review
}

func (s *stubReviews) Submit(ctx context.Context, sess *models.Session, review models.Review) error {
	s.submitted = append(s.submitted, review)
	return nil
}

func (s *stubReviews) All(ctx context.Context, sess *models.Session) ([]models.Review, error) {
	return s.submitted, nil
}

func newTestAPI(catalog *stubCatalog, booking *stubBooking, reviews *stubReviews) *API {
	return NewAPI(catalog, booking, reviews, logger.InitLogger("test", logger.LevelError))
}

func doJSON(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()

	r := httptest.NewRequest(http.MethodPost, "/api/test", strings.NewReader(body))
	r = r.WithContext(models.WithSession(r.Context(), &models.Session{Token: "tok", Email: "jane@example.com"}))
	rec := httptest.NewRecorder()
	h(rec, r)
	return rec
}

func TestSearch(t *testing.T) {
	catalog := &stubCatalog{cars: []models.Car{{LicensePlate: "KZ111"}}}
	api := newTestAPI(catalog, &stubBooking{}, &stubReviews{})

	rec := doJSON(t, api.Search, `{"filters":[{"field":"make","value":"Toyota"},{"field":"city","value":"Almaty"}]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "get-cars-by-make-and-city", catalog.searched.Path())
	assert.Contains(t, rec.Body.String(), "KZ111")
}

func TestSearch_RequiresTwoActiveFields(t *testing.T) {
	api := newTestAPI(&stubCatalog{}, &stubBooking{}, &stubReviews{})

	rec := doJSON(t, api.Search, `{"filters":[{"field":"make","value":"Toyota"}]}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "exactly two filter fields")
}

func TestSearch_IgnoresThirdField(t *testing.T) {
	catalog := &stubCatalog{}
	api := newTestAPI(catalog, &stubBooking{}, &stubReviews{})

	rec := doJSON(t, api.Search,
		`{"filters":[{"field":"make","value":"Toyota"},{"field":"city","value":"Almaty"},{"field":"colour","value":"Red"}]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "get-cars-by-make-and-city", catalog.searched.Path())
}

func TestQuote(t *testing.T) {
	api := newTestAPI(&stubCatalog{}, &stubBooking{}, &stubReviews{})

	rec := doJSON(t, api.Quote, `{"pickUpDate":"2026-03-01","dropOffDate":"2026-03-03","pricePerDay":50}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total": 100`)
}

func TestQuote_RejectsInvertedRange(t *testing.T) {
	api := newTestAPI(&stubCatalog{}, &stubBooking{}, &stubReviews{})

	rec := doJSON(t, api.Quote, `{"pickUpDate":"2026-03-03","dropOffDate":"2026-03-01","pricePerDay":50}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestReserve(t *testing.T) {
	booking := &stubBooking{}
	api := newTestAPI(&stubCatalog{}, booking, &stubReviews{})

	rec := doJSON(t, api.Reserve, `{"licensePlate":"KZ111","pickUpDate":"2026-03-01","dropOffDate":"2026-03-03"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, booking.reserved, 1)
	assert.Equal(t, "jane@example.com", booking.reserved[0].Email, "email comes from the session")
}

func TestReserve_CarNotAvailable(t *testing.T) {
	booking := &stubBooking{reserveErr: types.ErrCarNotAvailable}
	api := newTestAPI(&stubCatalog{}, booking, &stubReviews{})

	rec := doJSON(t, api.Reserve, `{"licensePlate":"KZ111","pickUpDate":"2026-03-01","dropOffDate":"2026-03-03"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestReview_ValidatesRating(t *testing.T) {
	reviews := &stubReviews{}
	api := newTestAPI(&stubCatalog{}, &stubBooking{}, reviews)

	rec := doJSON(t, api.Review, `{"licensePlate":"KZ111","reviewText":"great","rating":9}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Empty(t, reviews.submitted)
}
