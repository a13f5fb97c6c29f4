package rentalapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/car-rental-system/internal/domain/models"
	"github.com/Temutjin2k/car-rental-system/internal/domain/types"
	"github.com/Temutjin2k/car-rental-system/pkg/logger"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 2*time.Second, logger.InitLogger("test", logger.LevelError))
}

func TestLogin_Success(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/Auth/Login", r.URL.Path)
		require.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		require.Equal(t, "john@example.com", r.PostFormValue("email"))

		w.Write([]byte(`{"token":"tok123","refreshToken":"ref456","role":["User"]}`))
	})

	resp, err := c.Login(context.Background(), "john@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok123", resp.Token)
	assert.Equal(t, "ref456", resp.RefreshToken)
	assert.Equal(t, []string{"User"}, resp.Role)
}

func TestLogin_InvalidCredentialsSurfacesServerMessage(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "Invalid credentials"}`))
	})

	_, err := c.Login(context.Background(), "john@example.com", "wrong")
	require.Error(t, err)

	var reqErr *types.RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusUnauthorized, reqErr.Status)
	assert.Equal(t, "Invalid credentials", reqErr.Message)
}

func TestGetAllCars_AttachesBearerToken(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))
		w.Write([]byte(`[{"licensePlate":"MP09CP7235","make":"Honda","model":"City","availableStatus":true}]`))
	})

	cars, err := c.GetAllCars(context.Background(), "tok123")
	require.NoError(t, err)
	require.Len(t, cars, 1)
	assert.Equal(t, "MP09CP7235", cars[0].LicensePlate)
	assert.True(t, cars[0].AvailableStatus)
}

func TestReserve_BusinessFailureInSuccessStatus(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		// 200 OK but the payload carries a semantic rejection
		w.Write([]byte(`{"message": "Car not available"}`))
	})

	err := c.Reserve(context.Background(), "tok123", models.ReservationRequest{
		Email:        "john@example.com",
		LicensePlate: "MP09CP7235",
		PickUpDate:   "2024-12-18",
		DropOffDate:  "2024-12-19",
	})
	require.ErrorIs(t, err, types.ErrCarNotAvailable)
}

func TestReserve_PlainSuccess(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message": "Reservation successful"}`))
	})

	err := c.Reserve(context.Background(), "tok123", models.ReservationRequest{
		Email:        "john@example.com",
		LicensePlate: "MP09CP7235",
	})
	require.NoError(t, err)
}

func TestCancel_SendsQueryParameters(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/Reservation/Cancel", r.URL.Path)
		require.Equal(t, "john@example.com", r.URL.Query().Get("email"))
		require.Equal(t, "MP09CP7235", r.URL.Query().Get("licensePlate"))
		w.Write([]byte(`{"message": "Cancelled successfully"}`))
	})

	err := c.Cancel(context.Background(), "tok123", "john@example.com", "MP09CP7235")
	require.NoError(t, err)
}

func TestGiveReview_BodyAndParams(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/Review/give-review", r.URL.Path)
		require.Equal(t, "jane@example.com", r.URL.Query().Get("email"))
		w.Write([]byte(`ok`))
	})

	err := c.GiveReview(context.Background(), "tok123", models.Review{
		Email:        "jane@example.com",
		LicensePlate: "MH12AB1234",
		ReviewText:   "smooth ride",
		Rating:       5,
	})
	require.NoError(t, err)
}

func TestTransportFailureIsStatusZero(t *testing.T) {
	c := New("http://127.0.0.1:1", 200*time.Millisecond, logger.InitLogger("test", logger.LevelError))

	_, err := c.GetAllCars(context.Background(), "")
	require.Error(t, err)

	var reqErr *types.RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.True(t, reqErr.IsTransport())
}

func TestCircuitBreaker_OpensAfterConsecutiveTransportFailures(t *testing.T) {
	c := New("http://127.0.0.1:1", 100*time.Millisecond, logger.InitLogger("test", logger.LevelError))

	for i := 0; i < 4; i++ {
		c.GetAllCars(context.Background(), "")
	}

	// breaker is open now, calls fail fast without dialing
	start := time.Now()
	_, err := c.GetAllCars(context.Background(), "")
	require.Error(t, err)
	assert.Less(t, time.Since(start), 50*time.Millisecond)
}

func TestBusinessErrorsDoNotTripBreaker(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"car not found"}`))
	})

	for i := 0; i < 5; i++ {
		_, err := c.GetCarByLicensePlate(context.Background(), "tok", "NOPE123")
		var reqErr *types.RequestError
		require.True(t, errors.As(err, &reqErr))
		require.Equal(t, http.StatusNotFound, reqErr.Status, "breaker must stay closed on 4xx")
	}
}
