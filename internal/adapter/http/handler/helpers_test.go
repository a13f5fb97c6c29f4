package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Temutjin2k/car-rental-system/internal/domain/types"
)

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not logged in", types.ErrNotLoggedIn, http.StatusUnauthorized},
		{"car not found", types.ErrCarNotFound, http.StatusNotFound},
		{"car not available", types.ErrCarNotAvailable, http.StatusConflict},
		{"invalid date range", types.ErrInvalidDateRange, http.StatusUnprocessableEntity},
		{"invalid rating", types.ErrInvalidRating, http.StatusUnprocessableEntity},
		{"remote status passes through", &types.RequestError{Status: 401, Message: "Invalid credentials"}, http.StatusUnauthorized},
		{"transport failure", &types.RequestError{Message: "connection refused"}, http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetCode(tt.err))
		})
	}
}

func TestRemoteMessage(t *testing.T) {
	err := &types.RequestError{Status: 409, Message: "Car not available"}
	assert.Equal(t, "Car not available", remoteMessage(err))

	transport := &types.RequestError{Message: "dial tcp: connection refused"}
	assert.NotContains(t, remoteMessage(transport), "dial tcp")

	assert.Equal(t, "boom", remoteMessage(errors.New("boom")))
}
