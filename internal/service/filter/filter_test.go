package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/car-rental-system/internal/domain/models"
	"github.com/Temutjin2k/car-rental-system/internal/domain/types"
)

func TestState_ActivationOrder(t *testing.T) {
	s := NewState()

	assert.False(t, s.CanSearch(), "idle state must not allow search")

	s.Set(types.FieldMake, "Honda")
	assert.False(t, s.CanSearch(), "one active field must not allow search")

	s.Set(types.FieldModel, "City")
	assert.True(t, s.CanSearch())
	assert.Equal(t, []types.FilterField{types.FieldMake, types.FieldModel}, s.Active())
}

func TestState_ThirdFieldIsNoOp(t *testing.T) {
	s := NewState()
	s.Set(types.FieldMake, "Honda")
	s.Set(types.FieldModel, "City")

	s.Set(types.FieldColour, "White")

	assert.Equal(t, []types.FilterField{types.FieldMake, types.FieldModel}, s.Active())
	assert.Empty(t, s.Value(types.FieldColour))
	assert.Equal(t, "Honda", s.Value(types.FieldMake))
	assert.Equal(t, "City", s.Value(types.FieldModel))
}

func TestState_UpdateActiveFieldValue(t *testing.T) {
	s := NewState()
	s.Set(types.FieldMake, "Honda")
	s.Set(types.FieldModel, "City")

	s.Set(types.FieldMake, "Toyota")

	assert.Equal(t, "Toyota", s.Value(types.FieldMake))
	assert.Equal(t, []types.FilterField{types.FieldMake, types.FieldModel}, s.Active())
}

func TestState_DisabledAtCapacity(t *testing.T) {
	s := NewState()
	s.Set(types.FieldMake, "Honda")

	assert.False(t, s.Disabled(types.FieldColour), "field must stay enabled below capacity")

	s.Set(types.FieldModel, "City")

	assert.True(t, s.Disabled(types.FieldColour))
	assert.False(t, s.Disabled(types.FieldMake), "active field never renders disabled")
}

func TestState_ResetReturnsToIdle(t *testing.T) {
	s := NewState()
	s.Set(types.FieldMake, "Honda")
	s.Set(types.FieldModel, "City")

	s.Reset()

	assert.Empty(t, s.Active())
	assert.False(t, s.CanSearch())
	for _, f := range types.FilterFields {
		assert.Empty(t, s.Value(f))
	}

	// fields activate again after reset
	s.Set(types.FieldColour, "Red")
	assert.Equal(t, []types.FilterField{types.FieldColour}, s.Active())
}

func TestState_QueryBuildsCombinationEndpoint(t *testing.T) {
	s := NewState()

	_, ok := s.Query()
	require.False(t, ok)

	s.Set(types.FieldMake, "Honda")
	s.Set(types.FieldCity, "Indore")

	q, ok := s.Query()
	require.True(t, ok)
	assert.Equal(t, "get-cars-by-make-and-city", q.Path())

	params := q.Params()
	assert.Equal(t, "Honda", params.Get("make"))
	assert.Equal(t, "Indore", params.Get("city"))
}

func TestMatchesQuery_CaseInsensitiveAcrossFields(t *testing.T) {
	r := models.Reservation{
		UserEmail:         "mridulmohanta@example.com",
		LicensePlate:      "MP09CP7235",
		CarMake:           "Honda",
		CarModel:          "City",
		City:              "Indore",
		State:             "Madhya Pradesh",
		ReservationStatus: types.StatusConfirmed,
		TotalAmount:       3000,
	}

	assert.True(t, MatchesQuery(r, "honda"))
	assert.True(t, MatchesQuery(r, "INDORE"))
	assert.True(t, MatchesQuery(r, "3000"), "numeric fields match by string form")
	assert.True(t, MatchesQuery(r, "confirmed"))
	assert.False(t, MatchesQuery(r, "tesla"))
	assert.True(t, MatchesQuery(r, ""), "empty query matches everything")
}

func TestSearch_PreservesOrder(t *testing.T) {
	rs := []models.Reservation{
		{CarMake: "Honda", City: "Indore"},
		{CarMake: "Toyota", City: "Mumbai"},
		{CarMake: "Honda", City: "Delhi"},
	}

	got := Search(rs, "honda")
	require.Len(t, got, 2)
	assert.Equal(t, "Indore", got[0].City)
	assert.Equal(t, "Delhi", got[1].City)
}
