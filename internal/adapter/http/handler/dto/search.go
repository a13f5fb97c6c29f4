package dto

import (
	"strings"

	"github.com/Temutjin2k/car-rental-system/internal/domain/types"
	"github.com/Temutjin2k/car-rental-system/internal/service/filter"
	"github.com/Temutjin2k/car-rental-system/pkg/validator"
)

// FilterInput is one search field with the value the user typed.
type FilterInput struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// SearchRequest carries the search filters in activation order. Order
// matters: the first two non-empty fields become the active pair and
// later entries are ignored, matching the search form behaviour.
type SearchRequest struct {
	Filters []FilterInput `json:"filters"`
}

// ToState replays the filters into a fresh filter state.
func (r *SearchRequest) ToState() *filter.State {
	state := filter.NewState()
	for _, f := range r.Filters {
		if !types.IsValidFilterField(f.Field) || strings.TrimSpace(f.Value) == "" {
			continue
		}
		state.Set(types.FilterField(f.Field), f.Value)
	}
	return state
}

func ValidateSearch(v *validator.Validator, req *SearchRequest) {
	v.Check(len(req.Filters) > 0, "filters", "must be provided")

	for _, f := range req.Filters {
		if f.Field == "" || types.IsValidFilterField(f.Field) {
			continue
		}
		v.AddError("filters", "unknown search field: "+f.Field)
	}
}
