package filter

import (
	"net/url"

	"github.com/Temutjin2k/car-rental-system/internal/domain/types"
)

// MaxActive is the number of filter fields that may be active at once.
// The rental API only exposes two-field combination endpoints.
const MaxActive = 2

// State tracks which search fields carry a value and the order in which
// they were activated. Zero active fields is Idle, one is OneActive and
// two is TwoActive; at TwoActive every other field is disabled.
type State struct {
	values map[types.FilterField]string
	active []types.FilterField
}

func NewState() *State {
	return &State{
		values: make(map[types.FilterField]string),
	}
}

// Set stores a value for the field. An inactive field becomes active only
// while fewer than MaxActive fields are active; selecting a third field is
// a no-op and the existing active set is retained. Setting a value on an
// already-active field just updates the stored value.
func (s *State) Set(field types.FilterField, value string) {
	if s.isActive(field) {
		s.values[field] = value
		return
	}
	if len(s.active) >= MaxActive {
		return
	}
	s.active = append(s.active, field)
	s.values[field] = value
}

// Reset clears every value and empties the active set, returning to Idle.
func (s *State) Reset() {
	s.values = make(map[types.FilterField]string)
	s.active = nil
}

// Value returns the stored value for the field, empty if unset.
func (s *State) Value(field types.FilterField) string {
	return s.values[field]
}

// Active returns the active fields in selection order.
func (s *State) Active() []types.FilterField {
	out := make([]types.FilterField, len(s.active))
	copy(out, s.active)
	return out
}

// Disabled reports whether the field should be rendered disabled: it is
// not active and the active set is already at capacity.
func (s *State) Disabled(field types.FilterField) bool {
	return !s.isActive(field) && len(s.active) >= MaxActive
}

// CanSearch reports whether the search action is enabled. The combination
// endpoint needs exactly two active fields.
func (s *State) CanSearch() bool {
	return len(s.active) == MaxActive
}

func (s *State) isActive(field types.FilterField) bool {
	for _, f := range s.active {
		if f == field {
			return true
		}
	}
	return false
}

// Query describes the two-field combination search to issue against the
// rental API: get-cars-by-{field1}-and-{field2}?{field1}=&{field2}=.
type Query struct {
	Field1 types.FilterField
	Field2 types.FilterField
	Value1 string
	Value2 string
}

// Query builds the combination query from the active fields in selection
// order. ok is false unless the state is TwoActive.
func (s *State) Query() (Query, bool) {
	if !s.CanSearch() {
		return Query{}, false
	}
	f1, f2 := s.active[0], s.active[1]
	return Query{
		Field1: f1,
		Field2: f2,
		Value1: s.values[f1],
		Value2: s.values[f2],
	}, true
}

// Path returns the endpoint path segment for the query.
func (q Query) Path() string {
	return "get-cars-by-" + q.Field1.String() + "-and-" + q.Field2.String()
}

// Params returns the query string parameters keyed by the field names.
func (q Query) Params() url.Values {
	v := url.Values{}
	v.Set(q.Field1.String(), q.Value1)
	v.Set(q.Field2.String(), q.Value2)
	return v
}
