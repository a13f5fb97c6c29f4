package types

// Enum for reservation lifecycle
type ReservationStatus string

const (
	StatusConfirmed ReservationStatus = "Confirmed"
	StatusPending   ReservationStatus = "Pending"
	StatusCancelled ReservationStatus = "Cancelled"
)

// Enum for user roles returned by the rental API on login
type UserRole string

const (
	RoleUser  UserRole = "User"
	RoleAdmin UserRole = "Admin"
)

// FilterField is one of the fixed set of search attributes the dashboard
// can activate.
type FilterField string

const (
	FieldMake            FilterField = "make"
	FieldModel           FilterField = "model"
	FieldColour          FilterField = "colour"
	FieldPrice           FilterField = "price"
	FieldSeats           FilterField = "seats"
	FieldAvailableStatus FilterField = "availableStatus"
	FieldAvailableDate   FilterField = "availableDate"
	FieldCity            FilterField = "city"
	FieldState           FilterField = "state"
)

func (f FilterField) String() string { return string(f) }

// FilterFields lists every field the dashboard search form exposes, in
// render order.
var FilterFields = []FilterField{
	FieldMake,
	FieldModel,
	FieldColour,
	FieldPrice,
	FieldSeats,
	FieldAvailableStatus,
	FieldAvailableDate,
	FieldCity,
	FieldState,
}

// IsValidFilterField reports whether name is a known search attribute.
func IsValidFilterField(name string) bool {
	for _, f := range FilterFields {
		if f.String() == name {
			return true
		}
	}
	return false
}
