package models

// Car is a vehicle record as served by the rental API. The license plate
// is the unique key; the record is never mutated locally.
type Car struct {
	LicensePlate    string  `json:"licensePlate"`
	Make            string  `json:"make"`
	Model           string  `json:"model"`
	Year            int     `json:"year"`
	Colour          string  `json:"colour"`
	TotalSeats      int     `json:"totalSeats"`
	PricePerDay     float64 `json:"pricePerDay"`
	City            string  `json:"city"`
	State           string  `json:"state"`
	Country         string  `json:"country"`
	ZipCode         string  `json:"zipCode"`
	AvailableStatus bool    `json:"availableStatus"`
	AvailableDate   string  `json:"availableDate"`
	ImageURL        string  `json:"imageUrl"`
	Description     string  `json:"description,omitempty"`
}

// CatalogStats is the summary block shown on the dashboards.
type CatalogStats struct {
	TotalCars   int `json:"total_cars"`
	TotalCities int `json:"total_cities"`
	TotalBrands int `json:"total_brands"`
	Rented      int `json:"rented"`
	Available   int `json:"available"`
}

// DropdownData holds the distinct values of each searchable attribute,
// computed from the full car list.
type DropdownData struct {
	Makes          []string  `json:"makes"`
	Models         []string  `json:"models"`
	Colours        []string  `json:"colours"`
	Prices         []float64 `json:"prices"`
	Seats          []int     `json:"seats"`
	AvailableDates []string  `json:"available_dates"`
}
