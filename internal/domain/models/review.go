package models

// Review is created via submission and never edited or deleted from here.
type Review struct {
	Email           string `json:"email"`
	LicensePlate    string `json:"licensePlate"`
	ReviewText      string `json:"reviewText"`
	Rating          int    `json:"rating"`
	ReviewCreatedAt string `json:"reviewCreatedAt,omitempty"`
}
