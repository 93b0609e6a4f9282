package models

// Charity is static reference data describing a partner organization.
type Charity struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Mission     string  `json:"mission"`
	Description string  `json:"description,omitempty"`
	Contact     string  `json:"contact,omitempty"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Image       string  `json:"image,omitempty"`
}
