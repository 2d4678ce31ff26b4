package domain

import "time"

type Venue struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Location     string    `json:"location"`
	Capacity     int       `json:"capacity"`
	PricePerHour float64   `json:"price_per_hour"`
	Description  string    `json:"description"`
	Amenities    []string  `json:"amenities"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// VenueDetails is a venue together with all of its bookings, newest first.
type VenueDetails struct {
	Venue    Venue     `json:"venue"`
	Bookings []Booking `json:"bookings"`
}

type CreateVenueInput struct {
	Name         string
	Location     string
	Capacity     int
	PricePerHour float64
	Description  string
	Amenities    []string
}

// UpdateVenueInput carries a partial update; nil fields are left unchanged.
type UpdateVenueInput struct {
	Name         *string
	Location     *string
	Capacity     *int
	PricePerHour *float64
	Description  *string
	Amenities    *[]string
}

// VenueQuery is the explicit filter for venue listings. Zero values mean
// "no filter".
type VenueQuery struct {
	Search      string
	MinCapacity int
	MaxPrice    float64
	Page        int
	Limit       int
}

func (q VenueQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}
