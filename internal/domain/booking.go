package domain

import "time"

type BookingStatus string

const (
	// BookingStatusPending is reserved for a future payment flow; the
	// service never produces it.
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID            string        `json:"id"`
	VenueID       string        `json:"venue_id"`
	CustomerName  string        `json:"customer_name"`
	CustomerEmail string        `json:"customer_email"`
	Interval      TimeInterval  `json:"interval"`
	TotalPrice    float64       `json:"total_price"`
	Status        BookingStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

type CreateBookingInput struct {
	VenueID       string
	CustomerName  string
	CustomerEmail string
	StartTime     time.Time
	EndTime       time.Time
}

// BookingQuery is the explicit filter for booking listings. Zero values
// mean "no filter".
type BookingQuery struct {
	VenueID string
	Status  BookingStatus
	Page    int
	Limit   int
}

func (q BookingQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}
