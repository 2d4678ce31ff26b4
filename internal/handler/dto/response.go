package dto

import (
	"math"
	"time"

	"github.com/adisusilayasa/venue-cms/internal/domain"
)

type VenueResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Location     string   `json:"location"`
	Capacity     int      `json:"capacity"`
	PricePerHour float64  `json:"price_per_hour"`
	Description  string   `json:"description"`
	Amenities    []string `json:"amenities"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
}

type VenueDetailsResponse struct {
	VenueResponse
	Bookings []BookingResponse `json:"bookings"`
}

type BookingResponse struct {
	ID            string         `json:"id"`
	VenueID       string         `json:"venue_id"`
	CustomerName  string         `json:"customer_name"`
	CustomerEmail string         `json:"customer_email"`
	StartTime     string         `json:"start_time"`
	EndTime       string         `json:"end_time"`
	TotalPrice    float64        `json:"total_price"`
	Status        string         `json:"status"`
	CreatedAt     string         `json:"created_at"`
	Venue         *VenueResponse `json:"venue,omitempty"`
}

type Pagination struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"total_pages"`
	HasNextPage bool `json:"has_next_page"`
	HasPrevPage bool `json:"has_prev_page"`
}

type VenueListResponse struct {
	Data       []VenueResponse `json:"data"`
	Pagination Pagination      `json:"pagination"`
}

type BookingListResponse struct {
	Data       []BookingResponse `json:"data"`
	Pagination Pagination        `json:"pagination"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToVenueResponse(v *domain.Venue) VenueResponse {
	return VenueResponse{
		ID:           v.ID,
		Name:         v.Name,
		Location:     v.Location,
		Capacity:     v.Capacity,
		PricePerHour: v.PricePerHour,
		Description:  v.Description,
		Amenities:    v.Amenities,
		CreatedAt:    v.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    v.UpdatedAt.Format(time.RFC3339),
	}
}

func ToVenueDetailsResponse(d *domain.VenueDetails) VenueDetailsResponse {
	bookings := make([]BookingResponse, 0, len(d.Bookings))
	for _, b := range d.Bookings {
		bookings = append(bookings, ToBookingResponse(&b, nil))
	}

	return VenueDetailsResponse{
		VenueResponse: ToVenueResponse(&d.Venue),
		Bookings:      bookings,
	}
}

func ToBookingResponse(b *domain.Booking, venue *domain.Venue) BookingResponse {
	resp := BookingResponse{
		ID:            b.ID,
		VenueID:       b.VenueID,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		StartTime:     b.Interval.Start.Format(time.RFC3339),
		EndTime:       b.Interval.End.Format(time.RFC3339),
		TotalPrice:    roundToCents(b.TotalPrice),
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
	if venue != nil {
		v := ToVenueResponse(venue)
		resp.Venue = &v
	}
	return resp
}

// The stored price keeps the full precision of the hours * rate
// multiplication; rounding to the currency minor unit happens here only.
func roundToCents(price float64) float64 {
	return math.Round(price*100) / 100
}

func NewPagination(page, limit, total int) Pagination {
	totalPages := (total + limit - 1) / limit
	return Pagination{
		Page:        page,
		Limit:       limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}
