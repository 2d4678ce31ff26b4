package dto

type CreateVenueRequest struct {
	Name         string   `json:"name" binding:"required,max=100"`
	Location     string   `json:"location" binding:"required,max=100"`
	Capacity     int      `json:"capacity" binding:"required,gt=0"`
	PricePerHour float64  `json:"price_per_hour" binding:"required,gt=0"`
	Description  string   `json:"description" binding:"required"`
	Amenities    []string `json:"amenities"`
}

type UpdateVenueRequest struct {
	Name         *string   `json:"name" binding:"omitempty,max=100"`
	Location     *string   `json:"location" binding:"omitempty,max=100"`
	Capacity     *int      `json:"capacity" binding:"omitempty,gt=0"`
	PricePerHour *float64  `json:"price_per_hour" binding:"omitempty,gt=0"`
	Description  *string   `json:"description"`
	Amenities    *[]string `json:"amenities"`
}

type CreateBookingRequest struct {
	VenueID       string `json:"venue_id" binding:"required,uuid"`
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	StartTime     string `json:"start_time" binding:"required"`
	EndTime       string `json:"end_time" binding:"required"`
}
