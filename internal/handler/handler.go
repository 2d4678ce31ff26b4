package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/adisusilayasa/venue-cms/internal/domain"
	"github.com/adisusilayasa/venue-cms/internal/handler/dto"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

const (
	defaultVenueLimit   = 12
	defaultBookingLimit = 10
	maxLimit            = 100
)

type VenueSvc interface {
	Create(ctx context.Context, input domain.CreateVenueInput) (*domain.Venue, error)
	GetByID(ctx context.Context, id string) (*domain.Venue, error)
	GetDetails(ctx context.Context, id string) (*domain.VenueDetails, error)
	List(ctx context.Context, q domain.VenueQuery) ([]*domain.Venue, int, error)
	Update(ctx context.Context, id string, input domain.UpdateVenueInput) (*domain.Venue, error)
	Delete(ctx context.Context, id string) error
}

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, q domain.BookingQuery) ([]*domain.Booking, int, error)
	Delete(ctx context.Context, id string) error
}

type Handler struct {
	venueService   VenueSvc
	bookingService BookingSvc
}

func NewHandler(venueService VenueSvc, bookingService BookingSvc) *Handler {
	return &Handler{
		venueService:   venueService,
		bookingService: bookingService,
	}
}

// Venues

func (h *Handler) CreateVenue(c *ginext.Context) {
	var req dto.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateVenueInput{
		Name:         req.Name,
		Location:     req.Location,
		Capacity:     req.Capacity,
		PricePerHour: req.PricePerHour,
		Description:  req.Description,
		Amenities:    req.Amenities,
	}

	venue, err := h.venueService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToVenueResponse(venue))
}

func (h *Handler) GetVenue(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid venue id"})
		return
	}

	details, err := h.venueService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVenueDetailsResponse(details))
}

func (h *Handler) ListVenues(c *ginext.Context) {
	page, limit, ok := h.pagination(c, defaultVenueLimit)
	if !ok {
		return
	}

	q := domain.VenueQuery{
		Search: c.Query("search"),
		Page:   page,
		Limit:  limit,
	}
	if raw := c.Query("min_capacity"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid min_capacity"})
			return
		}
		q.MinCapacity = v
	}
	if raw := c.Query("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v <= 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid max_price"})
			return
		}
		q.MaxPrice = v
	}

	venues, total, err := h.venueService.List(c.Request.Context(), q)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := dto.VenueListResponse{
		Data:       make([]dto.VenueResponse, 0, len(venues)),
		Pagination: dto.NewPagination(page, limit, total),
	}
	for _, v := range venues {
		resp.Data = append(resp.Data, dto.ToVenueResponse(v))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateVenue(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid venue id"})
		return
	}

	var req dto.UpdateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateVenueInput{
		Name:         req.Name,
		Location:     req.Location,
		Capacity:     req.Capacity,
		PricePerHour: req.PricePerHour,
		Description:  req.Description,
		Amenities:    req.Amenities,
	}

	venue, err := h.venueService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVenueResponse(venue))
}

func (h *Handler) DeleteVenue(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid venue id"})
		return
	}

	if err := h.venueService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid start_time format, expected RFC3339",
		})
		return
	}
	endTime, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid end_time format, expected RFC3339",
		})
		return
	}

	input := domain.CreateBookingInput{
		VenueID:       req.VenueID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		StartTime:     startTime,
		EndTime:       endTime,
	}

	booking, err := h.bookingService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	venue, err := h.venueService.GetByID(c.Request.Context(), booking.VenueID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking, venue))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	venue, err := h.venueService.GetByID(c.Request.Context(), booking.VenueID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking, venue))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	page, limit, ok := h.pagination(c, defaultBookingLimit)
	if !ok {
		return
	}

	q := domain.BookingQuery{
		Page:  page,
		Limit: limit,
	}
	if raw := c.Query("venue_id"); raw != "" {
		if _, err := uuid.Parse(raw); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid venue_id"})
			return
		}
		q.VenueID = raw
	}
	if raw := c.Query("status"); raw != "" {
		q.Status = domain.BookingStatus(raw)
	}

	bookings, total, err := h.bookingService.List(c.Request.Context(), q)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := dto.BookingListResponse{
		Data:       make([]dto.BookingResponse, 0, len(bookings)),
		Pagination: dto.NewPagination(page, limit, total),
	}
	for _, b := range bookings {
		resp.Data = append(resp.Data, dto.ToBookingResponse(b, nil))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) DeleteBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	if err := h.bookingService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *Handler) pagination(c *ginext.Context, defaultLimit int) (page, limit int, ok bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid page"})
		return 0, 0, false
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 || limit > maxLimit {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid limit"})
		return 0, 0, false
	}

	return page, limit, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrVenueNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrVenueUnavailable):
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Error: "venue is not available for the selected dates, please choose different dates",
		})

	case errors.Is(err, domain.ErrInvalidInterval),
		errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
