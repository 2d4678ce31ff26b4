package service

import (
	"context"
	"fmt"
	"time"

	"github.com/adisusilayasa/venue-cms/internal/domain"
	"github.com/adisusilayasa/venue-cms/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	venueRepo   ports.VenueRepo
	notifier    ports.BookingNotifier
	logger      logger.Logger
	// cancelled bookings older than this (by end time) are purged by the
	// retention job
	retention time.Duration
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	venueRepo ports.VenueRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
	retention time.Duration,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		venueRepo:   venueRepo,
		notifier:    notifier,
		logger:      logger,
		retention:   retention,
	}
}

// Create admits a candidate booking: the venue must exist, the interval must
// be well-formed, and the interval must not overlap any non-cancelled booking
// for the same venue. Touching intervals are allowed. On admission the price
// is hours * venue rate and the booking is stored as confirmed. No state is
// written on any rejection path.
func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	venue, err := s.venueRepo.GetByID(ctx, input.VenueID)
	if err != nil {
		return nil, fmt.Errorf("check venue: %w", err)
	}

	interval, err := domain.NewTimeInterval(input.StartTime, input.EndTime)
	if err != nil {
		return nil, err
	}

	existing, err := s.bookingRepo.ListActiveByVenue(ctx, input.VenueID)
	if err != nil {
		return nil, fmt.Errorf("list active bookings: %w", err)
	}
	for _, b := range existing {
		if interval.Overlaps(b.Interval) {
			return nil, domain.ErrVenueUnavailable
		}
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:            uuid.New().String(),
		VenueID:       input.VenueID,
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		Interval:      interval,
		TotalPrice:    interval.Hours() * venue.PricePerHour,
		Status:        domain.BookingStatusConfirmed,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("venue_id", booking.VenueID),
		logger.Any("total_price", booking.TotalPrice),
	)

	go s.notifier.NotifyBookingConfirmed(context.WithoutCancel(ctx), booking, venue)

	return booking, nil
}

func (s *BookingService) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *BookingService) List(ctx context.Context, q domain.BookingQuery) ([]*domain.Booking, int, error) {
	return s.bookingRepo.List(ctx, q)
}

// Delete removes the booking permanently so it no longer participates in
// availability checks.
func (s *BookingService) Delete(ctx context.Context, id string) error {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}

	if err = s.bookingRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	s.logger.Info("booking deleted",
		logger.String("booking_id", id),
		logger.String("venue_id", booking.VenueID),
	)

	venue, err := s.venueRepo.GetByID(ctx, booking.VenueID)
	if err != nil {
		s.logger.Error("failed to get venue for delete notification",
			logger.String("venue_id", booking.VenueID),
			logger.String("error", err.Error()),
		)
		return nil
	}

	go s.notifier.NotifyBookingDeleted(context.WithoutCancel(ctx), booking, venue)

	return nil
}

// PurgeCancelled drops cancelled bookings whose interval ended before the
// retention window. Cancelled rows never block admission, so purging them is
// pure housekeeping.
func (s *BookingService) PurgeCancelled(ctx context.Context) (int64, error) {
	purged, err := s.bookingRepo.PurgeCancelled(ctx, time.Now().UTC().Add(-s.retention))
	if err != nil {
		return 0, fmt.Errorf("purge cancelled: %w", err)
	}

	if purged > 0 {
		s.logger.Info("cancelled bookings purged",
			logger.Int("count", int(purged)),
		)
	}

	return purged, nil
}
