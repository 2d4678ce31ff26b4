package service

import (
	"context"
	"fmt"
	"time"

	"github.com/adisusilayasa/venue-cms/internal/domain"
	"github.com/adisusilayasa/venue-cms/internal/service/ports"
	"github.com/google/uuid"
)

type VenueService struct {
	repo        ports.VenueRepo
	bookingRepo ports.BookingRepo
}

func NewVenueService(repo ports.VenueRepo, bookingRepo ports.BookingRepo) *VenueService {
	return &VenueService{
		repo:        repo,
		bookingRepo: bookingRepo,
	}
}

func (s *VenueService) Create(ctx context.Context, input domain.CreateVenueInput) (*domain.Venue, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Location == "" {
		return nil, fmt.Errorf("%w: location is required", domain.ErrValidation)
	}
	if input.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}
	if input.PricePerHour <= 0 {
		return nil, fmt.Errorf("%w: price_per_hour must be positive", domain.ErrValidation)
	}
	if input.Description == "" {
		return nil, fmt.Errorf("%w: description is required", domain.ErrValidation)
	}

	amenities := input.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	now := time.Now().UTC()
	venue := &domain.Venue{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Location:     input.Location,
		Capacity:     input.Capacity,
		PricePerHour: input.PricePerHour,
		Description:  input.Description,
		Amenities:    amenities,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, venue); err != nil {
		return nil, fmt.Errorf("create venue: %w", err)
	}

	return venue, nil
}

func (s *VenueService) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *VenueService) GetDetails(ctx context.Context, id string) (*domain.VenueDetails, error) {
	venue, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.ListByVenue(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list venue bookings: %w", err)
	}

	details := &domain.VenueDetails{Venue: *venue}
	details.Bookings = make([]domain.Booking, len(bookings))
	for i, b := range bookings {
		details.Bookings[i] = *b
	}

	return details, nil
}

func (s *VenueService) List(ctx context.Context, q domain.VenueQuery) ([]*domain.Venue, int, error) {
	return s.repo.List(ctx, q)
}

func (s *VenueService) Update(ctx context.Context, id string, input domain.UpdateVenueInput) (*domain.Venue, error) {
	if input.Name != nil && *input.Name == "" {
		return nil, fmt.Errorf("%w: name must not be empty", domain.ErrValidation)
	}
	if input.Location != nil && *input.Location == "" {
		return nil, fmt.Errorf("%w: location must not be empty", domain.ErrValidation)
	}
	if input.Capacity != nil && *input.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}
	if input.PricePerHour != nil && *input.PricePerHour <= 0 {
		return nil, fmt.Errorf("%w: price_per_hour must be positive", domain.ErrValidation)
	}
	if input.Description != nil && *input.Description == "" {
		return nil, fmt.Errorf("%w: description must not be empty", domain.ErrValidation)
	}

	return s.repo.Update(ctx, id, input)
}

func (s *VenueService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
