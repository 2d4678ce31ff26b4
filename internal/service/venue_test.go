package service

import (
	"context"
	"testing"
	"time"

	"github.com/adisusilayasa/venue-cms/internal/domain"
	"github.com/adisusilayasa/venue-cms/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newVenueService(t *testing.T) (*VenueService, *mocks.MockVenueRepo, *mocks.MockBookingRepo) {
	t.Helper()
	venueRepo := mocks.NewMockVenueRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	return NewVenueService(venueRepo, bookingRepo), venueRepo, bookingRepo
}

func validVenueInput() domain.CreateVenueInput {
	return domain.CreateVenueInput{
		Name:         "Urban Loft Space",
		Location:     "New York, NY",
		Capacity:     100,
		PricePerHour: 180,
		Description:  "A trendy loft space in the heart of Manhattan.",
		Amenities:    []string{"WiFi", "Bar"},
	}
}

func TestVenueService_Create_Success(t *testing.T) {
	svc, venueRepo, _ := newVenueService(t)

	venueRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	venue, err := svc.Create(context.Background(), validVenueInput())

	require.NoError(t, err)
	assert.NotEmpty(t, venue.ID)
	assert.Equal(t, "Urban Loft Space", venue.Name)
	assert.Equal(t, 180.0, venue.PricePerHour)
}

func TestVenueService_Create_NilAmenitiesDefaulted(t *testing.T) {
	svc, venueRepo, _ := newVenueService(t)

	venueRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	input := validVenueInput()
	input.Amenities = nil

	venue, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.NotNil(t, venue.Amenities)
	assert.Empty(t, venue.Amenities)
}

func TestVenueService_Create_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.CreateVenueInput)
	}{
		{"empty name", func(in *domain.CreateVenueInput) { in.Name = "" }},
		{"empty location", func(in *domain.CreateVenueInput) { in.Location = "" }},
		{"zero capacity", func(in *domain.CreateVenueInput) { in.Capacity = 0 }},
		{"negative capacity", func(in *domain.CreateVenueInput) { in.Capacity = -5 }},
		{"zero price", func(in *domain.CreateVenueInput) { in.PricePerHour = 0 }},
		{"empty description", func(in *domain.CreateVenueInput) { in.Description = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newVenueService(t)

			input := validVenueInput()
			tt.mutate(&input)

			_, err := svc.Create(context.Background(), input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestVenueService_GetDetails_Success(t *testing.T) {
	svc, venueRepo, bookingRepo := newVenueService(t)

	start := time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)
	venue := &domain.Venue{ID: "v1", Name: "Garden Estate"}
	bookings := []*domain.Booking{
		{ID: "b1", VenueID: "v1", Interval: domain.TimeInterval{Start: start, End: start.Add(time.Hour)}},
	}

	venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(venue, nil)
	bookingRepo.EXPECT().ListByVenue(mock.Anything, "v1").Return(bookings, nil)

	details, err := svc.GetDetails(context.Background(), "v1")

	require.NoError(t, err)
	assert.Equal(t, "Garden Estate", details.Venue.Name)
	assert.Len(t, details.Bookings, 1)
}

func TestVenueService_GetDetails_NotFound(t *testing.T) {
	svc, venueRepo, _ := newVenueService(t)

	venueRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrVenueNotFound)

	_, err := svc.GetDetails(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrVenueNotFound)
}

func TestVenueService_Update_Validation(t *testing.T) {
	svc, _, _ := newVenueService(t)

	empty := ""
	_, err := svc.Update(context.Background(), "v1", domain.UpdateVenueInput{Name: &empty})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestVenueService_Update_Success(t *testing.T) {
	svc, venueRepo, _ := newVenueService(t)

	name := "Renamed Venue"
	input := domain.UpdateVenueInput{Name: &name}
	updated := &domain.Venue{ID: "v1", Name: name}

	venueRepo.EXPECT().Update(mock.Anything, "v1", input).Return(updated, nil)

	venue, err := svc.Update(context.Background(), "v1", input)

	require.NoError(t, err)
	assert.Equal(t, name, venue.Name)
}

func TestVenueService_Delete_NotFound(t *testing.T) {
	svc, venueRepo, _ := newVenueService(t)

	venueRepo.EXPECT().Delete(mock.Anything, "missing").Return(domain.ErrVenueNotFound)

	err := svc.Delete(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrVenueNotFound)
}
