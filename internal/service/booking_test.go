package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/adisusilayasa/venue-cms/internal/domain"
	"github.com/adisusilayasa/venue-cms/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

const testRetention = 720 * time.Hour

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newBookingService(t *testing.T) (*BookingService, *mocks.MockBookingRepo, *mocks.MockVenueRepo, *mocks.MockBookingNotifier) {
	t.Helper()
	bookingRepo := mocks.NewMockBookingRepo(t)
	venueRepo := mocks.NewMockVenueRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, venueRepo, notifier, log, testRetention)
	return svc, bookingRepo, venueRepo, notifier
}

func testVenue(rate float64) *domain.Venue {
	return &domain.Venue{
		ID:           "v1",
		Name:         "Sunset Conference Center",
		Location:     "Miami, FL",
		Capacity:     150,
		PricePerHour: rate,
	}
}

func bookingAt(venueID string, from, to time.Time) *domain.Booking {
	return &domain.Booking{
		ID:       "existing",
		VenueID:  venueID,
		Interval: domain.TimeInterval{Start: from, End: to},
		Status:   domain.BookingStatusConfirmed,
	}
}

func TestBookingService_Create_Success(t *testing.T) {
	svc, bookingRepo, venueRepo, notifier := newBookingService(t)

	start := time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)
	venue := testVenue(150)

	venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(venue, nil)
	bookingRepo.EXPECT().ListActiveByVenue(mock.Anything, "v1").Return(nil, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, mock.Anything, venue).Return()

	booking, err := svc.Create(context.Background(), domain.CreateBookingInput{
		VenueID:       "v1",
		CustomerName:  "Alice",
		CustomerEmail: "alice@example.com",
		StartTime:     start,
		EndTime:       start.Add(4 * time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, "v1", booking.VenueID)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, 600.0, booking.TotalPrice)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Create_FractionalHoursPrice(t *testing.T) {
	svc, bookingRepo, venueRepo, notifier := newBookingService(t)

	start := time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)
	venue := testVenue(150)

	venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(venue, nil)
	bookingRepo.EXPECT().ListActiveByVenue(mock.Anything, "v1").Return(nil, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, mock.Anything, venue).Return()

	booking, err := svc.Create(context.Background(), domain.CreateBookingInput{
		VenueID:       "v1",
		CustomerName:  "Alice",
		CustomerEmail: "alice@example.com",
		StartTime:     start,
		EndTime:       start.Add(90 * time.Minute),
	})

	require.NoError(t, err)
	assert.Equal(t, 225.0, booking.TotalPrice)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Create_VenueNotFound(t *testing.T) {
	svc, _, venueRepo, _ := newBookingService(t)

	start := time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)

	venueRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrVenueNotFound)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		VenueID:   "missing",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrVenueNotFound)
}

func TestBookingService_Create_InvalidInterval(t *testing.T) {
	svc, _, venueRepo, _ := newBookingService(t)

	start := time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)
	venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(150), nil)

	// end equals start
	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		VenueID:   "v1",
		StartTime: start,
		EndTime:   start,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInterval)

	// end before start
	_, err = svc.Create(context.Background(), domain.CreateBookingInput{
		VenueID:   "v1",
		StartTime: start,
		EndTime:   start.Add(-time.Hour),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInterval)
}

func TestBookingService_Create_Conflict(t *testing.T) {
	start := time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		existingStart time.Time
		existingEnd   time.Time
	}{
		{"exact containment", start.Add(-time.Hour), start.Add(5 * time.Hour)},
		{"partial overlap from left", start.Add(-time.Hour), start.Add(time.Hour)},
		{"partial overlap from right", start.Add(2 * time.Hour), start.Add(6 * time.Hour)},
		{"contained within candidate", start.Add(time.Hour), start.Add(2 * time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, bookingRepo, venueRepo, _ := newBookingService(t)

			venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(150), nil)
			bookingRepo.EXPECT().ListActiveByVenue(mock.Anything, "v1").
				Return([]*domain.Booking{bookingAt("v1", tt.existingStart, tt.existingEnd)}, nil)

			_, err := svc.Create(context.Background(), domain.CreateBookingInput{
				VenueID:   "v1",
				StartTime: start,
				EndTime:   start.Add(4 * time.Hour),
			})

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrVenueUnavailable)
		})
	}
}

func TestBookingService_Create_BackToBackAllowed(t *testing.T) {
	svc, bookingRepo, venueRepo, notifier := newBookingService(t)

	start := time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)
	venue := testVenue(150)

	// existing booking ends exactly when the candidate starts, and another
	// starts exactly when the candidate ends
	existing := []*domain.Booking{
		bookingAt("v1", start.Add(-2*time.Hour), start),
		bookingAt("v1", start.Add(2*time.Hour), start.Add(4*time.Hour)),
	}

	venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(venue, nil)
	bookingRepo.EXPECT().ListActiveByVenue(mock.Anything, "v1").Return(existing, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, mock.Anything, venue).Return()

	booking, err := svc.Create(context.Background(), domain.CreateBookingInput{
		VenueID:   "v1",
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Create_CancelledExcluded(t *testing.T) {
	svc, bookingRepo, venueRepo, notifier := newBookingService(t)

	start := time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)
	venue := testVenue(150)

	// the repository filters cancelled bookings out of the active set, so an
	// identical cancelled interval never reaches the conflict check
	venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(venue, nil)
	bookingRepo.EXPECT().ListActiveByVenue(mock.Anything, "v1").Return(nil, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, mock.Anything, venue).Return()

	booking, err := svc.Create(context.Background(), domain.CreateBookingInput{
		VenueID:   "v1",
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Create_RepoError(t *testing.T) {
	svc, bookingRepo, venueRepo, _ := newBookingService(t)

	start := time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)

	venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(150), nil)
	bookingRepo.EXPECT().ListActiveByVenue(mock.Anything, "v1").Return(nil, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrVenueUnavailable)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		VenueID:   "v1",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrVenueUnavailable)
}

func TestBookingService_Delete_Success(t *testing.T) {
	svc, bookingRepo, venueRepo, notifier := newBookingService(t)

	start := time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)
	booking := bookingAt("v1", start, start.Add(2*time.Hour))
	venue := testVenue(150)

	bookingRepo.EXPECT().GetByID(mock.Anything, "existing").Return(booking, nil)
	bookingRepo.EXPECT().Delete(mock.Anything, "existing").Return(nil)
	venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(venue, nil)
	notifier.EXPECT().NotifyBookingDeleted(mock.Anything, booking, venue).Return()

	err := svc.Delete(context.Background(), "existing")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Delete_NotFound(t *testing.T) {
	svc, bookingRepo, _, _ := newBookingService(t)

	bookingRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	err := svc.Delete(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_PurgeCancelled_Success(t *testing.T) {
	svc, bookingRepo, _, _ := newBookingService(t)

	bookingRepo.EXPECT().PurgeCancelled(mock.Anything, mock.Anything).Return(int64(3), nil)

	purged, err := svc.PurgeCancelled(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), purged)
}

func TestBookingService_PurgeCancelled_RepoError(t *testing.T) {
	svc, bookingRepo, _, _ := newBookingService(t)

	bookingRepo.EXPECT().PurgeCancelled(mock.Anything, mock.Anything).Return(int64(0), errors.New("db error"))

	_, err := svc.PurgeCancelled(context.Background())

	require.Error(t, err)
}

func TestBookingService_List(t *testing.T) {
	svc, bookingRepo, _, _ := newBookingService(t)

	start := time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)
	q := domain.BookingQuery{VenueID: "v1", Status: domain.BookingStatusConfirmed, Page: 1, Limit: 10}
	bookingRepo.EXPECT().List(mock.Anything, q).
		Return([]*domain.Booking{bookingAt("v1", start, start.Add(time.Hour))}, 1, nil)

	bookings, total, err := svc.List(context.Background(), q)

	require.NoError(t, err)
	assert.Len(t, bookings, 1)
	assert.Equal(t, 1, total)
}
