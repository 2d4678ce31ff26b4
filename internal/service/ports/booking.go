package ports

import (
	"context"
	"time"

	"github.com/adisusilayasa/venue-cms/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, q domain.BookingQuery) ([]*domain.Booking, int, error)
	// ListActiveByVenue returns the venue's non-cancelled bookings.
	ListActiveByVenue(ctx context.Context, venueID string) ([]*domain.Booking, error)
	ListByVenue(ctx context.Context, venueID string) ([]*domain.Booking, error)
	Delete(ctx context.Context, id string) error
	PurgeCancelled(ctx context.Context, endedBefore time.Time) (int64, error)
}
