package ports

import (
	"context"

	"github.com/adisusilayasa/venue-cms/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingConfirmed(ctx context.Context, booking *domain.Booking, venue *domain.Venue)
	NotifyBookingDeleted(ctx context.Context, booking *domain.Booking, venue *domain.Venue)
}
