package ports

import (
	"context"

	"github.com/adisusilayasa/venue-cms/internal/domain"
)

type VenueRepo interface {
	Create(ctx context.Context, v *domain.Venue) error
	GetByID(ctx context.Context, id string) (*domain.Venue, error)
	List(ctx context.Context, q domain.VenueQuery) ([]*domain.Venue, int, error)
	Update(ctx context.Context, id string, input domain.UpdateVenueInput) (*domain.Venue, error)
	Delete(ctx context.Context, id string) error
}
