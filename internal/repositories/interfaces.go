package repositories

import (
	"context"

	"github.com/venuecraft/venuesim/internal/models"
)

type VenueRepository interface {
	BulkCreate(ctx context.Context, venues []*models.Venue) error
	Create(ctx context.Context, venue *models.Venue) error
	GetAll(ctx context.Context) (map[string]*models.Venue, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type StaffRepository interface {
	BulkCreate(ctx context.Context, staff []*models.Staff) error
	Create(ctx context.Context, member *models.Staff) error
	GetAll(ctx context.Context) ([]*models.Staff, error)
	GetByVenueID(ctx context.Context, venueID string) ([]*models.Staff, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}
