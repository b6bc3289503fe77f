package locations

import (
	"context"

	"github.com/mdrrmo4516/mobile2026/internal/server/models"
)

// Repository stores the facility directory. IDs are small integers; the
// seeded defaults occupy 1..12 and new rows take max(id)+1.
type Repository interface {
	Count(ctx context.Context) (int, error)
	// InsertMany inserts rows in one transaction, skipping ids that already
	// exist, and reports how many were inserted.
	InsertMany(ctx context.Context, rows []models.Location) (int, error)
	// List returns locations ordered by id; an empty type means all types.
	List(ctx context.Context, locationType models.LocationType) ([]*models.Location, error)
	// Create assigns the next id and stores loc.
	Create(ctx context.Context, loc *models.Location) (*models.Location, error)
	Update(ctx context.Context, id int64, upd models.LocationUpdate) (*models.Location, error)
	Delete(ctx context.Context, id int64) error
}
