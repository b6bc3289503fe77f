package incidents

import (
	"context"

	"github.com/mdrrmo4516/mobile2026/internal/server/models"
)

// Repository stores canonical incident records.
type Repository interface {
	Create(ctx context.Context, incident *models.Incident) (*models.Incident, error)
	// List returns incidents newest first, narrowed by filter.
	List(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error)
	Get(ctx context.Context, id string) (*models.Incident, error)
	Update(ctx context.Context, id string, upd models.IncidentUpdate) (*models.Incident, error)
	Delete(ctx context.Context, id string) error
}
