package hotlines

import (
	"context"

	"github.com/mdrrmo4516/mobile2026/internal/server/models"
)

// Repository stores the hotline directory. The natural key is (label, number).
type Repository interface {
	Count(ctx context.Context) (int, error)
	// InsertMany inserts rows in one transaction, skipping rows whose natural
	// key already exists, and reports how many were inserted.
	InsertMany(ctx context.Context, rows []models.Hotline) (int, error)
	List(ctx context.Context) ([]*models.Hotline, error)
	Create(ctx context.Context, h *models.Hotline) (*models.Hotline, error)
	Update(ctx context.Context, h *models.Hotline) (*models.Hotline, error)
	Delete(ctx context.Context, id string) error
}
