package statuschecks

import (
	"context"

	"github.com/mdrrmo4516/mobile2026/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, check *models.StatusCheck) (*models.StatusCheck, error)
	List(ctx context.Context, limit int) ([]*models.StatusCheck, error)
}
