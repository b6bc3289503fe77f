package statuschecks

import (
	"context"
	"slices"
	"sync"

	"github.com/mdrrmo4516/mobile2026/internal/server/models"
)

type MemoryRepository struct {
	mu   sync.Mutex
	rows []models.StatusCheck
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Create(_ context.Context, check *models.StatusCheck) (*models.StatusCheck, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, *check)
	return check, nil
}

func (r *MemoryRepository) List(_ context.Context, limit int) ([]*models.StatusCheck, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*models.StatusCheck, 0, len(r.rows))
	for i := range r.rows {
		c := r.rows[i]
		out = append(out, &c)
	}
	slices.SortStableFunc(out, func(a, b *models.StatusCheck) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
