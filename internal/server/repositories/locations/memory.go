package locations

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/mdrrmo4516/mobile2026/internal/common"
	"github.com/mdrrmo4516/mobile2026/internal/server/models"
)

type MemoryRepository struct {
	mu   sync.RWMutex
	rows map[int64]*models.Location
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{rows: make(map[int64]*models.Location)}
}

func (r *MemoryRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rows), nil
}

func (r *MemoryRepository) InsertMany(_ context.Context, rows []models.Location) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var inserted int
	for i := range rows {
		if _, ok := r.rows[rows[i].ID]; ok {
			continue
		}
		l := rows[i]
		r.rows[l.ID] = &l
		inserted++
	}
	return inserted, nil
}

func (r *MemoryRepository) List(_ context.Context, locationType models.LocationType) ([]*models.Location, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Location, 0, len(r.rows))
	for _, l := range r.rows {
		if locationType != "" && l.Type != locationType {
			continue
		}
		c := *l
		out = append(out, &c)
	}
	slices.SortFunc(out, func(a, b *models.Location) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

func (r *MemoryRepository) Create(_ context.Context, loc *models.Location) (*models.Location, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var maxID int64
	for id := range r.rows {
		maxID = max(maxID, id)
	}
	loc.ID = maxID + 1
	c := *loc
	r.rows[c.ID] = &c
	return loc, nil
}

func (r *MemoryRepository) Update(_ context.Context, id int64, upd models.LocationUpdate) (*models.Location, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.rows[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if upd.Type != nil {
		l.Type = *upd.Type
	}
	if upd.Name != nil {
		l.Name = *upd.Name
	}
	if upd.Address != nil {
		l.Address = *upd.Address
	}
	if upd.Lat != nil {
		l.Lat = *upd.Lat
	}
	if upd.Lng != nil {
		l.Lng = *upd.Lng
	}
	if upd.Capacity != nil {
		l.Capacity = upd.Capacity
	}
	if upd.Services != nil {
		l.Services = upd.Services
	}
	if upd.Hotline != nil {
		l.Hotline = upd.Hotline
	}
	out := *l
	return &out, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.rows, id)
	return nil
}
