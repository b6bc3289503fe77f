package hotlines

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/mdrrmo4516/mobile2026/internal/common"
	"github.com/mdrrmo4516/mobile2026/internal/server/models"
)

type naturalKey struct{ label, number string }

func keyOf(h *models.Hotline) naturalKey { return naturalKey{h.Label, h.Number} }

type MemoryRepository struct {
	mu   sync.RWMutex
	rows map[string]*models.Hotline
	keys map[naturalKey]string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		rows: make(map[string]*models.Hotline),
		keys: make(map[naturalKey]string),
	}
}

func (r *MemoryRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rows), nil
}

func (r *MemoryRepository) InsertMany(_ context.Context, rows []models.Hotline) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var inserted int
	for i := range rows {
		h := rows[i]
		if _, ok := r.keys[keyOf(&h)]; ok {
			continue
		}
		if _, ok := r.rows[h.ID]; ok {
			continue
		}
		r.put(&h)
		inserted++
	}
	return inserted, nil
}

func (r *MemoryRepository) List(_ context.Context) ([]*models.Hotline, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Hotline, 0, len(r.rows))
	for _, h := range r.rows {
		c := *h
		out = append(out, &c)
	}
	slices.SortFunc(out, func(a, b *models.Hotline) int {
		return cmp.Or(
			cmp.Compare(a.Category, b.Category),
			cmp.Compare(a.Label, b.Label),
			cmp.Compare(a.Number, b.Number),
		)
	})
	return out, nil
}

func (r *MemoryRepository) Create(_ context.Context, h *models.Hotline) (*models.Hotline, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[h.ID]; ok {
		return nil, common.ErrConflict
	}
	if _, ok := r.keys[keyOf(h)]; ok {
		return nil, common.ErrConflict
	}
	c := *h
	r.put(&c)
	return h, nil
}

func (r *MemoryRepository) Update(_ context.Context, h *models.Hotline) (*models.Hotline, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.rows[h.ID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if owner, ok := r.keys[keyOf(h)]; ok && owner != h.ID {
		return nil, common.ErrConflict
	}
	delete(r.keys, keyOf(cur))
	c := *h
	r.put(&c)
	out := c
	return &out, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.rows[id]
	if !ok {
		return common.ErrorNotFound
	}
	delete(r.keys, keyOf(cur))
	delete(r.rows, id)
	return nil
}

func (r *MemoryRepository) put(h *models.Hotline) {
	r.rows[h.ID] = h
	r.keys[keyOf(h)] = h.ID
}
