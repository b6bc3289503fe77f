package incidents

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/mdrrmo4516/mobile2026/internal/common"
	"github.com/mdrrmo4516/mobile2026/internal/server/models"
)

type MemoryRepository struct {
	mu   sync.RWMutex
	rows map[string]*models.Incident
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{rows: make(map[string]*models.Incident)}
}

func (r *MemoryRepository) Create(_ context.Context, incident *models.Incident) (*models.Incident, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[incident.ID]; ok {
		return nil, common.ErrConflict
	}
	r.rows[incident.ID] = cloneIncident(incident)
	return incident, nil
}

func (r *MemoryRepository) List(_ context.Context, filter models.IncidentFilter) ([]*models.Incident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(filter.Query))
	out := make([]*models.Incident, 0, len(r.rows))
	for _, inc := range r.rows {
		if filter.Status != "" && inc.Status != filter.Status {
			continue
		}
		if q != "" && !matchesQuery(inc, q) {
			continue
		}
		out = append(out, cloneIncident(inc))
	}

	slices.SortFunc(out, func(a, b *models.Incident) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *MemoryRepository) Get(_ context.Context, id string) (*models.Incident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inc, ok := r.rows[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return cloneIncident(inc), nil
}

func (r *MemoryRepository) Update(_ context.Context, id string, upd models.IncidentUpdate) (*models.Incident, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inc, ok := r.rows[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if upd.Status != nil {
		inc.Status = *upd.Status
	}
	if upd.InternalNotes != nil {
		inc.InternalNotes = *upd.InternalNotes
	}
	return cloneIncident(inc), nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.rows, id)
	return nil
}

func matchesQuery(inc *models.Incident, q string) bool {
	if strings.Contains(strings.ToLower(inc.IncidentType), q) ||
		strings.Contains(strings.ToLower(inc.Description), q) {
		return true
	}
	return inc.ReporterPhone != nil && strings.Contains(strings.ToLower(*inc.ReporterPhone), q)
}

func cloneIncident(in *models.Incident) *models.Incident {
	out := *in
	out.Images = slices.Clone(in.Images)
	if out.Images == nil {
		out.Images = []models.IncidentImage{}
	}
	return &out
}
