package userdata

import (
	"context"
	"slices"
	"sync"

	"github.com/mdrrmo4516/mobile2026/internal/common"
	"github.com/mdrrmo4516/mobile2026/internal/server/models"
)

type MemoryRepository struct {
	mu         sync.RWMutex
	plans      map[string]models.EmergencyPlan
	checklists map[string]models.Checklist
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		plans:      make(map[string]models.EmergencyPlan),
		checklists: make(map[string]models.Checklist),
	}
}

func (r *MemoryRepository) UpsertPlan(_ context.Context, plan *models.EmergencyPlan) (*models.EmergencyPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *plan
	stored.PlanData = slices.Clone(plan.PlanData)
	if cur, ok := r.plans[plan.UserID]; ok {
		stored.ID = cur.ID
	}
	r.plans[plan.UserID] = stored
	return &stored, nil
}

func (r *MemoryRepository) GetPlan(_ context.Context, userID string) (*models.EmergencyPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.plans[userID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &p, nil
}

func (r *MemoryRepository) UpsertChecklist(_ context.Context, list *models.Checklist) (*models.Checklist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *list
	stored.ChecklistData = slices.Clone(list.ChecklistData)
	if cur, ok := r.checklists[list.UserID]; ok {
		stored.ID = cur.ID
	}
	r.checklists[list.UserID] = stored
	return &stored, nil
}

func (r *MemoryRepository) GetChecklist(_ context.Context, userID string) (*models.Checklist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.checklists[userID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &c, nil
}
