package services

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mdrrmo4516/mobile2026/internal/common"
	"github.com/mdrrmo4516/mobile2026/internal/logging"
	"github.com/mdrrmo4516/mobile2026/internal/server/models"
	"github.com/mdrrmo4516/mobile2026/internal/server/repositories/userdata"
)

// UserDataService keeps each user's emergency plan and go-bag checklist.
type UserDataService struct {
	repo   userdata.Repository
	clock  clockwork.Clock
	logger logging.Logger
}

func NewUserDataService(repo userdata.Repository, clock clockwork.Clock, logger logging.Logger) *UserDataService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &UserDataService{repo: repo, clock: clock, logger: logger.With("module", "userdata")}
}

// SavePlan stores data, which must be a JSON object, as userID's plan.
func (s *UserDataService) SavePlan(ctx context.Context, userID string, data json.RawMessage) (*models.EmergencyPlan, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil || obj == nil {
		return nil, common.NewValidationError("plan_data", common.ErrInvalidInput)
	}

	plan, err := s.repo.UpsertPlan(ctx, &models.EmergencyPlan{
		ID:        uuid.NewString(),
		UserID:    userID,
		PlanData:  data,
		UpdatedAt: s.clock.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	s.logger.Debug(ctx, "emergency plan saved", "user_id", userID)
	return plan, nil
}

// GetPlan returns nil without error when the user has no plan yet.
func (s *UserDataService) GetPlan(ctx context.Context, userID string) (*models.EmergencyPlan, error) {
	plan, err := s.repo.GetPlan(ctx, userID)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, nil
	}
	return plan, err
}

// SaveChecklist stores data, which must be a JSON array of objects.
func (s *UserDataService) SaveChecklist(ctx context.Context, userID string, data json.RawMessage) (*models.Checklist, error) {
	var items []map[string]json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil || items == nil {
		return nil, common.NewValidationError("checklist_data", common.ErrInvalidInput)
	}
	for _, item := range items {
		if item == nil {
			return nil, common.NewValidationError("checklist_data", common.ErrInvalidInput)
		}
	}

	list, err := s.repo.UpsertChecklist(ctx, &models.Checklist{
		ID:            uuid.NewString(),
		UserID:        userID,
		ChecklistData: data,
		UpdatedAt:     s.clock.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	s.logger.Debug(ctx, "checklist saved", "user_id", userID)
	return list, nil
}

// GetChecklist returns nil without error when nothing was saved yet.
func (s *UserDataService) GetChecklist(ctx context.Context, userID string) (*models.Checklist, error) {
	list, err := s.repo.GetChecklist(ctx, userID)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, nil
	}
	return list, err
}
