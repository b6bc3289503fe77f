package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mdrrmo4516/mobile2026/internal/common"
	"github.com/mdrrmo4516/mobile2026/internal/server/models"
	"github.com/mdrrmo4516/mobile2026/internal/server/repositories/statuschecks"
)

// StatusCheckLimit caps the heartbeat listing.
const StatusCheckLimit = 1000

// StatusService records client heartbeats.
type StatusService struct {
	repo  statuschecks.Repository
	clock clockwork.Clock
}

func NewStatusService(repo statuschecks.Repository, clock clockwork.Clock) *StatusService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &StatusService{repo: repo, clock: clock}
}

func (s *StatusService) Record(ctx context.Context, clientName string) (*models.StatusCheck, error) {
	if strings.TrimSpace(clientName) == "" {
		return nil, common.NewValidationError("client_name", common.ErrInvalidInput)
	}
	return s.repo.Create(ctx, &models.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  s.clock.Now().UTC(),
	})
}

func (s *StatusService) List(ctx context.Context) ([]*models.StatusCheck, error) {
	return s.repo.List(ctx, StatusCheckLimit)
}
