package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/mdrrmo4516/mobile2026/internal/common"
	"github.com/mdrrmo4516/mobile2026/internal/logging"
	"github.com/mdrrmo4516/mobile2026/internal/server/incidents"
	"github.com/mdrrmo4516/mobile2026/internal/server/models"
	incidentsrepo "github.com/mdrrmo4516/mobile2026/internal/server/repositories/incidents"
)

const (
	// PublicIncidentLimit caps the public feed.
	PublicIncidentLimit = 100
	// AdminIncidentLimit caps the administrative listing.
	AdminIncidentLimit = 500
)

// IncidentRecorder observes accepted submissions.
type IncidentRecorder interface {
	IncidentSubmitted(incidentType string)
}

type IncidentService struct {
	repo       incidentsrepo.Repository
	normalizer *incidents.Normalizer
	recorder   IncidentRecorder
	logger     logging.Logger
}

func NewIncidentService(repo incidentsrepo.Repository, normalizer *incidents.Normalizer, recorder IncidentRecorder, logger logging.Logger) *IncidentService {
	return &IncidentService{
		repo:       repo,
		normalizer: normalizer,
		recorder:   recorder,
		logger:     logger.With("module", "incidents"),
	}
}

// Submit normalizes raw and stores the result. reporter may be nil for
// anonymous submissions.
func (s *IncidentService) Submit(ctx context.Context, raw *incidents.RawIncident, reporter *models.Principal) (*models.Incident, error) {
	incident, err := s.normalizer.Normalize(raw, reporter)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, incident)
	if err != nil {
		return nil, fmt.Errorf("error storing incident: %w", err)
	}

	s.logger.Info(ctx, "incident submitted", "incident_id", created.ID, "type", created.IncidentType)
	if s.recorder != nil {
		s.recorder.IncidentSubmitted(created.IncidentType)
	}
	return created, nil
}

// ListRecent is the public feed, newest first.
func (s *IncidentService) ListRecent(ctx context.Context) ([]*models.Incident, error) {
	return s.repo.List(ctx, models.IncidentFilter{Limit: PublicIncidentLimit})
}

// AdminList filters by status and by a case-insensitive substring over type,
// description and reporter phone. Empty arguments do not filter.
func (s *IncidentService) AdminList(ctx context.Context, status, query string) ([]*models.Incident, error) {
	filter := models.IncidentFilter{
		Query: strings.TrimSpace(query),
		Limit: AdminIncidentLimit,
	}
	if status != "" {
		st := models.IncidentStatus(status)
		if !st.Valid() {
			return nil, common.NewValidationError("status", common.ErrInvalidStatus)
		}
		filter.Status = st
	}
	return s.repo.List(ctx, filter)
}

func (s *IncidentService) Get(ctx context.Context, id string) (*models.Incident, error) {
	return s.repo.Get(ctx, id)
}

// Update applies a triage change. At least one of status and notes must be
// given; status must be a known value.
func (s *IncidentService) Update(ctx context.Context, id string, status, notes *string) (*models.Incident, error) {
	if status == nil && notes == nil {
		return nil, common.NewValidationError("body", common.ErrNoFieldsToUpdate)
	}

	upd := models.IncidentUpdate{InternalNotes: notes}
	if status != nil {
		st := models.IncidentStatus(*status)
		if !st.Valid() {
			return nil, common.NewValidationError("status", common.ErrInvalidStatus)
		}
		upd.Status = &st
	}

	incident, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "incident updated", "incident_id", id, "status", string(incident.Status))
	return incident, nil
}

func (s *IncidentService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info(ctx, "incident deleted", "incident_id", id)
	return nil
}
