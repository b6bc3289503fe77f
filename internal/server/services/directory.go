package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/mdrrmo4516/mobile2026/internal/common"
	"github.com/mdrrmo4516/mobile2026/internal/logging"
	"github.com/mdrrmo4516/mobile2026/internal/server/models"
	"github.com/mdrrmo4516/mobile2026/internal/server/repositories/hotlines"
	"github.com/mdrrmo4516/mobile2026/internal/server/repositories/locations"
	"github.com/mdrrmo4516/mobile2026/internal/server/seed"
)

// Seeder fills a dataset with defaults when it is empty.
type Seeder interface {
	Ensure(ctx context.Context, dataset seed.Dataset) error
}

// HotlineInput is the full set of editable hotline fields.
type HotlineInput struct {
	Label    string `json:"label"`
	Number   string `json:"number"`
	Category string `json:"category"`
}

func (in HotlineInput) validate() error {
	fields := []struct{ name, value string }{
		{"label", in.Label},
		{"number", in.Number},
		{"category", in.Category},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return common.NewValidationError(f.name, common.ErrInvalidInput)
		}
	}
	return nil
}

// HotlineService manages the hotline directory. Every read seeds first.
type HotlineService struct {
	repo   hotlines.Repository
	seeder Seeder
	logger logging.Logger
}

func NewHotlineService(repo hotlines.Repository, seeder Seeder, logger logging.Logger) *HotlineService {
	return &HotlineService{repo: repo, seeder: seeder, logger: logger.With("module", "hotlines")}
}

func (s *HotlineService) List(ctx context.Context) ([]*models.Hotline, error) {
	if err := s.seeder.Ensure(ctx, seed.Hotlines); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

func (s *HotlineService) Create(ctx context.Context, in HotlineInput) (*models.Hotline, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	h, err := s.repo.Create(ctx, &models.Hotline{
		ID:       uuid.NewString(),
		Label:    in.Label,
		Number:   in.Number,
		Category: in.Category,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "hotline created", "hotline_id", h.ID)
	return h, nil
}

// Update replaces every field of hotline id.
func (s *HotlineService) Update(ctx context.Context, id string, in HotlineInput) (*models.Hotline, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	h, err := s.repo.Update(ctx, &models.Hotline{ID: id, Label: in.Label, Number: in.Number, Category: in.Category})
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "hotline updated", "hotline_id", id)
	return h, nil
}

func (s *HotlineService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info(ctx, "hotline deleted", "hotline_id", id)
	return nil
}

// LocationInput describes a new facility.
type LocationInput struct {
	Type     models.LocationType `json:"type"`
	Name     string              `json:"name"`
	Address  string              `json:"address"`
	Lat      float64             `json:"lat"`
	Lng      float64             `json:"lng"`
	Capacity *string             `json:"capacity"`
	Services *string             `json:"services"`
	Hotline  *string             `json:"hotline"`
}

// LocationService manages the facility directory. Every read seeds first.
type LocationService struct {
	repo   locations.Repository
	seeder Seeder
	logger logging.Logger
}

func NewLocationService(repo locations.Repository, seeder Seeder, logger logging.Logger) *LocationService {
	return &LocationService{repo: repo, seeder: seeder, logger: logger.With("module", "locations")}
}

// List returns the facilities of one type, or all of them for an empty type.
// An unknown type simply matches nothing.
func (s *LocationService) List(ctx context.Context, locationType string) ([]*models.Location, error) {
	if err := s.seeder.Ensure(ctx, seed.Locations); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, models.LocationType(locationType))
}

func (s *LocationService) Create(ctx context.Context, in LocationInput) (*models.Location, error) {
	if !in.Type.Valid() {
		return nil, common.NewValidationError("type", common.ErrInvalidLocationType)
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, common.NewValidationError("name", common.ErrInvalidInput)
	}
	loc, err := s.repo.Create(ctx, &models.Location{
		Type:     in.Type,
		Name:     in.Name,
		Address:  in.Address,
		Lat:      in.Lat,
		Lng:      in.Lng,
		Capacity: in.Capacity,
		Services: in.Services,
		Hotline:  in.Hotline,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "location created", "location_id", loc.ID, "type", string(loc.Type))
	return loc, nil
}

// Update applies the non-nil fields of upd.
func (s *LocationService) Update(ctx context.Context, id int64, upd models.LocationUpdate) (*models.Location, error) {
	if upd.Type != nil && !upd.Type.Valid() {
		return nil, common.NewValidationError("type", common.ErrInvalidLocationType)
	}
	if upd.Empty() {
		return nil, common.NewValidationError("body", common.ErrNoFieldsToUpdate)
	}
	loc, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "location updated", "location_id", id)
	return loc, nil
}

func (s *LocationService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info(ctx, "location deleted", "location_id", id)
	return nil
}
