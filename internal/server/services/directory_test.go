package services

import (
	"context"
	"errors"
	"testing"

	"github.com/mdrrmo4516/mobile2026/internal/common"
	"github.com/mdrrmo4516/mobile2026/internal/logging"
	"github.com/mdrrmo4516/mobile2026/internal/server/models"
	"github.com/mdrrmo4516/mobile2026/internal/server/repositories/hotlines"
	"github.com/mdrrmo4516/mobile2026/internal/server/repositories/locations"
	"github.com/mdrrmo4516/mobile2026/internal/server/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDirectory(t *testing.T) (*HotlineService, *LocationService) {
	t.Helper()
	h := hotlines.NewMemoryRepository()
	l := locations.NewMemoryRepository()
	coord := seed.NewCoordinator(h, l, logging.Nop(), nil)
	return NewHotlineService(h, coord, logging.Nop()), NewLocationService(l, coord, logging.Nop())
}

type failingSeeder struct{ err error }

func (f failingSeeder) Ensure(context.Context, seed.Dataset) error { return f.err }

func TestHotlineService_ListSeeds(t *testing.T) {
	hs, _ := newDirectory(t)

	for range 3 {
		list, err := hs.List(context.Background())
		require.NoError(t, err)
		assert.Len(t, list, 16)
	}
}

func TestHotlineService_ListPropagatesSeedFailure(t *testing.T) {
	hs := NewHotlineService(hotlines.NewMemoryRepository(), failingSeeder{err: common.ErrStoreUnavailable}, logging.Nop())
	_, err := hs.List(context.Background())
	assert.ErrorIs(t, err, common.ErrStoreUnavailable)
}

func TestHotlineService_CRUD(t *testing.T) {
	ctx := context.Background()
	hs, _ := newDirectory(t)

	created, err := hs.Create(ctx, HotlineInput{Label: "Barangay Tanod", Number: "0900-000-0000", Category: "local"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	_, err = hs.Create(ctx, HotlineInput{Label: "Barangay Tanod", Number: "0900-000-0000", Category: "other"})
	assert.ErrorIs(t, err, common.ErrConflict)

	updated, err := hs.Update(ctx, created.ID, HotlineInput{Label: "Barangay Tanod", Number: "0900-111-1111", Category: "local"})
	require.NoError(t, err)
	assert.Equal(t, "0900-111-1111", updated.Number)

	_, err = hs.Update(ctx, "missing", HotlineInput{Label: "x", Number: "1", Category: "c"})
	assert.ErrorIs(t, err, common.ErrorNotFound)

	require.NoError(t, hs.Delete(ctx, created.ID))
	assert.ErrorIs(t, hs.Delete(ctx, created.ID), common.ErrorNotFound)
}

func TestHotlineService_Validation(t *testing.T) {
	hs, _ := newDirectory(t)

	_, err := hs.Create(context.Background(), HotlineInput{Label: "x", Number: " ", Category: "c"})
	var verr *common.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "number", verr.Field)
}

func TestHotlineService_ValidationReportsFirstBlankField(t *testing.T) {
	hs, _ := newDirectory(t)

	for i := 0; i < 50; i++ {
		_, err := hs.Create(context.Background(), HotlineInput{Label: "", Number: "", Category: ""})
		var verr *common.ValidationError
		require.True(t, errors.As(err, &verr))
		require.Equal(t, "label", verr.Field)
	}

	_, err := hs.Create(context.Background(), HotlineInput{Label: "x", Number: "", Category: ""})
	var verr *common.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "number", verr.Field)
}

func TestLocationService_ListSeedsAndFilters(t *testing.T) {
	ctx := context.Background()
	_, ls := newDirectory(t)

	all, err := ls.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 12)

	hospitals, err := ls.List(ctx, "hospital")
	require.NoError(t, err)
	assert.Len(t, hospitals, 3)

	fire, err := ls.List(ctx, "fire")
	require.NoError(t, err)
	assert.Empty(t, fire)

	unknown, err := ls.List(ctx, "school")
	require.NoError(t, err)
	assert.Empty(t, unknown)
}

func TestLocationService_CreateTakesNextID(t *testing.T) {
	ctx := context.Background()
	_, ls := newDirectory(t)

	_, err := ls.List(ctx, "")
	require.NoError(t, err)

	loc, err := ls.Create(ctx, LocationInput{Type: models.LocationFire, Name: "BFP Substation", Address: "Poblacion", Lat: 13.0, Lng: 123.5})
	require.NoError(t, err)
	assert.Equal(t, int64(13), loc.ID)

	_, err = ls.Create(ctx, LocationInput{Type: "school", Name: "Central School"})
	assert.ErrorIs(t, err, common.ErrInvalidLocationType)

	_, err = ls.Create(ctx, LocationInput{Type: models.LocationPolice, Name: ""})
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestLocationService_Update(t *testing.T) {
	ctx := context.Background()
	_, ls := newDirectory(t)
	_, err := ls.List(ctx, "")
	require.NoError(t, err)

	_, err = ls.Update(ctx, 1, models.LocationUpdate{})
	assert.ErrorIs(t, err, common.ErrNoFieldsToUpdate)

	bad := models.LocationType("school")
	_, err = ls.Update(ctx, 1, models.LocationUpdate{Type: &bad})
	assert.ErrorIs(t, err, common.ErrInvalidLocationType)

	capacity := "800 persons"
	got, err := ls.Update(ctx, 1, models.LocationUpdate{Capacity: &capacity})
	require.NoError(t, err)
	require.NotNil(t, got.Capacity)
	assert.Equal(t, capacity, *got.Capacity)

	_, err = ls.Update(ctx, 999, models.LocationUpdate{Capacity: &capacity})
	assert.ErrorIs(t, err, common.ErrorNotFound)

	require.NoError(t, ls.Delete(ctx, 1))
	assert.ErrorIs(t, ls.Delete(ctx, 1), common.ErrorNotFound)
}
