package hotlines

import (
	"context"
	"testing"

	"github.com/mdrrmo4516/mobile2026/internal/common"
	"github.com/mdrrmo4516/mobile2026/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_InsertManySkipsNaturalKeyDuplicates(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	n, err := r.InsertMany(ctx, twoRows)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	again := []models.Hotline{
		{ID: "other-id", Label: twoRows[0].Label, Number: twoRows[0].Number, Category: "emergency"},
	}
	n, err = r.InsertMany(ctx, again)
	require.NoError(t, err)
	assert.Zero(t, n)

	count, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMemory_ListSorted(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()
	_, err := r.InsertMany(ctx, []models.Hotline{
		{ID: "1", Label: "PNP", Number: "1", Category: "police"},
		{ID: "2", Label: "BFP", Number: "2", Category: "fire"},
		{ID: "3", Label: "MDRRMO", Number: "3", Category: "emergency"},
	})
	require.NoError(t, err)

	got, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"emergency", "fire", "police"},
		[]string{got[0].Category, got[1].Category, got[2].Category})
}

func TestMemory_CRUD(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	_, err := r.Create(ctx, &models.Hotline{ID: "h1", Label: "RHU", Number: "0927", Category: "medical"})
	require.NoError(t, err)
	_, err = r.Create(ctx, &models.Hotline{ID: "h2", Label: "RHU", Number: "0927", Category: "medical"})
	assert.ErrorIs(t, err, common.ErrConflict)

	_, err = r.Create(ctx, &models.Hotline{ID: "h2", Label: "PDMDH", Number: "0985", Category: "medical"})
	require.NoError(t, err)

	_, err = r.Update(ctx, &models.Hotline{ID: "h2", Label: "RHU", Number: "0927"})
	assert.ErrorIs(t, err, common.ErrConflict)

	got, err := r.Update(ctx, &models.Hotline{ID: "h1", Label: "RHU Pio Duran", Number: "0927", Category: "medical"})
	require.NoError(t, err)
	assert.Equal(t, "RHU Pio Duran", got.Label)

	// old key is free again after the rename
	_, err = r.Create(ctx, &models.Hotline{ID: "h3", Label: "RHU", Number: "0927", Category: "medical"})
	require.NoError(t, err)

	_, err = r.Update(ctx, &models.Hotline{ID: "ghost"})
	assert.ErrorIs(t, err, common.ErrorNotFound)

	require.NoError(t, r.Delete(ctx, "h1"))
	assert.ErrorIs(t, r.Delete(ctx, "h1"), common.ErrorNotFound)
}
