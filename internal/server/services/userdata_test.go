package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mdrrmo4516/mobile2026/internal/common"
	"github.com/mdrrmo4516/mobile2026/internal/logging"
	"github.com/mdrrmo4516/mobile2026/internal/server/repositories/statuschecks"
	"github.com/mdrrmo4516/mobile2026/internal/server/repositories/userdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserDataService_Plan(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(epoch)
	s := NewUserDataService(userdata.NewMemoryRepository(), clock, logging.Nop())

	got, err := s.GetPlan(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, got)

	first, err := s.SavePlan(ctx, "u1", json.RawMessage(`{"meeting_point": "plaza"}`))
	require.NoError(t, err)
	assert.Equal(t, epoch, first.UpdatedAt)

	clock.Advance(time.Hour)
	second, err := s.SavePlan(ctx, "u1", json.RawMessage(`{"meeting_point": "church"}`))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "upsert keeps the row id")
	assert.Equal(t, epoch.Add(time.Hour), second.UpdatedAt)

	got, err = s.GetPlan(ctx, "u1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"meeting_point": "church"}`, string(got.PlanData))

	other, err := s.GetPlan(ctx, "u2")
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestUserDataService_PlanMustBeObject(t *testing.T) {
	s := NewUserDataService(userdata.NewMemoryRepository(), nil, logging.Nop())
	for _, body := range []string{`[]`, `"text"`, `null`, `{`} {
		_, err := s.SavePlan(context.Background(), "u1", json.RawMessage(body))
		assert.ErrorIs(t, err, common.ErrInvalidInput, body)
	}
}

func TestUserDataService_Checklist(t *testing.T) {
	ctx := context.Background()
	s := NewUserDataService(userdata.NewMemoryRepository(), clockwork.NewFakeClockAt(epoch), logging.Nop())

	got, err := s.GetChecklist(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, got)

	saved, err := s.SaveChecklist(ctx, "u1", json.RawMessage(`[{"id": 1, "checked": true}]`))
	require.NoError(t, err)
	assert.Equal(t, "u1", saved.UserID)

	got, err = s.GetChecklist(ctx, "u1")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id": 1, "checked": true}]`, string(got.ChecklistData))

	for _, body := range []string{`{}`, `[1, 2]`, `[null]`, `null`} {
		_, err := s.SaveChecklist(ctx, "u1", json.RawMessage(body))
		assert.ErrorIs(t, err, common.ErrInvalidInput, body)
	}
}

func TestStatusService(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(epoch)
	s := NewStatusService(statuschecks.NewMemoryRepository(), clock)

	_, err := s.Record(ctx, "  ")
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = s.Record(ctx, "android-1")
	require.NoError(t, err)
	clock.Advance(time.Second)
	_, err = s.Record(ctx, "ios-7")
	require.NoError(t, err)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "ios-7", list[0].ClientName)
}

func TestGoBagChecklist(t *testing.T) {
	items := GoBagChecklist()
	require.Len(t, items, 27)

	essential := 0
	for i, it := range items {
		assert.Equal(t, i+1, it.ID)
		if it.Essential {
			essential++
		}
	}
	assert.Equal(t, 20, essential)

	items[0].Item = "changed"
	assert.Equal(t, "Valid IDs (Photocopy)", GoBagChecklist()[0].Item)
}
