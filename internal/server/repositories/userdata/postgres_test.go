package userdata

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mdrrmo4516/mobile2026/internal/common"
	"github.com/mdrrmo4516/mobile2026/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	upsertPlan      = `(?s)^INSERT\s+INTO\s+emergency_plans\s*\(id,\s*user_id,\s*plan_data,\s*updated_at\).*ON\s+CONFLICT\s+\(user_id\)\s+DO\s+UPDATE\s+SET\s+plan_data\s*=\s*EXCLUDED\.plan_data.*RETURNING\s+id,\s*user_id,\s*plan_data,\s*updated_at\s*$`
	getPlan         = `^SELECT\s+id,\s*user_id,\s*plan_data,\s*updated_at\s+FROM\s+emergency_plans\s+WHERE\s+user_id\s*=\s*\$1$`
	upsertChecklist = `(?s)^INSERT\s+INTO\s+checklists\s*\(id,\s*user_id,\s*checklist_data,\s*updated_at\).*ON\s+CONFLICT\s+\(user_id\)\s+DO\s+UPDATE.*RETURNING\s+id,\s*user_id,\s*checklist_data,\s*updated_at\s*$`
	getChecklist    = `^SELECT\s+id,\s*user_id,\s*checklist_data,\s*updated_at\s+FROM\s+checklists\s+WHERE\s+user_id\s*=\s*\$1$`
)

var at = time.Date(2024, 7, 20, 10, 30, 0, 0, time.UTC)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func TestUpsertPlan_KeepsStoredID(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	data := json.RawMessage(`{"meeting_point":"plaza"}`)

	mock.ExpectQuery(upsertPlan).
		WithArgs("new-id", "u1", `{"meeting_point":"plaza"}`, at).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "plan_data", "updated_at"}).
			AddRow("old-id", "u1", []byte(data), at))

	got, err := repo.UpsertPlan(context.Background(), &models.EmergencyPlan{ID: "new-id", UserID: "u1", PlanData: data, UpdatedAt: at})
	require.NoError(t, err)
	assert.Equal(t, "old-id", got.ID)
	assert.JSONEq(t, string(data), string(got.PlanData))
}

func TestGetPlan_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(getPlan).WithArgs("u1").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetPlan(context.Background(), "u1")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestUpsertAndGetChecklist(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	data := json.RawMessage(`{"water":true,"flashlight":false}`)

	mock.ExpectQuery(upsertChecklist).
		WithArgs("c1", "u1", string(data), at).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "checklist_data", "updated_at"}).
			AddRow("c1", "u1", []byte(data), at))
	mock.ExpectQuery(getChecklist).WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "checklist_data", "updated_at"}).
			AddRow("c1", "u1", []byte(data), at))

	_, err := repo.UpsertChecklist(context.Background(), &models.Checklist{ID: "c1", UserID: "u1", ChecklistData: data, UpdatedAt: at})
	require.NoError(t, err)

	got, err := repo.GetChecklist(context.Background(), "u1")
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(got.ChecklistData))
	assert.True(t, got.UpdatedAt.Equal(at))
}
