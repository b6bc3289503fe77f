package userdata

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mdrrmo4516/mobile2026/internal/common"
	"github.com/mdrrmo4516/mobile2026/internal/dbx"
	"github.com/mdrrmo4516/mobile2026/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) UpsertPlan(ctx context.Context, plan *models.EmergencyPlan) (*models.EmergencyPlan, error) {
	query :=
		`INSERT INTO emergency_plans (id, user_id, plan_data, updated_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id) DO UPDATE SET plan_data = EXCLUDED.plan_data, updated_at = EXCLUDED.updated_at
		 RETURNING id, user_id, plan_data, updated_at
		 `

	out := &models.EmergencyPlan{}
	var data []byte
	err := r.db.QueryRowContext(ctx, query, plan.ID, plan.UserID, string(plan.PlanData), plan.UpdatedAt).
		Scan(&out.ID, &out.UserID, &data, &out.UpdatedAt)
	if err != nil {
		return nil, dbx.Wrap(err)
	}
	out.PlanData = data
	return out, nil
}

func (r *PostgresRepository) GetPlan(ctx context.Context, userID string) (*models.EmergencyPlan, error) {
	query := `SELECT id, user_id, plan_data, updated_at FROM emergency_plans WHERE user_id = $1`

	out := &models.EmergencyPlan{}
	var data []byte
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&out.ID, &out.UserID, &data, &out.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, dbx.Wrap(err)
	}
	out.PlanData = data
	return out, nil
}

func (r *PostgresRepository) UpsertChecklist(ctx context.Context, list *models.Checklist) (*models.Checklist, error) {
	query :=
		`INSERT INTO checklists (id, user_id, checklist_data, updated_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id) DO UPDATE SET checklist_data = EXCLUDED.checklist_data, updated_at = EXCLUDED.updated_at
		 RETURNING id, user_id, checklist_data, updated_at
		 `

	out := &models.Checklist{}
	var data []byte
	err := r.db.QueryRowContext(ctx, query, list.ID, list.UserID, string(list.ChecklistData), list.UpdatedAt).
		Scan(&out.ID, &out.UserID, &data, &out.UpdatedAt)
	if err != nil {
		return nil, dbx.Wrap(err)
	}
	out.ChecklistData = data
	return out, nil
}

func (r *PostgresRepository) GetChecklist(ctx context.Context, userID string) (*models.Checklist, error) {
	query := `SELECT id, user_id, checklist_data, updated_at FROM checklists WHERE user_id = $1`

	out := &models.Checklist{}
	var data []byte
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&out.ID, &out.UserID, &data, &out.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, dbx.Wrap(err)
	}
	out.ChecklistData = data
	return out, nil
}
