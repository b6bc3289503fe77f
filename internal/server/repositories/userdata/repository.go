package userdata

import (
	"context"

	"github.com/mdrrmo4516/mobile2026/internal/server/models"
)

// Repository keeps one emergency plan and one checklist per user.
// Upserts replace the stored document and keep the original row id.
type Repository interface {
	UpsertPlan(ctx context.Context, plan *models.EmergencyPlan) (*models.EmergencyPlan, error)
	GetPlan(ctx context.Context, userID string) (*models.EmergencyPlan, error)
	UpsertChecklist(ctx context.Context, list *models.Checklist) (*models.Checklist, error)
	GetChecklist(ctx context.Context, userID string) (*models.Checklist, error)
}
