package models

import (
	"encoding/json"
	"time"
)

// EmergencyPlan is the free-form family plan a user keeps, one per user.
type EmergencyPlan struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	PlanData  json.RawMessage `json:"plan_data"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Checklist is a user's go-bag checklist progress, one per user.
type Checklist struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	ChecklistData json.RawMessage `json:"checklist_data"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
