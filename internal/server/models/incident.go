package models

import "time"

// IncidentStatus is the triage state of a report.
type IncidentStatus string

const (
	IncidentNew        IncidentStatus = "new"
	IncidentInProgress IncidentStatus = "in-progress"
	IncidentResolved   IncidentStatus = "resolved"
)

// Valid reports whether s is one of the known statuses.
func (s IncidentStatus) Valid() bool {
	switch s {
	case IncidentNew, IncidentInProgress, IncidentResolved:
		return true
	}
	return false
}

// IncidentImage is one attached photo, carried inline as a data URL.
type IncidentImage struct {
	// ID is the client-side identifier some clients attach; kept verbatim.
	ID   *float64 `json:"id,omitempty"`
	Data string   `json:"data"`
	Name *string  `json:"name,omitempty"`
	Size *int64   `json:"size,omitempty"`
}

// Incident is the canonical incident record every submission converges to.
type Incident struct {
	ID            string          `json:"id"`
	IncidentType  string          `json:"incident_type"`
	Date          string          `json:"date"`
	Time          string          `json:"time"`
	Latitude      float64         `json:"latitude"`
	Longitude     float64         `json:"longitude"`
	Description   string          `json:"description"`
	ReporterPhone *string         `json:"reporter_phone"`
	Images        []IncidentImage `json:"images"`
	InternalNotes string          `json:"internal_notes"`
	Status        IncidentStatus  `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

// IncidentFilter narrows the administrative incident listing.
type IncidentFilter struct {
	Status IncidentStatus
	// Query matches incident type, description or reporter phone, case-insensitively.
	Query string
	Limit int
}

// IncidentUpdate carries the administrative mutations. Nil fields are left alone.
type IncidentUpdate struct {
	Status        *IncidentStatus
	InternalNotes *string
}
