// Package incidents turns incident submissions into canonical records.
//
// Clients changed their submission format over time and offline-queued
// payloads from older clients are still replayed, so each logical field is
// resolved through a fixed-priority chain of extractors. Normalization fails
// only when a chain yields nothing for a field that has no sensible default.
package incidents

import (
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mdrrmo4516/mobile2026/internal/common"
	"github.com/mdrrmo4516/mobile2026/internal/server/models"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// RawLocation is the nested coordinate object newer clients send.
type RawLocation struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// RawImage is an attached photo as submitted.
type RawImage struct {
	ID   *float64 `json:"id"`
	Data string   `json:"data"`
	Name *string  `json:"name"`
	Size *int64   `json:"size"`
}

// RawIncident accepts every known submission shape.
type RawIncident struct {
	IncidentType    *string      `json:"incident_type"`
	IncidentTypeAlt *string      `json:"incidentType"`
	Date            *string      `json:"date"`
	Time            *string      `json:"time"`
	Timestamp       *string      `json:"timestamp"`
	Latitude        *float64     `json:"latitude"`
	Longitude       *float64     `json:"longitude"`
	Location        *RawLocation `json:"location"`
	Description     *string      `json:"description"`
	Images          []RawImage   `json:"images"`
	ReporterPhone   *string      `json:"reporter_phone"`
	Phone           *string      `json:"phone"`
}

// Normalizer builds canonical incident records. It is safe for concurrent use.
type Normalizer struct {
	clock clockwork.Clock
	newID func() string
}

// NewNormalizer returns a Normalizer reading defaults from clock. A nil clock
// means the real clock.
func NewNormalizer(clock clockwork.Clock) *Normalizer {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Normalizer{clock: clock, newID: uuid.NewString}
}

// Normalize maps raw onto a canonical record with status new and empty
// internal notes. When reporter is non-nil its phone is the last fallback for
// the reporter phone.
//
// Errors are *common.ValidationError wrapping common.ErrMissingType,
// common.ErrMissingLocation or common.ErrMissingDescription, checked in that
// order. An empty description is accepted; only a missing one is rejected.
func (n *Normalizer) Normalize(raw *RawIncident, reporter *models.Principal) (*models.Incident, error) {
	incidentType, ok := firstString(raw, typeChain)
	if !ok {
		return nil, common.NewValidationError("incident_type", common.ErrMissingType)
	}

	lat, lng, hasCoords := resolveCoords(raw)

	now := n.clock.Now().UTC()
	date, hasDate := firstString(raw, dateChain)
	clockTime, hasTime := firstString(raw, timeChain)
	if !hasDate {
		date = now.Format(dateLayout)
	}
	if !hasTime {
		clockTime = now.Format(timeLayout)
	}

	if !hasCoords {
		return nil, common.NewValidationError("location", common.ErrMissingLocation)
	}

	description, ok := firstPresent(raw, descriptionChain)
	if !ok {
		return nil, common.NewValidationError("description", common.ErrMissingDescription)
	}

	phones := phoneChain
	if reporter != nil {
		phones = append(phones[:len(phones):len(phones)], func(*RawIncident) *string { return reporter.Phone })
	}
	var reporterPhone *string
	if phone, ok := firstString(raw, phones); ok {
		reporterPhone = &phone
	}

	return &models.Incident{
		ID:            n.newID(),
		IncidentType:  incidentType,
		Date:          date,
		Time:          clockTime,
		Latitude:      lat,
		Longitude:     lng,
		Description:   description,
		ReporterPhone: reporterPhone,
		Images:        convertImages(raw.Images),
		InternalNotes: "",
		Status:        models.IncidentNew,
		CreatedAt:     now,
	}, nil
}

func convertImages(in []RawImage) []models.IncidentImage {
	out := make([]models.IncidentImage, 0, len(in))
	for _, img := range in {
		out = append(out, models.IncidentImage{ID: img.ID, Data: img.Data, Name: img.Name, Size: img.Size})
	}
	return out
}
