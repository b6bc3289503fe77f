package incidents

import "time"

// stringSource extracts one candidate value; nil means "not supplied here".
type stringSource func(*RawIncident) *string

// coordSource extracts a coordinate pair; ok is false when incomplete.
type coordSource func(*RawIncident) (lat, lng float64, ok bool)

// Chains, highest priority first.
var (
	typeChain = []stringSource{
		func(r *RawIncident) *string { return r.IncidentType },
		func(r *RawIncident) *string { return r.IncidentTypeAlt },
	}
	dateChain = []stringSource{
		func(r *RawIncident) *string { return r.Date },
		fromTimestamp(dateLayout),
	}
	timeChain = []stringSource{
		func(r *RawIncident) *string { return r.Time },
		fromTimestamp(timeLayout),
	}
	descriptionChain = []stringSource{
		func(r *RawIncident) *string { return r.Description },
	}
	phoneChain = []stringSource{
		func(r *RawIncident) *string { return r.ReporterPhone },
		func(r *RawIncident) *string { return r.Phone },
	}
	coordChain = []coordSource{
		flatCoords,
		nestedCoords,
	}
)

// firstString returns the first non-empty value the chain yields.
func firstString(r *RawIncident, chain []stringSource) (string, bool) {
	for _, src := range chain {
		if v := src(r); v != nil && *v != "" {
			return *v, true
		}
	}
	return "", false
}

// firstPresent is firstString for fields where an empty value is still a
// supplied value.
func firstPresent(r *RawIncident, chain []stringSource) (string, bool) {
	for _, src := range chain {
		if v := src(r); v != nil {
			return *v, true
		}
	}
	return "", false
}

func resolveCoords(r *RawIncident) (float64, float64, bool) {
	for _, src := range coordChain {
		if lat, lng, ok := src(r); ok {
			return lat, lng, true
		}
	}
	return 0, 0, false
}

func flatCoords(r *RawIncident) (float64, float64, bool) {
	if r.Latitude == nil || r.Longitude == nil {
		return 0, 0, false
	}
	return *r.Latitude, *r.Longitude, true
}

func nestedCoords(r *RawIncident) (float64, float64, bool) {
	if r.Location == nil || r.Location.Latitude == nil || r.Location.Longitude == nil {
		return 0, 0, false
	}
	return *r.Location.Latitude, *r.Location.Longitude, true
}

// timestampLayouts are tried in order. Layouts without a zone parse as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTimestamp decodes an ISO-8601 style timestamp. Undecodable input is
// reported as absent, never as an error.
func parseTimestamp(s *string) (time.Time, bool) {
	if s == nil || *s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, *s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// fromTimestamp derives a field from the combined timestamp, formatted in the
// timestamp's own offset.
func fromTimestamp(layout string) stringSource {
	return func(r *RawIncident) *string {
		t, ok := parseTimestamp(r.Timestamp)
		if !ok {
			return nil
		}
		v := t.Format(layout)
		return &v
	}
}
