package models

// LocationType is the facility category shown on the map.
type LocationType string

const (
	LocationEvacuation LocationType = "evacuation"
	LocationHospital   LocationType = "hospital"
	LocationPolice     LocationType = "police"
	LocationFire       LocationType = "fire"
	LocationGovernment LocationType = "government"
)

// LocationTypes lists the accepted categories in display order.
var LocationTypes = []LocationType{
	LocationEvacuation, LocationHospital, LocationPolice, LocationFire, LocationGovernment,
}

// Valid reports whether t is an accepted category.
func (t LocationType) Valid() bool {
	for _, known := range LocationTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Location is one facility of the map directory.
type Location struct {
	ID       int64        `json:"id"`
	Type     LocationType `json:"type"`
	Name     string       `json:"name"`
	Address  string       `json:"address"`
	Lat      float64      `json:"lat"`
	Lng      float64      `json:"lng"`
	Capacity *string      `json:"capacity"`
	Services *string      `json:"services"`
	Hotline  *string      `json:"hotline"`
}

// LocationUpdate is a partial update; nil fields are left alone.
type LocationUpdate struct {
	Type     *LocationType `json:"type"`
	Name     *string       `json:"name"`
	Address  *string       `json:"address"`
	Lat      *float64      `json:"lat"`
	Lng      *float64      `json:"lng"`
	Capacity *string       `json:"capacity"`
	Services *string       `json:"services"`
	Hotline  *string       `json:"hotline"`
}

// Empty reports whether the update changes nothing.
func (u LocationUpdate) Empty() bool {
	return u.Type == nil && u.Name == nil && u.Address == nil && u.Lat == nil &&
		u.Lng == nil && u.Capacity == nil && u.Services == nil && u.Hotline == nil
}
