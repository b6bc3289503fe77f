package seed

import (
	"github.com/google/uuid"
	"github.com/mdrrmo4516/mobile2026/internal/server/models"
)

type hotlineRow struct{ label, number, category string }

var defaultHotlines = []hotlineRow{
	{"MDRRMO Municipal Disaster Risk Reduction Management Office", "0917-772-5016", "emergency"},
	{"MDRRMO Municipal Disaster Risk Reduction Management Office", "0966-395-6804", "emergency"},
	{"PSO Public Safety Officer", "0946-743-2735", "police"},
	{"Mayor's Office", "0961-690-2026", "local"},
	{"Mayor's Office", "0995-072-9306", "local"},
	{"MSWDO Municipal Social Welfare and Development Office", "0910-122-8971", "social"},
	{"MSWDO Municipal Social Welfare and Development Office", "0919-950-9515", "social"},
	{"BFP Bureau of Fire Protection - Pio Duran Fire Station", "0949-889-7134", "fire"},
	{"BFP Bureau of Fire Protection - Pio Duran Fire Station", "0931-929-3408", "fire"},
	{"PNP Philippine National Police - Pio Duran MPS", "0998-598-5946", "police"},
	{"MARITIME POLICE", "0917-500-2325", "police"},
	{"BJMP Bureau of Jail Management and Penology", "0936-572-9067", "police"},
	{"PCG Philippine Coast Guard - Pio Duran Sub Station", "0970-667-5457", "emergency"},
	{"RHU Rural Health Unit Pio Duran", "0927-943-4663", "medical"},
	{"RHU Rural Health Unit Pio Duran", "0907-640-7701", "medical"},
	{"PDMDH Pio Duran Memorial District Hospital", "0985-317-1769", "medical"},
}

// DefaultHotlines returns the shipped hotline directory with fresh ids.
func DefaultHotlines() []models.Hotline {
	out := make([]models.Hotline, 0, len(defaultHotlines))
	for _, h := range defaultHotlines {
		out = append(out, models.Hotline{
			ID:       uuid.NewString(),
			Label:    h.label,
			Number:   h.number,
			Category: h.category,
		})
	}
	return out
}

func str(s string) *string { return &s }

// DefaultLocations returns the shipped facility directory. The Bureau of
// Fire Protection is filed under government; no default row uses the fire
// type.
func DefaultLocations() []models.Location {
	return []models.Location{
		{ID: 1, Type: models.LocationEvacuation, Name: "Pio Duran Central School", Address: "Poblacion, Pio Duran", Lat: 13.0547, Lng: 123.5214, Capacity: str("500 persons")},
		{ID: 2, Type: models.LocationEvacuation, Name: "Pio Duran National High School", Address: "Barangay Salvacion", Lat: 13.0612, Lng: 123.5289, Capacity: str("800 persons")},
		{ID: 3, Type: models.LocationEvacuation, Name: "Barangay Hall - Rawis", Address: "Barangay Rawis", Lat: 13.0489, Lng: 123.5156, Capacity: str("200 persons")},
		{ID: 4, Type: models.LocationEvacuation, Name: "Covered Court - Malidong", Address: "Barangay Malidong", Lat: 13.0678, Lng: 123.5345, Capacity: str("350 persons")},

		{ID: 5, Type: models.LocationHospital, Name: "Pio Duran Medicare Hospital", Address: "Poblacion, Pio Duran", Lat: 13.0534, Lng: 123.5198, Services: str("24/7 Emergency")},
		{ID: 6, Type: models.LocationHospital, Name: "Barangay Health Center", Address: "Barangay Centro", Lat: 13.0567, Lng: 123.5234, Services: str("Primary Care")},
		{ID: 7, Type: models.LocationHospital, Name: "Albay Provincial Hospital", Address: "Legazpi City (Nearest)", Lat: 13.1391, Lng: 123.7437, Services: str("Full Hospital Services")},

		{ID: 8, Type: models.LocationPolice, Name: "Pio Duran Municipal Police Station", Address: "Poblacion, Pio Duran", Lat: 13.0551, Lng: 123.5208, Hotline: str("166")},
		{ID: 9, Type: models.LocationPolice, Name: "Police Outpost - Rawis", Address: "Barangay Rawis", Lat: 13.0495, Lng: 123.5148, Hotline: str("166")},

		{ID: 10, Type: models.LocationGovernment, Name: "Pio Duran Municipal Hall", Address: "Poblacion, Pio Duran", Lat: 13.0545, Lng: 123.5210, Services: str("Municipal Services")},
		{ID: 11, Type: models.LocationGovernment, Name: "MDRRMO Office", Address: "Poblacion, Pio Duran", Lat: 13.0543, Lng: 123.5206, Services: str("Disaster Response")},
		{ID: 12, Type: models.LocationGovernment, Name: "Bureau of Fire Protection", Address: "Poblacion, Pio Duran", Lat: 13.0549, Lng: 123.5215, Services: str("Fire Emergency")},
	}
}
