package models

// Hotline is one entry of the emergency hotline directory.
type Hotline struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Number   string `json:"number"`
	Category string `json:"category"`
}
