package services

// GoBagItem is one line of the recommended go-bag checklist.
type GoBagItem struct {
	ID        int    `json:"id"`
	Category  string `json:"category"`
	Item      string `json:"item"`
	Essential bool   `json:"essential"`
}

// GoBagChecklist returns the recommended go-bag contents. The slice is fresh
// on every call.
func GoBagChecklist() []GoBagItem {
	return []GoBagItem{
		{1, "Documents", "Valid IDs (Photocopy)", true},
		{2, "Documents", "Insurance documents", true},
		{3, "Documents", "Emergency contact list", true},
		{4, "Documents", "Medical records/prescriptions", true},
		{5, "Water & Food", "Drinking water (3 liters/person)", true},
		{6, "Water & Food", "Canned goods (3-day supply)", true},
		{7, "Water & Food", "Ready-to-eat food", true},
		{8, "Water & Food", "Can opener", false},
		{9, "First Aid", "First aid kit", true},
		{10, "First Aid", "Prescription medications", true},
		{11, "First Aid", "Pain relievers", false},
		{12, "First Aid", "Bandages and antiseptic", false},
		{13, "Tools & Safety", "Flashlight with extra batteries", true},
		{14, "Tools & Safety", "Battery-powered radio", true},
		{15, "Tools & Safety", "Whistle (for signaling)", true},
		{16, "Tools & Safety", "Multi-tool or knife", false},
		{17, "Clothing", "Change of clothes", true},
		{18, "Clothing", "Rain gear/poncho", true},
		{19, "Clothing", "Sturdy shoes", true},
		{20, "Clothing", "Blanket or sleeping bag", false},
		{21, "Communication", "Fully charged power bank", true},
		{22, "Communication", "Phone charger", true},
		{23, "Communication", "Emergency cash (small bills)", true},
		{24, "Hygiene", "Toothbrush and toothpaste", false},
		{25, "Hygiene", "Soap and hand sanitizer", true},
		{26, "Hygiene", "Toilet paper", false},
		{27, "Hygiene", "Face masks", true},
	}
}
