package models

// SavedOutfit is one archived fitting: the rendered image plus a frozen copy
// of the selections that produced it. Archive entries are append-only and
// ordered newest-first.
type SavedOutfit struct {
	ID         string         `json:"id"`
	Title      string         `json:"title"`
	Category   string         `json:"category"`
	Image      string         `json:"image"`
	Timestamp  string         `json:"timestamp"`
	Selections UserSelections `json:"selections"`
}
