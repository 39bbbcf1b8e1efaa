package models

// PriceComparison is one synthetic marketplace quote for a recommended item.
// URLs are search deep links, constructed but never fetched.
type PriceComparison struct {
	Platform    string `json:"platform"`
	Price       string `json:"price"`
	URL         string `json:"url"`
	IsAvailable bool   `json:"isAvailable"`
}

// Recommendation is a synthesized shoppable suggestion. Recommendations are
// derived per render and never persisted.
type Recommendation struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Category   string            `json:"category"`
	Meta       string            `json:"meta"`
	Price      string            `json:"price"`
	PriceValue int               `json:"priceValue"`
	Image      string            `json:"image"`
	Source     string            `json:"source"` // "AI-NEW" or "USER-OWNED"
	Comparison []PriceComparison `json:"comparison"`
}
