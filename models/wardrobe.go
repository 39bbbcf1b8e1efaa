package models

// Wardrobe item categories. Closed set, matching the original app's labels.
const (
	CategoryTop       = "上衣"
	CategoryBottom    = "下装"
	CategoryShoes     = "鞋子"
	CategoryAccessory = "配饰"
)

var wardrobeCategories = []string{CategoryTop, CategoryBottom, CategoryShoes, CategoryAccessory}

// ValidCategory reports whether c is one of the four wardrobe categories.
func ValidCategory(c string) bool {
	for _, v := range wardrobeCategories {
		if v == c {
			return true
		}
	}
	return false
}

// WardrobeCategories returns the closed category list in display order.
func WardrobeCategories() []string {
	out := make([]string, len(wardrobeCategories))
	copy(out, wardrobeCategories)
	return out
}

// ExistingItem is one owned wardrobe entry. Items are created via
// upload-and-categorize and deleted individually, never edited in place.
type ExistingItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"` // defaults to the category label
	Image       string `json:"image"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
}
