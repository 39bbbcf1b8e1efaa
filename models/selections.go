package models

// Caps for the two bounded multi-selects in the wizard.
const (
	MaxAccessoryCategories = 3
	MaxWardrobePicks       = 4
)

// UserSelections is the live selection session: everything the wizard has
// accumulated for the current fitting attempt, plus the profile data copied
// through when a character was selected.
type UserSelections struct {
	ProfileID           string           `json:"profileId,omitempty"`
	Gender              string           `json:"gender,omitempty"`
	Hairstyle           string           `json:"hairstyle,omitempty"`
	Makeup              string           `json:"makeup,omitempty"`
	Scene               string           `json:"scene,omitempty"`
	AccessoryCategories []string         `json:"accessoryCategories,omitempty"`
	OldClothes          []string         `json:"oldClothes,omitempty"` // selected wardrobe item IDs
	FaceImage           string           `json:"faceImage,omitempty"`
	BodyData            *BodyData        `json:"bodyData,omitempty"`
	Preferences         *UserPreferences `json:"preferences,omitempty"`
	SavedResultImage    string           `json:"savedResultImage,omitempty"`
}

// toggleBounded implements the shared multi-select rule: toggling a selected
// id removes it; adding past the cap drops the oldest entries from the front
// so the most recently added max survive.
func toggleBounded(ids []string, id string, max int) []string {
	for i, v := range ids {
		if v == id {
			return append(append([]string{}, ids[:i]...), ids[i+1:]...)
		}
	}
	ids = append(append([]string{}, ids...), id)
	if len(ids) > max {
		ids = ids[len(ids)-max:]
	}
	return ids
}

// ToggleAccessoryCategory toggles an accessory category id, capped at 3.
func (s *UserSelections) ToggleAccessoryCategory(id string) {
	s.AccessoryCategories = toggleBounded(s.AccessoryCategories, id, MaxAccessoryCategories)
}

// ToggleWardrobeItem toggles a wardrobe item id, capped at 4.
func (s *UserSelections) ToggleWardrobeItem(id string) {
	s.OldClothes = toggleBounded(s.OldClothes, id, MaxWardrobePicks)
}

// ClearWardrobePicks empties the wardrobe multi-select unconditionally.
func (s *UserSelections) ClearWardrobePicks() {
	s.OldClothes = nil
}

// FromProfile returns a fresh session seeded from a character profile,
// discarding any wizard choices made so far.
func FromProfile(p CharacterProfile) UserSelections {
	body := p.BodyData
	prefs := p.Preferences
	return UserSelections{
		ProfileID:   p.ID,
		Gender:      p.Gender,
		FaceImage:   p.FaceImage,
		BodyData:    &body,
		Preferences: &prefs,
	}
}
