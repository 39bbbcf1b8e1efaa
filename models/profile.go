package models

// BodyData holds free-text body measurements. Height and weight are required
// by the profile editor; the rest are optional. Values are kept as the user
// typed them, no unit or range validation.
type BodyData struct {
	Height   string `json:"height"`
	Weight   string `json:"weight"`
	Chest    string `json:"chest,omitempty"`
	Waist    string `json:"waist,omitempty"`
	Hip      string `json:"hip,omitempty"`
	Shoulder string `json:"shoulder,omitempty"`
}

// UserPreferences captures the shopping taste attached to a profile. Style and
// palette are expected to come from the catalog option lists but any string is
// accepted.
type UserPreferences struct {
	Style   string   `json:"style"`
	Palette string   `json:"palette"`
	Budget  string   `json:"budget"`
	Stores  []string `json:"stores,omitempty"`
}

// CharacterProfile is one saved character identity. Profiles are created or
// overwritten wholesale by the editor, never patched field by field.
type CharacterProfile struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Gender      string          `json:"gender"` // "male" or "female"
	FaceImage   string          `json:"faceImage,omitempty"`
	BodyData    BodyData        `json:"bodyData"`
	Preferences UserPreferences `json:"preferences"`
	Timestamp   string          `json:"timestamp"`
}
