package models

// Defaults used whenever a session has no active character profile. The
// original UI scattered these literals across components; here they live in
// one table so "no profile yet" is an explicit state rather than an accident.
const (
	DefaultGender  = "female"
	DefaultHeight  = "165"
	DefaultWeight  = "50"
	DefaultStyle   = "优雅风"
	DefaultPalette = "经典中性"
	DefaultBudget  = "1000-5000"
)

// DefaultStores are the preferred retailers assumed before the user picks any.
func DefaultStores() []string {
	return []string{"优衣库", "ZARA"}
}

// DefaultBodyData returns the fallback measurements.
func DefaultBodyData() BodyData {
	return BodyData{Height: DefaultHeight, Weight: DefaultWeight}
}

// DefaultPreferences returns the fallback shopping preferences.
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		Style:   DefaultStyle,
		Palette: DefaultPalette,
		Budget:  DefaultBudget,
		Stores:  DefaultStores(),
	}
}

// Effective fills a copy of s with defaults for every profile-derived field
// that was never set, so downstream consumers (prompts, recommendations)
// never have to carry their own fallbacks.
func (s UserSelections) Effective() UserSelections {
	if s.Gender == "" {
		s.Gender = DefaultGender
	}
	if s.BodyData == nil {
		b := DefaultBodyData()
		s.BodyData = &b
	} else {
		b := *s.BodyData
		if b.Height == "" {
			b.Height = DefaultHeight
		}
		if b.Weight == "" {
			b.Weight = DefaultWeight
		}
		s.BodyData = &b
	}
	if s.Preferences == nil {
		p := DefaultPreferences()
		s.Preferences = &p
	} else {
		p := *s.Preferences
		if p.Style == "" {
			p.Style = DefaultStyle
		}
		if p.Palette == "" {
			p.Palette = DefaultPalette
		}
		if p.Budget == "" {
			p.Budget = DefaultBudget
		}
		if len(p.Stores) == 0 {
			p.Stores = DefaultStores()
		}
		s.Preferences = &p
	}
	return s
}
