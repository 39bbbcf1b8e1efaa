// Package state owns the in-memory application state: the four persisted
// collections behind a single controller. Handlers never touch the
// collections directly; every mutation goes through a named command which
// updates memory and triggers the matching store write.
package state

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/stylelab/fitting-lab/models"
	"github.com/stylelab/fitting-lab/store"
)

// State is the single source of truth for profiles, the live selection
// session, the wardrobe and the archive.
type State struct {
	mu sync.Mutex

	store    store.Store
	profiles []models.CharacterProfile
	session  models.UserSelections
	wardrobe []models.ExistingItem
	archive  []models.SavedOutfit
}

// Load builds the state from a startup snapshot.
func Load(ctx context.Context, s store.Store) *State {
	snap := s.Load(ctx)
	return &State{
		store:    s,
		profiles: snap.Profiles,
		session:  snap.Session,
		wardrobe: snap.Wardrobe,
		archive:  snap.Archive,
	}
}

// Session returns a copy of the live selection session.
func (st *State) Session() models.UserSelections {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.session
}

// Profiles returns the saved character profiles, newest first.
func (st *State) Profiles() []models.CharacterProfile {
	st.mu.Lock()
	defer st.mu.Unlock()
	out := make([]models.CharacterProfile, len(st.profiles))
	copy(out, st.profiles)
	return out
}

// Wardrobe returns the owned items, newest first.
func (st *State) Wardrobe() []models.ExistingItem {
	st.mu.Lock()
	defer st.mu.Unlock()
	out := make([]models.ExistingItem, len(st.wardrobe))
	copy(out, st.wardrobe)
	return out
}

// Archive returns the saved outfits, newest first.
func (st *State) Archive() []models.SavedOutfit {
	st.mu.Lock()
	defer st.mu.Unlock()
	out := make([]models.SavedOutfit, len(st.archive))
	copy(out, st.archive)
	return out
}

// WardrobeItem looks up one owned item by id.
func (st *State) WardrobeItem(id string) (models.ExistingItem, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for _, item := range st.wardrobe {
		if item.ID == id {
			return item, true
		}
	}
	return models.ExistingItem{}, false
}

// SaveProfile creates or wholesale-overwrites a character profile, then seeds
// a fresh session from it. The session always follows the most recently saved
// profile.
func (st *State) SaveProfile(ctx context.Context, p models.CharacterProfile) (models.CharacterProfile, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if p.ID == "" {
		p.ID = "char-" + uuid.NewString()
	}
	if p.Timestamp == "" {
		p.Timestamp = time.Now().Format("2006-01-02 15:04:05")
	}

	// Build the updated list first and write it through before the in-memory
	// commit, so a failed write leaves memory and disk agreeing.
	updated := make([]models.CharacterProfile, len(st.profiles))
	copy(updated, st.profiles)
	replaced := false
	for i := range updated {
		if updated[i].ID == p.ID {
			updated[i] = p
			replaced = true
			break
		}
	}
	if !replaced {
		updated = append([]models.CharacterProfile{p}, updated...)
	}

	if err := st.store.SaveProfiles(ctx, updated); err != nil {
		return p, err
	}
	st.profiles = updated

	st.session = models.FromProfile(p)
	st.persistSession(ctx)
	return p, nil
}

// SelectProfile seeds a fresh session from an existing profile.
func (st *State) SelectProfile(ctx context.Context, id string) (models.CharacterProfile, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	for _, p := range st.profiles {
		if p.ID == id {
			st.session = models.FromProfile(p)
			st.persistSession(ctx)
			return p, nil
		}
	}
	return models.CharacterProfile{}, fmt.Errorf("profile %s not found", id)
}

// UpdateSession applies a mutation to the live session and persists it.
func (st *State) UpdateSession(ctx context.Context, mutate func(*models.UserSelections)) models.UserSelections {
	st.mu.Lock()
	defer st.mu.Unlock()

	mutate(&st.session)
	st.persistSession(ctx)
	return st.session
}

// AddWardrobeItem registers a newly uploaded item, newest first.
func (st *State) AddWardrobeItem(ctx context.Context, item models.ExistingItem) (models.ExistingItem, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if item.ID == "" {
		item.ID = "item-" + uuid.NewString()
	}
	if item.Name == "" {
		item.Name = item.Category
	}
	updated := append([]models.ExistingItem{item}, st.wardrobe...)
	if err := st.store.SaveWardrobe(ctx, updated); err != nil {
		return item, err
	}
	st.wardrobe = updated
	return item, nil
}

// DeleteWardrobeItem removes one owned item by id.
func (st *State) DeleteWardrobeItem(ctx context.Context, id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	kept := make([]models.ExistingItem, 0, len(st.wardrobe))
	for _, item := range st.wardrobe {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	if err := st.store.SaveWardrobe(ctx, kept); err != nil {
		return err
	}
	st.wardrobe = kept
	return nil
}

// AppendArchive freezes the current session with its rendered image into a
// new archive entry, prepended so the list stays newest-first. No
// de-duplication and no size cap.
func (st *State) AppendArchive(ctx context.Context, image string) (models.SavedOutfit, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	style := models.DefaultStyle
	palette := models.DefaultPalette
	if st.session.Preferences != nil {
		if st.session.Preferences.Style != "" {
			style = st.session.Preferences.Style
		}
		if st.session.Preferences.Palette != "" {
			palette = st.session.Preferences.Palette
		}
	}

	frozen := st.session
	frozen.SavedResultImage = image

	outfit := models.SavedOutfit{
		ID:         "arc-" + uuid.NewString(),
		Title:      style + "造型",
		Category:   palette + " • 拟合存档",
		Image:      image,
		Timestamp:  time.Now().Format("2006-01-02 15:04:05"),
		Selections: frozen,
	}
	updated := append([]models.SavedOutfit{outfit}, st.archive...)
	if err := st.store.SaveArchive(ctx, updated); err != nil {
		return outfit, err
	}
	st.archive = updated
	return outfit, nil
}

// ArchiveItem retrieves one archived outfit by id. Pure lookup, never
// mutates the archive.
func (st *State) ArchiveItem(id string) (models.SavedOutfit, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	for _, o := range st.archive {
		if o.ID == id {
			return o, true
		}
	}
	return models.SavedOutfit{}, false
}

// persistSession writes the session document. Session writes are best-effort:
// a failed write keeps the in-memory session authoritative, mirroring the
// original app where a storage failure never interrupted the flow.
func (st *State) persistSession(ctx context.Context) {
	if err := st.store.SaveSession(ctx, st.session); err != nil {
		log.Printf("Failed to persist session: %v", err)
	}
}
