// Package store persists the four top-level collections as independent JSON
// documents. Every save re-serializes and overwrites the whole collection;
// last write wins. There is no schema version: a document that no longer
// decodes is silently replaced by the collection's default value on load.
package store

import (
	"context"

	"github.com/stylelab/fitting-lab/models"
)

// Document keys, carried over from the original deployment so existing data
// keeps loading.
const (
	KeyProfiles   = "style_lab_character_profiles"
	KeySelections = "style_lab_current_selections"
	KeyOwnedItems = "style_lab_owned_items"
	KeyArchive    = "style_lab_archive"
)

// Snapshot is the result of a startup load: all four collections, each
// independently defaulted if its document was missing or corrupt.
type Snapshot struct {
	Profiles []models.CharacterProfile
	Session  models.UserSelections
	Wardrobe []models.ExistingItem
	Archive  []models.SavedOutfit
}

// Store is the durable backing for the four collections. Load never fails as
// a whole; a decode failure for one key yields that collection's zero value
// without affecting the others.
type Store interface {
	Load(ctx context.Context) Snapshot
	SaveProfiles(ctx context.Context, profiles []models.CharacterProfile) error
	SaveSession(ctx context.Context, session models.UserSelections) error
	SaveWardrobe(ctx context.Context, items []models.ExistingItem) error
	SaveArchive(ctx context.Context, outfits []models.SavedOutfit) error
}
