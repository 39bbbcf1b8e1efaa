package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/stylelab/fitting-lab/models"
)

// FileStore keeps each collection as one JSON file under a data directory.
// This is the default backend and mirrors the original app's local storage:
// single user, whole-document writes, no coordination between writers.
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (f *FileStore) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

// readInto decodes one document into v. Missing files and malformed JSON are
// both treated as "no data": v is left at its zero value.
func (f *FileStore) readInto(key string, v interface{}) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		return
	}
	if err := json.Unmarshal(data, v); err != nil {
		// Corrupt document. Fall back to the default value; the next save
		// overwrites it.
		return
	}
}

func (f *FileStore) write(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := os.WriteFile(f.path(key), data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Load reads all four documents, defaulting each one independently.
func (f *FileStore) Load(ctx context.Context) Snapshot {
	var snap Snapshot
	f.readInto(KeyProfiles, &snap.Profiles)
	f.readInto(KeySelections, &snap.Session)
	f.readInto(KeyOwnedItems, &snap.Wardrobe)
	f.readInto(KeyArchive, &snap.Archive)
	return snap
}

func (f *FileStore) SaveProfiles(ctx context.Context, profiles []models.CharacterProfile) error {
	return f.write(KeyProfiles, profiles)
}

func (f *FileStore) SaveSession(ctx context.Context, session models.UserSelections) error {
	return f.write(KeySelections, session)
}

func (f *FileStore) SaveWardrobe(ctx context.Context, items []models.ExistingItem) error {
	return f.write(KeyOwnedItems, items)
}

func (f *FileStore) SaveArchive(ctx context.Context, outfits []models.SavedOutfit) error {
	return f.write(KeyArchive, outfits)
}
