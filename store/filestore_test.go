package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylelab/fitting-lab/models"
)

func TestFileStoreRoundTrip(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	profiles := []models.CharacterProfile{{ID: "char-1", Name: "小美", Gender: "female"}}
	session := models.UserSelections{ProfileID: "char-1", Hairstyle: "h1", OldClothes: []string{"item-1"}}
	wardrobe := []models.ExistingItem{{ID: "item-1", Name: "白衬衫", Category: models.CategoryTop, Image: "a.jpg"}}
	archive := []models.SavedOutfit{{ID: "arc-1", Title: "优雅风造型", Image: "b.jpg", Selections: session}}

	require.NoError(t, fs.SaveProfiles(ctx, profiles))
	require.NoError(t, fs.SaveSession(ctx, session))
	require.NoError(t, fs.SaveWardrobe(ctx, wardrobe))
	require.NoError(t, fs.SaveArchive(ctx, archive))

	snap := fs.Load(ctx)
	assert.Equal(t, profiles, snap.Profiles)
	assert.Equal(t, session, snap.Session)
	assert.Equal(t, wardrobe, snap.Wardrobe)
	assert.Equal(t, archive, snap.Archive)
}

func TestFileStoreEmptyLoad(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	snap := fs.Load(context.Background())
	assert.Empty(t, snap.Profiles)
	assert.Empty(t, snap.Wardrobe)
	assert.Empty(t, snap.Archive)
	assert.Equal(t, models.UserSelections{}, snap.Session)
}

func TestFileStoreCorruptDocumentIsIsolated(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	profiles := []models.CharacterProfile{{ID: "char-1", Name: "小美"}}
	wardrobe := []models.ExistingItem{{ID: "item-1", Category: models.CategoryShoes}}
	require.NoError(t, fs.SaveProfiles(ctx, profiles))
	require.NoError(t, fs.SaveWardrobe(ctx, wardrobe))
	require.NoError(t, fs.SaveSession(ctx, models.UserSelections{Hairstyle: "h1"}))

	// One document going bad resets only that collection.
	require.NoError(t, os.WriteFile(filepath.Join(dir, KeySelections+".json"), []byte("{not json"), 0644))

	snap := fs.Load(ctx)
	assert.Equal(t, models.UserSelections{}, snap.Session)
	assert.Equal(t, profiles, snap.Profiles)
	assert.Equal(t, wardrobe, snap.Wardrobe)
}

func TestFileStoreLastWriteWins(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, fs.SaveWardrobe(ctx, []models.ExistingItem{{ID: "item-1"}, {ID: "item-2"}}))
	require.NoError(t, fs.SaveWardrobe(ctx, []models.ExistingItem{{ID: "item-3"}}))

	snap := fs.Load(ctx)
	require.Len(t, snap.Wardrobe, 1)
	assert.Equal(t, "item-3", snap.Wardrobe[0].ID)
}
