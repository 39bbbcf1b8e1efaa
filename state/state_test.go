package state

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylelab/fitting-lab/models"
	"github.com/stylelab/fitting-lab/store"
)

func newTestState(t *testing.T) *State {
	t.Helper()
	fs, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return Load(context.Background(), fs)
}

func TestSaveProfileSeedsSession(t *testing.T) {
	st := newTestState(t)
	ctx := context.Background()

	saved, err := st.SaveProfile(ctx, models.CharacterProfile{
		Name:   "小美",
		Gender: "female",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(saved.ID, "char-"))
	assert.NotEmpty(t, saved.Timestamp)

	session := st.Session()
	assert.Equal(t, saved.ID, session.ProfileID)
	assert.Equal(t, "female", session.Gender)
	assert.Empty(t, session.Hairstyle)
}

func TestSaveProfileOverwriteKeepsPosition(t *testing.T) {
	st := newTestState(t)
	ctx := context.Background()

	first, err := st.SaveProfile(ctx, models.CharacterProfile{Name: "一号"})
	require.NoError(t, err)
	_, err = st.SaveProfile(ctx, models.CharacterProfile{Name: "二号"})
	require.NoError(t, err)

	// Saving with an existing id overwrites in place instead of duplicating.
	first.Name = "一号改"
	_, err = st.SaveProfile(ctx, first)
	require.NoError(t, err)

	profiles := st.Profiles()
	require.Len(t, profiles, 2)
	assert.Equal(t, "二号", profiles[0].Name)
	assert.Equal(t, "一号改", profiles[1].Name)
}

func TestSelectProfileReseedsSession(t *testing.T) {
	st := newTestState(t)
	ctx := context.Background()

	saved, err := st.SaveProfile(ctx, models.CharacterProfile{Name: "小美", Gender: "female"})
	require.NoError(t, err)

	st.UpdateSession(ctx, func(sel *models.UserSelections) {
		sel.Hairstyle = "h1"
	})

	_, err = st.SelectProfile(ctx, saved.ID)
	require.NoError(t, err)
	assert.Empty(t, st.Session().Hairstyle)

	_, err = st.SelectProfile(ctx, "char-missing")
	assert.Error(t, err)
}

func TestWardrobeAddAndDelete(t *testing.T) {
	st := newTestState(t)
	ctx := context.Background()

	first, err := st.AddWardrobeItem(ctx, models.ExistingItem{Category: models.CategoryTop, Image: "a.jpg"})
	require.NoError(t, err)
	second, err := st.AddWardrobeItem(ctx, models.ExistingItem{Category: models.CategoryShoes, Image: "b.jpg"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(first.ID, "item-"))
	// Unnamed items fall back to their category.
	assert.Equal(t, models.CategoryTop, first.Name)

	items := st.Wardrobe()
	require.Len(t, items, 2)
	assert.Equal(t, second.ID, items[0].ID)

	require.NoError(t, st.DeleteWardrobeItem(ctx, first.ID))
	items = st.Wardrobe()
	require.Len(t, items, 1)
	assert.Equal(t, second.ID, items[0].ID)

	_, ok := st.WardrobeItem(first.ID)
	assert.False(t, ok)
}

func TestAppendArchiveNewestFirst(t *testing.T) {
	st := newTestState(t)
	ctx := context.Background()

	a, err := st.AppendArchive(ctx, "a.jpg")
	require.NoError(t, err)
	b, err := st.AppendArchive(ctx, "b.jpg")
	require.NoError(t, err)
	c, err := st.AppendArchive(ctx, "c.jpg")
	require.NoError(t, err)

	archive := st.Archive()
	require.Len(t, archive, 3)
	assert.Equal(t, []string{c.ID, b.ID, a.ID},
		[]string{archive[0].ID, archive[1].ID, archive[2].ID})
}

func TestAppendArchiveFreezesSelections(t *testing.T) {
	st := newTestState(t)
	ctx := context.Background()

	st.UpdateSession(ctx, func(sel *models.UserSelections) {
		sel.Hairstyle = "h1"
		sel.Preferences = &models.UserPreferences{Style: "街头潮流", Palette: "多巴胺撞色"}
	})

	outfit, err := st.AppendArchive(ctx, "result.jpg")
	require.NoError(t, err)

	assert.Equal(t, "街头潮流造型", outfit.Title)
	assert.Equal(t, "多巴胺撞色 • 拟合存档", outfit.Category)
	assert.Equal(t, "result.jpg", outfit.Selections.SavedResultImage)

	// Later session edits do not leak into the frozen entry.
	st.UpdateSession(ctx, func(sel *models.UserSelections) {
		sel.Hairstyle = "h2"
	})
	got, ok := st.ArchiveItem(outfit.ID)
	require.True(t, ok)
	assert.Equal(t, "h1", got.Selections.Hairstyle)

	_, ok = st.ArchiveItem("arc-missing")
	assert.False(t, ok)
}

func TestAppendArchiveDefaultTitles(t *testing.T) {
	st := newTestState(t)

	outfit, err := st.AppendArchive(context.Background(), "x.jpg")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultStyle+"造型", outfit.Title)
	assert.Equal(t, models.DefaultPalette+" • 拟合存档", outfit.Category)
}

// flakyStore lets a test fail collection writes on demand.
type flakyStore struct {
	*store.FileStore
	failWrites bool
}

func (f *flakyStore) SaveProfiles(ctx context.Context, profiles []models.CharacterProfile) error {
	if f.failWrites {
		return fmt.Errorf("disk full")
	}
	return f.FileStore.SaveProfiles(ctx, profiles)
}

func (f *flakyStore) SaveWardrobe(ctx context.Context, items []models.ExistingItem) error {
	if f.failWrites {
		return fmt.Errorf("disk full")
	}
	return f.FileStore.SaveWardrobe(ctx, items)
}

func (f *flakyStore) SaveArchive(ctx context.Context, outfits []models.SavedOutfit) error {
	if f.failWrites {
		return fmt.Errorf("disk full")
	}
	return f.FileStore.SaveArchive(ctx, outfits)
}

func TestFailedWriteLeavesMemoryUnchanged(t *testing.T) {
	fs, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	flaky := &flakyStore{FileStore: fs}
	st := Load(context.Background(), flaky)
	ctx := context.Background()

	item, err := st.AddWardrobeItem(ctx, models.ExistingItem{Category: models.CategoryTop})
	require.NoError(t, err)

	flaky.failWrites = true

	_, err = st.AddWardrobeItem(ctx, models.ExistingItem{Category: models.CategoryShoes})
	assert.Error(t, err)
	assert.Len(t, st.Wardrobe(), 1)

	assert.Error(t, st.DeleteWardrobeItem(ctx, item.ID))
	_, ok := st.WardrobeItem(item.ID)
	assert.True(t, ok)

	_, err = st.AppendArchive(ctx, "img.jpg")
	assert.Error(t, err)
	assert.Empty(t, st.Archive())

	_, err = st.SaveProfile(ctx, models.CharacterProfile{Name: "小美"})
	assert.Error(t, err)
	assert.Empty(t, st.Profiles())

	// Once the store recovers, the same mutations go through.
	flaky.failWrites = false
	_, err = st.AppendArchive(ctx, "img.jpg")
	require.NoError(t, err)
	assert.Len(t, st.Archive(), 1)
}

func TestStateSurvivesReload(t *testing.T) {
	fs, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	st := Load(ctx, fs)
	saved, err := st.SaveProfile(ctx, models.CharacterProfile{Name: "小美"})
	require.NoError(t, err)
	_, err = st.AddWardrobeItem(ctx, models.ExistingItem{Category: models.CategoryTop})
	require.NoError(t, err)
	_, err = st.AppendArchive(ctx, "img.jpg")
	require.NoError(t, err)

	reloaded := Load(ctx, fs)
	require.Len(t, reloaded.Profiles(), 1)
	assert.Equal(t, saved.ID, reloaded.Profiles()[0].ID)
	assert.Len(t, reloaded.Wardrobe(), 1)
	assert.Len(t, reloaded.Archive(), 1)
	assert.Equal(t, saved.ID, reloaded.Session().ProfileID)
}
