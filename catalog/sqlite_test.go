package catalog

import (
	"encoding/json"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tptassets/spritegen"
)

// openStore opens a fresh database with a clock advancing one second per call.
func openStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "nested", "assets.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	clock := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return store
}

func TestCatalog_OpenCreatesDirectories(t *testing.T) {
	assert := assert.New(t)

	dbPath := filepath.Join(t.TempDir(), "a", "b", "assets.db")
	store, err := Open(dbPath)
	assert.NoError(err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(err)
}

func TestCatalog_SaveAndRetrieve(t *testing.T) {
	assert := assert.New(t)
	store := openStore(t)

	id, err := store.SaveAsset(Asset{AssetType: "debuff_icon", Name: "Poison Debuff Icon"})
	assert.NoError(err)
	assert.NotEmpty(id)

	a, err := store.Asset(id)
	assert.NoError(err)
	assert.Equal("debuff_icon", a.AssetType)
	assert.Equal("Poison Debuff Icon", a.Name)
	assert.False(a.CreatedAt.IsZero())
	assert.Nil(a.QualityScore)

	_, err = store.Asset("missing")
	assert.ErrorIs(err, ErrNotFound)
}

func TestCatalog_SaveValidates(t *testing.T) {
	assert := assert.New(t)
	store := openStore(t)

	_, err := store.SaveAsset(Asset{Name: "nameless type"})
	assert.Error(err)
	_, err = store.SaveAsset(Asset{AssetType: "ruin"})
	assert.Error(err)
}

func TestCatalog_ReplaceKeepsCreatedAt(t *testing.T) {
	assert := assert.New(t)
	store := openStore(t)

	id, err := store.SaveAsset(Asset{AssetType: "ruin", Name: "Wall Ruin"})
	assert.NoError(err)
	first, err := store.Asset(id)
	assert.NoError(err)

	score := 7
	first.Name = "Old Wall Ruin"
	first.QualityScore = &score
	_, err = store.SaveAsset(first)
	assert.NoError(err)

	second, err := store.Asset(id)
	assert.NoError(err)
	assert.Equal("Old Wall Ruin", second.Name)
	assert.True(first.CreatedAt.Equal(second.CreatedAt))
	assert.True(second.UpdatedAt.After(first.UpdatedAt))
	if assert.NotNil(second.QualityScore) {
		assert.Equal(7, *second.QualityScore)
	}

	all, err := store.Assets(Filter{})
	assert.NoError(err)
	assert.Len(all, 1)
}

func TestCatalog_Filter(t *testing.T) {
	assert := assert.New(t)
	store := openStore(t)

	for _, a := range []Asset{
		{AssetType: "debuff_icon", Name: "Poison Debuff Icon"},
		{AssetType: "debuff_icon", Name: "Fear Debuff Icon"},
		{AssetType: "ruin", Name: "Wall Ruin"},
		{AssetType: "ruin", Name: "Pillar Ruin"},
	} {
		_, err := store.SaveAsset(a)
		assert.NoError(err)
	}

	all, err := store.Assets(Filter{})
	assert.NoError(err)
	assert.Len(all, 4)
	// Most recently updated first.
	assert.Equal("Pillar Ruin", all[0].Name)
	assert.Equal("Poison Debuff Icon", all[3].Name)

	ruins, err := store.Assets(Filter{Type: "ruin"})
	assert.NoError(err)
	assert.Len(ruins, 2)

	found, err := store.Assets(Filter{Search: "Debuff"})
	assert.NoError(err)
	assert.Len(found, 2)

	found, err = store.Assets(Filter{Type: "ruin", Search: "Wall"})
	assert.NoError(err)
	if assert.Len(found, 1) {
		assert.Equal("Wall Ruin", found[0].Name)
	}

	limited, err := store.Assets(Filter{Limit: 3})
	assert.NoError(err)
	assert.Len(limited, 3)
}

func TestCatalog_Delete(t *testing.T) {
	assert := assert.New(t)
	store := openStore(t)

	id, err := store.SaveAsset(Asset{AssetType: "ruin", Name: "Statue Ruin"})
	assert.NoError(err)

	assert.NoError(store.DeleteAsset(id))
	assert.ErrorIs(store.DeleteAsset(id), ErrNotFound)

	all, err := store.Assets(Filter{})
	assert.NoError(err)
	assert.Empty(all)
}

func TestCatalog_Settings(t *testing.T) {
	assert := assert.New(t)
	store := openStore(t)

	_, ok, err := store.Setting("theme")
	assert.NoError(err)
	assert.False(ok)

	assert.NoError(store.SaveSetting("theme", "dark"))
	assert.NoError(store.SaveSetting("theme", "light"))

	v, ok, err := store.Setting("theme")
	assert.NoError(err)
	assert.True(ok)
	assert.Equal("light", v)
}

func TestCatalog_FromDescriptor(t *testing.T) {
	assert := assert.New(t)
	store := openStore(t)

	gen := spritegen.NewRuinGenerator(spritegen.Options{Rand: rand.New(rand.NewSource(3))})
	desc, err := gen.Generate(spritegen.RuinConfig{RuinType: spritegen.Pillar, Material: "marble"})
	assert.NoError(err)

	a, err := FromDescriptor("ruin", desc, "/tmp/pillar.png", 321)
	assert.NoError(err)
	assert.Equal(desc.ID, a.ID)
	assert.Equal("Pillar Ruin", a.Name)

	id, err := store.SaveAsset(a)
	assert.NoError(err)
	assert.Equal(desc.ID, id)

	got, err := store.Asset(id)
	assert.NoError(err)
	assert.Equal("/tmp/pillar.png", got.FilePath)
	assert.EqualValues(321, got.FileSize)

	var md spritegen.Metadata
	assert.NoError(json.Unmarshal(got.Metadata, &md))
	assert.Equal("marble", md.Material)
	assert.Equal(spritegen.Version, md.Version)

	var cfg spritegen.RuinConfig
	assert.NoError(json.Unmarshal(got.Config, &cfg))
	assert.Equal(spritegen.Pillar, cfg.RuinType)
}
