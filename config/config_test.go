package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Ixollozi/clothing-shop/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.SiteConfig{}))
	return db
}

func writeConfigFile(t *testing.T, body string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	t.Setenv("CONFIG_PATH", path)
}

func TestDefaultsWhenNothingConfigured(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "absent.json"))

	cfg, err := New(setupTestDB(t))
	require.NoError(t, err)

	s := cfg.Get()
	assert.Equal(t, "Fashion Store", s.Store.Name)
	assert.Equal(t, 30, s.Cart.StaleAfterDays)
	assert.True(t, s.Catalog.ShowPlaceholders)
}

func TestFileOverridesDefaults(t *testing.T) {
	writeConfigFile(t, `{"store": {"name": "Trendy"}, "cart": {"stale_after_days": 7, "sweep_interval_minutes": 5}}`)

	cfg, err := New(setupTestDB(t))
	require.NoError(t, err)

	s := cfg.Get()
	assert.Equal(t, "Trendy", s.Store.Name)
	assert.Equal(t, 7, s.Cart.StaleAfterDays)
	assert.Equal(t, 5, s.Cart.SweepIntervalMinutes)
	// Sections the file does not mention keep their defaults.
	assert.Equal(t, "info@fashionstore.uz", s.Contact.Email)
}

func TestDBOverridesFile(t *testing.T) {
	writeConfigFile(t, `{"store": {"name": "From File"}}`)

	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.SiteConfig{
		Section: "store",
		Value:   `{"name": "From DB"}`,
	}).Error)

	cfg, err := New(db)
	require.NoError(t, err)
	assert.Equal(t, "From DB", cfg.Get().Store.Name)
}

func TestMalformedDBSectionIsSkipped(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "absent.json"))

	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.SiteConfig{Section: "store", Value: `{not json`}).Error)
	require.NoError(t, db.Create(&models.SiteConfig{Section: "contact", Value: `{"phone": "+998 90 000 00 00"}`}).Error)
	require.NoError(t, db.Create(&models.SiteConfig{Section: "unknown", Value: `{}`}).Error)

	cfg, err := New(db)
	require.NoError(t, err)

	s := cfg.Get()
	assert.Equal(t, "Fashion Store", s.Store.Name, "malformed row falls back, not fails")
	assert.Equal(t, "+998 90 000 00 00", s.Contact.Phone)
}

func TestMalformedFileIsAnError(t *testing.T) {
	writeConfigFile(t, `{broken`)

	_, err := New(setupTestDB(t))
	assert.Error(t, err)
}

func TestReloadPicksUpNewRows(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "absent.json"))

	db := setupTestDB(t)
	cfg, err := New(db)
	require.NoError(t, err)
	require.Equal(t, 8, cfg.Get().Catalog.PopularLimit)

	require.NoError(t, db.Create(&models.SiteConfig{
		Section: "catalog",
		Value:   `{"show_placeholders": false, "popular_limit": 12}`,
	}).Error)

	require.NoError(t, cfg.Reload())
	s := cfg.Get()
	assert.Equal(t, 12, s.Catalog.PopularLimit)
	assert.False(t, s.Catalog.ShowPlaceholders)
}

func TestKnownSection(t *testing.T) {
	assert.True(t, KnownSection("store"))
	assert.True(t, KnownSection("cart"))
	assert.False(t, KnownSection("payments"))
	assert.False(t, KnownSection(""))
}
