package janitor

import (
	"fmt"
	"testing"
	"time"

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
	require.NoError(t, db.AutoMigrate(&models.Cart{}, &models.CartItem{}))
	return db
}

func newCart(t *testing.T, db *gorm.DB, sessionKey string, age time.Duration) *models.Cart {
	t.Helper()
	cart := models.Cart{SessionKey: sessionKey}
	require.NoError(t, db.Create(&cart).Error)
	require.NoError(t, db.Create(&models.CartItem{CartID: cart.ID, ProductID: 1, Quantity: 1}).Error)
	if age > 0 {
		// UpdateColumn skips the gorm hooks that would refresh the timestamp.
		require.NoError(t, db.Model(&cart).UpdateColumn("updated_at", time.Now().Add(-age)).Error)
	}
	return &cart
}

func TestSweepRemovesOnlyStaleCarts(t *testing.T) {
	db := setupTestDB(t)
	stale := newCart(t, db, "stale", 40*24*time.Hour)
	fresh := newCart(t, db, "fresh", 0)

	s := New(db, 30*24*time.Hour, time.Hour)
	require.NoError(t, s.Sweep())

	var carts []models.Cart
	require.NoError(t, db.Find(&carts).Error)
	require.Len(t, carts, 1)
	assert.Equal(t, fresh.ID, carts[0].ID)

	var items int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("cart_id = ?", stale.ID).Count(&items).Error)
	assert.Equal(t, int64(0), items, "items of a removed cart must go with it")

	require.NoError(t, db.Model(&models.CartItem{}).Where("cart_id = ?", fresh.ID).Count(&items).Error)
	assert.Equal(t, int64(1), items)
}

func TestSweepEmptyTableIsNoop(t *testing.T) {
	db := setupTestDB(t)
	s := New(db, 30*24*time.Hour, time.Hour)
	assert.NoError(t, s.Sweep())
}

func TestMaybeSweepThrottles(t *testing.T) {
	db := setupTestDB(t)
	newCart(t, db, "stale-1", 40*24*time.Hour)

	s := New(db, 30*24*time.Hour, time.Hour)
	s.MaybeSweep()

	var count int64
	require.NoError(t, db.Model(&models.Cart{}).Count(&count).Error)
	require.Equal(t, int64(0), count)

	// A second stale cart inside the interval survives until it elapses.
	newCart(t, db, "stale-2", 40*24*time.Hour)
	s.MaybeSweep()
	require.NoError(t, db.Model(&models.Cart{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	s.mu.Lock()
	s.lastRun = time.Now().Add(-2 * time.Hour)
	s.mu.Unlock()
	s.MaybeSweep()
	require.NoError(t, db.Model(&models.Cart{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
