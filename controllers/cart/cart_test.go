package cartControllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Ixollozi/clothing-shop/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// _fk enables foreign key enforcement, which Postgres always has;
	// TranslateError matches the production gorm.Config.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
	))
	return db
}

func newTestProduct(t *testing.T, db *gorm.DB, slug string, price int64) *models.Product {
	t.Helper()
	category := models.Category{Name: "Clothing " + slug, Slug: "clothing-" + slug}
	require.NoError(t, db.Create(&category).Error)

	product := models.Product{
		Name:       "Product " + slug,
		Slug:       slug,
		Price:      decimal.NewFromInt(price),
		CategoryID: category.ID,
		Stock:      10,
		IsActive:   true,
	}
	require.NoError(t, db.Create(&product).Error)
	return &product
}

func TestGetOrCreateCartIsLazyAndUnique(t *testing.T) {
	db := setupTestDB(t)

	first, err := GetOrCreateCart(db, "session-a")
	require.NoError(t, err)

	second, err := GetOrCreateCart(db, "session-a")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	other, err := GetOrCreateCart(db, "session-b")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)
}

func TestAddItemMergesDuplicateTuple(t *testing.T) {
	db := setupTestDB(t)
	product := newTestProduct(t, db, "tee", 100)
	cart, err := GetOrCreateCart(db, "session-a")
	require.NoError(t, err)

	_, err = AddItem(db, cart, product.ID, 2, "M", "black")
	require.NoError(t, err)
	item, err := AddItem(db, cart, product.ID, 3, "M", "black")
	require.NoError(t, err)

	assert.Equal(t, 5, item.Quantity)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count, "duplicate tuple must merge, not add a row")
}

func TestAddItemDifferentVariantMakesNewLine(t *testing.T) {
	db := setupTestDB(t)
	product := newTestProduct(t, db, "tee", 100)
	cart, err := GetOrCreateCart(db, "session-a")
	require.NoError(t, err)

	_, err = AddItem(db, cart, product.ID, 1, "M", "black")
	require.NoError(t, err)
	_, err = AddItem(db, cart, product.ID, 1, "L", "black")
	require.NoError(t, err)
	_, err = AddItem(db, cart, product.ID, 1, "M", "white")
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}

func TestAddItemValidations(t *testing.T) {
	db := setupTestDB(t)
	product := newTestProduct(t, db, "tee", 100)
	inactive := newTestProduct(t, db, "retired", 100)
	require.NoError(t, db.Model(inactive).Update("is_active", false).Error)

	cart, err := GetOrCreateCart(db, "session-a")
	require.NoError(t, err)

	_, err = AddItem(db, cart, product.ID, 0, "", "")
	assert.ErrorIs(t, err, models.ErrInvalidQuantity)

	_, err = AddItem(db, cart, 9999, 1, "", "")
	assert.ErrorIs(t, err, models.ErrProductNotFound)

	_, err = AddItem(db, cart, inactive.ID, 1, "", "")
	assert.ErrorIs(t, err, models.ErrProductNotFound, "inactive products are not addable")
}

func TestUpdateItemOverwritesQuantity(t *testing.T) {
	db := setupTestDB(t)
	product := newTestProduct(t, db, "tee", 100)
	cart, err := GetOrCreateCart(db, "session-a")
	require.NoError(t, err)

	item, err := AddItem(db, cart, product.ID, 5, "M", "black")
	require.NoError(t, err)

	updated, err := UpdateItem(db, cart, item.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Quantity, "update overwrites, no merge")

	_, err = UpdateItem(db, cart, item.ID, 0)
	assert.ErrorIs(t, err, models.ErrInvalidQuantity)
}

func TestUpdateItemScopedToCart(t *testing.T) {
	db := setupTestDB(t)
	product := newTestProduct(t, db, "tee", 100)

	mine, err := GetOrCreateCart(db, "session-a")
	require.NoError(t, err)
	theirs, err := GetOrCreateCart(db, "session-b")
	require.NoError(t, err)

	item, err := AddItem(db, theirs, product.ID, 1, "", "")
	require.NoError(t, err)

	_, err = UpdateItem(db, mine, item.ID, 3)
	assert.ErrorIs(t, err, models.ErrItemNotFound)
}

func TestRemoveAndClearAreIdempotent(t *testing.T) {
	db := setupTestDB(t)
	product := newTestProduct(t, db, "tee", 100)
	cart, err := GetOrCreateCart(db, "session-a")
	require.NoError(t, err)

	item, err := AddItem(db, cart, product.ID, 1, "", "")
	require.NoError(t, err)

	require.NoError(t, RemoveItem(db, cart, item.ID))
	require.NoError(t, RemoveItem(db, cart, item.ID), "second remove is a no-op")

	_, err = AddItem(db, cart, product.ID, 2, "", "")
	require.NoError(t, err)
	require.NoError(t, ClearCart(db, cart.ID))
	require.NoError(t, ClearCart(db, cart.ID))

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestDuplicateLineInsertMapsToConflict(t *testing.T) {
	db := setupTestDB(t)
	product := newTestProduct(t, db, "tee", 100)
	cart, err := GetOrCreateCart(db, "session-a")
	require.NoError(t, err)

	_, err = AddItem(db, cart, product.ID, 1, "M", "black")
	require.NoError(t, err)

	// The loser of two simultaneous identical adds hits the composite
	// unique index instead of merging; that error must read as a
	// duplicate key so the handler can answer 409.
	err = db.Create(&models.CartItem{
		CartID:    cart.ID,
		ProductID: product.ID,
		Quantity:  1,
		Size:      "M",
		Color:     "black",
	}).Error
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	respondCartError(c, err)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDeleteProductRemovesItsCartLines(t *testing.T) {
	db := setupTestDB(t)
	doomed := newTestProduct(t, db, "doomed", 100)
	kept := newTestProduct(t, db, "kept", 250)
	cart, err := GetOrCreateCart(db, "session-a")
	require.NoError(t, err)

	_, err = AddItem(db, cart, doomed.ID, 1, "", "")
	require.NoError(t, err)
	_, err = AddItem(db, cart, kept.ID, 1, "", "")
	require.NoError(t, err)

	// Catalog deletion must not be blocked by carts referencing the
	// product; the lines cascade away instead.
	require.NoError(t, db.Delete(&models.Product{}, doomed.ID).Error)

	var items []models.CartItem
	require.NoError(t, db.Where("cart_id = ?", cart.ID).Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, kept.ID, items[0].ProductID)
}

func TestCartTotalsFollowLivePrice(t *testing.T) {
	db := setupTestDB(t)
	shirt := newTestProduct(t, db, "shirt", 100)
	jeans := newTestProduct(t, db, "jeans", 250)
	cart, err := GetOrCreateCart(db, "session-a")
	require.NoError(t, err)

	_, err = AddItem(db, cart, shirt.ID, 2, "M", "white")
	require.NoError(t, err)
	_, err = AddItem(db, cart, jeans.ID, 1, "L", "blue")
	require.NoError(t, err)

	total, count, err := CartTotals(db, cart.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.True(t, total.Equal(decimal.NewFromInt(450)), "got %s", total)

	// The cart total is never frozen: a catalog price change moves it.
	require.NoError(t, db.Model(shirt).Update("price", decimal.NewFromInt(150)).Error)

	total, count, err = CartTotals(db, cart.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.True(t, total.Equal(decimal.NewFromInt(550)), "got %s", total)
}
