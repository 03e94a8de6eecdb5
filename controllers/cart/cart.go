package cartControllers

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Ixollozi/clothing-shop/models"
)

// GetOrCreateCart returns the session's cart, creating it lazily on the
// first cart interaction.
func GetOrCreateCart(db *gorm.DB, sessionKey string) (*models.Cart, error) {
	var cart models.Cart
	err := db.Where("session_key = ?", sessionKey).First(&cart).Error
	if err == nil {
		return &cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cart = models.Cart{SessionKey: sessionKey}
	if err := db.Create(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddItem puts a product into the cart. A line already holding the same
// (product, size, color) gets its quantity incremented instead of a
// second row being created.
func AddItem(db *gorm.DB, cart *models.Cart, productID uint, quantity int, size, color string) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, models.ErrInvalidQuantity
	}

	var product models.Product
	err := db.Where("id = ? AND is_active = ?", productID, true).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrProductNotFound
		}
		return nil, err
	}

	var item models.CartItem
	err = db.Where("cart_id = ? AND product_id = ? AND size = ? AND color = ?",
		cart.ID, productID, size, color).First(&item).Error
	switch {
	case err == nil:
		item.Quantity += quantity
		if err := db.Save(&item).Error; err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = models.CartItem{
			CartID:    cart.ID,
			ProductID: productID,
			Quantity:  quantity,
			Size:      size,
			Color:     color,
		}
		// The composite unique index turns a concurrent identical add
		// into a constraint error here instead of a duplicate row.
		if err := db.Create(&item).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	if err := touchCart(db, cart.ID); err != nil {
		return nil, err
	}
	item.Product = product
	return &item, nil
}

// UpdateItem overwrites a line's quantity. No merge semantics here.
func UpdateItem(db *gorm.DB, cart *models.Cart, itemID uint, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, models.ErrInvalidQuantity
	}

	var item models.CartItem
	err := db.Where("id = ? AND cart_id = ?", itemID, cart.ID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrItemNotFound
		}
		return nil, err
	}

	item.Quantity = quantity
	if err := db.Save(&item).Error; err != nil {
		return nil, err
	}
	if err := touchCart(db, cart.ID); err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveItem deletes one line. Removing a line that is already gone is
// not an error.
func RemoveItem(db *gorm.DB, cart *models.Cart, itemID uint) error {
	if err := db.Where("id = ? AND cart_id = ?", itemID, cart.ID).Delete(&models.CartItem{}).Error; err != nil {
		return err
	}
	return touchCart(db, cart.ID)
}

// ClearCart drops every line in the cart. Idempotent.
func ClearCart(db *gorm.DB, cartID uint) error {
	if err := db.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error; err != nil {
		return err
	}
	return touchCart(db, cartID)
}

// CartTotals sums the current lines against *live* product prices. A
// catalog price change moves the cart total immediately; only the order
// created at checkout freezes prices.
func CartTotals(db *gorm.DB, cartID uint) (decimal.Decimal, int, error) {
	var items []models.CartItem
	if err := db.Preload("Product").Where("cart_id = ?", cartID).Find(&items).Error; err != nil {
		return decimal.Zero, 0, err
	}

	total := decimal.Zero
	count := 0
	for _, item := range items {
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		count += item.Quantity
	}
	return total, count, nil
}

// touchCart refreshes the cart's updated_at so the janitor's idle clock
// restarts on every mutation.
func touchCart(db *gorm.DB, cartID uint) error {
	return db.Model(&models.Cart{}).Where("id = ?", cartID).
		Update("updated_at", time.Now()).Error
}
