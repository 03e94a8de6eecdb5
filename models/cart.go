package models

import "time"

type Cart struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	SessionKey string     `gorm:"uniqueIndex;size:40" json:"session_key"` // Enforces ONE cart per session
	Items      []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// CartItem lines are unique per (cart, product, size, color); the add
// operation merges quantities into an existing line instead of creating
// a duplicate row. The composite index backs that up under concurrent
// identical adds.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CartID    uint      `gorm:"index;uniqueIndex:idx_cart_line" json:"cart_id"`
	ProductID uint      `gorm:"uniqueIndex:idx_cart_line" json:"product_id"`
	Product   Product   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	Size      string    `gorm:"size:10;uniqueIndex:idx_cart_line" json:"size"`
	Color     string    `gorm:"size:50;uniqueIndex:idx_cart_line" json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
