package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID              uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string           `gorm:"not null" json:"name"`
	Slug            string           `gorm:"uniqueIndex;not null" json:"slug"`
	Description     string           `json:"description"`
	Price           decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"price"`
	OldPrice        *decimal.Decimal `gorm:"type:decimal(10,2)" json:"old_price,omitempty"`
	CategoryID      uint             `gorm:"not null;index" json:"category_id"`
	Category        Category         `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	ImageURL        string           `json:"image_url"`
	AvailableSizes  string           `json:"available_sizes"`  // comma separated, e.g. "S, M, L"
	AvailableColors string           `json:"available_colors"` // comma separated
	Stock           int              `gorm:"default:0" json:"stock"`
	IsActive        bool             `gorm:"default:true" json:"is_active"`
	Rating          decimal.Decimal  `gorm:"type:decimal(3,2);default:0" json:"rating"`
	ReviewsCount    int              `gorm:"default:0" json:"reviews_count"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// DiscountPercent is non-zero only when the old price is above the
// current one.
func (p *Product) DiscountPercent() int {
	if p.OldPrice == nil || !p.OldPrice.GreaterThan(p.Price) {
		return 0
	}
	diff := p.OldPrice.Sub(p.Price).Div(*p.OldPrice).Mul(decimal.NewFromInt(100))
	return int(diff.Round(0).IntPart())
}
