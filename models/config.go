package models

import (
	"time"

	"gorm.io/gorm"
)

// SiteConfig stores per-section overrides for the site configuration.
// Value holds the raw JSON of one section; rows here take priority over
// config.json and the built-in defaults.
type SiteConfig struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Section   string    `gorm:"uniqueIndex;not null" json:"section"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TelegramConfig holds the bot credentials and per-event toggles for the
// order notifier. The notifier reads the active row on every send so
// staff edits take effect without a restart.
type TelegramConfig struct {
	ID                    uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	BotToken              string    `json:"bot_token"`
	GroupChatID           int64     `json:"group_chat_id"`
	IsActive              bool      `gorm:"default:false" json:"is_active"`
	NotifyNewOrders       bool      `gorm:"default:true" json:"notify_new_orders"`
	NotifyStatusChanges   bool      `gorm:"default:true" json:"notify_status_changes"`
	NotifyContactMessages bool      `gorm:"default:true" json:"notify_contact_messages"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// ActiveTelegramConfig returns the most recently updated active config,
// or nil when notifications are not set up.
func ActiveTelegramConfig(db *gorm.DB) (*TelegramConfig, error) {
	var cfg TelegramConfig
	err := db.Where("is_active = ?", true).Order("updated_at DESC").First(&cfg).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &cfg, nil
}
