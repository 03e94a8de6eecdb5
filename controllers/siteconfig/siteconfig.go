package siteconfigControllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Ixollozi/clothing-shop/config"
	"github.com/Ixollozi/clothing-shop/models"
)

// GET /admin/config: the merged view the storefront runs with.
func GetConfig(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cfg.Get())
	}
}

// PUT /admin/config/:section upserts a DB override for one section and
// applies it immediately.
func UpdateSection(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		section := c.Param("section")
		if !config.KnownSection(section) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown config section: " + section})
			return
		}

		var payload map[string]any
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		raw, err := json.Marshal(payload)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid section payload"})
			return
		}

		row := models.SiteConfig{Section: section, Value: string(raw)}
		err = db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "section"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&row).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save config"})
			return
		}

		if err := cfg.Reload(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Saved, but reload failed: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, cfg.Get())
	}
}

// POST /admin/config/reload re-runs the cascade, picking up edits to
// config.json or rows written outside this API.
func ReloadConfig(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := cfg.Reload(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Reload failed: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, cfg.Get())
	}
}

// GET /admin/telegram-config
func GetTelegramConfig(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg, err := models.ActiveTelegramConfig(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load telegram config"})
			return
		}
		if cfg == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "No active telegram config"})
			return
		}
		c.JSON(http.StatusOK, cfg)
	}
}

type TelegramConfigRequest struct {
	BotToken              string `json:"bot_token" binding:"required"`
	GroupChatID           int64  `json:"group_chat_id" binding:"required"`
	IsActive              bool   `json:"is_active"`
	NotifyNewOrders       *bool  `json:"notify_new_orders"`
	NotifyStatusChanges   *bool  `json:"notify_status_changes"`
	NotifyContactMessages *bool  `json:"notify_contact_messages"`
}

// PUT /admin/telegram-config replaces the notifier settings; the
// notifier reads them per send, so this takes effect immediately.
func UpdateTelegramConfig(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TelegramConfigRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cfg := models.TelegramConfig{
			BotToken:              req.BotToken,
			GroupChatID:           req.GroupChatID,
			IsActive:              req.IsActive,
			NotifyNewOrders:       true,
			NotifyStatusChanges:   true,
			NotifyContactMessages: true,
		}
		if req.NotifyNewOrders != nil {
			cfg.NotifyNewOrders = *req.NotifyNewOrders
		}
		if req.NotifyStatusChanges != nil {
			cfg.NotifyStatusChanges = *req.NotifyStatusChanges
		}
		if req.NotifyContactMessages != nil {
			cfg.NotifyContactMessages = *req.NotifyContactMessages
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.TelegramConfig{}).Where("is_active = ?", true).
				Update("is_active", false).Error; err != nil {
				return err
			}
			return tx.Create(&cfg).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save telegram config"})
			return
		}
		c.JSON(http.StatusOK, cfg)
	}
}
