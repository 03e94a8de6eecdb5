// Package config implements the site configuration cascade: built-in
// defaults, overridden by config.json, overridden by rows in the
// site_configs table. The result is an explicit injected object; callers
// hold a *Config and call Reload when staff change settings.
package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"

	"gorm.io/gorm"

	"github.com/Ixollozi/clothing-shop/models"
)

type StoreInfo struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ContactInfo struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`
}

type SocialLinks struct {
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
}

type CatalogSettings struct {
	// ShowPlaceholders switches the product listing to the built-in
	// showcase catalog while the real catalog is still empty.
	ShowPlaceholders bool `json:"show_placeholders"`
	PopularLimit     int  `json:"popular_limit"`
}

type CartSettings struct {
	// StaleAfterDays is the idle age after which the janitor removes a
	// cart. SweepIntervalMinutes throttles how often the sweep may run.
	StaleAfterDays       int `json:"stale_after_days"`
	SweepIntervalMinutes int `json:"sweep_interval_minutes"`
}

type Settings struct {
	Store   StoreInfo       `json:"store"`
	Contact ContactInfo     `json:"contact"`
	Social  SocialLinks     `json:"social"`
	Catalog CatalogSettings `json:"catalog"`
	Cart    CartSettings    `json:"cart"`
}

// Config resolves settings through the cascade and caches the merged
// result until Reload is called.
type Config struct {
	mu       sync.RWMutex
	db       *gorm.DB
	filePath string
	current  Settings
}

func Defaults() Settings {
	return Settings{
		Store: StoreInfo{
			Name:        "Fashion Store",
			Title:       "Fashion Store - Online Clothing Store",
			Description: "Quality clothing at affordable prices.",
		},
		Contact: ContactInfo{
			Phone: "+998 (71) 123-45-67",
			Email: "info@fashionstore.uz",
			City:  "Tashkent",
		},
		Catalog: CatalogSettings{
			ShowPlaceholders: true,
			PopularLimit:     8,
		},
		Cart: CartSettings{
			StaleAfterDays:       30,
			SweepIntervalMinutes: 60,
		},
	}
}

// New loads the cascade once. The file path defaults to ./config.json
// and can be overridden with CONFIG_PATH.
func New(db *gorm.DB) (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.json"
	}
	c := &Config{db: db, filePath: path}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// Get returns the current merged settings.
func (c *Config) Get() Settings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// Reload rebuilds the merged settings from defaults, config.json and the
// site_configs table, in that priority order.
func (c *Config) Reload() error {
	merged := Defaults()

	if err := applyFile(&merged, c.filePath); err != nil {
		return err
	}
	if err := applyDB(&merged, c.db); err != nil {
		return err
	}

	c.mu.Lock()
	c.current = merged
	c.mu.Unlock()
	return nil
}

// applyFile overlays config.json onto the settings. A missing file is
// fine; a malformed one is an error.
func applyFile(s *Settings, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, s); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// applyDB overlays the site_configs rows, each row holding the JSON of
// one section. A row with bad JSON is skipped with a log line rather
// than taking the whole config down.
func applyDB(s *Settings, db *gorm.DB) error {
	if db == nil {
		return nil
	}
	var rows []models.SiteConfig
	if err := db.Find(&rows).Error; err != nil {
		return fmt.Errorf("load site_configs: %w", err)
	}
	for _, row := range rows {
		var target any
		switch row.Section {
		case "store":
			target = &s.Store
		case "contact":
			target = &s.Contact
		case "social":
			target = &s.Social
		case "catalog":
			target = &s.Catalog
		case "cart":
			target = &s.Cart
		default:
			continue
		}
		if err := json.Unmarshal([]byte(row.Value), target); err != nil {
			log.Printf("config: skipping malformed section %q: %v", row.Section, err)
		}
	}
	return nil
}

// KnownSection reports whether a section name participates in the
// cascade; admin upserts are limited to these.
func KnownSection(name string) bool {
	switch name {
	case "store", "contact", "social", "catalog", "cart":
		return true
	}
	return false
}
