package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Ixollozi/clothing-shop/config"
	"github.com/Ixollozi/clothing-shop/janitor"
	"github.com/Ixollozi/clothing-shop/middleware"
	"github.com/Ixollozi/clothing-shop/models"
	"github.com/Ixollozi/clothing-shop/notifier"
	"github.com/Ixollozi/clothing-shop/routes"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.ContactMessage{},
		&models.SiteConfig{},
		&models.TelegramConfig{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Site configuration cascade: defaults <- config.json <- DB
	cfg, err := config.New(db)
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}
	settings := cfg.Get()
	log.Printf("🛍️ %s is up (%s)", settings.Store.Name, settings.Store.Title)

	// Telegram notifier; reads its credentials from the DB per send
	n := notifier.NewTelegram(db)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Stale cart janitor: request-triggered with a TTL throttle, plus a
	// fixed-interval background sweep
	sweeper := janitor.New(db,
		time.Duration(settings.Cart.StaleAfterDays)*24*time.Hour,
		time.Duration(settings.Cart.SweepIntervalMinutes)*time.Minute,
	)
	r.Use(middleware.CartJanitor(sweeper))

	stop := make(chan struct{})
	defer close(stop)
	go sweeper.Run(stop)

	// Setup routes
	routes.SetupRoutes(r, db, cfg, n)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{TranslateError: true})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	// TranslateError turns driver duplicate-key failures into
	// gorm.ErrDuplicatedKey so the handlers can answer 409.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}
