package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ixollozi/clothing-shop/config"
	"github.com/Ixollozi/clothing-shop/notifier"
)

// SetupRoutes is the single entry-point that wires up the storefront,
// cart/order and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, n notifier.Notifier) {
	// Public catalog + contact form
	SetupStoreRoutes(r, db, cfg, n)

	// Session cart and checkout
	SetupOrderRoutes(r, db, n)

	// Back-office (API-key protected)
	SetupAdminRoutes(r, db, cfg, n)
}
