package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ixollozi/clothing-shop/config"
	contactControllers "github.com/Ixollozi/clothing-shop/controllers/contact"
	productcontroller "github.com/Ixollozi/clothing-shop/controllers/product"
	"github.com/Ixollozi/clothing-shop/notifier"
)

// SetupStoreRoutes registers the public catalog and contact endpoints.
func SetupStoreRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, n notifier.Notifier) {
	categories := r.Group("/categories")
	{
		categories.GET("", productcontroller.GetAllCategories(db))
		categories.GET("/:slug", productcontroller.GetCategoryBySlug(db))
	}

	products := r.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(db, cfg))
		products.GET("/popular", productcontroller.GetPopularProducts(db, cfg))
		products.GET("/:slug", productcontroller.GetProductBySlug(db))
	}

	r.POST("/contact", contactControllers.CreateContactMessage(db, n))
}
