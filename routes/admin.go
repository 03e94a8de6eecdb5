package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ixollozi/clothing-shop/config"
	contactControllers "github.com/Ixollozi/clothing-shop/controllers/contact"
	orderControllers "github.com/Ixollozi/clothing-shop/controllers/order"
	productcontroller "github.com/Ixollozi/clothing-shop/controllers/product"
	siteconfigControllers "github.com/Ixollozi/clothing-shop/controllers/siteconfig"
	"github.com/Ixollozi/clothing-shop/middleware"
	"github.com/Ixollozi/clothing-shop/notifier"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-key
// middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, n notifier.Notifier) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("", productcontroller.GetAllProductsAdmin(db))
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productcontroller.CreateCategory(db))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(db))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(db))
		}

		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(db))
			orderAdmin.PUT("/:id/status", orderControllers.UpdateOrderStatusHandler(db, n))
			orderAdmin.GET("/export-excel", orderControllers.ExportOrdersToExcel(db))
			orderAdmin.GET("/ws", orderControllers.OrderWebSocketHandler)
		}

		adminGroup.GET("/contact-messages", contactControllers.GetContactMessages(db))

		configAdmin := adminGroup.Group("/config")
		{
			configAdmin.GET("", siteconfigControllers.GetConfig(cfg))
			configAdmin.PUT("/:section", siteconfigControllers.UpdateSection(db, cfg))
			configAdmin.POST("/reload", siteconfigControllers.ReloadConfig(cfg))
		}

		adminGroup.GET("/telegram-config", siteconfigControllers.GetTelegramConfig(db))
		adminGroup.PUT("/telegram-config", siteconfigControllers.UpdateTelegramConfig(db))
	}
}
