package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/Ixollozi/clothing-shop/controllers/cart"
	orderControllers "github.com/Ixollozi/clothing-shop/controllers/order"
	"github.com/Ixollozi/clothing-shop/middleware"
	"github.com/Ixollozi/clothing-shop/notifier"
)

// SetupOrderRoutes registers the session-scoped cart and checkout
// endpoints. Every route here runs behind the cart session cookie.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, n notifier.Notifier) {
	cart := r.Group("/cart")
	cart.Use(middleware.CartSession)
	{
		cart.GET("", cartControllers.GetCart(db))
		cart.POST("/items", cartControllers.AddItemHandler(db))
		cart.PUT("/items/:id", cartControllers.UpdateItemHandler(db))
		cart.DELETE("/items/:id", cartControllers.RemoveItemHandler(db))
		cart.DELETE("", cartControllers.ClearCartHandler(db))
	}

	orders := r.Group("/orders")
	orders.Use(middleware.CartSession)
	{
		orders.POST("", orderControllers.CreateOrderHandler(db, n))
		orders.GET("", orderControllers.GetSessionOrders(db))
		orders.GET("/:id", orderControllers.GetSessionOrder(db))
	}
}
