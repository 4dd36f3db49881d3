package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Officialsalim12/Vitafood360-Company/cart"
	cartControllers "github.com/Officialsalim12/Vitafood360-Company/controllers/cart"
)

func SetupCartRoutes(r *gin.Engine, db *gorm.DB, carts *cart.Registry) {
	group := r.Group("/cart")
	{
		group.GET("", cartControllers.GetCart(carts))
		group.POST("/items", cartControllers.AddCartItem(db, carts))
		group.PUT("/items/:product_id", cartControllers.UpdateCartItem(carts))
		group.DELETE("/items/:product_id", cartControllers.DeleteCartItem(carts))
		group.DELETE("", cartControllers.ClearCart(carts))
		group.POST("/open", cartControllers.SetCartOpen(carts, true))
		group.POST("/close", cartControllers.SetCartOpen(carts, false))
	}
}
