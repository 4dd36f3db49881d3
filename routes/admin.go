package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Officialsalim12/Vitafood360-Company/config"
	orderControllers "github.com/Officialsalim12/Vitafood360-Company/controllers/order"
	productControllers "github.com/Officialsalim12/Vitafood360-Company/controllers/product"
	"github.com/Officialsalim12/Vitafood360-Company/middleware"
)

func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	admin := r.Group("/admin")
	admin.Use(middleware.ValidateAPIKey(cfg))
	{
		admin.POST("/products", productControllers.CreateProduct(db))
		admin.PUT("/products/:id", productControllers.UpdateProduct(db))
		admin.DELETE("/products/:id", productControllers.DeleteProduct(db))
		admin.GET("/products/export", productControllers.ExportProductsToExcel(db))

		admin.GET("/orders", orderControllers.GetAllOrders(db))
		admin.GET("/orders/export", orderControllers.ExportOrdersToExcel(db))
		admin.GET("/orders/:orderID", orderControllers.GetOrderByID(db))
		admin.GET("/orders-ws", orderControllers.OrderWebSocketHandler)
	}
}
