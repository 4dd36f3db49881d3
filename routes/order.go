package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Officialsalim12/Vitafood360-Company/config"
	orderControllers "github.com/Officialsalim12/Vitafood360-Company/controllers/order"
	"github.com/Officialsalim12/Vitafood360-Company/middleware"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, logger *zap.Logger) {
	api := r.Group("/api")
	api.Use(middleware.ValidateToken(cfg))
	{
		api.POST("/orders", orderControllers.CreateOrder(db, logger))
		api.GET("/orders", orderControllers.GetUserOrders(db))
	}
}
