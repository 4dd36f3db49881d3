package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Officialsalim12/Vitafood360-Company/config"
	marketingControllers "github.com/Officialsalim12/Vitafood360-Company/controllers/marketing"
)

func SetupMarketingRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, logger *zap.Logger) {
	api := r.Group("/api")
	{
		api.POST("/newsletter", marketingControllers.Subscribe(db))
		api.POST("/contact", marketingControllers.Contact(db, cfg, logger))
	}
}
