package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Officialsalim12/Vitafood360-Company/config"
	profileControllers "github.com/Officialsalim12/Vitafood360-Company/controllers/profile"
	"github.com/Officialsalim12/Vitafood360-Company/middleware"
)

func SetupProfileRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	api := r.Group("/api")
	api.Use(middleware.ValidateToken(cfg))
	{
		api.GET("/profile", profileControllers.GetProfile(db))
		api.PUT("/profile", profileControllers.UpdateProfile(db))
	}
}
