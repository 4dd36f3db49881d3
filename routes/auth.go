package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Officialsalim12/Vitafood360-Company/auth"
	"github.com/Officialsalim12/Vitafood360-Company/config"
)

func SetupAuthRoutes(r *gin.Engine, cfg *config.Config) {
	group := r.Group("/auth")
	{
		group.POST("/guest", auth.CreateGuestSession(cfg))
	}
}
