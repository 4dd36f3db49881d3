package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Officialsalim12/Vitafood360-Company/cart"
	"github.com/Officialsalim12/Vitafood360-Company/config"
)

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, logger *zap.Logger) {
	carts := cart.NewRegistry()

	// Public auth routes (no middleware)
	SetupAuthRoutes(r, cfg)

	// Storefront: products, cart, marketing
	SetupProductRoutes(r, db)
	SetupCartRoutes(r, db, carts)
	SetupMarketingRoutes(r, db, cfg, logger)

	// Checkout, webhook and post-payment redirects
	SetupMonimeRoutes(r, db, cfg, logger)

	// Orders and profile (JWT-protected where user-scoped)
	SetupOrderRoutes(r, db, cfg, logger)
	SetupProfileRoutes(r, db, cfg)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, db, cfg)
}
