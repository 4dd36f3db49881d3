package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Officialsalim12/Vitafood360-Company/config"
	monimeControllers "github.com/Officialsalim12/Vitafood360-Company/controllers/monime"
	orderControllers "github.com/Officialsalim12/Vitafood360-Company/controllers/order"
	"github.com/Officialsalim12/Vitafood360-Company/middleware"
)

func SetupMonimeRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, logger *zap.Logger) {
	api := r.Group("/api")
	{
		api.POST("/monime/checkout", monimeControllers.CheckoutHandler(db, cfg, logger))

		// Webhook endpoint: middleware verifies the signature over the raw
		// body before the handler sees the event.
		api.POST("/monime/webhook",
			middleware.MonimeWebhookAuth(cfg, logger),
			monimeControllers.WebhookHandler(db, logger, orderControllers.NotifyPaymentReconciled),
		)

		// Provider posts back to these after the hosted checkout finishes.
		api.GET("/payment/success", monimeControllers.RedirectTo("/payment/success"))
		api.POST("/payment/success", monimeControllers.RedirectTo("/payment/success"))
		api.GET("/payment/cancel", monimeControllers.RedirectTo("/payment/cancel"))
		api.POST("/payment/cancel", monimeControllers.RedirectTo("/payment/cancel"))
	}
}
