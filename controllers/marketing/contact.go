package marketingControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Officialsalim12/Vitafood360-Company/config"
	"github.com/Officialsalim12/Vitafood360-Company/models"
)

type contactInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// POST /api/contact — stores the message, then tries to send a notification
// email. Email failures are swallowed and logged; the stored message is the
// source of truth.
func Contact(db *gorm.DB, cfg *config.Config, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input contactInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
			return
		}

		msg := models.ContactMessage{
			Name:    input.Name,
			Email:   input.Email,
			Message: input.Message,
		}
		if err := db.Create(&msg).Error; err != nil {
			logger.Error("failed to save contact message", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save message"})
			return
		}

		if err := sendContactEmail(cfg, input.Name, input.Email, input.Message); err != nil {
			logger.Warn("contact notification email not sent", zap.Error(err))
		}

		c.JSON(http.StatusOK, gin.H{"message": "Message sent successfully"})
	}
}
