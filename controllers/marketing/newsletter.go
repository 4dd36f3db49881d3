package marketingControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Officialsalim12/Vitafood360-Company/models"
)

type subscribeInput struct {
	Email string `json:"email" binding:"required,email"`
}

// POST /api/newsletter
func Subscribe(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input subscribeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
			return
		}

		var existing models.NewsletterSubscriber
		err := db.Where("email = ?", input.Email).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusOK, gin.H{"message": "Email already subscribed"})
			return
		}
		if err != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe"})
			return
		}

		if err := db.Create(&models.NewsletterSubscriber{Email: input.Email}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Successfully subscribed to newsletter"})
	}
}
