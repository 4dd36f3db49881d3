package orderControllers

import (
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Officialsalim12/Vitafood360-Company/models"
)

type OrderItemInput struct {
	ProductID    uint    `json:"id" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity" binding:"required,min=1"`
	SpecialNotes string  `json:"special_notes"`
}

type CreateOrderRequest struct {
	UserID              string           `json:"user_id" binding:"required"`
	Items               []OrderItemInput `json:"items" binding:"required,min=1"`
	DeliveryAddress     string           `json:"delivery_address" binding:"required"`
	PaymentMethod       string           `json:"payment_method"`
	SpecialInstructions string           `json:"special_instructions"`
}

// generateOrderNumber builds the customer-visible reference,
// e.g. VITA-20260901-0042.
func generateOrderNumber() string {
	return fmt.Sprintf("VITA-%s-%04d", time.Now().Format("20060102"), rand.Intn(10000))
}

// POST /api/orders
func CreateOrder(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}

		paymentMethod := req.PaymentMethod
		if paymentMethod == "" {
			paymentMethod = "cash"
		}

		var total float64
		orderItems := make([]models.OrderItem, 0, len(req.Items))
		for _, item := range req.Items {
			total += item.Price * float64(item.Quantity)
			orderItems = append(orderItems, models.OrderItem{
				ProductID:    item.ProductID,
				ProductName:  item.Name,
				ProductPrice: item.Price,
				Quantity:     item.Quantity,
				SpecialNotes: item.SpecialNotes,
			})
		}

		order := models.Order{
			OrderNumber:         generateOrderNumber(),
			UserID:              req.UserID,
			Items:               orderItems,
			TotalAmount:         total,
			DeliveryAddress:     req.DeliveryAddress,
			PaymentMethod:       paymentMethod,
			SpecialInstructions: req.SpecialInstructions,
			Status:              models.OrderStatusPending,
		}

		if err := db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&order).Error
		}); err != nil {
			logger.Error("failed to create order", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}

		broadcastOrderEvent(gin.H{"kind": "order.created", "order": order})

		c.JSON(http.StatusOK, gin.H{
			"message": "Order created successfully",
			"order": gin.H{
				"id":           order.ID,
				"order_number": order.OrderNumber,
				"total_amount": order.TotalAmount,
				"status":       order.Status,
			},
		})
	}
}

// GET /api/orders?user_id=...
func GetUserOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Query("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
			return
		}

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /admin/orders
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /admin/orders/:orderID — numeric id or order number.
func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("orderID")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		var order models.Order
		if err := db.
			Preload("Items").
			Where("id::text = ? OR order_number = ?", id, id).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
