package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Officialsalim12/Vitafood360-Company/cart"
	"github.com/Officialsalim12/Vitafood360-Company/models"
)

// Session carts are keyed by the X-Session-ID header issued at /auth/guest.
func sessionID(c *gin.Context) (string, bool) {
	id := c.GetHeader("X-Session-ID")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-Session-ID header is required"})
		return "", false
	}
	return id, true
}

type cartView struct {
	Items  []cart.Item `json:"items"`
	Count  int         `json:"count"`
	Total  float64     `json:"total"`
	IsOpen bool        `json:"is_open"`
}

func view(c *cart.Cart) cartView {
	return cartView{Items: c.Items(), Count: c.Count(), Total: c.Total(), IsOpen: c.IsOpen()}
}

type addItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// GET /cart
func GetCart(reg *cart.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}
		var v cartView
		reg.With(sid, func(cc *cart.Cart) { v = view(cc) })
		c.JSON(http.StatusOK, v)
	}
}

// POST /cart/items — product details come from our own records, the client
// only names the product and quantity.
func AddCartItem(db *gorm.DB, reg *cart.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}

		var input addItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		var v cartView
		reg.With(sid, func(cc *cart.Cart) {
			cc.AddItem(cart.Item{
				ID:          product.ID,
				Name:        product.Name,
				Price:       product.Price,
				ImageURL:    product.ImageURL,
				Description: product.Description,
			}, input.Quantity)
			v = view(cc)
		})
		c.JSON(http.StatusOK, v)
	}
}

// PUT /cart/items/:product_id
func UpdateCartItem(reg *cart.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}
		id, err := strconv.ParseUint(c.Param("product_id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}
		var input struct {
			Quantity int `json:"quantity"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		var v cartView
		reg.With(sid, func(cc *cart.Cart) {
			cc.UpdateQty(uint(id), input.Quantity)
			v = view(cc)
		})
		c.JSON(http.StatusOK, v)
	}
}

// DELETE /cart/items/:product_id
func DeleteCartItem(reg *cart.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}
		id, err := strconv.ParseUint(c.Param("product_id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}
		var v cartView
		reg.With(sid, func(cc *cart.Cart) {
			cc.RemoveItem(uint(id))
			v = view(cc)
		})
		c.JSON(http.StatusOK, v)
	}
}

// DELETE /cart
func ClearCart(reg *cart.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}
		reg.With(sid, func(cc *cart.Cart) { cc.Clear() })
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// POST /cart/open and POST /cart/close toggle the modal visibility flag.
func SetCartOpen(reg *cart.Registry, open bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}
		var v cartView
		reg.With(sid, func(cc *cart.Cart) {
			if open {
				cc.Open()
			} else {
				cc.Close()
			}
			v = view(cc)
		})
		c.JSON(http.StatusOK, v)
	}
}
