package monimeControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Officialsalim12/Vitafood360-Company/apperr"
	"github.com/Officialsalim12/Vitafood360-Company/config"
	"github.com/Officialsalim12/Vitafood360-Company/models"
)

// Outbound call to the provider is bounded; there is no retry, the
// idempotency key is the safety net against duplicate sessions.
var httpClient = &http.Client{Timeout: 15 * time.Second}

type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type CheckoutRequest struct {
	ProductID      *uint                  `json:"productId"`
	Quantity       int                    `json:"quantity"`
	Description    string                 `json:"description"`
	AmountOverride *float64               `json:"amountOverride"`
	IdempotencyKey string                 `json:"idempotencyKey"`
	Metadata       map[string]interface{} `json:"metadata"`
	Customer       Customer               `json:"customer"`
}

type LineItem struct {
	Name      string `json:"name"`
	UnitMinor int64  `json:"unitMinor"`
	Quantity  int    `json:"quantity"`
}

type ProductSummary struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

type CheckoutSession struct {
	RedirectURL    string          `json:"redirectUrl"`
	SessionID      string          `json:"sessionId"`
	IdempotencyKey string          `json:"idempotencyKey"`
	Product        *ProductSummary `json:"product,omitempty"`
	LineItem       LineItem        `json:"lineItem"`
	AmountMinor    int64           `json:"amountMinor"`
}

// monimeResponse is the documented session-creation response shape.
type monimeResponse struct {
	Result struct {
		ID          string `json:"id"`
		RedirectURL string `json:"redirectUrl"`
	} `json:"result"`
	Message string `json:"message"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// MinorUnits converts a major-unit amount to minor units, rounding
// fractional cents to the nearest integer rather than truncating.
func MinorUnits(major float64) int64 {
	return decimal.NewFromFloat(major).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// toStringMap keeps string values and stringifies scalars; nested values
// and nulls are dropped so the provider's StringMap constraint holds.
func toStringMap(in map[string]interface{}) map[string]string {
	out := make(map[string]string)
	for k, v := range in {
		switch val := v.(type) {
		case string:
			out[k] = val
		case float64:
			out[k] = decimal.NewFromFloat(val).String()
		case bool:
			out[k] = fmt.Sprintf("%t", val)
		default:
			// objects, arrays, nil: dropped
		}
	}
	return out
}

// CreateCheckoutSession validates req, resolves authoritative pricing and
// opens a hosted checkout session with Monime. idemKey may be empty, in
// which case a fresh key is generated.
func CreateCheckoutSession(db *gorm.DB, cfg *config.Config, logger *zap.Logger, req CheckoutRequest, idemKey string) (*CheckoutSession, error) {
	if req.Customer.Name == "" || req.Customer.Phone == "" || req.Customer.Address == "" {
		return nil, apperr.Validation("Customer details are required")
	}

	hasProductID := req.ProductID != nil && *req.ProductID > 0
	hasOverride := req.AmountOverride != nil && *req.AmountOverride > 0
	if !hasProductID && !hasOverride {
		return nil, apperr.Validation("Provide a valid productId or amountOverride")
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if hasProductID && quantity < 1 {
		return nil, apperr.Validation("quantity must be >= 1")
	}

	if err := cfg.CheckMonime(); err != nil {
		logger.Error("monime credentials not configured")
		return nil, apperr.Internal("Payment system not configured. Please contact support.", err)
	}

	// Resolve the line item. Product pricing always comes from our own
	// records, never from the client.
	var (
		itemName  string
		unitMinor int64
		product   *ProductSummary
	)
	if hasProductID {
		var dbProduct models.Product
		if err := db.Select("id", "name", "price").First(&dbProduct, *req.ProductID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, apperr.NotFound("Product not found")
			}
			return nil, apperr.Internal("Failed to fetch product", err)
		}
		itemName = dbProduct.Name
		if itemName == "" {
			itemName = req.Description
		}
		if itemName == "" {
			itemName = "Product"
		}
		unitMinor = MinorUnits(dbProduct.Price)
		product = &ProductSummary{ID: dbProduct.ID, Name: dbProduct.Name, UnitPrice: dbProduct.Price, Quantity: quantity}
	} else {
		itemName = req.Description
		if itemName == "" {
			itemName = "Cart Checkout"
		}
		unitMinor = MinorUnits(*req.AmountOverride)
		quantity = 1
	}

	formattedPhone := NormalizePhone(req.Customer.Phone)

	// Caller metadata first, identity fields after so they always win.
	metadata := toStringMap(req.Metadata)
	metadata["customerName"] = req.Customer.Name
	metadata["customerPhone"] = formattedPhone
	metadata["customerAddress"] = req.Customer.Address
	if product != nil {
		metadata["productId"] = fmt.Sprintf("%d", product.ID)
		metadata["productName"] = product.Name
	} else {
		metadata["productName"] = itemName
	}

	sessionName := req.Description
	if sessionName == "" {
		if product != nil {
			sessionName = product.Name
		} else {
			sessionName = "Product Purchase"
		}
	}

	appURL := strings.TrimRight(cfg.AppURL, "/")
	payload := map[string]interface{}{
		"name":       sessionName,
		"successUrl": appURL + "/api/payment/success",
		"cancelUrl":  appURL + "/api/payment/cancel",
		"lineItems": []map[string]interface{}{
			{
				"type":     "custom",
				"name":     itemName,
				"price":    map[string]interface{}{"currency": "SLE", "value": unitMinor},
				"quantity": quantity,
			},
		},
		"metadata": metadata,
	}

	if idemKey == "" {
		idemKey = uuid.NewString()
	}

	logger.Info("creating monime checkout session",
		zap.String("endpoint", cfg.MonimeEndpoint),
		zap.String("item", itemName),
		zap.Int64("unit_minor", unitMinor),
		zap.Int("quantity", quantity),
		zap.String("customer_phone", "[REDACTED]"),
		zap.String("idempotency_key", idemKey))

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, apperr.Internal("Failed to encode checkout payload", err)
	}

	httpReq, err := http.NewRequest(http.MethodPost, cfg.MonimeEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, apperr.Internal("Failed to build provider request", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+cfg.MonimeToken())
	httpReq.Header.Set("Monime-Space-Id", cfg.MonimeSpaceID)
	httpReq.Header.Set("Idempotency-Key", idemKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, apperr.Provider(http.StatusBadGateway, "Failed to reach payment provider")
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	var parsed monimeResponse
	_ = json.Unmarshal(respBody, &parsed)

	logger.Info("monime api response",
		zap.Int("status", resp.StatusCode),
		zap.String("session_id", parsed.Result.ID))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := parsed.Message
		if parsed.Error != nil && parsed.Error.Message != "" {
			msg = parsed.Error.Message
		}
		if msg == "" {
			msg = "Failed to create checkout session"
		}
		logger.Error("monime api error", zap.Int("status", resp.StatusCode), zap.String("message", msg))
		return nil, apperr.Provider(resp.StatusCode, msg)
	}

	if parsed.Result.RedirectURL == "" {
		logger.Error("no redirectUrl in monime response", zap.ByteString("body", respBody))
		return nil, apperr.Provider(http.StatusInternalServerError, "Invalid response from payment provider")
	}

	return &CheckoutSession{
		RedirectURL:    parsed.Result.RedirectURL,
		SessionID:      parsed.Result.ID,
		IdempotencyKey: idemKey,
		Product:        product,
		LineItem:       LineItem{Name: itemName, UnitMinor: unitMinor, Quantity: quantity},
		AmountMinor:    unitMinor * int64(quantity),
	}, nil
}

// POST /api/monime/checkout
func CheckoutHandler(db *gorm.DB, cfg *config.Config, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		// Idempotency: prefer a header key, then the body, else generate.
		idemKey := c.GetHeader("Idempotency-Key")
		if idemKey == "" {
			idemKey = c.GetHeader("X-Idempotency-Key")
		}
		if idemKey == "" {
			idemKey = strings.TrimSpace(req.IdempotencyKey)
		}

		session, err := CreateCheckoutSession(db, cfg, logger, req, idemKey)
		if err != nil {
			apperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, session)
	}
}
