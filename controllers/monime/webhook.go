package monimeControllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Officialsalim12/Vitafood360-Company/middleware"
	"github.com/Officialsalim12/Vitafood360-Company/models"
)

// Event is a payment lifecycle notification from Monime. Fields are only
// trusted after the signature middleware has verified the raw body.
type Event struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		ID       string            `json:"id"`
		Amount   int64             `json:"amount"`
		Currency string            `json:"currency"`
		Metadata map[string]string `json:"metadata"`
	} `json:"data"`
}

// dedupKey identifies an event for the at-least-once delivery guard.
func (e *Event) dedupKey() string {
	if e.ID != "" {
		return e.ID
	}
	if e.Data.ID != "" {
		return e.Type + ":" + e.Data.ID
	}
	return ""
}

// OrderNotifier receives reconciled payments, e.g. for the admin live feed.
type OrderNotifier func(models.Payment)

// WebhookHandler dispatches verified payment lifecycle events. Reconciliation
// failures are logged and still acknowledged with 200 so the provider does
// not retry a downstream storage outage we own; 500 is reserved for failures
// before dispatch.
func WebhookHandler(db *gorm.DB, logger *zap.Logger, notify OrderNotifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, ok := middleware.RawBody(c)
		if !ok {
			c.String(http.StatusInternalServerError, "Internal server error")
			return
		}

		var event Event
		if err := json.Unmarshal(payload, &event); err != nil {
			logger.Error("webhook payload is not valid JSON", zap.Error(err))
			c.String(http.StatusInternalServerError, "Internal server error")
			return
		}

		logger.Info("monime webhook event received",
			zap.String("type", event.Type),
			zap.String("id", event.Data.ID))

		if key := event.dedupKey(); key != "" {
			res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.WebhookEvent{
				EventID:    key,
				Type:       event.Type,
				ReceivedAt: time.Now(),
			})
			if res.Error != nil {
				logger.Error("failed to record webhook event", zap.Error(res.Error))
			} else if res.RowsAffected == 0 {
				logger.Info("duplicate webhook event, skipping", zap.String("event_id", key))
				c.String(http.StatusOK, "OK")
				return
			}
		}

		switch event.Type {
		case "checkout.session.completed", "payment.succeeded":
			handlePaymentSuccess(db, logger, notify, &event)
		case "payment.failed":
			handlePaymentFailed(db, logger, &event)
		case "checkout.session.expired":
			handleSessionExpired(db, logger, &event)
		default:
			logger.Info("unhandled event type", zap.String("type", event.Type))
		}

		c.String(http.StatusOK, "OK")
	}
}

func paymentFromEvent(event *Event, status models.PaymentStatus) models.Payment {
	md := event.Data.Metadata
	return models.Payment{
		PaymentID:       event.Data.ID,
		Status:          status,
		Amount:          event.Data.Amount,
		Currency:        event.Data.Currency,
		CustomerName:    md["customerName"],
		CustomerPhone:   md["customerPhone"],
		CustomerAddress: md["customerAddress"],
		ProductID:       md["productId"],
		ProductName:     md["productName"],
	}
}

func upsertPayment(db *gorm.DB, payment models.Payment) error {
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "payment_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"status", "amount", "currency", "customer_name", "customer_phone",
			"customer_address", "product_id", "product_name", "paid_at", "updated_at",
		}),
	}).Create(&payment).Error
}

func handlePaymentSuccess(db *gorm.DB, logger *zap.Logger, notify OrderNotifier, event *Event) {
	payment := paymentFromEvent(event, models.PaymentStatusCompleted)
	now := time.Now()
	payment.PaidAt = &now

	if err := upsertPayment(db, payment); err != nil {
		logger.Error("failed to record successful payment",
			zap.String("payment_id", payment.PaymentID), zap.Error(err))
		return
	}
	logger.Info("payment reconciled as completed",
		zap.String("payment_id", payment.PaymentID),
		zap.Int64("amount", payment.Amount),
		zap.String("currency", payment.Currency))

	if notify != nil {
		notify(payment)
	}
}

func handlePaymentFailed(db *gorm.DB, logger *zap.Logger, event *Event) {
	if err := upsertPayment(db, paymentFromEvent(event, models.PaymentStatusFailed)); err != nil {
		logger.Error("failed to record failed payment",
			zap.String("payment_id", event.Data.ID), zap.Error(err))
		return
	}
	logger.Info("payment marked failed", zap.String("payment_id", event.Data.ID))
}

func handleSessionExpired(db *gorm.DB, logger *zap.Logger, event *Event) {
	if err := upsertPayment(db, paymentFromEvent(event, models.PaymentStatusExpired)); err != nil {
		logger.Error("failed to record expired session",
			zap.String("payment_id", event.Data.ID), zap.Error(err))
		return
	}
	logger.Info("checkout session expired", zap.String("payment_id", event.Data.ID))
}
