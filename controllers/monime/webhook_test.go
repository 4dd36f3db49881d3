package monimeControllers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Officialsalim12/Vitafood360-Company/middleware"
	"github.com/Officialsalim12/Vitafood360-Company/models"
)

func sign(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func webhookRouter(db *gorm.DB, notify OrderNotifier) *gin.Engine {
	cfg := testConfig("")
	r := gin.New()
	r.POST("/api/monime/webhook",
		middleware.MonimeWebhookAuth(cfg, zap.NewNop()),
		WebhookHandler(db, zap.NewNop(), notify),
	)
	return r
}

func postWebhook(r *gin.Engine, payload []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/monime/webhook", bytes.NewReader(payload))
	if signature != "" {
		req.Header.Set("Monime-Signature", signature)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func expectEventInsert(mock sqlmock.Sqlmock, inserted bool) {
	rows := sqlmock.NewRows([]string{"id"})
	if inserted {
		rows.AddRow(1)
	}
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "webhook_events"`).WillReturnRows(rows)
	mock.ExpectCommit()
}

func TestWebhookRejectsMissingSignature(t *testing.T) {
	r := webhookRouter(nil, nil)
	w := postWebhook(r, []byte(`{"type":"payment.succeeded"}`), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid signature", w.Body.String())
}

func TestWebhookRejectsTamperedPayload(t *testing.T) {
	r := webhookRouter(nil, nil)

	payload := []byte(`{"type":"payment.succeeded","data":{"id":"pay_1"}}`)
	signature := sign("whsec-test", payload)

	// flip one byte after signing
	tampered := bytes.Replace(payload, []byte("pay_1"), []byte("pay_2"), 1)
	w := postWebhook(r, tampered, signature)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWebhookRejectsWhenSecretNotConfigured(t *testing.T) {
	cfg := testConfig("")
	cfg.MonimeWebhookSecret = ""
	r := gin.New()
	r.POST("/api/monime/webhook",
		middleware.MonimeWebhookAuth(cfg, zap.NewNop()),
		WebhookHandler(nil, zap.NewNop(), nil),
	)

	payload := []byte(`{"type":"payment.succeeded"}`)
	w := postWebhook(r, payload, sign("whsec-test", payload))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWebhookUnrecognizedTypeIsAcknowledged(t *testing.T) {
	db, mock := newMockDB(t)
	expectEventInsert(mock, true)

	notified := false
	r := webhookRouter(db, func(models.Payment) { notified = true })

	payload := []byte(`{"id":"evt_9","type":"refund.created","data":{"id":"pay_9"}}`)
	w := postWebhook(r, payload, sign("whsec-test", payload))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
	assert.False(t, notified)
	// no payment row was touched
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWebhookPaymentSucceededReconciles(t *testing.T) {
	db, mock := newMockDB(t)
	expectEventInsert(mock, true)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	var got models.Payment
	r := webhookRouter(db, func(p models.Payment) { got = p })

	payload := []byte(`{
		"id": "evt_1",
		"type": "payment.succeeded",
		"data": {
			"id": "pay_1",
			"amount": 500000,
			"currency": "SLE",
			"metadata": {
				"customerName": "Amy",
				"customerPhone": "+23276123456",
				"customerAddress": "1 Main St",
				"productId": "5",
				"productName": "Wedding Cake"
			}
		}
	}`)
	w := postWebhook(r, payload, sign("whsec-test", payload))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pay_1", got.PaymentID)
	assert.Equal(t, models.PaymentStatusCompleted, got.Status)
	assert.Equal(t, int64(500000), got.Amount)
	assert.Equal(t, "SLE", got.Currency)
	assert.Equal(t, "Amy", got.CustomerName)
	assert.NotNil(t, got.PaidAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWebhookDuplicateDeliveryIsNoop(t *testing.T) {
	db, mock := newMockDB(t)
	// dedup insert hits the ON CONFLICT guard: zero rows back
	expectEventInsert(mock, false)

	notified := false
	r := webhookRouter(db, func(models.Payment) { notified = true })

	payload := []byte(`{"id":"evt_1","type":"payment.succeeded","data":{"id":"pay_1"}}`)
	w := postWebhook(r, payload, sign("whsec-test", payload))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, notified)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWebhookPaymentFailedRecorded(t *testing.T) {
	db, mock := newMockDB(t)
	expectEventInsert(mock, true)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	r := webhookRouter(db, nil)

	payload := []byte(`{"id":"evt_2","type":"payment.failed","data":{"id":"pay_2"}}`)
	w := postWebhook(r, payload, sign("whsec-test", payload))

	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWebhookStorageFailureStillAcknowledged(t *testing.T) {
	db, mock := newMockDB(t)
	expectEventInsert(mock, true)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "payments"`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	r := webhookRouter(db, nil)

	payload := []byte(`{"id":"evt_3","type":"payment.succeeded","data":{"id":"pay_3"}}`)
	w := postWebhook(r, payload, sign("whsec-test", payload))

	// reconciliation failure is logged and owned, not retried by the provider
	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWebhookMalformedJSONAfterValidSignature(t *testing.T) {
	r := webhookRouter(nil, nil)

	payload := []byte(`{not json`)
	w := postWebhook(r, payload, sign("whsec-test", payload))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
