package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Officialsalim12/Vitafood360-Company/config"
)

const rawBodyKey = "monime_raw_body"

// RawBody returns the exact request bytes the signature was verified over.
func RawBody(c *gin.Context) ([]byte, bool) {
	v, ok := c.Get(rawBodyKey)
	if !ok {
		return nil, false
	}
	body, ok := v.([]byte)
	return body, ok
}

// MonimeWebhookAuth verifies the HMAC-SHA256 signature of the raw webhook
// body against the shared secret. This is a hard gate: a missing secret,
// missing signature or digest mismatch rejects the request with 401 before
// any field of the payload is trusted.
func MonimeWebhookAuth(cfg *config.Config, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		signature := c.GetHeader("Monime-Signature")
		if signature == "" {
			signature = c.GetHeader("X-Monime-Signature")
		}

		payload, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.String(http.StatusInternalServerError, "Internal server error")
			c.Abort()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(payload))

		if !VerifySignature(cfg.MonimeWebhookSecret, payload, signature) {
			logger.Warn("invalid webhook signature")
			c.String(http.StatusUnauthorized, "Invalid signature")
			c.Abort()
			return
		}

		c.Set(rawBodyKey, payload)
		c.Next()
	}
}

// VerifySignature checks a hex-encoded HMAC-SHA256 signature over payload.
// Comparison is constant-time; digests of different lengths are simply not
// equal.
func VerifySignature(secret string, payload []byte, signature string) bool {
	if secret == "" || signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	computed := hex.EncodeToString(mac.Sum(nil))
	provided := strings.ToLower(strings.TrimSpace(signature))

	return hmac.Equal([]byte(computed), []byte(provided))
}
