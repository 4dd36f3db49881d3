package monimeControllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRedirectPreservesQueryParams(t *testing.T) {
	r := gin.New()
	r.GET("/api/payment/success", RedirectTo("/payment/success"))
	r.POST("/api/payment/success", RedirectTo("/payment/success"))
	r.POST("/api/payment/cancel", RedirectTo("/payment/cancel"))

	tests := []struct {
		name   string
		method string
		url    string
		want   string
	}{
		{"post with session id", http.MethodPost, "/api/payment/success?session_id=cs_123&ref=a1", "/payment/success?session_id=cs_123&ref=a1"},
		{"get without params", http.MethodGet, "/api/payment/success", "/payment/success"},
		{"cancel", http.MethodPost, "/api/payment/cancel?session_id=cs_123", "/payment/cancel?session_id=cs_123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusSeeOther, w.Code)
			assert.Equal(t, tt.want, w.Header().Get("Location"))
		})
	}
}
