package monimeControllers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

// RedirectTo translates the provider's post-payment callback into a 303
// redirect to the user-facing result page, copying all query parameters
// verbatim. Monime calls back with POST; GET is handled too in case that
// ever changes.
func RedirectTo(target string) gin.HandlerFunc {
	return func(c *gin.Context) {
		dest := url.URL{Path: target, RawQuery: c.Request.URL.RawQuery}
		c.Redirect(http.StatusSeeOther, dest.String())
	}
}
