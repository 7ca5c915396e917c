package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"payment-gateway/internal/domain/responses"
	"payment-gateway/internal/infrastructure/metrics"
)

// APIKeyHeader is the header merchants authenticate with.
const APIKeyHeader = "x-api-key"

const missingAPIKeyMessage = "Missing API key. Provide via 'x-api-key'"

// ContextAPIKey is the gin context key the resolved api key is stored
// under.
const ContextAPIKey = "api_key"

// APIKey rejects requests that carry no usable x-api-key header. A header
// that is present but all whitespace counts as missing. Resolving the key
// to a merchant is left to the service layer.
func APIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := strings.TrimSpace(c.GetHeader(APIKeyHeader))
		if key == "" {
			metrics.APIKeyRejectionsTotal.Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
				Error:  missingAPIKeyMessage,
				Status: http.StatusUnauthorized,
			})
			return
		}
		c.Set(ContextAPIKey, key)
		c.Next()
	}
}
