package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAPIKeyRouter(t *testing.T) (*gin.Engine, *string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var seenKey string
	r := gin.New()
	r.POST("/transactions", APIKey(), func(c *gin.Context) {
		seenKey = c.GetString(ContextAPIKey)
		c.Status(http.StatusOK)
	})
	return r, &seenKey
}

func TestAPIKeyMissingHeader(t *testing.T) {
	r, seenKey := newAPIKeyRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/transactions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t,
		`{"error":"Missing API key. Provide via 'x-api-key'","status":401}`,
		w.Body.String())
	assert.Empty(t, *seenKey)
}

func TestAPIKeyWhitespaceHeader(t *testing.T) {
	r, seenKey := newAPIKeyRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/transactions", nil)
	req.Header.Set(APIKeyHeader, "   ")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t,
		`{"error":"Missing API key. Provide via 'x-api-key'","status":401}`,
		w.Body.String())
	assert.Empty(t, *seenKey)
}

func TestAPIKeyAccepted(t *testing.T) {
	r, seenKey := newAPIKeyRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/transactions", nil)
	req.Header.Set(APIKeyHeader, "  mk_live_123  ")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "mk_live_123", *seenKey)
}
