package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"

	"payment-gateway/internal/apperrors"
	"payment-gateway/internal/domain/responses"
	infraauth "payment-gateway/internal/infrastructure/auth"
)

// ContextUserID is the gin context key the authenticated user id is
// stored under.
const ContextUserID = "user_id"

// Auth verifies the Bearer access token and stores the user id on the
// context. Expired and malformed tokens surface through the shared error
// mapping so clients always see the same 401 shapes.
func Auth(tokens *infraauth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			abortWithError(c, apperrors.InvalidCredentials())
			return
		}

		userID, err := tokens.Verify(strings.TrimSpace(token), infraauth.TokenTypeAccess)
		if err != nil {
			abortWithError(c, err)
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

func abortWithError(c *gin.Context, err error) {
	status, msg := apperrors.HTTPStatus(err)
	c.AbortWithStatusJSON(status, responses.ErrorResponse{Error: msg, Status: status})
}
