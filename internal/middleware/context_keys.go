package middleware

import "github.com/gin-gonic/gin"

// userIDKey stores the authenticated subject (the JWT "sub" claim).
const userIDKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context
// or, failing that, from the request context.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(userIDKey)); exists {
		userID, ok := v.(string)
		return userID, ok && userID != ""
	}

	userID, ok := c.Request.Context().Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// GetRequestID returns the request id assigned by StructuredLoggingMiddleware.
func GetRequestID(c *gin.Context) string {
	return c.GetString(string(requestIDKey))
}
