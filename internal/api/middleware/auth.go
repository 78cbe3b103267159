// internal/api/middleware/auth.go
package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"job-tracker-api/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	authorizationHeader = "Authorization"
	userCtx             = "userID" // Key to store user ID in context
)

// JWTAuthMiddleware creates a Gin middleware that authenticates requests
// with a bearer token. Each rejection carries a stable machine-readable
// code: a missing header and an expired token are 401 (the client should
// authenticate again), a header that is not "Bearer <token>" is 400, and
// a token that fails verification is 403.
func JWTAuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(authorizationHeader)
		if authHeader == "" {
			log.Println("Auth middleware: Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required", "code": "unauthorized"})
			return
		}

		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
			log.Println("Auth middleware: Invalid Authorization header format")
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid Authorization header format", "code": "malformed_authorization"})
			return
		}

		userID, _, err := tokens.Verify(headerParts[1])
		if err != nil {
			log.Printf("Auth middleware: Error verifying token: %v", err)
			if errors.Is(err, auth.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has expired", "code": "token_expired"})
			} else {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid token", "code": "invalid_token"})
			}
			return
		}

		// Store user ID in context for downstream handlers
		c.Set(userCtx, userID)
		c.Next()
	}
}

// GetUserIDFromContext returns the authenticated user's ID stored by
// JWTAuthMiddleware.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, error) {
	userIDAny, exists := c.Get(userCtx)
	if !exists {
		return uuid.Nil, errors.New("user ID not found in context")
	}

	userID, ok := userIDAny.(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("user ID in context is of invalid type")
	}

	return userID, nil
}
