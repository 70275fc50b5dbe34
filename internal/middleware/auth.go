package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shamsy/home-services-api/internal/httpresp"
	"github.com/shamsy/home-services-api/internal/models"
)

const (
	ContextUser  = "currentUser"
	ContextToken = "currentToken"
)

const unauthenticatedMessage = "Authentication credentials were not provided or invalid."

// Authenticator resolves an opaque bearer token to its owner.
type Authenticator interface {
	Execute(ctx context.Context, tokenValue string) (*models.User, error)
}

func AuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c)
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c)
			return
		}

		tokenValue := strings.TrimSpace(parts[1])

		user, err := auth.Execute(c.Request.Context(), tokenValue)
		if err != nil || user == nil {
			abortUnauthorized(c)
			return
		}

		c.Set(ContextUser, user)
		c.Set(ContextToken, tokenValue)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, httpresp.Envelope{
		Status:  false,
		Message: unauthenticatedMessage,
		Data:    nil,
	})
}

// CurrentUser returns the authenticated caller set by AuthMiddleware,
// or nil when the request is unauthenticated.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil
	}
	user, ok := v.(*models.User)
	if !ok {
		return nil
	}
	return user
}

// CurrentToken returns the raw bearer token of the authenticated caller.
func CurrentToken(c *gin.Context) string {
	v, ok := c.Get(ContextToken)
	if !ok {
		return ""
	}
	token, _ := v.(string)
	return token
}
