package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/mberkut/dishpatch/internal/domain/errors"
	"github.com/mberkut/dishpatch/internal/domain/model"
	pkgAuth "github.com/mberkut/dishpatch/internal/pkg/auth"
)

const (
	// ActorContextKey is a gin context key for the authenticated user.
	ActorContextKey = "actor"
	authCookieName  = "dishpatch_token"
)

// ActorResolver turns a bearer token into the acting user.
type ActorResolver interface {
	ResolveActor(ctx context.Context, token string) (*model.User, error)
}

// AuthRequired ensures the request carries a valid token and stores the
// resolved actor in the gin context.
func AuthRequired(resolver ActorResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		actor, err := resolver.ResolveActor(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidToken) || errors.Is(err, domainErrors.ErrNotFound) {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(ActorContextKey, *actor)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes auth token cookie to response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}
