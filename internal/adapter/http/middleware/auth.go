package middleware

import (
	"net/http"

	"paintmarket/internal/infrastructure/auth"
	"paintmarket/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const principalKey = "principal"

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid bearer token", http.StatusUnauthorized)

// TokenParser verifies bearer tokens.
type TokenParser interface {
	Parse(token string) (auth.Principal, error)
}

// RequireAuth rejects requests without a valid bearer token and stores the
// caller in the gin context.
func RequireAuth(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := auth.BearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		p, err := tokens.Parse(raw)
		if err != nil {
			zap.L().Debug("[auth][middleware] token rejected", zap.String("path", c.FullPath()), zap.Error(err))
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		c.Set(principalKey, p)
		c.Next()
	}
}

// OptionalAuth stores the caller when a valid token is present and lets
// anonymous requests through.
func OptionalAuth(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw, err := auth.BearerToken(c.GetHeader("Authorization")); err == nil {
			if p, err := tokens.Parse(raw); err == nil {
				c.Set(principalKey, p)
			}
		}
		c.Next()
	}
}

// Principal returns the caller stored by RequireAuth or OptionalAuth.
func Principal(c *gin.Context) (auth.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return auth.Principal{}, false
	}
	p, ok := v.(auth.Principal)
	return p, ok
}

// SetPrincipal stores p as the caller. Handler tests use it in place of a token.
func SetPrincipal(p auth.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(principalKey, p)
		c.Next()
	}
}
