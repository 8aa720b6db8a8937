package middleware

import (
	"net/http"
	"strings"

	"Tably/pkg/context"
	"Tably/pkg/jwt"
	"Tably/pkg/response"

	"github.com/gin-gonic/gin"
)

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// Auth requires a valid access token and stores the caller identity in the
// gin context.
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			response.Abort(c, http.StatusUnauthorized, "missing or malformed Authorization header")
			return
		}

		claims, err := jwt.ParseToken(secret, "access", token)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, err.Error())
			return
		}

		c.Set(context.CtxUserID, claims.UserID)
		c.Set(context.CtxRole, claims.Role)
		c.Next()
	}
}

// AuthOptional parses a token when one is present but lets anonymous
// requests through. Guest ordering flows are authorized by the table
// session instead of a login.
func AuthOptional(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		claims, err := jwt.ParseToken(secret, "access", token)
		if err != nil {
			// a present but invalid token is rejected, not ignored
			response.Abort(c, http.StatusUnauthorized, err.Error())
			return
		}

		c.Set(context.CtxUserID, claims.UserID)
		c.Set(context.CtxRole, claims.Role)
		c.Next()
	}
}

// RoleAllowed reports whether role is one of allowed. Manager passes every
// staff gate.
func RoleAllowed(role string, allowed ...string) bool {
	if role == "Manager" {
		return true
	}
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

// RequireRoles gates a route group to staff roles. Must run after Auth.
func RequireRoles(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := context.GetRole(c)
		if !RoleAllowed(role, allowed...) {
			response.Abort(c, http.StatusForbidden, "insufficient role")
			return
		}
		c.Next()
	}
}
