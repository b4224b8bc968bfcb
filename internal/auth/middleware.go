package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const principalContextKey = "principal"

// TokenValidator validates bearer tokens
type TokenValidator interface {
	ValidateJWT(tokenString string) (*Principal, error)
}

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	validator TokenValidator
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(validator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{validator: validator}
}

// RequireAuth validates the bearer token and attaches the principal to the request
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, http.StatusUnauthorized, "Authorization header is required")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			abort(c, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		principal, err := m.validator.ValidateJWT(tokenString)
		if err != nil {
			abort(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		SetPrincipal(c, *principal)
		c.Next()
	}
}

// RequireRole rejects principals without one of the given roles.
// It must run after RequireAuth.
func RequireRole(roles ...Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			abort(c, http.StatusUnauthorized, "Authentication required")
			return
		}
		if !principal.HasRole(roles...) {
			abort(c, http.StatusForbidden, "You do not have permission to perform this action")
			return
		}
		c.Next()
	}
}

// SetPrincipal stores the principal on the gin context and the request context
func SetPrincipal(c *gin.Context, p Principal) {
	c.Set(principalContextKey, p)
	c.Request = c.Request.WithContext(WithPrincipal(c.Request.Context(), p))
}

// GetPrincipal is a helper function to extract the principal from the gin context
func GetPrincipal(c *gin.Context) (Principal, bool) {
	v, exists := c.Get(principalContextKey)
	if !exists {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}

func abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "message": message})
}
