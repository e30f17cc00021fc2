package handler

import (
	"net/http"
	"strings"

	"github.com/Jonny137/cocktail-bar-backend/internal/model"
	"github.com/Jonny137/cocktail-bar-backend/internal/service"
	"github.com/gin-gonic/gin"
)

const authUserKey = "auth_user"

// bearerToken pulls the token out of `Authorization: <scheme> <token>`.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// AuthRequired gates protected routes: parse the bearer token, then the
// fail-closed blacklist check. Both run before the handler executes.
func AuthRequired(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		token := bearerToken(c)
		if token == "" {
			abortWith(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		user, err := auth.Authorize(c.Request.Context(), token)
		if err != nil {
			writeError(c, err)
			return
		}

		c.Set(authUserKey, user)
		c.Next()
	}
}

// OptionalAuth attaches the identity when a valid token is present but never
// rejects; public reads use it to annotate results with user ratings.
func OptionalAuth(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if user, err := auth.Authorize(c.Request.Context(), token); err == nil {
				c.Set(authUserKey, user)
			}
		}
		c.Next()
	}
}

// RequireRole restricts a route to tokens carrying the given role claim.
// Runs after AuthRequired.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := GetAuthUser(c)
		if user == nil || user.Role != role {
			abortWith(c, http.StatusForbidden, "Invalid credentials")
			return
		}
		c.Next()
	}
}

func GetAuthUser(c *gin.Context) *model.AuthUser {
	if value, ok := c.Get(authUserKey); ok {
		if user, ok := value.(*model.AuthUser); ok {
			return user
		}
	}
	return nil
}
