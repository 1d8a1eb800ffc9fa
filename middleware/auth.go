package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"admin-server/auth"
	"admin-server/entities"
	"admin-server/repositories"
)

const userContextKey = "auth-user"

// CurrentUser returns the authenticated user attached by Authenticate, or nil.
func CurrentUser(c *gin.Context) *entities.User {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil
	}
	user, _ := value.(*entities.User)
	return user
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": message,
	})
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// resolveUser validates a token and loads its user, mirroring every failure
// the token can have with a distinct message.
func resolveUser(users repositories.UserRepository, secret, token string) (*entities.User, string) {
	claims, err := auth.ParseToken(token, secret)
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			return nil, "Token has expired. Please log in again."
		}
		return nil, "Invalid token."
	}

	user, err := users.GetByID(claims.ID)
	if err != nil {
		return nil, "The user belonging to this token no longer exists."
	}
	if !user.IsActive {
		return nil, "This user account has been deactivated."
	}
	if claims.IssuedAt != nil && user.ChangedPasswordAfter(claims.IssuedAt.Unix()) {
		return nil, "User recently changed password. Please log in again."
	}
	return user, ""
}

// Authenticate verifies the bearer JWT and attaches the user to the request.
func Authenticate(users repositories.UserRepository, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			abortUnauthorized(c, "Access denied. No token provided.")
			return
		}

		user, failure := resolveUser(users, secret, token)
		if user == nil {
			abortUnauthorized(c, failure)
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// OptionalAuthenticate attaches the user when a valid token is present but
// lets anonymous requests straight through. Used on the register route, where
// an App_Admin caller may assign elevated roles.
func OptionalAuthenticate(users repositories.UserRepository, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if user, _ := resolveUser(users, secret, token); user != nil {
				c.Set(userContextKey, user)
			}
		}
		c.Next()
	}
}

// Authorize passes requests whose user holds any of the given permissions.
func Authorize(permissions ...auth.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			abortUnauthorized(c, "User not authenticated.")
			return
		}

		for _, p := range permissions {
			if auth.HasPermission(user.Role, p) {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": "You do not have permission to perform this action.",
		})
	}
}

// RequireRole passes requests whose user ranks at or above any given role.
func RequireRole(roles ...auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			abortUnauthorized(c, "User not authenticated.")
			return
		}

		for _, r := range roles {
			if auth.HasMinimumRole(user.Role, r) {
				c.Next()
				return
			}
		}

		names := make([]string, 0, len(roles))
		for _, r := range roles {
			names = append(names, string(r))
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": "This action requires one of the following roles: " + strings.Join(names, ", "),
		})
	}
}
