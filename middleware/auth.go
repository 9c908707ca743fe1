package middleware

import (
	"creator-directory-api/config"
	"creator-directory-api/models"
	"creator-directory-api/services"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SubmitterTokenHeader carries the anonymous submitter token issued by
// POST /submitter-token.
const SubmitterTokenHeader = "X-Submitter-Token"

// Role ids as stored in the roles table.
const (
	RoleMember = 1
	RoleAdmin  = 3
)

type Claims struct {
	UserID int    `json:"user_id"`
	Email  string `json:"email"`
	RoleID int    `json:"role_id"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates JWT token
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearer(c)
		if !ok {
			return
		}

		// Check if user still exists
		var user models.User
		if err := config.DB.Where("user_id = ? AND delete_at IS NULL", claims.UserID).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("roleID", claims.RoleID)
		c.Set("identity", services.UserIdentity(claims.UserID))

		c.Next()
	}
}

// ResolveIdentity extracts at most one caller identity. An authenticated
// principal always wins; a submitter token alongside a valid JWT is
// ignored entirely. A malformed submitter token is rejected, not silently
// dropped. With neither present no identity is set and handlers that need
// one reject with IdentityRequired.
func ResolveIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			claims, ok := parseBearer(c)
			if !ok {
				return
			}
			c.Set("userID", claims.UserID)
			c.Set("email", claims.Email)
			c.Set("roleID", claims.RoleID)
			c.Set("identity", services.UserIdentity(claims.UserID))
			c.Next()
			return
		}

		token := c.GetHeader(SubmitterTokenHeader)
		if token != "" {
			if !services.ValidSubmitterToken(token) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submitter token"})
				c.Abort()
				return
			}
			c.Set("identity", services.AnonymousIdentity(token))
		}

		c.Next()
	}
}

// RequireRole checks if user has specific role
func RequireRole(roleIDs ...int) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRoleID, exists := c.Get("roleID")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "Role not found"})
			c.Abort()
			return
		}

		userRole := userRoleID.(int)
		allowed := false
		for _, roleID := range roleIDs {
			if userRole == roleID {
				allowed = true
				break
			}
		}

		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// parseBearer validates the Authorization header and returns the claims.
// On failure it writes the 401 response and aborts.
func parseBearer(c *gin.Context) (*Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
		c.Abort()
		return nil, false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
		c.Abort()
		return nil, false
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return nil, false
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		c.Abort()
		return nil, false
	}

	return claims, true
}
