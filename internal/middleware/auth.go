package middleware

import (
	"strings"

	"github.com/leovoon/notbyai.space/internal/errs"
	"github.com/leovoon/notbyai.space/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

const ClaimsKey = "claims"
const CheckUserKey = "user"

// Identify extracts the bearer credential and decodes its claims.
//
// The payload is decoded WITHOUT signature verification, mirroring the
// sync-on-login contract with the identity provider. Known weakness: a
// production deployment must verify the JWT against the provider's public
// keys before trusting `sub`.
func Identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			abort(c, errs.Unauthorized("Invalid token"))
			return
		}
		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		token, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{})
		if err != nil {
			abort(c, errs.Unauthorized("Invalid token"))
			return
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abort(c, errs.Unauthorized("Invalid token"))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// LoadUser resolves the decoded subject to a local user record and sets it
// on the context when one exists. It never aborts; handlers that need the
// record gate on UserRequired.
func LoadUser(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := Claims(c); ok {
			if sub, ok := claims["sub"].(string); ok && sub != "" {
				var user models.User
				if err := gdb.Where("clerk_id = ?", sub).First(&user).Error; err == nil {
					c.Set(CheckUserKey, &user)
				}
			}
		}
		c.Next()
	}
}

// UserRequired ensures the caller has synced a local record. The 404 here
// is deliberate and distinct from the 401 of a bad credential: a valid
// token whose owner never called /auth/sync has no user yet.
func UserRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			abort(c, errs.NotFound("User not found"))
			return
		}
		c.Next()
	}
}

// ModeratorRequired gates moderation endpoints to privileged roles.
func ModeratorRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			abort(c, errs.NotFound("User not found"))
			return
		}
		if !user.Role.CanModerate() {
			abort(c, errs.Forbidden("Moderator access required"))
			return
		}
		c.Next()
	}
}

// Claims returns the decoded token claims set by Identify.
func Claims(c *gin.Context) (jwt.MapClaims, bool) {
	v, exists := c.Get(ClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(jwt.MapClaims)
	return claims, ok
}

// CurrentUser returns the user record set by LoadUser.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get(CheckUserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}

func abort(c *gin.Context, err *errs.Error) {
	c.AbortWithStatusJSON(err.HTTPStatus(), gin.H{"error": err.Message})
}
