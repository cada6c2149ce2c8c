package middleware

import (
	"errors"

	"github.com/Dittner/DerTutor/internal/models"
	"github.com/Dittner/DerTutor/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Auth gates privileged routes. It requires both token cookies, applies
// the silent-rotation protocol (an expired access token is replaced by
// a fresh pair when the refresh token is still valid), resolves the
// identity and enforces the active-superuser policy. The resolved user
// is stored in the gin context under "user".
func Auth(db *gorm.DB, tokens *utils.TokenManager, secureCookies bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		access, accessErr := c.Cookie(utils.AccessTokenName)
		refresh, refreshErr := c.Cookie(utils.RefreshTokenName)
		if accessErr != nil || refreshErr != nil {
			utils.Unauthorized(c, "Authentication is required")
			c.Abort()
			return
		}

		claims, err := tokens.Decode(access)
		if errors.Is(err, utils.ErrTokenExpired) {
			logrus.Info("access token is expired")
			claims, err = tokens.Decode(refresh)
			if errors.Is(err, utils.ErrTokenExpired) {
				logrus.Info("refresh token is expired")
				utils.Unauthorized(c, "Token is expired")
				c.Abort()
				return
			}
			if err != nil {
				utils.Unauthorized(c, "Invalid token")
				c.Abort()
				return
			}

			userID, err := claims.UserID()
			if err != nil {
				utils.Unauthorized(c, "Invalid token")
				c.Abort()
				return
			}
			newAccess, newRefresh, err := tokens.IssuePair(userID)
			if err != nil {
				utils.InternalError(c)
				c.Abort()
				return
			}
			logrus.Info("updating access and refresh tokens")
			utils.WriteTokenCookies(c, newAccess, newRefresh, secureCookies)
		} else if err != nil {
			utils.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			utils.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		var user models.User
		if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.Unauthorized(c, "User not found")
			} else {
				utils.InternalError(c)
			}
			c.Abort()
			return
		}

		if !user.IsActive || !user.IsSuperuser {
			utils.Forbidden(c, "Access denied")
			c.Abort()
			return
		}

		c.Set("user", &user)
		c.Next()
	}
}

// CurrentUser returns the identity resolved by Auth.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	val, exists := c.Get("user")
	if !exists {
		return nil, false
	}
	user, ok := val.(*models.User)
	return user, ok
}
