package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/buildra-io/sitetrack/internal/config"
	"github.com/buildra-io/sitetrack/internal/modules/model"
	"github.com/buildra-io/sitetrack/internal/modules/serializer"
	"github.com/buildra-io/sitetrack/internal/pkg/utils"
)

// Auth returns a middleware that authenticates requests using JWT bearer
// tokens. It validates the token, looks up the user in the database, and
// sets the user in the context.
//
// When Auth.BypassToken is configured and the server is not in release
// mode, a request presenting that exact token is treated as an ephemeral
// admin. Release builds ignore the setting entirely.
func Auth(cfg *config.Config, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.CheckLogin())
			return
		}
		raw := strings.TrimPrefix(auth, "Bearer ")

		if cfg.Auth.BypassToken != "" && gin.Mode() != gin.ReleaseMode && raw == cfg.Auth.BypassToken {
			c.Set("user", &model.User{
				Username: "bypass",
				Role:     model.RoleAdmin,
				IsActive: true,
			})
			c.Next()
			return
		}

		userID, _, err := utils.ParseJWT(raw, cfg.Auth.JWTSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("invalid token"))
			return
		}

		var user model.User
		if err := db.WithContext(c.Request.Context()).Where("id = ?", userID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("invalid token"))
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, serializer.DBErr("", err))
			return
		}
		if !user.IsActive {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("account disabled"))
			return
		}

		c.Set("user", &user)
		c.Next()
	}
}

// RequireRole gates a route group to the given roles. It must run after
// Auth; a missing context user aborts with 401.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get("user")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.CheckLogin())
			return
		}
		user := v.(*model.User)
		for _, r := range roles {
			if user.Role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, serializer.ForbiddenErr(""))
	}
}
