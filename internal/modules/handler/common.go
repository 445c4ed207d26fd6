package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/buildra-io/sitetrack/internal/modules/model"
)

// currentUser returns the authenticated user set by the auth middleware,
// or nil on unauthenticated routes.
func currentUser(c *gin.Context) *model.User {
	v, ok := c.Get("user")
	if !ok {
		return nil
	}
	user, _ := v.(*model.User)
	return user
}
