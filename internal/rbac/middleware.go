package rbac

import (
	"net/http"

	"coordinator-console/internal/notify"
	"coordinator-console/internal/session"

	"github.com/gin-gonic/gin"
)

// Require rejects requests whose session role holds none of permissions.
// It must run after session.RequireSession.
func Require(permissions ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := session.FromContext(c)
		if ok {
			for _, p := range permissions {
				if HasPermission(sess.Role, p) {
					c.Next()
					return
				}
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error":        "You do not have access to this section",
			"code":         "FORBIDDEN",
			"notification": notify.Error("You do not have access to this section"),
		})
	}
}
