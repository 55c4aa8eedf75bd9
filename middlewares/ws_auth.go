// middlewares/ws_auth.go
package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/pkg/resp"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/utils"
)

// WSSessionMiddleware reads the session id from the "session" query param
// first, since browsers cannot set headers on a websocket handshake.
func WSSessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := strings.TrimSpace(c.Query("session"))
		if sid == "" {
			sid = strings.TrimSpace(c.GetHeader(SessionHeader))
		}
		if sid == "" {
			resp.Unauthorized(c, "missing session")
			c.Abort()
			return
		}
		c.Set(utils.SessionKey, sid)
		c.Next()
	}
}
