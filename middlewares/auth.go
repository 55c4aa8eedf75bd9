package middlewares

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/pkg/resp"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/repository"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/utils"
)

const SessionHeader = "X-Session-ID"

// SessionMiddleware resolves the UI session id from the X-Session-ID header
// or the "sid" cookie. With required=false a missing id is allowed and the
// request runs without a credential.
func SessionMiddleware(required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := strings.TrimSpace(c.GetHeader(SessionHeader))
		if sid == "" {
			if ck, err := c.Cookie("sid"); err == nil {
				sid = strings.TrimSpace(ck)
			}
		}
		if sid == "" && required {
			resp.Unauthorized(c, "missing session")
			c.Abort()
			return
		}
		c.Set(utils.SessionKey, sid)
		c.Next()
	}
}

// AdminOnly gates back office routes on the role claim of the stored token.
// It only hides screens; the backend still authorizes every call.
func AdminOnly(tokens repository.TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := utils.CurrentSessionID(c)
		tok, err := tokens.Get(c.Request.Context(), sid)
		if err != nil || !utils.TokenUsable(tok, time.Now()) {
			resp.Unauthorized(c, "not signed in")
			c.Abort()
			return
		}
		claims, err := utils.InspectToken(tok)
		if err != nil {
			resp.Forbidden(c, "forbidden")
			c.Abort()
			return
		}
		c.Set(utils.RoleKey, claims.Role)
		if claims.Role != "admin" {
			resp.Forbidden(c, "forbidden")
			c.Abort()
			return
		}
		c.Next()
	}
}
