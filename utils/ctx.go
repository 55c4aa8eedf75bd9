package utils

import "github.com/gin-gonic/gin"

const (
	SessionKey = "sessionId"
	RoleKey    = "role"
)

func CurrentSessionID(c *gin.Context) string {
	if v, ok := c.Get(SessionKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get(RoleKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
