package middleware

import (
	"net/http"
	"skillerset/internal/util"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Session 为每个访客分配匿名会话 id，界面状态按该 id 隔离
func Session(cookieName string, maxAge time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cookieName)
		if err != nil || uuid.Validate(sessionID) != nil {
			sessionID = uuid.NewString()
		}

		// 每次请求刷新过期时间
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cookieName, sessionID, int(maxAge.Seconds()), "/", "", c.Request.TLS != nil, true)

		c.Set(util.ContextSessionID, sessionID)
		c.Next()
	}
}
