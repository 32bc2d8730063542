package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"library-backend/internal/platform/apperr"
)

// Recovery: panic をログに出して固定文言の 500 を返す（gin.Recovery はボディを返さないため）
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[ERROR] panic %s %s request_id=%s: %v\n%s",
					c.Request.Method, c.Request.URL.Path, c.GetString(apperr.RequestIDKey), r, debug.Stack())
				c.AbortWithStatusJSON(http.StatusInternalServerError, apperr.Body(apperr.CodeInternal, apperr.MsgServerError))
			}
		}()
		c.Next()
	}
}
