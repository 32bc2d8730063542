package middleware

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	ulid "github.com/oklog/ulid/v2"

	"library-backend/internal/platform/apperr"
)

const HeaderRequestID = "X-Request-ID"

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

func newRequestID(t time.Time) string {
	// Monotonic な entropy は goroutine セーフではない
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}

// RequestID: リクエストごとに ULID を振り、レスポンスヘッダとコンテキストに入れる。
// クライアントが X-Request-ID を付けてきた場合はそれを引き継ぐ
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 64 {
			id = newRequestID(time.Now())
		}
		c.Set(apperr.RequestIDKey, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}
