package httpx

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// BindOptionalJSON は GET でも JSON ボディを読む（既存クライアントが GET にボディを載せてくるため）。
// ボディが空なら何もしない
func BindOptionalJSON(c *gin.Context, obj any) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// QueryInt64: クエリ文字列の整数。未指定なら (0, false, nil)
func QueryInt64(c *gin.Context, key string) (int64, bool, error) {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return 0, false, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, true, err
	}
	return n, true, nil
}
