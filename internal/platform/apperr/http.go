package apperr

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"
)

// RequestIDKey は middleware.RequestID が gin.Context に入れるキー
const RequestIDKey = "request_id"

type ErrorBody struct {
	Error struct {
		Code    Code   `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func Body(code Code, msg string) ErrorBody {
	var e ErrorBody
	e.Error.Code = code
	e.Error.Message = msg
	return e
}

// Respond はエラーをレスポンスに書く。
// 想定外のエラーは詳細をログにだけ残し、クライアントには固定文言を返す
func Respond(c *gin.Context, err error) {
	var api *APIError
	if !errors.As(err, &api) || api.Code == CodeInternal {
		log.Printf("[ERROR] %s %s request_id=%s: %v", c.Request.Method, c.Request.URL.Path, c.GetString(RequestIDKey), err)
		c.AbortWithStatusJSON(ToHTTPStatus(err), Body(CodeInternal, MsgServerError))
		return
	}
	c.AbortWithStatusJSON(ToHTTPStatus(err), Body(api.Code, api.Message))
}
