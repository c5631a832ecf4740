package context

import (
	"Tweeter/pkg/log"
	"Tweeter/pkg/response"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
)

var ErrAnonymous = errors.New("user_id 不存在")

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			// 业务错误
			var be *response.BizError
			if errors.As(err, &be) {
				response.Fail(c, be.Code, be.Msg)
				return
			}
			log.L.Error("unhandled error",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
			response.Fail(c, http.StatusInternalServerError, "internal server error")
		}
	}
}

func SetUser(c *gin.Context, userID uint64, username string) {
	c.Set(CtxUserID, userID)
	c.Set(CtxUsername, username)
}

func GetUserID(c *gin.Context) (uint64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, ErrAnonymous
	}

	uid, ok := v.(uint64)
	if !ok || uid == 0 {
		return 0, errors.New("user_id 类型错误")
	}

	return uid, nil
}

func GetUsername(c *gin.Context) string {
	return c.GetString(CtxUsername)
}
