package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody 错误响应 {"error": "..."}
type ErrorBody struct {
	Error string `json:"error"`
}

// MessageBody 提示类响应 {"message": "..."}
type MessageBody struct {
	Message string `json:"message"`
}

// Success 直接输出资源本身
func Success(c *gin.Context, httpStatus int, data any) {
	c.JSON(httpStatus, data)
}

func Message(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, MessageBody{Message: msg})
}

func Fail(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, ErrorBody{Error: msg})
}
