package handler

import (
	"Tweeter/pkg/authz"
	"Tweeter/pkg/context"
	"Tweeter/pkg/pagination"
	"Tweeter/pkg/response"
	"Tweeter/service"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// bizError 把业务错误映射为 HTTP 状态码，未知错误原样返回由 Wrap 统一 500
func bizError(err error) error {
	switch {
	case errors.Is(err, service.ErrTweetNotFound),
		errors.Is(err, service.ErrCommentNotFound),
		errors.Is(err, service.ErrStatusNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, pagination.ErrInvalidPage):
		return response.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, authz.ErrForbidden):
		return response.NewError(http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrInvalidCredentials):
		return response.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrTooManyRequests):
		return response.NewError(http.StatusTooManyRequests, err.Error())
	}
	return err
}

func bindError(err error) error {
	if errors.Is(err, io.EOF) {
		return response.NewError(http.StatusBadRequest, "request body is required")
	}
	return response.NewError(http.StatusBadRequest, err.Error())
}

// bindPatch PATCH 允许空 body
func bindPatch(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		return bindError(err)
	}
	return nil
}

// pathID 路径参数非数字时按资源不存在处理
func pathID(c *gin.Context, name string, notFound error) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, response.NewError(http.StatusNotFound, notFound.Error())
	}
	return id, nil
}

// caller 由 AuthRequired 注入
// viewer 读接口的当前用户，匿名时为 0
func viewer(c *gin.Context) uint64 {
	uid, _ := context.GetUserID(c)
	return uid
}

func caller(c *gin.Context) (service.Caller, error) {
	uid, err := context.GetUserID(c)
	if err != nil {
		return service.Caller{}, response.NewError(http.StatusUnauthorized, "authentication credentials were not provided")
	}
	return service.Caller{ID: uid, Username: context.GetUsername(c)}, nil
}
