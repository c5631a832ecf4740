package middleware

import (
	"Tweeter/models"
	"Tweeter/pkg/context"
	"Tweeter/pkg/log"
	"Tweeter/pkg/response"
	stdctx "context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionCookie 登录后写入的会话 cookie，值为 access token
const SessionCookie = "session"

const (
	msgNoCredentials = "authentication credentials were not provided"
	msgInvalidToken  = "invalid token"
)

// Authenticator 根据 token 解析出用户
type Authenticator interface {
	Authenticate(ctx stdctx.Context, token string) (*models.User, error)
}

// AuthRequired 必须登录，否则 401
func AuthRequired(a Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Abort(c, http.StatusUnauthorized, msgNoCredentials)
			return
		}
		user, err := a.Authenticate(c.Request.Context(), token)
		if err != nil {
			log.L.Debug("authenticate failed", zap.Error(err))
			response.Abort(c, http.StatusUnauthorized, msgInvalidToken)
			return
		}
		context.SetUser(c, user.ID, user.Username)
		c.Next()
	}
}

// AuthOptional 有合法凭证时注入用户，否则按匿名继续
func AuthOptional(a Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractToken(c); token != "" {
			if user, err := a.Authenticate(c.Request.Context(), token); err == nil {
				context.SetUser(c, user.ID, user.Username)
			}
		}
		c.Next()
	}
}

// extractToken 支持 "Bearer <jwt>"、"Token <jwt>" 以及 session cookie
func extractToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		scheme, token, ok := strings.Cut(header, " ")
		if !ok {
			return ""
		}
		if strings.EqualFold(scheme, "Bearer") || strings.EqualFold(scheme, "Token") {
			return strings.TrimSpace(token)
		}
		return ""
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}
	return ""
}
