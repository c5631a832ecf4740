package handler

import (
	"Tweeter/config"
	"Tweeter/middleware"
	"Tweeter/models"
	"Tweeter/pkg/context"
	"Tweeter/pkg/response"
	"Tweeter/service"
	"Tweeter/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	Config      *config.Config
	AuthService service.IAuthService
}

func (u *Auth) RegisterRouter(r gin.IRouter) {
	authorize := middleware.AuthRequired(u.AuthService)
	auth := r.Group("/auth")
	auth.POST("/register/", context.Wrap(u.Register)) // 注册
	auth.POST("/login/", context.Wrap(u.Login))       // 登录，同时写入 session cookie
	auth.GET("/me/", authorize, context.Wrap(u.Me))
}

func (u *Auth) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}

	user, err := u.AuthService.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, http.StatusCreated, toUserResponse(user))
	return nil
}

func (u *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}

	user, token, err := u.AuthService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		return bizError(err)
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, int(u.Config.Jwt.TTL().Seconds()), "/", "", !u.Config.Debug() && u.Config.App.Env == config.EnvProd, true)
	response.Success(c, http.StatusOK, types.LoginResponse{
		Token: token,
		User:  toUserResponse(user),
	})
	return nil
}

func (u *Auth) Me(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "authentication credentials were not provided")
	}
	user, err := u.AuthService.GetUser(c.Request.Context(), uid)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, http.StatusOK, toUserResponse(user))
	return nil
}

func toUserResponse(user *models.User) *types.UserResponse {
	return &types.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}
}
