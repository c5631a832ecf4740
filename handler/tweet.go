package handler

import (
	"Tweeter/middleware"
	"Tweeter/pkg/context"
	"Tweeter/pkg/pagination"
	"Tweeter/pkg/response"
	"Tweeter/service"
	"Tweeter/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Tweet struct {
	AuthService  service.IAuthService
	TweetService service.ITweetService
	Paginator    *pagination.Paginator
}

func (t *Tweet) RegisterRouter(r gin.IRouter) {
	authorize := middleware.AuthRequired(t.AuthService)
	optional := middleware.AuthOptional(t.AuthService)
	tweet := r.Group("/tweet")
	tweet.GET("/", optional, context.Wrap(t.List))
	tweet.POST("/", authorize, context.Wrap(t.Create))
	tweet.GET("/:tweet_id/", optional, context.Wrap(t.Get))
	tweet.PUT("/:tweet_id/", authorize, context.Wrap(t.Update))
	tweet.PATCH("/:tweet_id/", authorize, context.Wrap(t.Patch))
	tweet.DELETE("/:tweet_id/", authorize, context.Wrap(t.Delete))
}

// List 推文列表，按发布时间倒序
func (t *Tweet) List(c *gin.Context) error {
	params, err := t.Paginator.Parse(c.Request.URL.Query())
	if err != nil {
		return bizError(err)
	}

	items, total, err := t.TweetService.List(c.Request.Context(), viewer(c), params)
	if err != nil {
		return err
	}
	page, err := pagination.NewPage(c.Request.URL, params, total, items)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, http.StatusOK, page)
	return nil
}

func (t *Tweet) Get(c *gin.Context) error {
	tweetID, err := pathID(c, "tweet_id", service.ErrTweetNotFound)
	if err != nil {
		return err
	}
	tweet, err := t.TweetService.Get(c.Request.Context(), viewer(c), tweetID)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, http.StatusOK, tweet)
	return nil
}

// Create 发布推文，作者为当前登录用户
func (t *Tweet) Create(c *gin.Context) error {
	me, err := caller(c)
	if err != nil {
		return err
	}
	var req types.CreateTweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}

	tweet, err := t.TweetService.Create(c.Request.Context(), me.ID, req.Text)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, http.StatusCreated, tweet)
	return nil
}

func (t *Tweet) Update(c *gin.Context) error {
	var req types.UpdateTweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}
	return t.update(c, &req.Text)
}

func (t *Tweet) Patch(c *gin.Context) error {
	var req types.PatchTweetRequest
	if err := bindPatch(c, &req); err != nil {
		return err
	}
	return t.update(c, req.Text)
}

func (t *Tweet) update(c *gin.Context, text *string) error {
	me, err := caller(c)
	if err != nil {
		return err
	}
	tweetID, err := pathID(c, "tweet_id", service.ErrTweetNotFound)
	if err != nil {
		return err
	}

	tweet, err := t.TweetService.Update(c.Request.Context(), me.ID, tweetID, text)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, http.StatusOK, tweet)
	return nil
}

func (t *Tweet) Delete(c *gin.Context) error {
	me, err := caller(c)
	if err != nil {
		return err
	}
	tweetID, err := pathID(c, "tweet_id", service.ErrTweetNotFound)
	if err != nil {
		return err
	}

	if err := t.TweetService.Delete(c.Request.Context(), me.ID, tweetID); err != nil {
		return bizError(err)
	}
	c.Status(http.StatusNoContent)
	return nil
}
