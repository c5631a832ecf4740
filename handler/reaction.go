package handler

import (
	"Tweeter/dao"
	"Tweeter/middleware"
	"Tweeter/pkg/context"
	"Tweeter/pkg/response"
	"Tweeter/service"
	"Tweeter/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Reaction 点赞/点踩切换，GET 触发
type Reaction struct {
	AuthService     service.IAuthService
	ReactionService service.IReactionService
}

func (h *Reaction) RegisterRouter(r gin.IRouter) {
	authorize := middleware.AuthRequired(h.AuthService)
	tweet := r.Group("/tweet/:tweet_id", authorize)
	tweet.GET("/:status_slug/", context.Wrap(h.ToggleTweet))
	tweet.GET("/comments/:comment_id/:status_slug/", context.Wrap(h.ToggleComment))
}

func (h *Reaction) ToggleTweet(c *gin.Context) error {
	me, err := caller(c)
	if err != nil {
		return err
	}
	tweetID, err := pathID(c, "tweet_id", service.ErrTweetNotFound)
	if err != nil {
		return err
	}

	resp, err := h.ReactionService.ToggleTweet(c.Request.Context(), me, tweetID, c.Param("status_slug"))
	if err != nil {
		return bizError(err)
	}
	writeToggle(c, resp)
	return nil
}

func (h *Reaction) ToggleComment(c *gin.Context) error {
	me, err := caller(c)
	if err != nil {
		return err
	}
	tweetID, commentID, err := commentPath(c)
	if err != nil {
		return err
	}

	resp, err := h.ReactionService.ToggleComment(c.Request.Context(), me, tweetID, commentID, c.Param("status_slug"))
	if err != nil {
		return bizError(err)
	}
	writeToggle(c, resp)
	return nil
}

// writeToggle 新建返回 201，其余 200
func writeToggle(c *gin.Context, resp *types.ToggleResponse) {
	status := http.StatusOK
	if resp.Action == string(dao.ToggleCreated) {
		status = http.StatusCreated
	}
	response.Success(c, status, resp)
}
