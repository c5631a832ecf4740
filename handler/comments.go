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

type CommentsHandler struct {
	AuthService     service.IAuthService
	CommentsService service.ICommentService
	Paginator       *pagination.Paginator
}

func (ch *CommentsHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.AuthRequired(ch.AuthService)
	optional := middleware.AuthOptional(ch.AuthService)
	comments := r.Group("/tweet/:tweet_id/comments")
	comments.GET("/", optional, context.Wrap(ch.List)) // ?user=&search=&page=
	comments.POST("/", authorize, context.Wrap(ch.Create))
	comments.GET("/:comment_id/", optional, context.Wrap(ch.Get))
	comments.PUT("/:comment_id/", authorize, context.Wrap(ch.Update))
	comments.PATCH("/:comment_id/", authorize, context.Wrap(ch.Patch))
	comments.DELETE("/:comment_id/", authorize, context.Wrap(ch.Delete))
}

func (ch *CommentsHandler) List(c *gin.Context) error {
	tweetID, err := pathID(c, "tweet_id", service.ErrTweetNotFound)
	if err != nil {
		return err
	}
	var query types.CommentQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		return bindError(err)
	}
	params, err := ch.Paginator.Parse(c.Request.URL.Query())
	if err != nil {
		return bizError(err)
	}

	items, total, err := ch.CommentsService.List(c.Request.Context(), viewer(c), tweetID, query, params)
	if err != nil {
		return bizError(err)
	}
	page, err := pagination.NewPage(c.Request.URL, params, total, items)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, http.StatusOK, page)
	return nil
}

// Create 评论作者为当前用户，所属推文取路径参数
func (ch *CommentsHandler) Create(c *gin.Context) error {
	me, err := caller(c)
	if err != nil {
		return err
	}
	tweetID, err := pathID(c, "tweet_id", service.ErrTweetNotFound)
	if err != nil {
		return err
	}
	var req types.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}

	comment, err := ch.CommentsService.Create(c.Request.Context(), me.ID, tweetID, req.Text)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, http.StatusCreated, comment)
	return nil
}

func (ch *CommentsHandler) Get(c *gin.Context) error {
	tweetID, commentID, err := commentPath(c)
	if err != nil {
		return err
	}
	comment, err := ch.CommentsService.Get(c.Request.Context(), viewer(c), tweetID, commentID)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, http.StatusOK, comment)
	return nil
}

func (ch *CommentsHandler) Update(c *gin.Context) error {
	var req types.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}
	return ch.update(c, &req.Text)
}

func (ch *CommentsHandler) Patch(c *gin.Context) error {
	var req types.PatchCommentRequest
	if err := bindPatch(c, &req); err != nil {
		return err
	}
	return ch.update(c, req.Text)
}

func (ch *CommentsHandler) update(c *gin.Context, text *string) error {
	me, err := caller(c)
	if err != nil {
		return err
	}
	tweetID, commentID, err := commentPath(c)
	if err != nil {
		return err
	}

	comment, err := ch.CommentsService.Update(c.Request.Context(), me.ID, tweetID, commentID, text)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, http.StatusOK, comment)
	return nil
}

func (ch *CommentsHandler) Delete(c *gin.Context) error {
	me, err := caller(c)
	if err != nil {
		return err
	}
	tweetID, commentID, err := commentPath(c)
	if err != nil {
		return err
	}

	if err := ch.CommentsService.Delete(c.Request.Context(), me.ID, tweetID, commentID); err != nil {
		return bizError(err)
	}
	c.Status(http.StatusNoContent)
	return nil
}

func commentPath(c *gin.Context) (tweetID, commentID uint64, err error) {
	if tweetID, err = pathID(c, "tweet_id", service.ErrTweetNotFound); err != nil {
		return 0, 0, err
	}
	if commentID, err = pathID(c, "comment_id", service.ErrCommentNotFound); err != nil {
		return 0, 0, err
	}
	return tweetID, commentID, nil
}
