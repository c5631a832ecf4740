package service

import (
	"Tweeter/dao"
	"Tweeter/models"
	"Tweeter/pkg/authz"
	"Tweeter/pkg/pagination"
	"Tweeter/pkg/snowflake"
	"Tweeter/types"
	"context"
	"errors"
	"strings"

	"github.com/sourcegraph/conc/pool"
	"gorm.io/gorm"
)

var _ ICommentService = (*CommentService)(nil)

type ICommentService interface {
	List(ctx context.Context, viewerID, tweetID uint64, query types.CommentQuery, params pagination.Params) ([]*types.CommentResponse, int64, error)
	Get(ctx context.Context, viewerID, tweetID, commentID uint64) (*types.CommentResponse, error)
	Create(ctx context.Context, callerID, tweetID uint64, text string) (*types.CommentResponse, error)
	Update(ctx context.Context, callerID, tweetID, commentID uint64, text *string) (*types.CommentResponse, error)
	Delete(ctx context.Context, callerID, tweetID, commentID uint64) error
}

type CommentService struct {
	TweetDAO    *dao.TweetDAO
	CommentDAO  *dao.Comment
	UsersRepo   *dao.Users
	ReactionDAO *dao.CommentReactionDAO
	Guard       authz.Guard
}

// List 只返回路径推文下的评论，user 与 search 可以单独或同时使用
func (s *CommentService) List(ctx context.Context, viewerID, tweetID uint64, query types.CommentQuery, params pagination.Params) ([]*types.CommentResponse, int64, error) {
	if err := s.ensureTweet(ctx, tweetID); err != nil {
		return nil, 0, err
	}

	filter := dao.CommentFilter{
		TweetID:  tweetID,
		Username: strings.TrimSpace(query.User),
		Search:   strings.TrimSpace(query.Search),
	}
	comments, total, err := s.CommentDAO.List(ctx, filter, params.Limit(), params.Offset())
	if err != nil {
		return nil, 0, err
	}
	items, err := s.buildComments(ctx, viewerID, comments)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *CommentService) Get(ctx context.Context, viewerID, tweetID, commentID uint64) (*types.CommentResponse, error) {
	comment, err := s.find(ctx, tweetID, commentID)
	if err != nil {
		return nil, err
	}
	items, err := s.buildComments(ctx, viewerID, []*models.Comment{comment})
	if err != nil {
		return nil, err
	}
	return items[0], nil
}

// Create 作者为当前用户，所属推文取路径参数
func (s *CommentService) Create(ctx context.Context, callerID, tweetID uint64, text string) (*types.CommentResponse, error) {
	if err := s.ensureTweet(ctx, tweetID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		ID:      snowflake.GenID(),
		TweetID: tweetID,
		UserID:  callerID,
		Text:    text,
	}
	if err := s.CommentDAO.Create(ctx, comment); err != nil {
		return nil, err
	}
	return s.Get(ctx, callerID, tweetID, comment.ID)
}

func (s *CommentService) Update(ctx context.Context, callerID, tweetID, commentID uint64, text *string) (*types.CommentResponse, error) {
	comment, err := s.find(ctx, tweetID, commentID)
	if err != nil {
		return nil, err
	}
	if err := s.Guard.Authorize(callerID, comment, authz.ActionUpdate); err != nil {
		return nil, err
	}

	if text != nil && *text != comment.Text {
		if err := s.CommentDAO.UpdateText(ctx, commentID, *text); err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, callerID, tweetID, commentID)
}

func (s *CommentService) Delete(ctx context.Context, callerID, tweetID, commentID uint64) error {
	comment, err := s.find(ctx, tweetID, commentID)
	if err != nil {
		return err
	}
	if err := s.Guard.Authorize(callerID, comment, authz.ActionDelete); err != nil {
		return err
	}
	return s.CommentDAO.Delete(ctx, commentID)
}

func (s *CommentService) ensureTweet(ctx context.Context, tweetID uint64) error {
	exist, err := s.TweetDAO.IsExist(ctx, "id = ?", tweetID)
	if err != nil {
		return err
	}
	if !exist {
		return ErrTweetNotFound
	}
	return nil
}

// find 推文不存在返回 ErrTweetNotFound，评论不属于该推文视为不存在
func (s *CommentService) find(ctx context.Context, tweetID, commentID uint64) (*models.Comment, error) {
	if err := s.ensureTweet(ctx, tweetID); err != nil {
		return nil, err
	}
	comment, err := s.CommentDAO.GetInTweet(ctx, tweetID, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) buildComments(ctx context.Context, viewerID uint64, comments []*models.Comment) ([]*types.CommentResponse, error) {
	items := make([]*types.CommentResponse, 0, len(comments))
	if len(comments) == 0 {
		return items, nil
	}

	commentIDs := make([]uint64, 0, len(comments))
	userIDs := make([]uint64, 0, len(comments))
	for _, c := range comments {
		commentIDs = append(commentIDs, c.ID)
		userIDs = append(userIDs, c.UserID)
	}

	var (
		usernames map[uint64]string
		reactions map[uint64]map[string]int64
		mine      map[uint64]string
	)
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) (err error) {
		usernames, err = s.UsersRepo.UsernamesByIDs(ctx, userIDs)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		reactions, err = s.ReactionDAO.CountByTargets(ctx, commentIDs)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		mine, err = s.ReactionDAO.SlugsForUser(ctx, viewerID, commentIDs)
		return err
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}

	for _, c := range comments {
		items = append(items, &types.CommentResponse{
			ID:             c.ID,
			TweetID:        c.TweetID,
			UserID:         c.UserID,
			User:           usernames[c.UserID],
			Text:           c.Text,
			ReactionCounts: reactionCounts(reactions[c.ID]),
			Reaction:       mine[c.ID],
			CreatedAt:      c.CreatedAt,
			UpdatedAt:      c.UpdatedAt,
		})
	}
	return items, nil
}
