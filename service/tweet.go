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

	"github.com/sourcegraph/conc/pool"
	"gorm.io/gorm"
)

var _ ITweetService = (*TweetService)(nil)

type ITweetService interface {
	// List/Get 的 viewerID 为 0 表示匿名访问，否则附带该用户自己的状态
	List(ctx context.Context, viewerID uint64, params pagination.Params) ([]*types.TweetResponse, int64, error)
	Get(ctx context.Context, viewerID, tweetID uint64) (*types.TweetResponse, error)
	Create(ctx context.Context, callerID uint64, text string) (*types.TweetResponse, error)
	// Update text 为 nil 时不修改内容，只做权限校验
	Update(ctx context.Context, callerID, tweetID uint64, text *string) (*types.TweetResponse, error)
	Delete(ctx context.Context, callerID, tweetID uint64) error
}

type TweetService struct {
	TweetDAO    *dao.TweetDAO
	CommentDAO  *dao.Comment
	UsersRepo   *dao.Users
	ReactionDAO *dao.TweetReactionDAO
	Guard       authz.Guard
}

func (s *TweetService) List(ctx context.Context, viewerID uint64, params pagination.Params) ([]*types.TweetResponse, int64, error) {
	tweets, total, err := s.TweetDAO.List(ctx, params.Limit(), params.Offset())
	if err != nil {
		return nil, 0, err
	}
	items, err := s.buildTweets(ctx, viewerID, tweets)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *TweetService) Get(ctx context.Context, viewerID, tweetID uint64) (*types.TweetResponse, error) {
	tweet, err := s.find(ctx, tweetID)
	if err != nil {
		return nil, err
	}
	items, err := s.buildTweets(ctx, viewerID, []*models.Tweet{tweet})
	if err != nil {
		return nil, err
	}
	return items[0], nil
}

// Create 作者固定为当前用户
func (s *TweetService) Create(ctx context.Context, callerID uint64, text string) (*types.TweetResponse, error) {
	tweet := &models.Tweet{
		ID:     snowflake.GenID(),
		UserID: callerID,
		Text:   text,
	}
	if err := s.TweetDAO.Create(ctx, tweet); err != nil {
		return nil, err
	}
	return s.Get(ctx, callerID, tweet.ID)
}

func (s *TweetService) Update(ctx context.Context, callerID, tweetID uint64, text *string) (*types.TweetResponse, error) {
	tweet, err := s.find(ctx, tweetID)
	if err != nil {
		return nil, err
	}
	if err := s.Guard.Authorize(callerID, tweet, authz.ActionUpdate); err != nil {
		return nil, err
	}

	if text != nil && *text != tweet.Text {
		if err := s.TweetDAO.UpdateText(ctx, tweetID, *text); err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, callerID, tweetID)
}

// Delete 级联删除评论和点赞记录
func (s *TweetService) Delete(ctx context.Context, callerID, tweetID uint64) error {
	tweet, err := s.find(ctx, tweetID)
	if err != nil {
		return err
	}
	if err := s.Guard.Authorize(callerID, tweet, authz.ActionDelete); err != nil {
		return err
	}
	return s.TweetDAO.Delete(ctx, tweetID)
}

func (s *TweetService) find(ctx context.Context, tweetID uint64) (*models.Tweet, error) {
	tweet, err := s.TweetDAO.FindById(ctx, tweetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTweetNotFound
		}
		return nil, err
	}
	return tweet, nil
}

// buildTweets 并发查询作者、评论数、点赞数以及 viewer 自己的状态后组装响应
func (s *TweetService) buildTweets(ctx context.Context, viewerID uint64, tweets []*models.Tweet) ([]*types.TweetResponse, error) {
	items := make([]*types.TweetResponse, 0, len(tweets))
	if len(tweets) == 0 {
		return items, nil
	}

	tweetIDs := make([]uint64, 0, len(tweets))
	userIDs := make([]uint64, 0, len(tweets))
	for _, t := range tweets {
		tweetIDs = append(tweetIDs, t.ID)
		userIDs = append(userIDs, t.UserID)
	}

	var (
		usernames map[uint64]string
		comments  map[uint64]int64
		reactions map[uint64]map[string]int64
		mine      map[uint64]string
	)
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) (err error) {
		usernames, err = s.UsersRepo.UsernamesByIDs(ctx, userIDs)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		mine, err = s.ReactionDAO.SlugsForUser(ctx, viewerID, tweetIDs)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		comments, err = s.CommentDAO.CountByTweetIDs(ctx, tweetIDs)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		reactions, err = s.ReactionDAO.CountByTargets(ctx, tweetIDs)
		return err
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}

	for _, t := range tweets {
		items = append(items, &types.TweetResponse{
			ID:             t.ID,
			UserID:         t.UserID,
			User:           usernames[t.UserID],
			Text:           t.Text,
			Comments:       comments[t.ID],
			ReactionCounts: reactionCounts(reactions[t.ID]),
			Reaction:       mine[t.ID],
			CreatedAt:      t.CreatedAt,
			UpdatedAt:      t.UpdatedAt,
		})
	}
	return items, nil
}

func reactionCounts(counts map[string]int64) types.ReactionCounts {
	return types.ReactionCounts{
		Likes:    counts[models.StatusLike],
		Dislikes: counts[models.StatusDislike],
	}
}
