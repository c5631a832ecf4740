package service

import (
	"Tweeter/dao"
	"Tweeter/pkg/lock"
	"Tweeter/pkg/log"
	"Tweeter/pkg/metrics"
	"Tweeter/types"
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	KindTweet   = "tweet"
	KindComment = "comment"

	reactionLockTTL = 5 * time.Second
)

var _ IReactionService = (*ReactionService)(nil)

// Caller 当前登录用户
type Caller struct {
	ID       uint64
	Username string
}

type IReactionService interface {
	ToggleTweet(ctx context.Context, caller Caller, tweetID uint64, slug string) (*types.ToggleResponse, error)
	ToggleComment(ctx context.Context, caller Caller, tweetID, commentID uint64, slug string) (*types.ToggleResponse, error)
}

type ReactionService struct {
	TweetDAO           *dao.TweetDAO
	CommentDAO         *dao.Comment
	StatusDAO          *dao.ReactionStatusDAO
	TweetReactionDAO   *dao.TweetReactionDAO
	CommentReactionDAO *dao.CommentReactionDAO
	Locker             lock.Locker
}

func (s *ReactionService) ToggleTweet(ctx context.Context, caller Caller, tweetID uint64, slug string) (*types.ToggleResponse, error) {
	exist, err := s.TweetDAO.IsExist(ctx, "id = ?", tweetID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, ErrTweetNotFound
	}

	return s.toggle(ctx, KindTweet, tweetID, caller, slug, s.TweetReactionDAO.Toggle)
}

func (s *ReactionService) ToggleComment(ctx context.Context, caller Caller, tweetID, commentID uint64, slug string) (*types.ToggleResponse, error) {
	exist, err := s.TweetDAO.IsExist(ctx, "id = ?", tweetID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, ErrTweetNotFound
	}
	exist, err = s.CommentDAO.IsExist(ctx, "id = ? AND tweet_id = ?", commentID, tweetID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, ErrCommentNotFound
	}

	return s.toggle(ctx, KindComment, commentID, caller, slug, s.CommentReactionDAO.Toggle)
}

type toggleFunc func(ctx context.Context, targetID, userID, statusID uint64) (dao.ToggleAction, error)

func (s *ReactionService) toggle(ctx context.Context, kind string, targetID uint64, caller Caller, slug string, fn toggleFunc) (*types.ToggleResponse, error) {
	status, err := s.StatusDAO.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStatusNotFound
		}
		return nil, err
	}

	key := lockKeyFor(kind, targetID, caller.ID)
	release, err := s.Locker.Lock(ctx, key, reactionLockTTL)
	if err != nil {
		if errors.Is(err, lock.ErrLocked) {
			return nil, ErrTooManyRequests
		}
		// redis 不可用时不阻塞点赞，唯一索引和事务仍然保证一致
		log.L.Warn("reaction lock unavailable", zap.String("key", key), zap.Error(err))
		release = func() {}
	}
	defer release()

	action, err := fn(ctx, targetID, caller.ID, status.ID)
	if err != nil {
		return nil, fmt.Errorf("toggle %s reaction: %w", kind, err)
	}
	metrics.ReactionToggles.WithLabelValues(kind, string(action)).Inc()

	resp := &types.ToggleResponse{Action: string(action)}
	switch action {
	case dao.ToggleCreated:
		resp.Status = status.Slug
		resp.Message = fmt.Sprintf("%s %d got status %s from %s", kind, targetID, status.Slug, caller.Username)
	case dao.ToggleChanged:
		resp.Status = status.Slug
		resp.Message = fmt.Sprintf("%s %d changed status to %s by %s", kind, targetID, status.Slug, caller.Username)
	case dao.ToggleRemoved:
		resp.Message = fmt.Sprintf("%s %d status %s removed by %s", kind, targetID, status.Slug, caller.Username)
	}
	return resp, nil
}

func lockKeyFor(kind string, targetID, userID uint64) string {
	return fmt.Sprintf("tweeter:reaction:%s:%d:%d", kind, targetID, userID)
}
