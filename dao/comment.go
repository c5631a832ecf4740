package dao

import (
	"Tweeter/models"
	"context"
	"strings"

	"gorm.io/gorm"
)

type Comment struct {
	Repo[models.Comment]
}

func NewComment(db *gorm.DB) *Comment {
	return &Comment{
		Repo: NewRepo[models.Comment](db),
	}
}

// CommentFilter 评论列表筛选条件
type CommentFilter struct {
	TweetID  uint64
	Username string // 作者用户名，精确匹配
	Search   string // 正文包含，忽略大小写
}

// 转义 LIKE 通配符，配合 ESCAPE '!'
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func (d *Comment) filtered(ctx context.Context, f CommentFilter) *gorm.DB {
	query := d.Db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("comments.tweet_id = ?", f.TweetID)

	if f.Username != "" {
		query = query.
			Joins("JOIN users ON users.id = comments.user_id").
			Where("users.username = ?", f.Username)
	}
	if f.Search != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(f.Search)) + "%"
		query = query.Where("LOWER(comments.text) LIKE ? ESCAPE '!'", pattern)
	}
	return query
}

// List 按条件分页查询评论(按时间倒序)
func (d *Comment) List(ctx context.Context, f CommentFilter, limit, offset int) ([]*models.Comment, int64, error) {
	var (
		comments []*models.Comment
		total    int64
	)
	if err := d.filtered(ctx, f).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := d.filtered(ctx, f).
		Select("comments.*").
		Order("comments.created_at DESC, comments.id DESC").
		Limit(limit).
		Offset(offset).
		Find(&comments).Error
	return comments, total, err
}

// GetInTweet 查询指定推文下的评论
func (d *Comment) GetInTweet(ctx context.Context, tweetID, commentID uint64) (*models.Comment, error) {
	return d.FindByWhere(ctx, "id = ? AND tweet_id = ?", commentID, tweetID)
}

// UpdateText 修改评论内容
func (d *Comment) UpdateText(ctx context.Context, commentID uint64, text string) error {
	_, err := d.UpdateById(ctx, commentID, map[string]any{"text": text})
	return err
}

// Delete 删除评论及其点赞记录
func (d *Comment) Delete(ctx context.Context, commentID uint64) error {
	return d.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("comment_id = ?", commentID).Delete(&models.CommentReaction{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", commentID).Delete(&models.Comment{}).Error
	})
}

// CountByTweetIDs 批量统计评论数 tweet_id => count
func (d *Comment) CountByTweetIDs(ctx context.Context, tweetIDs []uint64) (map[uint64]int64, error) {
	result := make(map[uint64]int64, len(tweetIDs))
	if len(tweetIDs) == 0 {
		return result, nil
	}

	var rows []struct {
		TweetID uint64
		Total   int64
	}
	err := d.Db.WithContext(ctx).
		Model(&models.Comment{}).
		Select("tweet_id, COUNT(*) AS total").
		Where("tweet_id IN ?", tweetIDs).
		Group("tweet_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.TweetID] = row.Total
	}
	return result, nil
}
