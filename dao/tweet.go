package dao

import (
	"Tweeter/models"
	"context"

	"gorm.io/gorm"
)

type TweetDAO struct {
	Repo[models.Tweet]
}

func NewTweetDAO(db *gorm.DB) *TweetDAO {
	return &TweetDAO{Repo: NewRepo[models.Tweet](db)}
}

// List 分页查询推文，按时间倒序
func (d *TweetDAO) List(ctx context.Context, limit, offset int) ([]*models.Tweet, int64, error) {
	var (
		tweets []*models.Tweet
		total  int64
	)
	if err := d.Model(ctx).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := d.Db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&tweets).Error
	return tweets, total, err
}

// UpdateText 修改推文内容
func (d *TweetDAO) UpdateText(ctx context.Context, tweetID uint64, text string) error {
	_, err := d.UpdateById(ctx, tweetID, map[string]any{"text": text})
	return err
}

// Delete 删除推文及其评论、所有点赞记录
func (d *TweetDAO) Delete(ctx context.Context, tweetID uint64) error {
	return d.Transaction(ctx, func(tx *gorm.DB) error {
		commentIDs := tx.Model(&models.Comment{}).Select("id").Where("tweet_id = ?", tweetID)

		if err := tx.Where("comment_id IN (?)", commentIDs).Delete(&models.CommentReaction{}).Error; err != nil {
			return err
		}
		if err := tx.Where("tweet_id = ?", tweetID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("tweet_id = ?", tweetID).Delete(&models.TweetReaction{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", tweetID).Delete(&models.Tweet{}).Error
	})
}
