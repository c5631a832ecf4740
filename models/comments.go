package models

import (
	"time"
)

// Comment 评论表结构，随所属推文一起删除
type Comment struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`                               // 评论唯一ID
	TweetID   uint64    `gorm:"column:tweet_id;not null;index:idx_comments_tweet_id" json:"tweet_id"`             // 所属推文ID
	UserID    uint64    `gorm:"column:user_id;not null;index:idx_comments_user_id" json:"user_id"`                // 发布评论的用户ID
	Text      string    `gorm:"column:text;type:text;not null" json:"text"`                                       // 评论正文
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index:idx_comments_created_at" json:"created_at"` // 创建时间
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`                               // 更新时间
}

// TableName 指定 GORM 使用的表名
func (Comment) TableName() string {
	return "comments"
}

func (c *Comment) OwnerID() uint64 {
	return c.UserID
}
