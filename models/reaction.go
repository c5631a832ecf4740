package models

import "time"

const (
	StatusLike    = "like"
	StatusDislike = "dislike"
)

// ReactionStatus 点赞/点踩字典表，按 slug 查找
type ReactionStatus struct {
	ID    uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Slug  string `gorm:"column:slug;type:varchar(32);not null;uniqueIndex:uk_reaction_statuses_slug" json:"slug"`
	Title string `gorm:"column:title;type:varchar(64);not null;default:''" json:"title"`
}

func (ReactionStatus) TableName() string {
	return "reaction_statuses"
}

// DefaultStatuses 迁移时写入的状态
func DefaultStatuses() []ReactionStatus {
	return []ReactionStatus{
		{Slug: StatusLike, Title: "Like"},
		{Slug: StatusDislike, Title: "Dislike"},
	}
}

// TweetReaction 推文点赞/点踩
// 唯一键: tweet_id + user_id
type TweetReaction struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	TweetID   uint64    `gorm:"column:tweet_id;not null;uniqueIndex:uk_tweet_reactions_tweet_user,priority:1" json:"tweet_id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_tweet_reactions_tweet_user,priority:2;index:idx_tweet_reactions_user_id" json:"user_id"`
	StatusID  uint64    `gorm:"column:status_id;not null" json:"status_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (TweetReaction) TableName() string { return "tweet_reactions" }

func (TweetReaction) TargetColumn() string { return "tweet_id" }

func (r *TweetReaction) GetID() uint64 { return r.ID }
func (r *TweetReaction) GetStatusID() uint64 { return r.StatusID }

func (r *TweetReaction) Init(targetID, userID, statusID uint64) {
	r.TweetID, r.UserID, r.StatusID = targetID, userID, statusID
}

// CommentReaction 评论点赞/点踩
// 唯一键: comment_id + user_id
type CommentReaction struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CommentID uint64    `gorm:"column:comment_id;not null;uniqueIndex:uk_comment_reactions_comment_user,priority:1" json:"comment_id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_comment_reactions_comment_user,priority:2;index:idx_comment_reactions_user_id" json:"user_id"`
	StatusID  uint64    `gorm:"column:status_id;not null" json:"status_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (CommentReaction) TableName() string { return "comment_reactions" }

func (CommentReaction) TargetColumn() string { return "comment_id" }

func (r *CommentReaction) GetID() uint64 { return r.ID }
func (r *CommentReaction) GetStatusID() uint64 { return r.StatusID }

func (r *CommentReaction) Init(targetID, userID, statusID uint64) {
	r.CommentID, r.UserID, r.StatusID = targetID, userID, statusID
}

// AllTables 迁移顺序
func AllTables() []any {
	return []any{
		&User{},
		&Tweet{},
		&Comment{},
		&ReactionStatus{},
		&TweetReaction{},
		&CommentReaction{},
	}
}
