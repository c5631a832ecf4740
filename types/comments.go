package types

import "time"

// CommentQuery 评论列表筛选
type CommentQuery struct {
	User   string `form:"user"`   // 作者用户名
	Search string `form:"search"` // 正文包含，忽略大小写
}

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required,notblank,max=1000"`
}

type UpdateCommentRequest struct {
	Text string `json:"text" binding:"required,notblank,max=1000"`
}

type PatchCommentRequest struct {
	Text *string `json:"text" binding:"omitempty,notblank,max=1000"`
}

type CommentResponse struct {
	ID      uint64 `json:"id,string"`
	TweetID uint64 `json:"tweet_id,string"`
	UserID  uint64 `json:"user_id,string"`
	User    string `json:"user"`
	Text    string `json:"text"`
	ReactionCounts
	Reaction  string    `json:"reaction,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
