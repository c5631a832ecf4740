package types

import "time"

// CreateTweetRequest 发布推文，作者取当前登录用户，body 中的 user 字段不生效
type CreateTweetRequest struct {
	Text string `json:"text" binding:"required,notblank,max=280"`
}

// UpdateTweetRequest PUT 全量更新
type UpdateTweetRequest struct {
	Text string `json:"text" binding:"required,notblank,max=280"`
}

// PatchTweetRequest PATCH 部分更新，未传字段保持不变
type PatchTweetRequest struct {
	Text *string `json:"text" binding:"omitempty,notblank,max=280"`
}

// ReactionCounts 点赞/点踩计数
type ReactionCounts struct {
	Likes    int64 `json:"likes"`
	Dislikes int64 `json:"dislikes"`
}

type TweetResponse struct {
	ID        uint64 `json:"id,string"`
	UserID    uint64 `json:"user_id,string"`
	User      string `json:"user"` // 作者用户名
	Text      string `json:"text"`
	Comments  int64  `json:"comments"`
	ReactionCounts
	Reaction  string    `json:"reaction,omitempty"` // 当前登录用户的状态，匿名或未表态时省略
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
