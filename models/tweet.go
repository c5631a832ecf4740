package models

import (
	"time"
)

type Tweet struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;index:idx_tweets_user_id" json:"user_id"`
	Text      string    `gorm:"column:text;type:varchar(280);not null" json:"text"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index:idx_tweets_created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Tweet) TableName() string {
	return "tweets"
}

func (t *Tweet) OwnerID() uint64 {
	return t.UserID
}
