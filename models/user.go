package models

import "time"

type User struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Username  string    `gorm:"column:username;type:varchar(64);not null;uniqueIndex:uk_users_username" json:"username"`
	Password  string    `gorm:"column:password;type:varchar(255);not null" json:"-"` // bcrypt
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
