package dao

import (
	"Tweeter/models"
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Migrate 建表并写入默认点赞状态，可重复执行
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(models.AllTables()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	if err := NewReactionStatusDAO(db).Seed(ctx); err != nil {
		return fmt.Errorf("seed reaction statuses: %w", err)
	}
	return nil
}
