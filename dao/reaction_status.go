package dao

import (
	"Tweeter/models"
	"context"

	"gorm.io/gorm"
)

type ReactionStatusDAO struct {
	Repo[models.ReactionStatus]
}

func NewReactionStatusDAO(db *gorm.DB) *ReactionStatusDAO {
	return &ReactionStatusDAO{Repo: NewRepo[models.ReactionStatus](db)}
}

// FindBySlug 不存在返回 gorm.ErrRecordNotFound
func (d *ReactionStatusDAO) FindBySlug(ctx context.Context, slug string) (*models.ReactionStatus, error) {
	return d.FindByWhere(ctx, "slug = ?", slug)
}

// Seed 写入默认状态，已存在则跳过
func (d *ReactionStatusDAO) Seed(ctx context.Context) error {
	return d.Transaction(ctx, func(tx *gorm.DB) error {
		for _, s := range models.DefaultStatuses() {
			status := s
			if err := tx.Where(models.ReactionStatus{Slug: status.Slug}).
				Attrs(models.ReactionStatus{Title: status.Title}).
				FirstOrCreate(&status).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
