package dao

import (
	"Tweeter/models"
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ToggleAction string

const (
	ToggleCreated ToggleAction = "created"
	ToggleChanged ToggleAction = "changed"
	ToggleRemoved ToggleAction = "removed"
)

// reactionModel 点赞记录表需要实现的方法，T 为 models.TweetReaction / models.CommentReaction
type reactionModel[T any] interface {
	*T
	TableName() string
	TargetColumn() string
	GetID() uint64
	GetStatusID() uint64
	Init(targetID, userID, statusID uint64)
}

// ReactionDAO 每个 (target, user) 最多一条记录
type ReactionDAO[T any, PT reactionModel[T]] struct {
	Repo[T]
	table  string
	column string
}

type (
	TweetReactionDAO   = ReactionDAO[models.TweetReaction, *models.TweetReaction]
	CommentReactionDAO = ReactionDAO[models.CommentReaction, *models.CommentReaction]
)

func newReactionDAO[T any, PT reactionModel[T]](db *gorm.DB) *ReactionDAO[T, PT] {
	var zero T
	return &ReactionDAO[T, PT]{
		Repo:   NewRepo[T](db),
		table:  PT(&zero).TableName(),
		column: PT(&zero).TargetColumn(),
	}
}

func NewTweetReactionDAO(db *gorm.DB) *TweetReactionDAO {
	return newReactionDAO[models.TweetReaction](db)
}

func NewCommentReactionDAO(db *gorm.DB) *CommentReactionDAO {
	return newReactionDAO[models.CommentReaction](db)
}

// GetByTargetUser 查询用户对目标的记录，不存在返回 nil
func (d *ReactionDAO[T, PT]) GetByTargetUser(ctx context.Context, targetID, userID uint64) (PT, error) {
	var item T
	res := d.Db.WithContext(ctx).
		Where(d.column+" = ? AND user_id = ?", targetID, userID).
		Limit(1).
		Find(&item)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &item, nil
}

// Toggle 无记录则创建，状态相同则删除，不同则切换
func (d *ReactionDAO[T, PT]) Toggle(ctx context.Context, targetID, userID, statusID uint64) (ToggleAction, error) {
	action, err := d.toggle(ctx, targetID, userID, statusID)
	if isRetryable(err) {
		// 并发插入输给了另一个请求，重读后再执行一次
		action, err = d.toggle(ctx, targetID, userID, statusID)
	}
	return action, err
}

func (d *ReactionDAO[T, PT]) toggle(ctx context.Context, targetID, userID, statusID uint64) (ToggleAction, error) {
	var action ToggleAction
	err := d.Transaction(ctx, func(tx *gorm.DB) error {
		var item T
		res := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(d.column+" = ? AND user_id = ?", targetID, userID).
			Limit(1).
			Find(&item)
		if res.Error != nil {
			return res.Error
		}

		record := PT(&item)
		switch {
		case res.RowsAffected == 0: // create
			record.Init(targetID, userID, statusID)
			action = ToggleCreated
			return tx.Create(record).Error
		case record.GetStatusID() == statusID:
			action = ToggleRemoved
			return tx.Where("id = ?", record.GetID()).Delete(record).Error
		default:
			action = ToggleChanged
			return tx.Model(record).Update("status_id", statusID).Error
		}
	})
	if err != nil {
		return "", err
	}
	return action, nil
}

// isRetryable 唯一键冲突，或 mysql 间隙锁导致的死锁
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1213
}

// CountByTargets 批量统计各状态数量 target_id => slug => count
func (d *ReactionDAO[T, PT]) CountByTargets(ctx context.Context, targetIDs []uint64) (map[uint64]map[string]int64, error) {
	result := make(map[uint64]map[string]int64, len(targetIDs))
	if len(targetIDs) == 0 {
		return result, nil
	}

	var rows []struct {
		TargetID uint64
		Slug     string
		Total    int64
	}
	err := d.Db.WithContext(ctx).
		Table(d.table+" AS r").
		Select("r."+d.column+" AS target_id, s.slug AS slug, COUNT(*) AS total").
		Joins("JOIN reaction_statuses s ON s.id = r.status_id").
		Where("r."+d.column+" IN ?", targetIDs).
		Group("r." + d.column + ", s.slug").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if result[row.TargetID] == nil {
			result[row.TargetID] = make(map[string]int64, 2)
		}
		result[row.TargetID][row.Slug] = row.Total
	}
	return result, nil
}

// SlugsForUser 用户在各目标上的当前状态 target_id => slug，未表态的目标不出现
func (d *ReactionDAO[T, PT]) SlugsForUser(ctx context.Context, userID uint64, targetIDs []uint64) (map[uint64]string, error) {
	result := make(map[uint64]string, len(targetIDs))
	if userID == 0 || len(targetIDs) == 0 {
		return result, nil
	}

	var rows []struct {
		TargetID uint64
		Slug     string
	}
	err := d.Db.WithContext(ctx).
		Table(d.table+" AS r").
		Select("r."+d.column+" AS target_id, s.slug AS slug").
		Joins("JOIN reaction_statuses s ON s.id = r.status_id").
		Where("r.user_id = ? AND r."+d.column+" IN ?", userID, targetIDs).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.TargetID] = row.Slug
	}
	return result, nil
}

// CountForUser 某用户对目标的记录条数，正常情况下只会是 0 或 1
func (d *ReactionDAO[T, PT]) CountForUser(ctx context.Context, targetID, userID uint64) (int64, error) {
	var count int64
	err := d.Model(ctx).Where(d.column+" = ? AND user_id = ?", targetID, userID).Count(&count).Error
	return count, err
}
