package mysql

import (
	"context"

	"gorm.io/gorm"
)

type OutboxRepository struct {
	DB *gorm.DB
}

func NewOutboxRepository() *OutboxRepository {
	return &OutboxRepository{DB: DB}
}

// List 按批次查询待投递事件
func (r *OutboxRepository) List(ctx context.Context, batchSize int) ([]OutboxRow, error) {
	var list []OutboxRow
	if err := r.DB.WithContext(ctx).
		Where("status=0").
		Order("id ASC").
		Limit(batchSize).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// RetryUpdate 投递失败记账
func (r *OutboxRepository) RetryUpdate(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&OutboxRow{}).Where("id=?", id).
		Updates(map[string]any{"status": 2, "retry": gorm.Expr("retry + 1")}).Error
}

// SuccessUpdate 投递成功标记
func (r *OutboxRepository) SuccessUpdate(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&OutboxRow{}).Where("id=?", id).
		Update("status", 1).Error
}
