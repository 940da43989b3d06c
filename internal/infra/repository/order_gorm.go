package repository

import (
	"context"
	"errors"

	"drumroast/internal/domain/model"
	repo "drumroast/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

// DI
func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) Create(ctx context.Context, o model.Order) (model.Order, error) {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(&o).Error; err != nil {
		return model.Order{}, err
	}
	return o, nil
}

// 管理画面用（新しい注文から）
func (r *OrderGormRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		return []model.Order{}, err
	}
	return orders, nil
}

func (r *OrderGormRepository) FindByID(ctx context.Context, id string) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

// orders.statusを更新
func (r *OrderGormRepository) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error {
	res := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// ダッシュボード件数
func (r *OrderGormRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
