package repository

import (
	"context"
	"errors"
	"time"

	"drumroast/internal/domain/model"
	repo "drumroast/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OfferGormRepository struct {
	db *gorm.DB
}

// DI
func NewOfferGormRepository(db *gorm.DB) *OfferGormRepository {
	return &OfferGormRepository{db: db}
}

// 新しい順で全件
func (r *OfferGormRepository) ListAll(ctx context.Context) ([]model.Offer, error) {
	var offers []model.Offer
	err := r.db.WithContext(ctx).
		Order("created_at desc").
		Find(&offers).Error
	if err != nil {
		return []model.Offer{}, err
	}
	return offers, nil
}

func (r *OfferGormRepository) FindByID(ctx context.Context, id string) (model.Offer, error) {
	var o model.Offer
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Offer{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Offer{}, err
	}
	return o, nil
}

func (r *OfferGormRepository) Create(ctx context.Context, o model.Offer) (model.Offer, error) {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(&o).Error; err != nil {
		return model.Offer{}, err
	}
	return o, nil
}

// 有効フラグの切り替え
func (r *OfferGormRepository) SetActive(ctx context.Context, id string, isActive bool) error {
	res := r.db.WithContext(ctx).
		Model(&model.Offer{}).
		Where("id = ?", id).
		Update("is_active", isActive)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *OfferGormRepository) DeleteByID(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Offer{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// ダッシュボード件数（有効フラグかつ期間内）
func (r *OfferGormRepository) CountActive(ctx context.Context) (int64, error) {
	now := time.Now()
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Offer{}).
		Where("is_active = ? AND start_date <= ? AND end_date >= ?", true, now, now).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
