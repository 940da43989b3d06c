package repository

import (
	"context"
	"errors"

	"drumroast/internal/domain/model"
	repo "drumroast/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartItemGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartItemGormRepository(db *gorm.DB) *CartItemGormRepository {
	return &CartItemGormRepository{db: db}
}

// ユーザーのカート明細を追加順で取得
func (r *CartItemGormRepository) ListByUserID(ctx context.Context, userID string) ([]model.CartItem, error) {
	var items []model.CartItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return []model.CartItem{}, err
	}
	return items, nil
}

// 同一(user, product)は数量加算、無ければ新規作成
func (r *CartItemGormRepository) UpsertByUserAndProduct(ctx context.Context, userID string, productID string, addQty int64) error {
	if addQty <= 0 {
		return errors.New("invalid quantity")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item model.CartItem

		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND product_id = ?", userID, productID).
			First(&item).Error

		if err == nil {
			// 既存ありだったら数量を増やす
			newQty := item.Quantity + addQty

			res := tx.Model(&model.CartItem{}).
				Where("id = ?", item.ID).
				Update("quantity", newQty)

			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return repo.ErrNotFound
			}
			return nil
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		//無い場合は新規作成
		newItem := model.CartItem{
			ID:        uuid.NewString(),
			UserID:    userID,
			ProductID: productID,
			Quantity:  addQty,
		}

		if err := tx.Create(&newItem).Error; err != nil {
			return err
		}

		return nil
	})
}

// 明細の数量を直接セット（加算ではない）
func (r *CartItemGormRepository) UpdateQuantity(ctx context.Context, userID string, productID string, qty int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Update("quantity", qty)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 明細を削除。該当行が無くても成功扱い（冪等）。
func (r *CartItemGormRepository) DeleteByUserAndProduct(ctx context.Context, userID string, productID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.CartItem{}).Error
}

// ユーザーの明細を全削除
func (r *CartItemGormRepository) DeleteAllByUserID(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CartItem{}).Error
}
