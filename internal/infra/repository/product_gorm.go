package repository

import (
	"context"
	"errors"

	"drumroast/internal/domain/model"
	repo "drumroast/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// 公開商品を全件返す。絞り込みはusecase側で行う。
func (r *ProductGormRepository) ListActive(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at desc").
		Find(&products).Error
	if err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

// トップ表示用（公開かつ注目フラグ）
func (r *ProductGormRepository) ListFeatured(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND is_featured = ?", true, true).
		Order("created_at desc").
		Find(&products).Error
	if err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, id string) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// slugで商品を取得
func (r *ProductGormRepository) FindBySlug(ctx context.Context, slug string) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 管理画面用（非公開も含めて新しい順）
func (r *ProductGormRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Order("created_at desc").
		Find(&products).Error
	if err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

// 商品の作成
func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 商品の更新
func (r *ProductGormRepository) Update(ctx context.Context, p model.Product) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"name":                 p.Name,
		"slug":                 p.Slug,
		"description":          p.Description,
		"price":                p.Price,
		"original_price":       p.OriginalPrice,
		"category":             p.Category,
		"subcategory":          p.Subcategory,
		"emoji":                p.Emoji,
		"ingredients":          p.Ingredients,
		"nutrition":            p.Nutrition,
		"storage_instructions": p.StorageInstructions,
		"packaging":            p.Packaging,
		"is_featured":          p.IsFeatured,
		"is_active":            p.IsActive,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 商品削除（ソフトデリート）
func (r *ProductGormRepository) SoftDelete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 画像アップロード後のURL反映
func (r *ProductGormRepository) SetImageURL(ctx context.Context, id string, imageURL string) error {
	res := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ?", id).
		Update("image_url", imageURL)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// ダッシュボード件数
func (r *ProductGormRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
