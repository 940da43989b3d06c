package repository

import (
	"context"
	"errors"

	"drumroast/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	// 公開中（is_active=true）の全商品。絞り込みはusecase側の純関数フィルタ。
	ListActive(ctx context.Context) ([]model.Product, error)
	ListFeatured(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id string) (model.Product, error)
	FindBySlug(ctx context.Context, slug string) (model.Product, error)

	// 管理向け（非公開も含む）
	ListAll(ctx context.Context) ([]model.Product, error)
	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	SoftDelete(ctx context.Context, id string) error
	SetImageURL(ctx context.Context, id string, imageURL string) error
	Count(ctx context.Context) (int64, error)
}
