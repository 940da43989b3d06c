package repository

import (
	"context"

	"drumroast/internal/domain/model"
)

type OrderRepository interface {
	Create(ctx context.Context, o model.Order) (model.Order, error)
	// created_at降順（管理画面は新しい注文から見る）
	ListAll(ctx context.Context) ([]model.Order, error)
	FindByID(ctx context.Context, id string) (model.Order, error)
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error
	Count(ctx context.Context) (int64, error)
}
