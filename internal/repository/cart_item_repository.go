package repository

import (
	"context"

	"drumroast/internal/domain/model"
)

type CartItemRepository interface {
	// created_at, id の昇順（チェックアウト文面の並びを安定させる）
	ListByUserID(ctx context.Context, userID string) ([]model.CartItem, error)
	// 同一(user, product)は数量プラス
	UpsertByUserAndProduct(ctx context.Context, userID string, productID string, addQty int64) error
	UpdateQuantity(ctx context.Context, userID string, productID string, qty int64) error
	// 対象行が無くてもエラーにしない（冪等）
	DeleteByUserAndProduct(ctx context.Context, userID string, productID string) error
	DeleteAllByUserID(ctx context.Context, userID string) error
}
