package usecase

import (
	"context"
	"net/http"

	repo "drumroast/internal/repository"
)

// CartUsecase は /cart の業務ロジックです。
// 明細は(user, product)で一意。未ログインは黙殺せず401を返す。
type CartUsecase struct {
	cartItemRepo repo.CartItemRepository
	productRepo  repo.ProductRepository
}

// DI
func NewCartUsecase(
	cartItemRepo repo.CartItemRepository,
	productRepo repo.ProductRepository,
) *CartUsecase {
	return &CartUsecase{
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
	}
}

type CartItemResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	Price     int64  `json:"price"`
	Emoji     string `json:"emoji"`
	ImageURL  string `json:"image_url"`
	Quantity  int64  `json:"quantity"`
}

// Count = Σ数量、Total = Σ(価格×数量)。状態が変わるたびに再計算。
type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Count int64              `json:"count"`
	Total int64              `json:"total"`
}

type AddCartInput struct {
	ProductID string
	Quantity  int64
}

type UpdateCartItemInput struct {
	ProductID string
	Quantity  int64
}

// GetCart はカート取得。明細と商品をつき合わせ、解決できない商品は静かに落とす。
func (u *CartUsecase) GetCart(ctx context.Context, userID string) (CartResponse, error) {
	if userID == "" {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	return u.buildCartResponse(ctx, userID)
}

// AddToCart はカートに追加（同一商品は数量加算）。
func (u *CartUsecase) AddToCart(ctx context.Context, userID string, in AddCartInput) (CartResponse, error) {
	if userID == "" {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.ProductID == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	// 数量省略は1個
	qty := in.Quantity
	if qty == 0 {
		qty = 1
	}
	if qty < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	// 商品チェック（公開のみ）
	p, err := u.productRepo.FindByID(ctx, in.ProductID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !p.IsActive {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product")
	}

	// Upsert（同一商品は加算）
	if err := u.cartItemRepo.UpsertByUserAndProduct(ctx, userID, in.ProductID, qty); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// 楽観更新はせず、必ず読み直す
	return u.buildCartResponse(ctx, userID)
}

// 数量変更（加算ではなく直接セット）。qty < 1 は拒否し、削除はRemoveFromCartで行う。
func (u *CartUsecase) UpdateQuantity(ctx context.Context, userID string, in UpdateCartItemInput) (CartResponse, error) {
	if userID == "" {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.ProductID == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if in.Quantity < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	err := u.cartItemRepo.UpdateQuantity(ctx, userID, in.ProductID, in.Quantity)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, userID)
}

// 明細削除。対象が無くてもエラーにしない（冪等）。
func (u *CartUsecase) RemoveFromCart(ctx context.Context, userID string, productID string) (CartResponse, error) {
	if userID == "" {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	if err := u.cartItemRepo.DeleteByUserAndProduct(ctx, userID, productID); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, userID)
}

// 全明細削除
func (u *CartUsecase) ClearCart(ctx context.Context, userID string) error {
	if userID == "" {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	if err := u.cartItemRepo.DeleteAllByUserID(ctx, userID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// 明細と商品をまとめてCartResponseを作る。
// 商品が消えている・非公開になっている明細は結果から除外する。
func (u *CartUsecase) buildCartResponse(ctx context.Context, userID string) (CartResponse, error) {
	items, err := u.cartItemRepo.ListByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	respItems := make([]CartItemResponse, 0, len(items))
	var count int64 = 0
	var total int64 = 0

	for _, it := range items {
		p, err := u.productRepo.FindByID(ctx, it.ProductID)
		if err != nil {
			continue
		}
		if !p.IsActive {
			continue
		}

		respItems = append(respItems, CartItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Name:      p.Name,
			Slug:      p.Slug,
			Price:     p.Price,
			Emoji:     p.Emoji,
			ImageURL:  p.ImageURL,
			Quantity:  it.Quantity,
		})

		count += it.Quantity
		total += p.Price * it.Quantity
	}

	return CartResponse{Items: respItems, Count: count, Total: total}, nil
}
