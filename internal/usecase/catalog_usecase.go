package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"drumroast/internal/domain/model"
	repo "drumroast/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// CatalogUsecase は公開カタログ（一覧・検索・詳細）の業務ロジックです。
type CatalogUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewCatalogUsecase(productRepo repo.ProductRepository) *CatalogUsecase {
	return &CatalogUsecase{productRepo: productRepo}
}

// GET /productsの入力DTO
type ListProductsInput struct {
	Category string // "All" または Signature/Daily/Gift
	Q        string // 商品名の部分一致（大文字小文字を無視）
}

type ProductListOutput struct {
	Items []model.Product `json:"items"`
	Total int             `json:"total"`
}

// 公開中の全商品を一度取得し、カテゴリ＋検索語で絞り込む。
// ページングなし（カタログは小規模）。
func (u *CatalogUsecase) ListProducts(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = "All"
	}
	if category != "All" && !model.ProductCategory(category).Valid() {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid category")
	}
	if len(in.Q) > 100 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "q too long")
	}

	products, err := u.productRepo.ListActive(ctx)
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	filtered := FilterProducts(products, category, in.Q)

	return ProductListOutput{
		Items: filtered,
		Total: len(filtered),
	}, nil
}

// FilterProducts はカタログ絞り込みの純関数。
// カテゴリは完全一致（"All"は素通し）、検索語は商品名の部分一致（大文字小文字を無視）。
func FilterProducts(products []model.Product, category string, q string) []model.Product {
	query := strings.ToLower(strings.TrimSpace(q))

	filtered := make([]model.Product, 0, len(products))
	for _, p := range products {
		if category != "All" && string(p.Category) != category {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// トップ表示用の注目商品
func (u *CatalogUsecase) ListFeatured(ctx context.Context) (ProductListOutput, error) {
	products, err := u.productRepo.ListFeatured(ctx)
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return ProductListOutput{Items: products, Total: len(products)}, nil
}

// IDで商品詳細を取得（非公開は「存在しない扱い」）
func (u *CatalogUsecase) GetProductByID(ctx context.Context, id string) (model.Product, error) {
	if strings.TrimSpace(id) == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	p, err := u.productRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !p.IsActive {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	return p, nil
}

// slugで商品詳細を取得（非公開は「存在しない扱い」）
func (u *CatalogUsecase) GetProductBySlug(ctx context.Context, slug string) (model.Product, error) {
	if strings.TrimSpace(slug) == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid slug")
	}

	p, err := u.productRepo.FindBySlug(ctx, slug)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !p.IsActive {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	return p, nil
}
