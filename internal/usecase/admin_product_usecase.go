package usecase

import (
	"context"
	"io"
	"net/http"
	"regexp"
	"strings"

	"drumroast/internal/domain/model"
	repo "drumroast/internal/repository"
)

// 商品画像の保存先（ローカルディスク実装をinfraに持つ）
type ImageStore interface {
	Save(filename string, src io.Reader) (string, error)
}

// AdminProductUsecase は管理画面の商品CRUDと画像アップロード。
type AdminProductUsecase struct {
	productRepo repo.ProductRepository
	images      ImageStore
}

// DI
func NewAdminProductUsecase(productRepo repo.ProductRepository, images ImageStore) *AdminProductUsecase {
	return &AdminProductUsecase{
		productRepo: productRepo,
		images:      images,
	}
}

type ProductInput struct {
	Name                string
	Slug                string // 空なら名前から自動生成
	Description         string
	Price               int64
	OriginalPrice       *int64
	Category            string
	Subcategory         string
	Emoji               string
	Ingredients         string
	Nutrition           string
	StorageInstructions string
	Packaging           string
	IsFeatured          bool
	IsActive            bool
}

var slugInvalidRunes = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify は商品名からurl-slugを作る。
// 小文字化し、英数字以外の並びを"-"に置き換え、前後の"-"を落とす。
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugInvalidRunes.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func (u *AdminProductUsecase) validate(in ProductInput) (model.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if in.Price < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid price")
	}
	if in.OriginalPrice != nil && *in.OriginalPrice < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid original_price")
	}

	category := model.ProductCategory(strings.TrimSpace(in.Category))
	if !category.Valid() {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid category")
	}

	slug := strings.TrimSpace(in.Slug)
	if slug == "" {
		slug = Slugify(name)
	}
	if slug == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid slug")
	}

	return model.Product{
		Name:                name,
		Slug:                slug,
		Description:         in.Description,
		Price:               in.Price,
		OriginalPrice:       in.OriginalPrice,
		Category:            category,
		Subcategory:         in.Subcategory,
		Emoji:               in.Emoji,
		Ingredients:         in.Ingredients,
		Nutrition:           in.Nutrition,
		StorageInstructions: in.StorageInstructions,
		Packaging:           in.Packaging,
		IsFeatured:          in.IsFeatured,
		IsActive:            in.IsActive,
	}, nil
}

// 非公開も含めた全商品（管理画面テーブル用）
func (u *AdminProductUsecase) List(ctx context.Context) (ProductListOutput, error) {
	products, err := u.productRepo.ListAll(ctx)
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return ProductListOutput{Items: products, Total: len(products)}, nil
}

func (u *AdminProductUsecase) Create(ctx context.Context, in ProductInput) (model.Product, error) {
	p, err := u.validate(in)
	if err != nil {
		return model.Product{}, err
	}

	created, err := u.productRepo.Create(ctx, p)
	if err != nil {
		// slug重複はここに落ちる
		return model.Product{}, NewHTTPError(http.StatusConflict, "slug already used")
	}
	return created, nil
}

func (u *AdminProductUsecase) Update(ctx context.Context, productID string, in ProductInput) (model.Product, error) {
	if productID == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	p, err := u.validate(in)
	if err != nil {
		return model.Product{}, err
	}
	p.ID = productID

	err = u.productRepo.Update(ctx, p)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	updated, err := u.productRepo.FindByID(ctx, productID)
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return updated, nil
}

func (u *AdminProductUsecase) Delete(ctx context.Context, productID string) error {
	if productID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.productRepo.SoftDelete(ctx, productID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// 画像を保存して公開URLをproducts.image_urlに反映する。
func (u *AdminProductUsecase) UploadImage(ctx context.Context, productID string, filename string, src io.Reader) (string, error) {
	if productID == "" {
		return "", NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	// 商品の存在確認を先に
	if _, err := u.productRepo.FindByID(ctx, productID); err != nil {
		if err == repo.ErrNotFound {
			return "", NewHTTPError(http.StatusNotFound, "not found")
		}
		return "", NewHTTPError(http.StatusInternalServerError, "db error")
	}

	publicURL, err := u.images.Save(filename, src)
	if err != nil {
		return "", NewHTTPError(http.StatusBadRequest, "invalid image")
	}

	if err := u.productRepo.SetImageURL(ctx, productID, publicURL); err != nil {
		return "", NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return publicURL, nil
}
