package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"drumroast/internal/domain/model"
	repo "drumroast/internal/repository"
)

// OfferUsecase はプロモーションオファーの公開一覧と管理CRUD。
// オファーは表示専用のバッジ/打ち消し価格であり、商品価格は変更しない。
type OfferUsecase struct {
	offerRepo repo.OfferRepository
}

// DI
func NewOfferUsecase(offerRepo repo.OfferRepository) *OfferUsecase {
	return &OfferUsecase{offerRepo: offerRepo}
}

type CreateOfferInput struct {
	Title              string
	Description        string
	DiscountPercentage int64
	ProductID          string // 任意（空なら全体オファー）
	StartDate          time.Time
	EndDate            time.Time
	IsActive           bool
}

type OfferListOutput struct {
	Items []model.Offer `json:"items"`
	Total int           `json:"total"`
}

// 公開側：現在表示対象のオファーだけを返す（有効フラグ＋期間内）
func (u *OfferUsecase) ListCurrent(ctx context.Context) (OfferListOutput, error) {
	offers, err := u.offerRepo.ListAll(ctx)
	if err != nil {
		return OfferListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	now := time.Now()
	current := make([]model.Offer, 0, len(offers))
	for _, o := range offers {
		if o.CurrentlyActive(now) {
			current = append(current, o)
		}
	}

	return OfferListOutput{Items: current, Total: len(current)}, nil
}

// 管理側：全件
func (u *OfferUsecase) ListAll(ctx context.Context) (OfferListOutput, error) {
	offers, err := u.offerRepo.ListAll(ctx)
	if err != nil {
		return OfferListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return OfferListOutput{Items: offers, Total: len(offers)}, nil
}

func (u *OfferUsecase) Create(ctx context.Context, in CreateOfferInput) (model.Offer, error) {
	if strings.TrimSpace(in.Title) == "" {
		return model.Offer{}, NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if in.DiscountPercentage < 1 || in.DiscountPercentage > 100 {
		return model.Offer{}, NewHTTPError(http.StatusBadRequest, "invalid discount_percentage")
	}
	if !in.EndDate.After(in.StartDate) {
		return model.Offer{}, NewHTTPError(http.StatusBadRequest, "end_date must be after start_date")
	}

	var productID *string
	if s := strings.TrimSpace(in.ProductID); s != "" {
		productID = &s
	}

	o, err := u.offerRepo.Create(ctx, model.Offer{
		Title:              strings.TrimSpace(in.Title),
		Description:        in.Description,
		DiscountPercentage: in.DiscountPercentage,
		ProductID:          productID,
		StartDate:          in.StartDate,
		EndDate:            in.EndDate,
		IsActive:           in.IsActive,
	})
	if err != nil {
		return model.Offer{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return o, nil
}

// 有効フラグの切り替え
func (u *OfferUsecase) SetActive(ctx context.Context, offerID string, isActive bool) error {
	if offerID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.offerRepo.SetActive(ctx, offerID, isActive)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *OfferUsecase) Delete(ctx context.Context, offerID string) error {
	if offerID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.offerRepo.DeleteByID(ctx, offerID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
