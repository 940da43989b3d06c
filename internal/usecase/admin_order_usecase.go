package usecase

import (
	"context"
	"net/http"

	"drumroast/internal/domain/model"
	repo "drumroast/internal/repository"
)

// AdminOrderUsecase は注文の一覧・ステータス更新とダッシュボード集計。
type AdminOrderUsecase struct {
	orderRepo   repo.OrderRepository
	productRepo repo.ProductRepository
	offerRepo   repo.OfferRepository
}

// DI
func NewAdminOrderUsecase(
	orderRepo repo.OrderRepository,
	productRepo repo.ProductRepository,
	offerRepo repo.OfferRepository,
) *AdminOrderUsecase {
	return &AdminOrderUsecase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		offerRepo:   offerRepo,
	}
}

type OrderListOutput struct {
	Items []model.Order `json:"items"`
	Total int           `json:"total"`
}

type DashboardOutput struct {
	Products     int64 `json:"products"`
	ActiveOffers int64 `json:"active_offers"`
	Orders       int64 `json:"orders"`
}

func (u *AdminOrderUsecase) List(ctx context.Context) (OrderListOutput, error) {
	orders, err := u.orderRepo.ListAll(ctx)
	if err != nil {
		return OrderListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return OrderListOutput{Items: orders, Total: len(orders)}, nil
}

// pending -> confirmed -> shipped -> delivered のいずれかへ更新。
// 遷移順は強制しない（管理者の手作業を信頼する）。
func (u *AdminOrderUsecase) UpdateStatus(ctx context.Context, orderID string, status string) (model.Order, error) {
	if orderID == "" {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	s := model.OrderStatus(status)
	if !s.Valid() {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	err := u.orderRepo.UpdateStatus(ctx, orderID, s)
	if err == repo.ErrNotFound {
		return model.Order{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	o, err := u.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return o, nil
}

// ダッシュボードの件数（商品・有効オファー・注文）
func (u *AdminOrderUsecase) Dashboard(ctx context.Context) (DashboardOutput, error) {
	products, err := u.productRepo.Count(ctx)
	if err != nil {
		return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	offers, err := u.offerRepo.CountActive(ctx)
	if err != nil {
		return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	orders, err := u.orderRepo.Count(ctx)
	if err != nil {
		return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return DashboardOutput{
		Products:     products,
		ActiveOffers: offers,
		Orders:       orders,
	}, nil
}
