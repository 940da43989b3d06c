package repository

import (
	"context"

	"drumroast/internal/domain/model"
)

type OfferRepository interface {
	// created_at降順
	ListAll(ctx context.Context) ([]model.Offer, error)
	FindByID(ctx context.Context, id string) (model.Offer, error)
	Create(ctx context.Context, o model.Offer) (model.Offer, error)
	SetActive(ctx context.Context, id string, isActive bool) error
	DeleteByID(ctx context.Context, id string) error
	CountActive(ctx context.Context) (int64, error)
}
