package repository

import (
	"context"

	"drumroast/internal/domain/model"
)

type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateLastLoginAt(ctx context.Context, id string) error
	// token_versionを+1して既発行トークンを無効化する
	BumpTokenVersion(ctx context.Context, id string) (int, error)
}
