package usecase_test

import (
	"context"
	"fmt"
	"io"
	"testing"

	"drumroast/internal/domain/model"
	repo "drumroast/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) ListActive(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) ListFeatured(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id string) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) FindBySlug(ctx context.Context, slug string) (model.Product, error) {
	args := m.Called(ctx, slug)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) ListAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) SoftDelete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ProductRepoMock) SetImageURL(ctx context.Context, id string, imageURL string) error {
	args := m.Called(ctx, id, imageURL)
	return args.Error(0)
}

func (m *ProductRepoMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type CartItemRepoMock struct{ mock.Mock }

func (m *CartItemRepoMock) ListByUserID(ctx context.Context, userID string) ([]model.CartItem, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]model.CartItem)
	return items, args.Error(1)
}

func (m *CartItemRepoMock) UpsertByUserAndProduct(ctx context.Context, userID string, productID string, addQty int64) error {
	args := m.Called(ctx, userID, productID, addQty)
	return args.Error(0)
}

func (m *CartItemRepoMock) UpdateQuantity(ctx context.Context, userID string, productID string, qty int64) error {
	args := m.Called(ctx, userID, productID, qty)
	return args.Error(0)
}

func (m *CartItemRepoMock) DeleteByUserAndProduct(ctx context.Context, userID string, productID string) error {
	args := m.Called(ctx, userID, productID)
	return args.Error(0)
}

func (m *CartItemRepoMock) DeleteAllByUserID(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type OfferRepoMock struct{ mock.Mock }

func (m *OfferRepoMock) ListAll(ctx context.Context) ([]model.Offer, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Offer)
	return items, args.Error(1)
}

func (m *OfferRepoMock) FindByID(ctx context.Context, id string) (model.Offer, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(model.Offer)
	return o, args.Error(1)
}

func (m *OfferRepoMock) Create(ctx context.Context, o model.Offer) (model.Offer, error) {
	args := m.Called(ctx, o)
	created, _ := args.Get(0).(model.Offer)
	return created, args.Error(1)
}

func (m *OfferRepoMock) SetActive(ctx context.Context, id string, isActive bool) error {
	args := m.Called(ctx, id, isActive)
	return args.Error(0)
}

func (m *OfferRepoMock) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *OfferRepoMock) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Create(ctx context.Context, o model.Order) (model.Order, error) {
	args := m.Called(ctx, o)
	created, _ := args.Get(0).(model.Order)
	return created, args.Error(1)
}

func (m *OrderRepoMock) ListAll(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Order)
	return items, args.Error(1)
}

func (m *OrderRepoMock) FindByID(ctx context.Context, id string) (model.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *OrderRepoMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, u *model.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *UserRepoMock) FindByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) UpdateLastLoginAt(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *UserRepoMock) BumpTokenVersion(ctx context.Context, id string) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

type ImageStoreMock struct{ mock.Mock }

func (m *ImageStoreMock) Save(filename string, src io.Reader) (string, error) {
	args := m.Called(filename, src)
	return args.String(0), args.Error(1)
}

// =====================
// In-memory fake cart
// =====================

// 数量加算や冪等削除などの「状態をまたぐ性質」は、
// mockではなくインメモリ実装で検証する。
type fakeCartItemRepo struct {
	items []model.CartItem
	seq   int
}

func newFakeCartItemRepo() *fakeCartItemRepo {
	return &fakeCartItemRepo{}
}

func (f *fakeCartItemRepo) ListByUserID(ctx context.Context, userID string) ([]model.CartItem, error) {
	out := make([]model.CartItem, 0)
	for _, it := range f.items {
		if it.UserID == userID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeCartItemRepo) UpsertByUserAndProduct(ctx context.Context, userID string, productID string, addQty int64) error {
	for i, it := range f.items {
		if it.UserID == userID && it.ProductID == productID {
			f.items[i].Quantity += addQty
			return nil
		}
	}
	f.seq++
	f.items = append(f.items, model.CartItem{
		ID:        fmt.Sprintf("item-%d", f.seq),
		UserID:    userID,
		ProductID: productID,
		Quantity:  addQty,
	})
	return nil
}

func (f *fakeCartItemRepo) UpdateQuantity(ctx context.Context, userID string, productID string, qty int64) error {
	for i, it := range f.items {
		if it.UserID == userID && it.ProductID == productID {
			f.items[i].Quantity = qty
			return nil
		}
	}
	return repo.ErrNotFound
}

func (f *fakeCartItemRepo) DeleteByUserAndProduct(ctx context.Context, userID string, productID string) error {
	out := f.items[:0]
	for _, it := range f.items {
		if it.UserID == userID && it.ProductID == productID {
			continue
		}
		out = append(out, it)
	}
	f.items = out
	return nil
}

func (f *fakeCartItemRepo) DeleteAllByUserID(ctx context.Context, userID string) error {
	out := f.items[:0]
	for _, it := range f.items {
		if it.UserID == userID {
			continue
		}
		out = append(out, it)
	}
	f.items = out
	return nil
}

// =====================
// Helpers
// =====================

func assertErrContains(t *testing.T, err error, want string) {
	t.Helper()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), want)
}
