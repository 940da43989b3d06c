package usecase_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"drumroast/internal/domain/model"
	"drumroast/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestBuildOrderMessage(t *testing.T) {
	lines := []usecase.CheckoutLine{
		{Name: "A", Quantity: 2, UnitPrice: 100},
		{Name: "B", Quantity: 1, UnitPrice: 50},
	}

	msg := usecase.BuildOrderMessage(lines, 250)

	assert.Contains(t, msg, "1. A (x2) - ₹200")
	assert.Contains(t, msg, "2. B (x1) - ₹50")
	assert.Contains(t, msg, "Total: ₹250")
	assert.Contains(t, msg, "Hi! I'd like to place an order from DrumRoast:")
	assert.Contains(t, msg, "Please confirm availability and payment details.")
}

func TestBuildOrderMessage_LineOrderIsStable(t *testing.T) {
	lines := []usecase.CheckoutLine{
		{Name: "First", Quantity: 1, UnitPrice: 10},
		{Name: "Second", Quantity: 1, UnitPrice: 20},
		{Name: "Third", Quantity: 1, UnitPrice: 30},
	}

	msg := usecase.BuildOrderMessage(lines, 60)

	// 行番号は1始まりで入力順のまま
	assert.Less(t, strings.Index(msg, "1. First"), strings.Index(msg, "2. Second"))
	assert.Less(t, strings.Index(msg, "2. Second"), strings.Index(msg, "3. Third"))
}

func TestWhatsAppLink(t *testing.T) {
	link := usecase.WhatsAppLink("917715808527", "Hello World")

	assert.Contains(t, link, "https://wa.me/917715808527?text=")
	// 空白はパーセントエンコードされて生のまま残らない
	assert.NotContains(t, link, " ")
}

func TestCheckoutUsecase_Unauthenticated(t *testing.T) {
	uc := usecase.NewCheckoutUsecase(newFakeCartItemRepo(), new(ProductRepoMock), new(OrderRepoMock), "917715808527")

	_, err := uc.Checkout(context.Background(), "", usecase.CheckoutInput{})
	assertErrContains(t, err, "unauthorized")
}

func TestCheckoutUsecase_EmptyCart(t *testing.T) {
	orderRepo := new(OrderRepoMock)
	uc := usecase.NewCheckoutUsecase(newFakeCartItemRepo(), new(ProductRepoMock), orderRepo, "917715808527")

	_, err := uc.Checkout(context.Background(), "u1", usecase.CheckoutInput{})
	assertErrContains(t, err, "cart empty")

	// 空カートではOrder行を作らない
	orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckoutUsecase_CreatesOrderThenClearsCart(t *testing.T) {
	ctx := context.Background()

	cartRepo := newFakeCartItemRepo()
	productRepo := new(ProductRepoMock)
	orderRepo := new(OrderRepoMock)
	uc := usecase.NewCheckoutUsecase(cartRepo, productRepo, orderRepo, "917715808527")

	productRepo.On("FindByID", mock.Anything, "p1").Return(activeProduct("p1", "Drum Roasted Cashews", 499), nil)
	assert.NoError(t, cartRepo.UpsertByUserAndProduct(ctx, "u1", "p1", 2))

	orderRepo.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.UserID == "u1" &&
			o.Status == model.OrderStatusPending &&
			o.Total == 998
	})).Return(model.Order{ID: "order-1", UserID: "u1", Status: model.OrderStatusPending, Total: 998}, nil)

	out, err := uc.Checkout(ctx, "u1", usecase.CheckoutInput{ShippingAddress: "42 MG Road, Mumbai"})
	assert.NoError(t, err)

	assert.Equal(t, "order-1", out.OrderID)
	assert.Equal(t, int64(998), out.Total)
	assert.Contains(t, out.Message, "1. Drum Roasted Cashews (x2) - ₹998")
	assert.Contains(t, out.WhatsAppURL, "https://wa.me/917715808527?text=")

	// Order作成成功後にカートが空になっている
	items, err := cartRepo.ListByUserID(ctx, "u1")
	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestCheckoutUsecase_OrderCreateFails_CartIsKept(t *testing.T) {
	ctx := context.Background()

	cartRepo := newFakeCartItemRepo()
	productRepo := new(ProductRepoMock)
	orderRepo := new(OrderRepoMock)
	uc := usecase.NewCheckoutUsecase(cartRepo, productRepo, orderRepo, "917715808527")

	productRepo.On("FindByID", mock.Anything, "p1").Return(activeProduct("p1", "Energy Trail Mix", 449), nil)
	assert.NoError(t, cartRepo.UpsertByUserAndProduct(ctx, "u1", "p1", 1))

	orderRepo.On("Create", mock.Anything, mock.Anything).Return(model.Order{}, assert.AnError)

	_, err := uc.Checkout(ctx, "u1", usecase.CheckoutInput{})
	assertErrContains(t, err, "db error")

	// Order行が作れなかったらカートはそのまま
	items, listErr := cartRepo.ListByUserID(ctx, "u1")
	assert.NoError(t, listErr)
	assert.Len(t, items, 1)
}

func TestCheckoutUsecase_ItemsSnapshotIsValidJSON(t *testing.T) {
	ctx := context.Background()

	cartRepo := newFakeCartItemRepo()
	productRepo := new(ProductRepoMock)
	orderRepo := new(OrderRepoMock)
	uc := usecase.NewCheckoutUsecase(cartRepo, productRepo, orderRepo, "917715808527")

	productRepo.On("FindByID", mock.Anything, "p1").Return(activeProduct("p1", "Superfood Blend", 649), nil)
	assert.NoError(t, cartRepo.UpsertByUserAndProduct(ctx, "u1", "p1", 3))

	var captured model.Order
	orderRepo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		captured = args.Get(1).(model.Order)
	}).Return(model.Order{ID: "order-2"}, nil)

	_, err := uc.Checkout(ctx, "u1", usecase.CheckoutInput{})
	assert.NoError(t, err)

	var lines []usecase.CheckoutLine
	assert.NoError(t, json.Unmarshal([]byte(captured.ItemsJSON), &lines))
	assert.Len(t, lines, 1)
	assert.Equal(t, "Superfood Blend", lines[0].Name)
	assert.Equal(t, int64(3), lines[0].Quantity)
	assert.Equal(t, int64(649*3), lines[0].Subtotal)
}
