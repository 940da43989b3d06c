package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"drumroast/internal/domain/model"
	repo "drumroast/internal/repository"
)

// CheckoutUsecase はカートをWhatsApp注文メッセージに変換して引き渡す。
// 2段階：先にOrder行を作成し、成功したときだけカートを空にする。
// 実際の取引確定はWhatsApp上で人手で行われる（配信確認なし）。
type CheckoutUsecase struct {
	cartItemRepo   repo.CartItemRepository
	productRepo    repo.ProductRepository
	orderRepo      repo.OrderRepository
	whatsAppNumber string
}

// DI
func NewCheckoutUsecase(
	cartItemRepo repo.CartItemRepository,
	productRepo repo.ProductRepository,
	orderRepo repo.OrderRepository,
	whatsAppNumber string,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		cartItemRepo:   cartItemRepo,
		productRepo:    productRepo,
		orderRepo:      orderRepo,
		whatsAppNumber: whatsAppNumber,
	}
}

// メッセージ生成の入力となる1明細
type CheckoutLine struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int64  `json:"quantity"`
	Subtotal  int64  `json:"subtotal"`
}

type CheckoutInput struct {
	ShippingAddress string
}

type CheckoutResponse struct {
	OrderID     string `json:"order_id"`
	Total       int64  `json:"total"`
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsapp_url"`
}

// Checkout は現在のカートからOrder行を作成し、WhatsAppディープリンクを返す。
// カートのクリアはOrder作成が成功した後にだけ行う。
func (u *CheckoutUsecase) Checkout(ctx context.Context, userID string, in CheckoutInput) (CheckoutResponse, error) {
	if userID == "" {
		return CheckoutResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	// 明細は追加順（repositoryがcreated_at, idでソート済み）
	items, err := u.cartItemRepo.ListByUserID(ctx, userID)
	if err != nil {
		return CheckoutResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	lines := make([]CheckoutLine, 0, len(items))
	var total int64 = 0

	for _, it := range items {
		p, err := u.productRepo.FindByID(ctx, it.ProductID)
		if err != nil {
			continue
		}
		if !p.IsActive {
			continue
		}

		lines = append(lines, CheckoutLine{
			ProductID: it.ProductID,
			Name:      p.Name,
			UnitPrice: p.Price,
			Quantity:  it.Quantity,
			Subtotal:  p.Price * it.Quantity,
		})
		total += p.Price * it.Quantity
	}

	if len(lines) == 0 {
		return CheckoutResponse{}, NewHTTPError(http.StatusBadRequest, "cart empty")
	}

	// 第1段階：Order行を作成（明細はJSONスナップショット）
	itemsJSON, err := json.Marshal(lines)
	if err != nil {
		return CheckoutResponse{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	order, err := u.orderRepo.Create(ctx, model.Order{
		UserID:          userID,
		Status:          model.OrderStatusPending,
		ItemsJSON:       string(itemsJSON),
		Total:           total,
		ShippingAddress: strings.TrimSpace(in.ShippingAddress),
	})
	if err != nil {
		return CheckoutResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// Order作成後にだけカートを空にする
	if err := u.cartItemRepo.DeleteAllByUserID(ctx, userID); err != nil {
		return CheckoutResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// 第2段階：ディープリンクを返し、実際のオープンはクライアント側
	msg := BuildOrderMessage(lines, total)

	return CheckoutResponse{
		OrderID:     order.ID,
		Total:       total,
		Message:     msg,
		WhatsAppURL: WhatsAppLink(u.whatsAppNumber, msg),
	}, nil
}

// BuildOrderMessage はカート内容からWhatsApp文面を組み立てる純関数。
// 行番号は1始まり、小計と合計は整数ルピー。
func BuildOrderMessage(lines []CheckoutLine, total int64) string {
	var b strings.Builder
	b.WriteString("Hi! I'd like to place an order from DrumRoast:\n\n")
	for i, l := range lines {
		fmt.Fprintf(&b, "%d. %s (x%d) - ₹%d\n", i+1, l.Name, l.Quantity, l.UnitPrice*l.Quantity)
	}
	fmt.Fprintf(&b, "\nTotal: ₹%d\n\nPlease confirm availability and payment details.", total)
	return b.String()
}

// WhatsAppLink は文面をパーセントエンコードしてwa.meのディープリンクにする。
func WhatsAppLink(number string, message string) string {
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(message)
}
