package model

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped, OrderStatusDelivered:
		return true
	}
	return false
}

// チェックアウト時点のスナップショット。
// ItemsJSON には明細（商品名・数量・単価・小計）をJSON文字列で保存する。
type Order struct {
	ID              string      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          string      `gorm:"type:uuid;not null;index" json:"user_id"`
	Status          OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	ItemsJSON       string      `gorm:"column:items;type:text;not null" json:"items"`
	Total           int64       `gorm:"not null" json:"total"`
	ShippingAddress string      `gorm:"column:shipping_address;type:text" json:"shipping_address"`
	CreatedAt       time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time   `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
