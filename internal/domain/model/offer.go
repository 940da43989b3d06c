package model

import "time"

// プロモーション用オファー。表示専用で商品価格は変更しない。
type Offer struct {
	ID                 string    `gorm:"type:uuid;primaryKey" json:"id"`
	Title              string    `gorm:"type:varchar(255);not null" json:"title"`
	Description        string    `gorm:"type:text" json:"description"`
	DiscountPercentage int64     `gorm:"not null" json:"discount_percentage"`
	ProductID          *string   `gorm:"type:uuid;index" json:"product_id"`
	StartDate          time.Time `gorm:"not null" json:"start_date"`
	EndDate            time.Time `gorm:"not null" json:"end_date"`
	IsActive           bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt          time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// 現時点で表示対象のオファーか（有効フラグ＋期間内）
func (o Offer) CurrentlyActive(now time.Time) bool {
	if !o.IsActive {
		return false
	}
	if now.Before(o.StartDate) {
		return false
	}
	if now.After(o.EndDate) {
		return false
	}
	return true
}
