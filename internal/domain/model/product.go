package model

import (
	"time"

	"gorm.io/gorm"
)

type ProductCategory string

const (
	CategorySignature ProductCategory = "Signature"
	CategoryDaily     ProductCategory = "Daily"
	CategoryGift      ProductCategory = "Gift"
)

// カテゴリがSignature/Daily/Giftのいずれかであるか
func (c ProductCategory) Valid() bool {
	switch c {
	case CategorySignature, CategoryDaily, CategoryGift:
		return true
	}
	return false
}

// 価格は整数ルピー。original_priceは割引前価格（任意）。
type Product struct {
	ID                  string          `gorm:"type:uuid;primaryKey" json:"id"`
	Name                string          `gorm:"type:varchar(255);not null" json:"name"`
	Slug                string          `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug"`
	Description         string          `gorm:"type:text" json:"description"`
	Price               int64           `gorm:"not null" json:"price"`
	OriginalPrice       *int64          `gorm:"column:original_price" json:"original_price"`
	Category            ProductCategory `gorm:"type:varchar(50);not null;index" json:"category"`
	Subcategory         string          `gorm:"type:varchar(100)" json:"subcategory"`
	Emoji               string          `gorm:"type:varchar(20)" json:"emoji"`
	ImageURL            string          `gorm:"column:image_url;type:text" json:"image_url"`
	Ingredients         string          `gorm:"type:text" json:"ingredients"`
	Nutrition           string          `gorm:"type:text" json:"nutrition"`
	StorageInstructions string          `gorm:"column:storage_instructions;type:text" json:"storage_instructions"`
	Packaging           string          `gorm:"type:text" json:"packaging"`
	IsFeatured          bool            `gorm:"not null;default:false" json:"is_featured"`
	IsActive            bool            `gorm:"not null;default:false" json:"is_active"`
	CreatedAt           time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt           gorm.DeletedAt  `gorm:"index" json:"-"`
}
