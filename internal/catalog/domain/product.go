package domain

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryRequired = errors.New("animal category and product category are required")
	ErrInvalidPrice     = errors.New("product price must not be negative")
	ErrInvalidStock     = errors.New("product stock must not be negative")
)

// Product 商品实体，类目对（动物类目 + 商品类目）限定所有过滤查询
type Product struct {
	gorm.Model
	AnimalCategory  string          `gorm:"column:animal_category;type:varchar(50);not null;index:idx_category,priority:1"`
	ProductCategory string          `gorm:"column:product_category;type:varchar(50);not null;index:idx_category,priority:2"`
	Name            string          `gorm:"column:name;type:varchar(255);not null"`
	Price           decimal.Decimal `gorm:"column:price;type:decimal(20,8);not null"`
	Stock           int             `gorm:"column:stock;not null;default:0"`
	WishCount       int             `gorm:"column:wish_count;not null;default:0"`
	Description     string          `gorm:"column:description;type:text"`
	ImageURL        string          `gorm:"column:image_url;type:varchar(512)"`
}

func (Product) TableName() string { return "products" }
