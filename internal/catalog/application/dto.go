package application

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wyfcoding/petstore/internal/catalog/domain"
)

// ProductDTO 商品对外投影
type ProductDTO struct {
	ID              uint            `json:"id"`
	AnimalCategory  string          `json:"animal_category"`
	ProductCategory string          `json:"product_category"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	Stock           int             `json:"stock"`
	WishCount       int             `json:"wish_count"`
	Description     string          `json:"description"`
	ImageURL        string          `json:"image_url"`
	CreatedAt       time.Time       `json:"created_at"`
}

func toProductDTO(p *domain.Product) ProductDTO {
	return ProductDTO{
		ID:              p.ID,
		AnimalCategory:  p.AnimalCategory,
		ProductCategory: p.ProductCategory,
		Name:            p.Name,
		Price:           p.Price,
		Stock:           p.Stock,
		WishCount:       p.WishCount,
		Description:     p.Description,
		ImageURL:        p.ImageURL,
		CreatedAt:       p.CreatedAt,
	}
}

func toProductDTOs(products []*domain.Product) []ProductDTO {
	dtos := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		dtos = append(dtos, toProductDTO(p))
	}
	return dtos
}
