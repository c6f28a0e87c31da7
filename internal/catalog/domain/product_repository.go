package domain

import "context"

// ProductRepository 商品仓储
type ProductRepository interface {
	Save(ctx context.Context, product *Product) error
	SaveBatch(ctx context.Context, products []*Product, batchSize int) error
	// GetByID 按 ID 查询，商品不存在时返回 ErrProductNotFound
	GetByID(ctx context.Context, id uint) (*Product, error)
	// FindByQuery 按组合条件分页查询
	FindByQuery(ctx context.Context, query ProductQuery) ([]*Product, error)
	// FindTop 按类目对查询排序后的前 limit 条，不分页
	FindTop(ctx context.Context, animalCategory, productCategory string, sort SortKey, limit int) ([]*Product, error)
}
