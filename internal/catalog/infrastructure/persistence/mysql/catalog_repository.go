package mysql

import (
	"context"
	"errors"

	"github.com/wyfcoding/petstore/internal/catalog/domain"
	"gorm.io/gorm"
)

type productRepository struct{ db *gorm.DB }

// NewProductRepository 创建商品仓储实例
func NewProductRepository(db *gorm.DB) domain.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Save(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepository) SaveBatch(ctx context.Context, products []*domain.Product, batchSize int) error {
	if batchSize <= 0 {
		batchSize = 100
	}
	return r.db.WithContext(ctx).CreateInBatches(products, batchSize).Error
}

func (r *productRepository) GetByID(ctx context.Context, id uint) (*domain.Product, error) {
	var p domain.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindByQuery 组合查询：仅为非空维度追加 AND 条件，排序子句取自封闭枚举
func (r *productRepository) FindByQuery(ctx context.Context, query domain.ProductQuery) ([]*domain.Product, error) {
	q := r.db.WithContext(ctx).Model(&domain.Product{})

	if query.AnimalCategory != "" {
		q = q.Where("animal_category = ?", query.AnimalCategory)
	}
	if query.ProductCategory != "" {
		q = q.Where("product_category = ?", query.ProductCategory)
	}
	if query.SearchWord != "" {
		q = q.Where("name LIKE ?", "%"+query.SearchWord+"%")
	}

	var products []*domain.Product
	err := q.Order(query.Sort.OrderClause()).
		Offset(query.Offset()).
		Limit(query.Limit()).
		Find(&products).Error
	return products, err
}

func (r *productRepository) FindTop(ctx context.Context, animalCategory, productCategory string, sort domain.SortKey, limit int) ([]*domain.Product, error) {
	var products []*domain.Product
	err := r.db.WithContext(ctx).
		Where("animal_category = ? AND product_category = ?", animalCategory, productCategory).
		Order(sort.OrderClause()).
		Limit(limit).
		Find(&products).Error
	return products, err
}
