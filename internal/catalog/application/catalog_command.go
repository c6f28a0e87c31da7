package application

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wyfcoding/petstore/internal/catalog/domain"
	"github.com/wyfcoding/petstore/pkg/logger"
)

// CreateProductCommand 创建商品命令
type CreateProductCommand struct {
	AnimalCategory  string
	ProductCategory string
	Name            string
	Price           decimal.Decimal
	Stock           int
	Description     string
	ImageURL        string
}

// UpdateProductCommand 更新商品命令
type UpdateProductCommand struct {
	ID              uint
	AnimalCategory  string
	ProductCategory string
	Name            string
	Price           decimal.Decimal
	Stock           int
	Description     string
	ImageURL        string
}

// SeedProductsCommand 批量灌入模板商品，用于填充演示数据
type SeedProductsCommand struct {
	Template CreateProductCommand
	Count    int
}

// CatalogCommandService 商品目录命令服务
type CatalogCommandService struct {
	repo      domain.ProductRepository
	publisher domain.EventPublisher
}

// NewCatalogCommandService 创建商品目录命令服务实例
func NewCatalogCommandService(repo domain.ProductRepository, publisher domain.EventPublisher) *CatalogCommandService {
	return &CatalogCommandService{
		repo:      repo,
		publisher: publisher,
	}
}

// CreateProduct 处理创建商品
func (s *CatalogCommandService) CreateProduct(ctx context.Context, cmd CreateProductCommand) (uint, error) {
	if err := validateProductCommand(cmd.AnimalCategory, cmd.ProductCategory, cmd.Price, cmd.Stock); err != nil {
		return 0, err
	}

	product := &domain.Product{
		AnimalCategory:  cmd.AnimalCategory,
		ProductCategory: cmd.ProductCategory,
		Name:            cmd.Name,
		Price:           cmd.Price,
		Stock:           cmd.Stock,
		Description:     cmd.Description,
		ImageURL:        cmd.ImageURL,
	}

	if err := s.repo.Save(ctx, product); err != nil {
		return 0, err
	}

	event := domain.ProductCreatedEvent{
		ProductID:       product.ID,
		AnimalCategory:  product.AnimalCategory,
		ProductCategory: product.ProductCategory,
		Name:            product.Name,
		Price:           product.Price,
		Stock:           product.Stock,
		Timestamp:       time.Now(),
	}
	if err := s.publisher.Publish(ctx, domain.TopicProductCreated, product.Name, event); err != nil {
		logger.Warn(ctx, "Failed to publish product created event", "product_id", product.ID, "error", err)
	}

	return product.ID, nil
}

// UpdateProduct 处理更新商品
func (s *CatalogCommandService) UpdateProduct(ctx context.Context, cmd UpdateProductCommand) error {
	if err := validateProductCommand(cmd.AnimalCategory, cmd.ProductCategory, cmd.Price, cmd.Stock); err != nil {
		return err
	}

	product, err := s.repo.GetByID(ctx, cmd.ID)
	if err != nil {
		return err
	}

	product.AnimalCategory = cmd.AnimalCategory
	product.ProductCategory = cmd.ProductCategory
	product.Name = cmd.Name
	product.Price = cmd.Price
	product.Stock = cmd.Stock
	product.Description = cmd.Description
	product.ImageURL = cmd.ImageURL

	if err := s.repo.Save(ctx, product); err != nil {
		return err
	}

	event := domain.ProductUpdatedEvent{
		ProductID:       product.ID,
		AnimalCategory:  product.AnimalCategory,
		ProductCategory: product.ProductCategory,
		Name:            product.Name,
		Price:           product.Price,
		Stock:           product.Stock,
		Timestamp:       time.Now(),
	}
	if err := s.publisher.Publish(ctx, domain.TopicProductUpdated, product.Name, event); err != nil {
		logger.Warn(ctx, "Failed to publish product updated event", "product_id", product.ID, "error", err)
	}

	return nil
}

// SeedProducts 按模板批量插入商品，返回插入条数
func (s *CatalogCommandService) SeedProducts(ctx context.Context, cmd SeedProductsCommand) (int, error) {
	if err := validateProductCommand(cmd.Template.AnimalCategory, cmd.Template.ProductCategory, cmd.Template.Price, cmd.Template.Stock); err != nil {
		return 0, err
	}

	count := cmd.Count
	if count <= 0 {
		count = 100
	}

	products := make([]*domain.Product, 0, count)
	for i := 0; i < count; i++ {
		products = append(products, &domain.Product{
			AnimalCategory:  cmd.Template.AnimalCategory,
			ProductCategory: cmd.Template.ProductCategory,
			Name:            cmd.Template.Name,
			Price:           cmd.Template.Price,
			Stock:           cmd.Template.Stock,
			Description:     cmd.Template.Description,
			ImageURL:        cmd.Template.ImageURL,
		})
	}

	if err := s.repo.SaveBatch(ctx, products, 100); err != nil {
		return 0, err
	}

	logger.Info(ctx, "Products seeded", "count", count,
		"animal_category", cmd.Template.AnimalCategory,
		"product_category", cmd.Template.ProductCategory,
	)
	return count, nil
}

func validateProductCommand(animalCategory, productCategory string, price decimal.Decimal, stock int) error {
	if animalCategory == "" || productCategory == "" {
		return domain.ErrCategoryRequired
	}
	if price.IsNegative() {
		return domain.ErrInvalidPrice
	}
	if stock < 0 {
		return domain.ErrInvalidStock
	}
	return nil
}
