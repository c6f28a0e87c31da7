package application

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/wyfcoding/petstore/internal/catalog/domain"
)

// fakeProductRepo 内存商品仓储，按查询条件过滤、排序、分页
type fakeProductRepo struct {
	products []*domain.Product
	nextID   uint
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{nextID: 1}
}

func (r *fakeProductRepo) Save(ctx context.Context, product *domain.Product) error {
	if product.ID == 0 {
		product.ID = r.nextID
		r.nextID++
		r.products = append(r.products, product)
		return nil
	}
	for i, p := range r.products {
		if p.ID == product.ID {
			r.products[i] = product
			return nil
		}
	}
	r.products = append(r.products, product)
	return nil
}

func (r *fakeProductRepo) SaveBatch(ctx context.Context, products []*domain.Product, batchSize int) error {
	for _, p := range products {
		if err := r.Save(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id uint) (*domain.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *fakeProductRepo) FindByQuery(ctx context.Context, query domain.ProductQuery) ([]*domain.Product, error) {
	matched := r.filter(query.AnimalCategory, query.ProductCategory, query.SearchWord)
	sortProducts(matched, query.Sort)

	offset := query.Offset()
	if offset >= len(matched) {
		return nil, nil
	}
	end := offset + query.Limit()
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func (r *fakeProductRepo) FindTop(ctx context.Context, animalCategory, productCategory string, sortKey domain.SortKey, limit int) ([]*domain.Product, error) {
	matched := r.filter(animalCategory, productCategory, "")
	sortProducts(matched, sortKey)
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *fakeProductRepo) filter(animalCategory, productCategory, searchWord string) []*domain.Product {
	var matched []*domain.Product
	for _, p := range r.products {
		if animalCategory != "" && p.AnimalCategory != animalCategory {
			continue
		}
		if productCategory != "" && p.ProductCategory != productCategory {
			continue
		}
		if searchWord != "" && !strings.Contains(p.Name, searchWord) {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

func sortProducts(products []*domain.Product, key domain.SortKey) {
	sort.SliceStable(products, func(i, j int) bool {
		switch key {
		case domain.SortByWishCount:
			return products[i].WishCount > products[j].WishCount
		case domain.SortByCreatedAt:
			return products[i].CreatedAt.After(products[j].CreatedAt)
		case domain.SortByStock:
			return products[i].Stock > products[j].Stock
		default:
			return products[i].Price.LessThan(products[j].Price)
		}
	})
}

// fakeListCache 内存缓存
type fakeListCache struct {
	store map[string][]ProductDTO
	hits  int
	sets  int
}

func newFakeListCache() *fakeListCache {
	return &fakeListCache{store: make(map[string][]ProductDTO)}
}

func (c *fakeListCache) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	cached, ok := c.store[key]
	if !ok {
		return false, nil
	}
	c.hits++
	*dest.(*[]ProductDTO) = cached
	return true, nil
}

func (c *fakeListCache) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	c.sets++
	c.store[key] = value.([]ProductDTO)
	return nil
}

func (c *fakeListCache) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(c.store, key)
	}
	return nil
}

func seedProduct(t *testing.T, repo *fakeProductRepo, animal, category, name string, price int64, stock, wishCount int, createdAt time.Time) *domain.Product {
	t.Helper()
	p := &domain.Product{
		AnimalCategory:  animal,
		ProductCategory: category,
		Name:            name,
		Price:           decimal.NewFromInt(price),
		Stock:           stock,
		WishCount:       wishCount,
	}
	p.CreatedAt = createdAt
	require.NoError(t, repo.Save(context.Background(), p))
	return p
}

func TestCatalogQueryServiceGetProduct(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewCatalogQueryService(repo, nil, nil)
	base := time.Now()

	p := seedProduct(t, repo, "cat", "food", "tuna feast", 30, 5, 2, base)

	t.Run("found", func(t *testing.T) {
		dto, err := svc.GetProduct(context.Background(), p.ID)
		require.NoError(t, err)
		require.Equal(t, "tuna feast", dto.Name)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := svc.GetProduct(context.Background(), 999)
		require.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}

func TestCatalogQueryServiceListProducts(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewCatalogQueryService(repo, nil, nil)
	base := time.Now()

	seedProduct(t, repo, "cat", "food", "tuna feast", 30, 5, 2, base)
	seedProduct(t, repo, "cat", "food", "salmon bites", 10, 8, 9, base.Add(time.Minute))
	seedProduct(t, repo, "cat", "toy", "feather wand", 12, 3, 1, base)
	seedProduct(t, repo, "dog", "food", "beef chunks", 20, 7, 4, base)

	t.Run("requires both categories", func(t *testing.T) {
		_, err := svc.ListProducts(context.Background(), domain.ProductQuery{AnimalCategory: "cat"})
		require.ErrorIs(t, err, domain.ErrCategoryRequired)
	})

	t.Run("filters by category pair, default price ascending", func(t *testing.T) {
		dtos, err := svc.ListProducts(context.Background(), domain.ProductQuery{
			AnimalCategory: "cat", ProductCategory: "food", Sort: domain.SortByPrice, Page: 1,
		})
		require.NoError(t, err)
		require.Len(t, dtos, 2)
		require.Equal(t, "salmon bites", dtos[0].Name)
		require.Equal(t, "tuna feast", dtos[1].Name)
	})

	t.Run("search word narrows within the pair", func(t *testing.T) {
		dtos, err := svc.ListProducts(context.Background(), domain.ProductQuery{
			AnimalCategory: "cat", ProductCategory: "food",
			SearchWord: "salmon", Sort: domain.SortByPrice, Page: 1,
		})
		require.NoError(t, err)
		require.Len(t, dtos, 1)
		require.Equal(t, "salmon bites", dtos[0].Name)
	})

	t.Run("wish count sort descends", func(t *testing.T) {
		dtos, err := svc.ListProducts(context.Background(), domain.ProductQuery{
			AnimalCategory: "cat", ProductCategory: "food", Sort: domain.SortByWishCount, Page: 1,
		})
		require.NoError(t, err)
		require.Equal(t, "salmon bites", dtos[0].Name)
	})
}

func TestCatalogQueryServicePagination(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewCatalogQueryService(repo, nil, nil)
	base := time.Now()

	// 挂 20 条记录，第一页 15 条，第二页 5 条
	for i := 0; i < 20; i++ {
		seedProduct(t, repo, "cat", "food", "snack", int64(i+1), 1, 0, base)
	}

	page1, err := svc.ListProducts(context.Background(), domain.ProductQuery{
		AnimalCategory: "cat", ProductCategory: "food", Sort: domain.SortByPrice, Page: 1,
	})
	require.NoError(t, err)
	require.Len(t, page1, domain.PageSize)

	page2, err := svc.ListProducts(context.Background(), domain.ProductQuery{
		AnimalCategory: "cat", ProductCategory: "food", Sort: domain.SortByPrice, Page: 2,
	})
	require.NoError(t, err)
	require.Len(t, page2, 5)
	require.True(t, page1[domain.PageSize-1].Price.LessThan(page2[0].Price))

	// 页码不合法时按第一页处理
	clamped, err := svc.ListProducts(context.Background(), domain.ProductQuery{
		AnimalCategory: "cat", ProductCategory: "food", Sort: domain.SortByPrice, Page: -1,
	})
	require.NoError(t, err)
	require.Equal(t, page1, clamped)
}

func TestCatalogQueryServiceSearchProducts(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewCatalogQueryService(repo, nil, nil)
	base := time.Now()

	seedProduct(t, repo, "cat", "food", "tuna feast", 30, 5, 2, base)
	seedProduct(t, repo, "dog", "food", "tuna chews", 20, 7, 4, base)
	seedProduct(t, repo, "dog", "toy", "rope ball", 8, 2, 1, base)

	dtos, err := svc.SearchProducts(context.Background(), "tuna", domain.SortByPrice, 1)
	require.NoError(t, err)
	require.Len(t, dtos, 2)
	require.Equal(t, "tuna chews", dtos[0].Name)
	require.Equal(t, "tuna feast", dtos[1].Name)
}

func TestCatalogQueryServiceListPopular(t *testing.T) {
	repo := newFakeProductRepo()
	base := time.Now()

	// 12 条记录，人气榜只取前 10
	for i := 0; i < 12; i++ {
		seedProduct(t, repo, "cat", "food", "snack", 10, 1, i, base)
	}

	t.Run("caps at ten sorted by wish count", func(t *testing.T) {
		svc := NewCatalogQueryService(repo, nil, nil)
		dtos, err := svc.ListPopular(context.Background(), "cat", "food")
		require.NoError(t, err)
		require.Len(t, dtos, domain.PopularLimit)
		require.Equal(t, 11, dtos[0].WishCount)
		require.Equal(t, 2, dtos[len(dtos)-1].WishCount)
	})

	t.Run("requires both categories", func(t *testing.T) {
		svc := NewCatalogQueryService(repo, nil, nil)
		_, err := svc.ListPopular(context.Background(), "cat", "")
		require.ErrorIs(t, err, domain.ErrCategoryRequired)
	})

	t.Run("second lookup served from cache", func(t *testing.T) {
		cache := newFakeListCache()
		svc := NewCatalogQueryService(repo, cache, nil)

		first, err := svc.ListPopular(context.Background(), "cat", "food")
		require.NoError(t, err)
		require.Equal(t, 1, cache.sets)
		require.Equal(t, 0, cache.hits)

		second, err := svc.ListPopular(context.Background(), "cat", "food")
		require.NoError(t, err)
		require.Equal(t, 1, cache.hits)
		require.Equal(t, first, second)
	})
}

func TestCatalogQueryServiceListRecommended(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewCatalogQueryService(repo, nil, nil)
	base := time.Now()

	for i := 0; i < 5; i++ {
		seedProduct(t, repo, "cat", "food", "snack", 10, i*10, 0, base)
	}

	dtos, err := svc.ListRecommended(context.Background(), "cat", "food")
	require.NoError(t, err)
	require.Len(t, dtos, domain.RecommendLimit)
	require.Equal(t, 40, dtos[0].Stock)
	require.Equal(t, 30, dtos[1].Stock)
	require.Equal(t, 20, dtos[2].Stock)
}
