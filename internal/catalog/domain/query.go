package domain

// 列表查询的固定分页与上限
const (
	PageSize       = 15
	PopularLimit   = 10
	RecommendLimit = 3
)

// SortKey 排序策略，封闭枚举，不接受任意排序表达式
type SortKey string

const (
	// SortByWishCount 人气排序：收藏数降序
	SortByWishCount SortKey = "wishCount"
	// SortByCreatedAt 最新排序：创建时间降序
	SortByCreatedAt SortKey = "createdAt"
	// SortByPrice 默认排序：价格升序
	SortByPrice SortKey = "price"
	// SortByStock 库存降序，仅用于推荐位，不对外暴露
	SortByStock SortKey = "stock"
)

// ParseSortKey 解析调用方传入的排序键，未识别的值一律回退为价格升序
func ParseSortKey(s string) SortKey {
	switch s {
	case string(SortByWishCount):
		return SortByWishCount
	case string(SortByCreatedAt):
		return SortByCreatedAt
	default:
		return SortByPrice
	}
}

// OrderClause 将排序键映射为固定的 SQL 排序子句，枚举外的值回退为价格升序
func (k SortKey) OrderClause() string {
	switch k {
	case SortByWishCount:
		return "wish_count DESC"
	case SortByCreatedAt:
		return "created_at DESC"
	case SortByStock:
		return "stock DESC"
	default:
		return "price ASC"
	}
}

// ProductQuery 商品列表查询条件。各过滤维度为空时不参与过滤，
// 非空维度按 AND 组合；搜索词做两侧通配的子串匹配。
type ProductQuery struct {
	AnimalCategory  string
	ProductCategory string
	SearchWord      string
	Sort            SortKey
	Page            int
}

// Offset 计算分页偏移量，页码从 1 开始，小于 1 时按第 1 页处理
func (q ProductQuery) Offset() int {
	page := q.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * PageSize
}

// Limit 返回固定页大小
func (q ProductQuery) Limit() int {
	return PageSize
}

// HasCategories 报告类目对是否完整
func (q ProductQuery) HasCategories() bool {
	return q.AnimalCategory != "" && q.ProductCategory != ""
}
