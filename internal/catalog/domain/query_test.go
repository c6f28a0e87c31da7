package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSortKey(t *testing.T) {
	t.Run("known keys", func(t *testing.T) {
		require.Equal(t, SortByWishCount, ParseSortKey("wishCount"))
		require.Equal(t, SortByCreatedAt, ParseSortKey("createdAt"))
		require.Equal(t, SortByPrice, ParseSortKey("price"))
	})

	t.Run("unknown or empty falls back to price", func(t *testing.T) {
		require.Equal(t, SortByPrice, ParseSortKey(""))
		require.Equal(t, SortByPrice, ParseSortKey("bogus"))
		require.Equal(t, SortByPrice, ParseSortKey("WISHCOUNT"))
		// 库存排序仅供内部推荐使用，不对外暴露
		require.Equal(t, SortByPrice, ParseSortKey("stock"))
	})
}

func TestSortKeyOrderClause(t *testing.T) {
	require.Equal(t, "wish_count DESC", SortByWishCount.OrderClause())
	require.Equal(t, "created_at DESC", SortByCreatedAt.OrderClause())
	require.Equal(t, "price ASC", SortByPrice.OrderClause())
	require.Equal(t, "stock DESC", SortByStock.OrderClause())
	require.Equal(t, "price ASC", SortKey("garbage").OrderClause())
}

func TestProductQueryOffset(t *testing.T) {
	t.Run("non-positive pages clamp to first page", func(t *testing.T) {
		require.Equal(t, 0, ProductQuery{Page: 0}.Offset())
		require.Equal(t, 0, ProductQuery{Page: -3}.Offset())
		require.Equal(t, 0, ProductQuery{Page: 1}.Offset())
	})

	t.Run("offset advances by page size", func(t *testing.T) {
		require.Equal(t, PageSize, ProductQuery{Page: 2}.Offset())
		require.Equal(t, 4*PageSize, ProductQuery{Page: 5}.Offset())
	})
}

func TestProductQueryLimit(t *testing.T) {
	require.Equal(t, PageSize, ProductQuery{}.Limit())
}

func TestProductQueryHasCategories(t *testing.T) {
	require.True(t, ProductQuery{AnimalCategory: "cat", ProductCategory: "food"}.HasCategories())
	require.False(t, ProductQuery{AnimalCategory: "cat"}.HasCategories())
	require.False(t, ProductQuery{ProductCategory: "food"}.HasCategories())
	require.False(t, ProductQuery{}.HasCategories())
}
