package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	catalogdomain "github.com/wyfcoding/petstore/internal/catalog/domain"
	"github.com/wyfcoding/petstore/internal/wishlist/domain"
)

type fakeWishRepo struct {
	wishes map[[2]uint]*domain.Wish
	nextID uint
}

func newFakeWishRepo() *fakeWishRepo {
	return &fakeWishRepo{wishes: make(map[[2]uint]*domain.Wish), nextID: 1}
}

func (r *fakeWishRepo) Add(ctx context.Context, wish *domain.Wish) error {
	key := [2]uint{wish.UserID, wish.ProductID}
	if _, ok := r.wishes[key]; ok {
		return domain.ErrWishAlreadyExists
	}
	wish.ID = r.nextID
	wish.CreatedAt = time.Now()
	r.nextID++
	r.wishes[key] = wish
	return nil
}

func (r *fakeWishRepo) Remove(ctx context.Context, userID, productID uint) error {
	key := [2]uint{userID, productID}
	if _, ok := r.wishes[key]; !ok {
		return domain.ErrWishNotFound
	}
	delete(r.wishes, key)
	return nil
}

func (r *fakeWishRepo) ListByUser(ctx context.Context, userID uint) ([]*domain.WishProduct, error) {
	var rows []*domain.WishProduct
	for _, w := range r.wishes {
		if w.UserID == userID {
			rows = append(rows, &domain.WishProduct{
				WishID:    w.ID,
				ProductID: w.ProductID,
				WishedAt:  w.CreatedAt,
			})
		}
	}
	return rows, nil
}

type fakeProductRepo struct {
	products map[uint]*catalogdomain.Product
}

func (r *fakeProductRepo) Save(ctx context.Context, p *catalogdomain.Product) error { return nil }
func (r *fakeProductRepo) SaveBatch(ctx context.Context, p []*catalogdomain.Product, batchSize int) error {
	return nil
}
func (r *fakeProductRepo) FindByQuery(ctx context.Context, q catalogdomain.ProductQuery) ([]*catalogdomain.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) FindTop(ctx context.Context, a, p string, s catalogdomain.SortKey, l int) ([]*catalogdomain.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) GetByID(ctx context.Context, id uint) (*catalogdomain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, catalogdomain.ErrProductNotFound
	}
	return p, nil
}

type capturingPublisher struct {
	events []domain.WishChangedEvent
}

func (p *capturingPublisher) Publish(ctx context.Context, topic string, key string, event any) error {
	p.events = append(p.events, event.(domain.WishChangedEvent))
	return nil
}

func newTestWishlistService() (*WishlistService, *capturingPublisher) {
	products := &fakeProductRepo{products: map[uint]*catalogdomain.Product{
		10: {AnimalCategory: "cat", ProductCategory: "food", Name: "tuna feast"},
	}}
	products.products[10].ID = 10

	publisher := &capturingPublisher{}
	svc := NewWishlistService(newFakeWishRepo(), products, publisher, nil)
	return svc, publisher
}

func TestAddWish(t *testing.T) {
	t.Run("adds and broadcasts category pair", func(t *testing.T) {
		svc, publisher := newTestWishlistService()

		require.NoError(t, svc.AddWish(context.Background(), 1, 10))

		require.Len(t, publisher.events, 1)
		event := publisher.events[0]
		require.Equal(t, uint(1), event.UserID)
		require.Equal(t, uint(10), event.ProductID)
		require.Equal(t, "cat", event.AnimalCategory)
		require.Equal(t, "food", event.ProductCategory)
		require.Equal(t, domain.WishActionAdded, event.Action)
	})

	t.Run("unknown product", func(t *testing.T) {
		svc, _ := newTestWishlistService()
		err := svc.AddWish(context.Background(), 1, 99)
		require.ErrorIs(t, err, catalogdomain.ErrProductNotFound)
	})

	t.Run("duplicate wish", func(t *testing.T) {
		svc, _ := newTestWishlistService()
		require.NoError(t, svc.AddWish(context.Background(), 1, 10))
		err := svc.AddWish(context.Background(), 1, 10)
		require.ErrorIs(t, err, domain.ErrWishAlreadyExists)
	})
}

func TestRemoveWish(t *testing.T) {
	t.Run("removes and broadcasts", func(t *testing.T) {
		svc, publisher := newTestWishlistService()
		require.NoError(t, svc.AddWish(context.Background(), 1, 10))

		require.NoError(t, svc.RemoveWish(context.Background(), 1, 10))

		require.Len(t, publisher.events, 2)
		require.Equal(t, domain.WishActionRemoved, publisher.events[1].Action)
	})

	t.Run("not wished", func(t *testing.T) {
		svc, _ := newTestWishlistService()
		err := svc.RemoveWish(context.Background(), 1, 10)
		require.ErrorIs(t, err, domain.ErrWishNotFound)
	})
}

func TestListWishes(t *testing.T) {
	svc, _ := newTestWishlistService()
	require.NoError(t, svc.AddWish(context.Background(), 1, 10))

	rows, err := svc.ListWishes(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, uint(10), rows[0].ProductID)

	empty, err := svc.ListWishes(context.Background(), 2)
	require.NoError(t, err)
	require.Empty(t, empty)
}
