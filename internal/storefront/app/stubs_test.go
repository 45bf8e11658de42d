package app

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jcmexdev/storefront-client/internal/storefront/core/domain/entity"
	"github.com/jcmexdev/storefront-client/internal/storefront/core/ports"
)

// Stubs implement the collaborator ports with recording and overridable
// behavior. They are safe for the concurrent bootstrap fetches.

type stubCatalog struct {
	mu       sync.Mutex
	products []entity.Product
	err      error
	calls    int
}

func (s *stubCatalog) ListProducts(ctx context.Context) ([]entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.products, s.err
}

type stubCart struct {
	mu       sync.Mutex
	getCart  *entity.Cart
	getErr   error
	upsertFn func(userID string, item ports.UpsertItem) (*entity.Cart, error)
	removeFn func(userID string, productID int64) (*entity.Cart, error)
	clearErr error

	upserts []ports.UpsertItem
	removes []int64
	clears  int
}

func (s *stubCart) Get(ctx context.Context, userID string) (*entity.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return nil, s.getErr
	}
	if s.getCart != nil {
		return s.getCart, nil
	}
	return entity.EmptyCart(userID), nil
}

func (s *stubCart) UpsertItem(ctx context.Context, userID string, item ports.UpsertItem) (*entity.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.upserts = append(s.upserts, item)
	if s.upsertFn != nil {
		return s.upsertFn(userID, item)
	}
	return entity.EmptyCart(userID), nil
}

func (s *stubCart) RemoveItem(ctx context.Context, userID string, productID int64) (*entity.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removes = append(s.removes, productID)
	if s.removeFn != nil {
		return s.removeFn(userID, productID)
	}
	return entity.EmptyCart(userID), nil
}

func (s *stubCart) Clear(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clears++
	return s.clearErr
}

type stubShipping struct {
	mu      sync.Mutex
	options []entity.ShippingOption
	err     error
	queries []string
}

func (s *stubShipping) Calculate(ctx context.Context, postalCode string) ([]entity.ShippingOption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries = append(s.queries, postalCode)
	if s.err != nil {
		return nil, s.err
	}
	return s.options, nil
}

type stubCheckout struct {
	mu          sync.Mutex
	submitFn    func(sub ports.OrderSubmission) (*entity.Order, error)
	orders      []entity.Order
	listErr     error
	submissions []ports.OrderSubmission
}

func (s *stubCheckout) SubmitOrder(ctx context.Context, sub ports.OrderSubmission) (*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submissions = append(s.submissions, sub)
	if s.submitFn != nil {
		return s.submitFn(sub)
	}
	return &entity.Order{ID: "ORD-0001", UserID: sub.UserID, Total: sub.Total}, nil
}

func (s *stubCheckout) ListOrders(ctx context.Context, userID string) ([]entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.orders, nil
}

type stubRecommendations struct {
	mu       sync.Mutex
	products []entity.Product
	err      error
}

func (s *stubRecommendations) ListForUser(ctx context.Context, userID string) ([]entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.products, nil
}

type stubs struct {
	catalog  *stubCatalog
	cart     *stubCart
	shipping *stubShipping
	checkout *stubCheckout
	recs     *stubRecommendations
}

func newStubs() *stubs {
	return &stubs{
		catalog:  &stubCatalog{},
		cart:     &stubCart{},
		shipping: &stubShipping{},
		checkout: &stubCheckout{},
		recs:     &stubRecommendations{},
	}
}

func (s *stubs) services() Services {
	return Services{
		Catalog:         s.catalog,
		Cart:            s.cart,
		Shipping:        s.shipping,
		Checkout:        s.checkout,
		Recommendations: s.recs,
	}
}

func price(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func testProduct(id int64, name, unitPrice string) entity.Product {
	return entity.Product{ID: id, Name: name, Price: price(unitPrice)}
}

func cartWith(userID, total string, items ...entity.CartItem) *entity.Cart {
	return &entity.Cart{UserID: userID, Items: items, Total: price(total)}
}
