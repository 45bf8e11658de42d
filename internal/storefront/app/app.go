// Package app holds the client-side orchestration core: the session gate,
// the view router, the one-shot parallel bootstrap, the cart store, the
// shipping quote manager and the checkout entry point.
//
// All state lives in one container guarded by a single lock. Mutations are
// triggered by discrete user actions or fetch completions; the bootstrap is
// the only point of true concurrency and each of its completions is applied
// independently.
package app

import (
	"sync"

	"go.opentelemetry.io/otel"

	"github.com/jcmexdev/storefront-client/internal/coordinator/checkoutlog"
	"github.com/jcmexdev/storefront-client/internal/storefront/core/domain/entity"
	"github.com/jcmexdev/storefront-client/internal/storefront/core/ports"
)

var tracer = otel.Tracer("storefront/app")

// Services bundles the collaborator ports the core consumes.
type Services struct {
	Catalog         ports.CatalogService
	Cart            ports.CartService
	Shipping        ports.ShippingService
	Checkout        ports.CheckoutService
	Recommendations ports.RecommendationService
}

// Loading tracks the per-resource loading flags. Each flag is cleared when
// its fetch settles, regardless of outcome.
type Loading struct {
	Catalog         bool
	Cart            bool
	Recommendations bool
	Orders          bool
	Quote           bool
}

// App is the orchestration state container.
type App struct {
	mu sync.RWMutex

	svcs    Services
	logRepo checkoutlog.Repository // nil disables the checkout audit log

	// session + routing
	userID          string
	view            entity.View
	errMsg          string
	bootstrappedFor string

	// read models populated by the bootstrap
	products []entity.Product
	cart     *entity.Cart
	recs     []entity.Product
	orders   []entity.Order
	loading  Loading

	// shipping quote state
	postalCode string
	options    []entity.ShippingOption
	selected   *entity.ShippingOption

	// checkout scratch state
	paymentMethod string
}

// New builds an App at the login view. logRepo may be nil.
func New(svcs Services, logRepo checkoutlog.Repository) *App {
	return &App{
		svcs:    svcs,
		logRepo: logRepo,
		view:    entity.ViewLogin,
	}
}

// --- read accessors ---

func (a *App) CurrentUser() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.userID
}

func (a *App) View() entity.View {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.view
}

// Err returns the single user-visible error message, or "".
func (a *App) Err() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.errMsg
}

func (a *App) Products() []entity.Product {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.products
}

// Cart returns the current snapshot. Callers must treat it as read-only.
func (a *App) Cart() *entity.Cart {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.cart
}

func (a *App) Recommendations() []entity.Product {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.recs
}

func (a *App) Orders() []entity.Order {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.orders
}

func (a *App) IsLoading() Loading {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.loading
}

func (a *App) ShippingOptions() []entity.ShippingOption {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.options
}

// SelectedShipping returns a copy of the current selection, or nil.
func (a *App) SelectedShipping() *entity.ShippingOption {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.selected == nil {
		return nil
	}
	sel := *a.selected
	return &sel
}

func (a *App) PostalCode() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.postalCode
}

func (a *App) PaymentMethod() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.paymentMethod
}

// SetPaymentMethod records the payment method typed into the checkout form.
func (a *App) SetPaymentMethod(method string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.paymentMethod = method
}

func (a *App) setError(msg string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.errMsg = msg
}

// setCartLocked replaces the cart snapshot and synchronously invalidates
// the shipping quote, so no stale quote is ever observable for a new cart.
// Callers must hold the write lock.
func (a *App) setCartLocked(c *entity.Cart) {
	a.cart = c
	a.invalidateShippingLocked()
}
