package app

import (
	"github.com/jcmexdev/storefront-client/internal/storefront/core/domain/entity"
)

// Navigate switches to one of the freely reachable authenticated views
// (store, recommendations, orders) and clears any surfaced error. Checkout
// delegates to the shipping-selection gate; login is not a destination.
func (a *App) Navigate(v entity.View) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch v {
	case entity.ViewStore, entity.ViewRecommendations, entity.ViewOrders:
		if a.userID == "" {
			return ErrNotAuthenticated
		}
		a.view = v
		a.errMsg = ""
		return nil
	case entity.ViewCheckout:
		return a.enterCheckoutLocked()
	default:
		return ErrInvalidDestination
	}
}

// EnterCheckout moves to the checkout view. It is rejected unless a
// shipping option is currently selected; the caller surfaces the rejection
// as a warning instead of transitioning.
func (a *App) EnterCheckout() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.enterCheckoutLocked()
}

func (a *App) enterCheckoutLocked() error {
	if a.userID == "" {
		return ErrNotAuthenticated
	}
	if a.selected == nil {
		return ErrShippingNotSelected
	}
	a.view = entity.ViewCheckout
	a.errMsg = ""
	return nil
}

// BackToStore returns from checkout to the store without side effects.
func (a *App) BackToStore() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.view == entity.ViewCheckout {
		a.view = entity.ViewStore
	}
}
