package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jcmexdev/storefront-client/internal/storefront/core/domain/entity"
	"github.com/jcmexdev/storefront-client/internal/storefront/core/ports"
)

// NormalizePostalCode strips separators from a raw CEP and validates that
// exactly 8 digits remain.
func NormalizePostalCode(raw string) (string, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), "-", "")
	if len(cleaned) != 8 {
		return "", ErrInvalidPostalCode
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return "", ErrInvalidPostalCode
		}
	}
	return cleaned, nil
}

// RequestQuote fetches delivery options for the postal code. A malformed
// code is rejected before any network call. Prior options and selection are
// cleared up front so a failed request never leaves a stale quote visible.
func (a *App) RequestQuote(ctx context.Context, rawPostalCode string) error {
	a.mu.RLock()
	userID := a.userID
	a.mu.RUnlock()

	if userID == "" {
		return ErrNotAuthenticated
	}

	postalCode, err := NormalizePostalCode(rawPostalCode)
	if err != nil {
		a.setError("postal code must have 8 digits, like 01310-100")
		return err
	}

	a.mu.Lock()
	a.options = nil
	a.selected = nil
	a.postalCode = postalCode
	a.loading.Quote = true
	a.mu.Unlock()

	options, err := a.svcs.Shipping.Calculate(ctx, postalCode)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.loading.Quote = false
	if errors.Is(err, ports.ErrNotFound) {
		a.errMsg = "there are no delivery options for this location"
		return fmt.Errorf("request quote: %w", err)
	}
	if err != nil {
		a.errMsg = "could not calculate shipping, please try again"
		return fmt.Errorf("request quote: %w", err)
	}
	a.options = options
	return nil
}

// SelectShipping makes the given option the current selection, replacing
// any previous one. The option must belong to the current quote set.
func (a *App) SelectShipping(option entity.ShippingOption) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, o := range a.options {
		if o.Method == option.Method {
			sel := o
			a.selected = &sel
			return nil
		}
	}
	return ErrUnknownShippingOption
}

// invalidateShippingLocked clears the quote set and selection. It runs on
// every cart snapshot change, before control returns to the caller, so a
// quote computed for an old cart is never observable. Callers must hold
// the write lock.
func (a *App) invalidateShippingLocked() {
	a.options = nil
	a.selected = nil
}
