package app

import "errors"

var (
	// ErrNotAuthenticated is returned when an operation requires a logged-in
	// user and there is none.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrInvalidDestination is returned for views that cannot be navigated
	// to directly (login has no way back, checkout has its own gate).
	ErrInvalidDestination = errors.New("view is not directly navigable")

	// ErrShippingNotSelected rejects entering checkout without a selected
	// shipping option. Callers surface it as a warning, not an error slot.
	ErrShippingNotSelected = errors.New("no shipping option selected")

	// ErrInvalidPostalCode rejects a postal code that does not normalize to
	// exactly 8 digits. No network call is made in this case.
	ErrInvalidPostalCode = errors.New("postal code must have exactly 8 digits")

	// ErrUnknownShippingOption rejects selecting an option that is not part
	// of the current quote set.
	ErrUnknownShippingOption = errors.New("shipping option not in the current quote")

	// ErrCheckoutNotReady means one of the checkout preconditions (user,
	// non-empty cart, selected shipping) is missing; nothing was submitted.
	ErrCheckoutNotReady = errors.New("checkout preconditions not met")
)
