package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/storefront-client/internal/storefront/core/domain/entity"
	"github.com/jcmexdev/storefront-client/internal/storefront/core/ports"
)

// readyForCheckout builds a logged-in app holding a one-item R$100.00 cart,
// a selected R$15.00 SEDEX quote and a payment method, sitting on the
// checkout view.
func readyForCheckout(t *testing.T) (*App, *stubs) {
	t.Helper()
	s := newStubs()
	s.cart.getCart = cartWith("ana", "100.00",
		entity.CartItem{ProductID: 7, Name: "Teclado", Price: price("100.00"), Quantity: 1})
	s.shipping.options = []entity.ShippingOption{{Method: "SEDEX", DeliveryDays: 2, Price: price("15.00")}}
	s.checkout.orders = []entity.Order{{ID: "ORD-OLD", UserID: "ana"}}

	a := loggedIn(t, s)
	require.NoError(t, a.RequestQuote(context.Background(), "01310-100"))
	require.NoError(t, a.SelectShipping(entity.ShippingOption{Method: "SEDEX"}))
	a.SetPaymentMethod("pix")
	require.NoError(t, a.EnterCheckout())
	return a, s
}

func TestCheckoutRequiresPreconditions(t *testing.T) {
	s := newStubs()
	a := loggedIn(t, s) // empty cart, no shipping selection

	err := a.Checkout(context.Background())

	assert.ErrorIs(t, err, ErrCheckoutNotReady)
	assert.Empty(t, s.checkout.submissions, "nothing is submitted when a precondition is missing")
}

func TestCheckoutHappyPath(t *testing.T) {
	a, s := readyForCheckout(t)
	s.checkout.submitFn = func(sub ports.OrderSubmission) (*entity.Order, error) {
		return &entity.Order{
			ID:     "ORD-0042",
			UserID: sub.UserID,
			Total:  sub.Total,
			Status: entity.OrderStatusApproved,
		}, nil
	}

	require.NoError(t, a.Checkout(context.Background()))

	require.Len(t, s.checkout.submissions, 1)
	sub := s.checkout.submissions[0]
	assert.Equal(t, "ana", sub.UserID)
	assert.Equal(t, "pix", sub.PaymentMethod)
	require.Len(t, sub.Items, 1)
	assert.Equal(t, int64(7), sub.Items[0].ProductID)
	assert.Equal(t, "SEDEX", sub.Shipping.Method)
	assert.True(t, sub.Total.Equal(price("115.00")), "total is cart total plus shipping")

	// The new order leads the local history; older entries are untouched.
	require.Len(t, a.Orders(), 2)
	assert.Equal(t, "ORD-0042", a.Orders()[0].ID)
	assert.Equal(t, "ORD-OLD", a.Orders()[1].ID)

	assert.Equal(t, 1, s.cart.clears)
	assert.True(t, a.Cart().IsEmpty())
	assert.Nil(t, a.SelectedShipping())
	assert.Empty(t, a.ShippingOptions())
	assert.Empty(t, a.PostalCode())
	assert.Empty(t, a.PaymentMethod())
	assert.Equal(t, entity.ViewOrders, a.View())
	assert.Empty(t, a.Err())
}

func TestCheckoutSucceedsWhenCartClearFails(t *testing.T) {
	a, s := readyForCheckout(t)
	s.cart.clearErr = errors.New("cart service down")

	require.NoError(t, a.Checkout(context.Background()), "cleanup failure never fails the purchase")

	assert.Equal(t, entity.ViewOrders, a.View())
	assert.True(t, a.Cart().IsEmpty(), "the local cart still empties")
	assert.Empty(t, a.Err())
}

func TestCheckoutSubmitFailureLeavesStateUntouched(t *testing.T) {
	a, s := readyForCheckout(t)
	s.checkout.submitFn = func(ports.OrderSubmission) (*entity.Order, error) {
		return nil, errors.New("payment declined")
	}

	err := a.Checkout(context.Background())

	require.Error(t, err)
	assert.Equal(t, "payment failed, please try again", a.Err())
	assert.Len(t, a.Cart().Items, 1, "the cart survives a failed submission")
	assert.NotNil(t, a.SelectedShipping())
	assert.Equal(t, entity.ViewCheckout, a.View(), "the user stays on checkout to retry")
	require.Len(t, a.Orders(), 1)
	assert.Equal(t, "ORD-OLD", a.Orders()[0].ID, "history is untouched")
	assert.Zero(t, s.cart.clears, "no cleanup runs for a failed purchase")
}
