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

func TestNormalizePostalCode(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "hyphenated", raw: "01310-100", want: "01310100"},
		{name: "padded", raw: "  01310100  ", want: "01310100"},
		{name: "too short", raw: "123", wantErr: true},
		{name: "too long", raw: "01310-1000", wantErr: true},
		{name: "letters", raw: "abcde-fgh", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePostalCode(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPostalCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequestQuoteRejectsMalformedCodeBeforeNetwork(t *testing.T) {
	s := newStubs()
	a := loggedIn(t, s)

	err := a.RequestQuote(context.Background(), "123")

	assert.ErrorIs(t, err, ErrInvalidPostalCode)
	assert.Empty(t, s.shipping.queries, "no call leaves the client for a bad code")
	assert.NotEmpty(t, a.Err())
}

func TestRequestQuoteStoresOptions(t *testing.T) {
	s := newStubs()
	s.shipping.options = []entity.ShippingOption{
		{Method: "PAC", DeliveryDays: 7, Price: price("9.90")},
		{Method: "SEDEX", DeliveryDays: 2, Price: price("15.00")},
	}
	a := loggedIn(t, s)

	require.NoError(t, a.RequestQuote(context.Background(), "01310-100"))

	assert.Equal(t, []string{"01310100"}, s.shipping.queries, "the service sees the normalized code")
	assert.Equal(t, "01310100", a.PostalCode())
	assert.Len(t, a.ShippingOptions(), 2)
	assert.Empty(t, a.Err())
	assert.False(t, a.IsLoading().Quote)
}

func TestRequestQuoteNoDeliveryOptions(t *testing.T) {
	s := newStubs()
	s.shipping.err = ports.ErrNotFound
	a := loggedIn(t, s)

	err := a.RequestQuote(context.Background(), "99999999")

	assert.ErrorIs(t, err, ports.ErrNotFound)
	assert.Equal(t, "there are no delivery options for this location", a.Err())
	assert.Empty(t, a.ShippingOptions())
}

func TestRequestQuoteFailureClearsPriorQuote(t *testing.T) {
	s := newStubs()
	s.shipping.options = []entity.ShippingOption{{Method: "SEDEX", DeliveryDays: 2, Price: price("15.00")}}
	a := loggedIn(t, s)

	require.NoError(t, a.RequestQuote(context.Background(), "01310100"))
	require.NoError(t, a.SelectShipping(entity.ShippingOption{Method: "SEDEX"}))

	s.shipping.mu.Lock()
	s.shipping.err = errors.New("shipping service down")
	s.shipping.mu.Unlock()

	err := a.RequestQuote(context.Background(), "20040002")

	require.Error(t, err)
	assert.Empty(t, a.ShippingOptions(), "a failed request never leaves a stale quote visible")
	assert.Nil(t, a.SelectedShipping())
	assert.Equal(t, "could not calculate shipping, please try again", a.Err())
}

func TestSelectShippingRejectsUnknownOption(t *testing.T) {
	s := newStubs()
	s.shipping.options = []entity.ShippingOption{{Method: "PAC", DeliveryDays: 7, Price: price("9.90")}}
	a := loggedIn(t, s)
	require.NoError(t, a.RequestQuote(context.Background(), "01310100"))

	err := a.SelectShipping(entity.ShippingOption{Method: "TELEPORTE"})

	assert.ErrorIs(t, err, ErrUnknownShippingOption)
	assert.Nil(t, a.SelectedShipping())
}

func TestSelectShippingReplacesPreviousSelection(t *testing.T) {
	s := newStubs()
	s.shipping.options = []entity.ShippingOption{
		{Method: "PAC", DeliveryDays: 7, Price: price("9.90")},
		{Method: "SEDEX", DeliveryDays: 2, Price: price("15.00")},
	}
	a := loggedIn(t, s)
	require.NoError(t, a.RequestQuote(context.Background(), "01310100"))

	require.NoError(t, a.SelectShipping(entity.ShippingOption{Method: "PAC"}))
	require.NoError(t, a.SelectShipping(entity.ShippingOption{Method: "SEDEX"}))

	sel := a.SelectedShipping()
	require.NotNil(t, sel)
	assert.Equal(t, "SEDEX", sel.Method)
	assert.True(t, sel.Price.Equal(price("15.00")), "the stored option carries the quoted price")
}
