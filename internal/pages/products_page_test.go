package pages_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-adoption-portal/internal/domain/cart"
	"pet-adoption-portal/internal/domain/products"
	"pet-adoption-portal/internal/fakeapi"
	"pet-adoption-portal/internal/pages"
	"pet-adoption-portal/internal/session"
	"pet-adoption-portal/internal/ui"
)

func productByName(t *testing.T, list []products.Product, name string) products.Product {
	t.Helper()
	for _, p := range list {
		if p.ProductName == name {
			return p
		}
	}
	t.Fatalf("product %q not found", name)
	return products.Product{}
}

func TestProducts_AddToCartRequiresLogin(t *testing.T) {
	h := newHarness(t, 0)
	p := open[*pages.Products](t, h, "/products", nil)
	rope := productByName(t, p.All, "Chew Rope")

	_, err := p.Increment(rope.ID)
	require.NoError(t, err)

	err = p.AddToCart(rope.ID)
	assert.ErrorIs(t, err, session.ErrLoginRequired)
	assert.Equal(t, ui.ModalLoginRequired, p.Modal)
	assert.True(t, p.Cart.Empty())
	assert.Equal(t, 1, p.Cart.Selected(rope.ID))
}

func TestProducts_PickerClamps(t *testing.T) {
	h := newHarness(t, 0)
	p := open[*pages.Products](t, h, "/products", nil)
	bed := productByName(t, p.All, "Cozy Bed") // stock 3

	for i := 1; i <= 3; i++ {
		n, err := p.Increment(bed.ID)
		require.NoError(t, err)
		assert.Equal(t, i, n)
	}
	n, err := p.Increment(bed.ID)
	assert.ErrorIs(t, err, cart.ErrLimitReached)
	assert.Equal(t, 3, n)
	assert.Equal(t, ui.LevelWarning, h.rec.Last().Level)

	for i := 0; i < 3; i++ {
		_, err := p.Decrement(bed.ID)
		require.NoError(t, err)
	}
	n, err = p.Decrement(bed.ID)
	assert.ErrorIs(t, err, cart.ErrMinimumReached)
	assert.Equal(t, 0, n)
}

func TestProducts_MergeRespectsStock(t *testing.T) {
	h := newHarness(t, 0)
	h.srv.Store().CreateProduct(products.Product{
		ProductName: "Leash", Category: "gear", Price: decimal.RequireFromString("10"), Stock: 5, InStock: true,
	})
	h.loginUser(t, fakeapi.SeedUserEmail, fakeapi.SeedUserPassword)

	p := open[*pages.Products](t, h, "/products", nil)
	leash := productByName(t, p.All, "Leash")

	add := func(qty int) error {
		for i := 0; i < qty; i++ {
			_, err := p.Increment(leash.ID)
			require.NoError(t, err)
		}
		return p.AddToCart(leash.ID)
	}

	require.NoError(t, add(2))
	require.NoError(t, add(2))
	assert.Equal(t, 4, p.Cart.Quantity(leash.ID))
	require.Len(t, p.Cart.Lines(), 1)

	assert.ErrorIs(t, add(2), cart.ErrExceedsStock)
	assert.Equal(t, 4, p.Cart.Quantity(leash.ID))
	assert.Equal(t, ui.LevelError, h.rec.Last().Level)
}

func TestProducts_AddWithoutQuantityAndOutOfStock(t *testing.T) {
	h := newHarness(t, 0)
	h.loginUser(t, fakeapi.SeedUserEmail, fakeapi.SeedUserPassword)
	p := open[*pages.Products](t, h, "/products", nil)

	rope := productByName(t, p.All, "Chew Rope")
	assert.ErrorIs(t, p.AddToCart(rope.ID), cart.ErrQuantityRequired)

	wand := productByName(t, p.All, "Feather Wand")
	_, err := p.Increment(wand.ID)
	assert.ErrorIs(t, err, cart.ErrLimitReached)
	assert.True(t, p.Cart.Empty())
}

func TestProducts_CheckoutHandsCartToSummaryAndPlacesOrder(t *testing.T) {
	h := newHarness(t, 0)
	h.loginUser(t, fakeapi.SeedUserEmail, fakeapi.SeedUserPassword)
	p := open[*pages.Products](t, h, "/products", nil)

	assert.ErrorIs(t, p.Checkout(h.ctx), pages.ErrEmptyCart)
	assert.Equal(t, "/products", currentPath(h))

	kibble := productByName(t, p.All, "Grain-Free Kibble") // 39.99
	_, _ = p.Increment(kibble.ID)
	require.NoError(t, p.AddToCart(kibble.ID))
	require.NoError(t, p.Checkout(h.ctx))

	summary := current[*pages.OrderSummary](t, h)
	require.Len(t, summary.Lines, 1)
	assert.Equal(t, "39.99", summary.Summary.Subtotal.StringFixed(2))
	assert.Equal(t, "9.99", summary.Summary.Shipping.StringFixed(2))
	assert.Equal(t, "4.00", summary.Summary.Tax.StringFixed(2))
	assert.Equal(t, "53.98", summary.Summary.Total.StringFixed(2))

	require.NoError(t, summary.PlaceOrder(h.ctx))
	success := current[*pages.OrderSuccess](t, h)
	assert.Regexp(t, `^ORD-[0-9A-F]{8}$`, success.Confirmation.OrderNumber)
	assert.Equal(t, summary.Summary, success.Confirmation.Summary)
}

func TestOrderSummary_Totals(t *testing.T) {
	h := newHarness(t, 0)

	line := func(price string) []cart.Line {
		return []cart.Line{{Product: products.Product{ID: "p", Price: decimal.RequireFromString(price), Stock: 1, InStock: true}, Quantity: 1}}
	}

	cases := []struct {
		price, shipping, tax, total string
	}{
		{"40", "9.99", "4.00", "53.99"},
		{"50", "9.99", "5.00", "64.99"},
		{"50.01", "0.00", "5.00", "55.01"},
		{"60", "0.00", "6.00", "66.00"},
	}
	for _, tc := range cases {
		s := open[*pages.OrderSummary](t, h, "/order-summary", pages.CheckoutState{Lines: line(tc.price)})
		assert.Equal(t, tc.shipping, s.Summary.Shipping.StringFixed(2), tc.price)
		assert.Equal(t, tc.tax, s.Summary.Tax.StringFixed(2), tc.price)
		assert.Equal(t, tc.total, s.Summary.Total.StringFixed(2), tc.price)
	}
}

func TestOrderSummary_WithoutStateRedirects(t *testing.T) {
	h := newHarness(t, 0)
	shop := open[*pages.Products](t, h, "/order-summary", nil)
	assert.Equal(t, "/products", currentPath(h))
	assert.Equal(t, ui.StatusLoaded, shop.Status)
	assert.NotEmpty(t, shop.All)

	home := open[*pages.Landing](t, h, "/order-success", nil)
	assert.Equal(t, "/", currentPath(h))
	assert.Equal(t, ui.StatusLoaded, home.Status)
	assert.Len(t, home.FeaturedPets, 3)
}

func TestOrderSummary_DoubleSubmitGuard(t *testing.T) {
	h := newHarness(t, 200*time.Millisecond)
	lines := []cart.Line{{Product: products.Product{ID: "p", Price: decimal.NewFromInt(5), Stock: 2, InStock: true}, Quantity: 1}}
	s := open[*pages.OrderSummary](t, h, "/order-summary", pages.CheckoutState{Lines: lines})

	var wg sync.WaitGroup
	var first error
	wg.Add(1)
	go func() {
		defer wg.Done()
		first = s.PlaceOrder(context.Background())
	}()

	require.Eventually(t, s.Submitting, time.Second, 5*time.Millisecond)
	assert.ErrorIs(t, s.PlaceOrder(context.Background()), pages.ErrSubmitting)

	wg.Wait()
	require.NoError(t, first)
	assert.Equal(t, "/order-success", currentPath(h))
}

func TestOrderSummary_LeavingCancelsPlacement(t *testing.T) {
	h := newHarness(t, time.Hour)
	lines := []cart.Line{{Product: products.Product{ID: "p", Price: decimal.NewFromInt(5), Stock: 2, InStock: true}, Quantity: 1}}
	s := open[*pages.OrderSummary](t, h, "/order-summary", pages.CheckoutState{Lines: lines})

	done := make(chan error, 1)
	go func() { done <- s.PlaceOrder(context.Background()) }()
	require.Eventually(t, s.Submitting, time.Second, 5*time.Millisecond)

	open[*pages.About](t, h, "/about", nil)

	select {
	case err := <-done:
		assert.ErrorIs(t, err, pages.ErrStale)
	case <-time.After(2 * time.Second):
		t.Fatal("placement was not cancelled")
	}
	assert.Equal(t, "/about", currentPath(h))
}
