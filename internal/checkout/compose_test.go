package checkout

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sherlinsilvia14/MKV-co/internal/domain/cart"
	"github.com/Sherlinsilvia14/MKV-co/internal/domain/product"
)

var composer = Composer{Contact: "7598137660", BaseURL: "https://shop.example.com"}

func twoLineCart() *cart.Cart {
	c := cart.New()
	c.AddOrIncrement(product.Product{ID: 1, Name: "Item A", Price: 100}, 2)
	c.AddOrIncrement(product.Product{ID: 2, Name: "Item B", Price: 50}, 1)
	return c
}

func TestComposeCartOrder(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)

	ord, err := composer.ComposeCartOrder(twoLineCart(), "12 Temple Street, Madurai", at)
	require.NoError(t, err)

	assert.Contains(t, ord.Text, "*New Order Request*")
	assert.Contains(t, ord.Text, "*1. Item A*\n   - Qty: 2\n   - Price: ₹100\n   - Total: ₹200")
	assert.Contains(t, ord.Text, "*2. Item B*\n   - Qty: 1\n   - Price: ₹50\n   - Total: ₹50")
	assert.Contains(t, ord.Text, "*Order Subtotal: ₹250*")
	assert.Contains(t, ord.Text, "*Customer Address:* 12 Temple Street, Madurai")
	assert.Contains(t, ord.Text, "*Time:* "+at.Format(time.RFC1123))
}

func TestComposeCartOrder_LinkCarriesText(t *testing.T) {
	ord, err := composer.ComposeCartOrder(twoLineCart(), "addr", time.Now())
	require.NoError(t, err)

	u, err := url.Parse(ord.URL)
	require.NoError(t, err)
	assert.Equal(t, "https", u.Scheme)
	assert.Equal(t, "wa.me", u.Host)
	assert.Equal(t, "/7598137660", u.Path)
	assert.Equal(t, ord.Text, u.Query().Get("text"))
}

func TestComposeCartOrder_MissingAddress(t *testing.T) {
	_, err := composer.ComposeCartOrder(twoLineCart(), "   ", time.Now())
	assert.ErrorIs(t, err, ErrMissingAddress)
}

func TestComposeCartOrder_EmptyCart(t *testing.T) {
	_, err := composer.ComposeCartOrder(cart.New(), "addr", time.Now())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestComposeCartOrder_Deterministic(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	a, err := composer.ComposeCartOrder(twoLineCart(), "addr", at)
	require.NoError(t, err)
	b, err := composer.ComposeCartOrder(twoLineCart(), "addr", at)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestComposeSingleItemOrder(t *testing.T) {
	p := product.Product{ID: 7, Name: "Silk Madisar", Price: 5000}

	ord, err := composer.ComposeSingleItemOrder(p, 2, "addr")
	require.NoError(t, err)

	assert.Contains(t, ord.Text, "*Order Request*")
	assert.Contains(t, ord.Text, "*Product:* Silk Madisar")
	assert.Contains(t, ord.Text, "*Price:* ₹5000")
	assert.Contains(t, ord.Text, "*Quantity:* 2")
	assert.Contains(t, ord.Text, "*Total:* ₹10000")
	assert.Contains(t, ord.Text, "*Product Link:* https://shop.example.com/product/7")
	assert.True(t, strings.HasPrefix(ord.URL, "https://wa.me/7598137660?text="))
}

func TestComposeSingleItemOrder_MissingAddress(t *testing.T) {
	_, err := composer.ComposeSingleItemOrder(product.Product{ID: 1, Name: "x", Price: 1}, 1, "")
	assert.ErrorIs(t, err, ErrMissingAddress)
}

func TestComposeSingleItemOrder_QuantityFloor(t *testing.T) {
	ord, err := composer.ComposeSingleItemOrder(product.Product{ID: 1, Name: "x", Price: 10}, 0, "addr")
	require.NoError(t, err)
	assert.Contains(t, ord.Text, "*Quantity:* 1")
	assert.Contains(t, ord.Text, "*Total:* ₹10")
}
