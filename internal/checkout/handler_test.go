package checkout

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCheckoutRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(Composer{Contact: "7598137660", BaseURL: "https://shop.example.com"})

	r := gin.New()
	r.POST("/api/checkout/cart", h.CartOrder)
	r.POST("/api/checkout/item", h.ItemOrder)
	return r
}

func post(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCartOrder(t *testing.T) {
	r := newCheckoutRouter()

	w := post(r, "/api/checkout/cart", gin.H{
		"lines": []gin.H{
			{"product_id": 1, "name": "Item A", "price": 100, "quantity": 2},
			{"product_id": 2, "name": "Item B", "price": 50, "quantity": 1},
		},
		"address": "12 Temple Street",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var ord Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ord))
	assert.Contains(t, ord.Text, "*Order Subtotal: ₹250*")
	assert.Contains(t, ord.URL, "https://wa.me/7598137660?text=")
}

func TestCartOrder_MissingAddress(t *testing.T) {
	r := newCheckoutRouter()

	w := post(r, "/api/checkout/cart", gin.H{
		"lines":   []gin.H{{"product_id": 1, "name": "Item A", "price": 100, "quantity": 1}},
		"address": "",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing address")
}

func TestCartOrder_EmptyCart(t *testing.T) {
	r := newCheckoutRouter()

	w := post(r, "/api/checkout/cart", gin.H{"lines": []gin.H{}, "address": "addr"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartOrder_MergesDuplicateLines(t *testing.T) {
	r := newCheckoutRouter()

	w := post(r, "/api/checkout/cart", gin.H{
		"lines": []gin.H{
			{"product_id": 1, "name": "Item A", "price": 100, "quantity": 1},
			{"product_id": 1, "name": "Item A", "price": 100, "quantity": 2},
		},
		"address": "addr",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var ord Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ord))
	assert.Contains(t, ord.Text, "*1. Item A*\n   - Qty: 3")
	assert.NotContains(t, ord.Text, "*2.")
}

func TestItemOrder(t *testing.T) {
	r := newCheckoutRouter()

	w := post(r, "/api/checkout/item", gin.H{
		"product_id": 7, "name": "Silk Madisar", "price": 5000, "quantity": 2, "address": "addr",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var ord Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ord))
	assert.Contains(t, ord.Text, "*Total:* ₹10000")
	assert.Contains(t, ord.Text, "/product/7")
}

func TestItemOrder_MissingAddress(t *testing.T) {
	r := newCheckoutRouter()

	w := post(r, "/api/checkout/item", gin.H{
		"product_id": 7, "name": "Silk Madisar", "price": 5000, "quantity": 1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
