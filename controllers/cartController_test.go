package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arun20071/arun-chaudhary-ecommerce/catalog"
	"github.com/arun20071/arun-chaudhary-ecommerce/controllers"
	"github.com/arun20071/arun-chaudhary-ecommerce/models"
	"github.com/arun20071/arun-chaudhary-ecommerce/routes"
	"github.com/arun20071/arun-chaudhary-ecommerce/storage"
)

// newTestServer wires a fresh in-memory store into a full router, the
// same way main does. Every test gets an isolated store.
func newTestServer() *gin.Engine {
	gin.SetMode(gin.TestMode)
	store := storage.NewMemStorage(catalog.Products)

	server := gin.New()
	routes.DefaultRoutes(server)
	routes.AuthRoutes(server, controllers.NewAuthController(store))
	routes.ProductRoutes(server, controllers.NewProductController(store))
	routes.CartRoutes(server, controllers.NewCartController(store))
	routes.OrderRoutes(server, controllers.NewOrderController(store))
	return server
}

func jsonBody(t *testing.T, body any) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	return &buf
}

func doJSON(server *gin.Engine, method, url string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	return rec
}

func cartCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "cart_id" {
			return cookie
		}
	}
	t.Fatal("expected cart_id cookie on response")
	return nil
}

type addToCartResponse struct {
	CartItem models.CartItem `json:"cartItem"`
	CartID   string          `json:"cartId"`
}

func addItem(t *testing.T, server *gin.Engine, productID string, quantity, price int, cookies ...*http.Cookie) (addToCartResponse, *httptest.ResponseRecorder) {
	t.Helper()
	rec := doJSON(server, http.MethodPost, "/api/cart", gin.H{
		"productId": productID,
		"quantity":  quantity,
		"price":     price,
	}, cookies...)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp addToCartResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp, rec
}

func TestGetCartWithoutCookie(t *testing.T) {
	server := newTestServer()

	rec := doJSON(server, http.MethodGet, "/api/cart", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var view models.CartView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
	assert.Empty(t, view.Items)
	assert.Nil(t, view.Cart)
}

func TestAddToCartTwiceMergesLines(t *testing.T) {
	server := newTestServer()

	first, rec := addItem(t, server, "smartwatch", 1, 249)
	assert.Equal(t, 1, first.CartItem.Quantity)
	cookie := cartCookie(t, rec)
	assert.Equal(t, first.CartID, cookie.Value)

	second, _ := addItem(t, server, "smartwatch", 1, 249, cookie)
	assert.Equal(t, first.CartID, second.CartID)
	assert.Equal(t, first.CartItem.ID, second.CartItem.ID)
	assert.Equal(t, 2, second.CartItem.Quantity)

	rec = doJSON(server, http.MethodGet, "/api/cart", nil, cookie)
	var view models.CartView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].Quantity)
}

func TestAddToCartValidation(t *testing.T) {
	server := newTestServer()

	testCases := []struct {
		name string
		body gin.H
	}{
		{name: "missing product id", body: gin.H{"quantity": 1, "price": 249}},
		{name: "zero quantity", body: gin.H{"productId": "smartwatch", "quantity": 0, "price": 249}},
		{name: "negative quantity", body: gin.H{"productId": "smartwatch", "quantity": -2, "price": 249}},
		{name: "negative price", body: gin.H{"productId": "smartwatch", "quantity": 1, "price": -1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(server, http.MethodPost, "/api/cart", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestUpdateCartItem(t *testing.T) {
	server := newTestServer()

	resp, rec := addItem(t, server, "smartwatch", 1, 249)
	cookie := cartCookie(t, rec)

	url := fmt.Sprintf("/api/cart/%d", resp.CartItem.ID)
	rec = doJSON(server, http.MethodPatch, url, gin.H{"quantity": 4}, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var item models.CartItem
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&item))
	assert.Equal(t, 4, item.Quantity)
}

func TestUpdateCartItemErrors(t *testing.T) {
	server := newTestServer()

	resp, rec := addItem(t, server, "smartwatch", 1, 249)
	cookie := cartCookie(t, rec)
	url := fmt.Sprintf("/api/cart/%d", resp.CartItem.ID)

	// No cookie at all.
	rec = doJSON(server, http.MethodPatch, url, gin.H{"quantity": 2})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Zero quantity is rejected; removal takes an explicit DELETE.
	rec = doJSON(server, http.MethodPatch, url, gin.H{"quantity": 0}, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Unknown item id.
	rec = doJSON(server, http.MethodPatch, "/api/cart/99999", gin.H{"quantity": 2}, cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Valid-looking cookie that matches no cart.
	stale := &http.Cookie{Name: "cart_id", Value: "stale-token"}
	rec = doJSON(server, http.MethodPatch, url, gin.H{"quantity": 2}, stale)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRemoveCartItem(t *testing.T) {
	server := newTestServer()

	resp, rec := addItem(t, server, "smartwatch", 1, 249)
	cookie := cartCookie(t, rec)
	url := fmt.Sprintf("/api/cart/%d", resp.CartItem.ID)

	rec = doJSON(server, http.MethodDelete, url, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(server, http.MethodDelete, url, nil, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(server, http.MethodDelete, url, nil, cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestClearCart(t *testing.T) {
	server := newTestServer()

	_, rec := addItem(t, server, "smartwatch", 2, 249)
	cookie := cartCookie(t, rec)

	rec = doJSON(server, http.MethodDelete, "/api/cart", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(server, http.MethodDelete, "/api/cart", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	// The cart record survives; only the lines are gone.
	rec = doJSON(server, http.MethodGet, "/api/cart", nil, cookie)
	var view models.CartView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
	assert.Empty(t, view.Items)
	require.NotNil(t, view.Cart)
	assert.Equal(t, cookie.Value, view.Cart.ID)
}

// Simulated parallel add-to-cart calls for one product must land on a
// single line item.
func TestAddToCartParallelRequests(t *testing.T) {
	server := newTestServer()

	_, rec := addItem(t, server, "smartwatch", 1, 249)
	cookie := cartCookie(t, rec)

	const requests = 30
	var wg sync.WaitGroup
	wg.Add(requests)
	for i := 0; i < requests; i++ {
		go func() {
			defer wg.Done()
			rec := doJSON(server, http.MethodPost, "/api/cart", gin.H{
				"productId": "smartwatch",
				"quantity":  1,
				"price":     249,
			}, cookie)
			assert.Equal(t, http.StatusOK, rec.Code)
		}()
	}
	wg.Wait()

	rec = doJSON(server, http.MethodGet, "/api/cart", nil, cookie)
	var view models.CartView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
	require.Len(t, view.Items, 1, "parallel adds must not duplicate the line")
	assert.Equal(t, requests+1, view.Items[0].Quantity)
}
