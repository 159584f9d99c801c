package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arun20071/arun-chaudhary-ecommerce/models"
)

func checkoutBody() gin.H {
	return gin.H{
		"firstName":        "Asha",
		"lastName":         "Patel",
		"email":            "asha@example.com",
		"phone":            "0712345678",
		"deliveryLocation": "42 Market Street",
	}
}

func TestCreateOrderSnapshotsAndClearsCart(t *testing.T) {
	server := newTestServer()

	_, rec := addItem(t, server, "smartwatch", 2, 249)
	cookie := cartCookie(t, rec)
	_, _ = addItem(t, server, "coffee-maker", 1, 149, cookie)

	rec = doJSON(server, http.MethodPost, "/api/orders", checkoutBody(), cookie)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Order models.Order `json:"order"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotZero(t, resp.Order.ID)
	assert.Equal(t, "processing", resp.Order.Status)
	assert.Equal(t, 2*249+149, resp.Order.Total)
	require.Len(t, resp.Order.Items, 2)
	assert.Equal(t, "Smart Watch", resp.Order.Items[0].Name)
	assert.Equal(t, 2, resp.Order.Items[0].Quantity)

	// Checkout empties the cart but keeps it usable.
	rec = doJSON(server, http.MethodGet, "/api/cart", nil, cookie)
	var view models.CartView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
	assert.Empty(t, view.Items)
	require.NotNil(t, view.Cart)

	// The order is retrievable afterwards.
	rec = doJSON(server, http.MethodGet, fmt.Sprintf("/api/orders/%d", resp.Order.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateOrderErrors(t *testing.T) {
	server := newTestServer()

	// No cart token.
	rec := doJSON(server, http.MethodPost, "/api/orders", checkoutBody())
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	_, addRec := addItem(t, server, "smartwatch", 1, 249)
	cookie := cartCookie(t, addRec)

	// Malformed body.
	rec = doJSON(server, http.MethodPost, "/api/orders", gin.H{"firstName": "Asha"}, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// First checkout succeeds, second finds an empty cart.
	rec = doJSON(server, http.MethodPost, "/api/orders", checkoutBody(), cookie)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doJSON(server, http.MethodPost, "/api/orders", checkoutBody(), cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetOrderErrors(t *testing.T) {
	server := newTestServer()

	rec := doJSON(server, http.MethodGet, "/api/orders/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(server, http.MethodGet, "/api/orders/not-a-number", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
