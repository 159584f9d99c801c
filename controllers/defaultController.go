package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Arun Chaudhary storefront API.

The following are the endpoints for this API:

AUTH
- POST "/api/auth/signup" - Create user account
- POST "/api/auth/login" - Access user account
- GET "/api/auth/profile" - Get the authenticated user

PRODUCTS
- GET "/api/products" - Get all products
- GET "/api/products/{id}" - Get product by ID
- GET "/api/categories/{category}" - Get products in a category

CART
- GET "/api/cart" - Get the current cart
- POST "/api/cart" - Add an item to the cart
- PATCH "/api/cart/{itemId}" - Update an item's quantity
- DELETE "/api/cart/{itemId}" - Remove an item
- DELETE "/api/cart" - Clear the cart

ORDERS
- POST "/api/orders" - Check out the current cart
- GET "/api/orders/{orderId}" - Get order by ID`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
