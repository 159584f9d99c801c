package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/arun20071/arun-chaudhary-ecommerce/models"
	"github.com/arun20071/arun-chaudhary-ecommerce/storage"
)

const (
	cartCookieName   = "cart_id"
	cartCookieMaxAge = 30 * 24 * 60 * 60

	msgCartTokenRequired  = "Cart ID is required"
	msgCartItemNotFound   = "Cart item not found"
	msgInvalidCartItem    = "Invalid cart item data"
	msgInvalidQuantity    = "Invalid quantity"
	msgInvalidItemID      = "Invalid cart item id"
	msgFailedToFetchCart  = "Failed to fetch cart"
	msgFailedToAddToCart  = "Failed to add item to cart"
	msgFailedToUpdateCart = "Failed to update cart item"
	msgFailedToRemoveItem = "Failed to remove item from cart"
	msgFailedToClearCart  = "Failed to clear cart"
)

type CartController struct {
	store storage.Storage
}

func NewCartController(store storage.Storage) *CartController {
	return &CartController{store: store}
}

// cartToken reads the cart cookie. Empty string means no cart yet.
func cartToken(ctx *gin.Context) string {
	token, err := ctx.Cookie(cartCookieName)
	if err != nil {
		return ""
	}
	return token
}

// GetCart returns the cart and its items. An absent or unknown token is
// not an error, just an empty cart.
func (c *CartController) GetCart(ctx *gin.Context) {
	view, err := c.store.GetCart(cartToken(ctx))
	if err != nil {
		log.Println("Storage error fetching cart:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToFetchCart)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// AddToCart adds a product to the cart, allocating a cart and its token
// on first use. The token comes back as a cookie so follow-up calls hit
// the same cart.
func (c *CartController) AddToCart(ctx *gin.Context) {
	var input models.AddToCartInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCartItem)
		return
	}

	item, token, err := c.store.AddToCart(cartToken(ctx), input, currentUserID(ctx))
	if err != nil {
		log.Println("Storage error adding to cart:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToAddToCart)
		return
	}

	ctx.SetCookie(cartCookieName, token, cartCookieMaxAge, "/", "", false, true)
	sendJSONResponse(ctx, http.StatusOK, gin.H{"cartItem": item, "cartId": token})
}

// UpdateCartItem sets the quantity of a line item. Quantities below one
// are rejected; removing a line takes an explicit DELETE.
func (c *CartController) UpdateCartItem(ctx *gin.Context) {
	token := cartToken(ctx)
	if token == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, msgCartTokenRequired)
		return
	}

	itemID, err := strconv.ParseUint(ctx.Param("itemId"), 10, 32)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidItemID)
		return
	}

	var input models.UpdateQuantityInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidQuantity)
		return
	}

	item, err := c.store.UpdateCartItemQuantity(token, uint(itemID), input.Quantity)
	if err != nil {
		log.Println("Storage error updating cart item:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToUpdateCart)
		return
	}
	if item == nil {
		sendErrorResponse(ctx, http.StatusNotFound, msgCartItemNotFound)
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// RemoveCartItem deletes a single line item.
func (c *CartController) RemoveCartItem(ctx *gin.Context) {
	token := cartToken(ctx)
	if token == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, msgCartTokenRequired)
		return
	}

	itemID, err := strconv.ParseUint(ctx.Param("itemId"), 10, 32)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidItemID)
		return
	}

	removed, err := c.store.RemoveFromCart(token, uint(itemID))
	if err != nil {
		log.Println("Storage error removing cart item:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToRemoveItem)
		return
	}
	if !removed {
		sendErrorResponse(ctx, http.StatusNotFound, msgCartItemNotFound)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true})
}

// ClearCart empties the cart. The cart record and its token stay valid.
// An unknown token still reports success, matching the idempotent
// "nothing left to clear" reading.
func (c *CartController) ClearCart(ctx *gin.Context) {
	token := cartToken(ctx)
	if token == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, msgCartTokenRequired)
		return
	}

	if _, err := c.store.ClearCart(token); err != nil {
		log.Println("Storage error clearing cart:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToClearCart)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true})
}
