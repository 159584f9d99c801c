package models

import "time"

// Cart is the server-side cart record. Its ID is an opaque token generated
// on first add-to-cart and handed back to the client as a cookie; holding
// the token is the only authorization needed to read or mutate the cart.
type Cart struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    *uint     `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CartItem is one line of a cart. Price is a snapshot taken at add time
// and is never re-read from the catalog. At most one CartItem exists per
// (CartID, ProductID) pair.
type CartItem struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	CartID    string `json:"cartId" gorm:"index;not null"`
	ProductID string `json:"productId" gorm:"not null"`
	Quantity  int    `json:"quantity" gorm:"not null;default:1"`
	Price     int    `json:"price" gorm:"not null"`
}

// CartView is the getCart response shape: the cart record plus its lines.
// Cart is nil when the token is absent or unknown.
type CartView struct {
	Items []CartItem `json:"items"`
	Cart  *Cart      `json:"cart"`
}

type AddToCartInput struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Price     int    `json:"price" binding:"min=0"`
}

type UpdateQuantityInput struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}
