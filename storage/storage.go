// Package storage owns the authoritative product, user, cart and order
// records behind a capability interface so the backing store can be
// swapped without touching the HTTP layer.
package storage

import (
	"errors"

	"github.com/arun20071/arun-chaudhary-ecommerce/models"
)

// ErrUserExists is returned by CreateUser when the username or email is
// already taken.
var ErrUserExists = errors.New("user already exists")

// Storage is implemented by MemStorage and GormStorage. Not-found
// conditions are reported as nil/false/empty results, never as errors;
// the error return is reserved for backend failures.
type Storage interface {
	// Products
	GetAllProducts() ([]models.Product, error)
	GetProductByID(id string) (*models.Product, error)
	GetProductsByCategory(category string) ([]models.Product, error)

	// Users
	CreateUser(user *models.User) error
	GetUser(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)

	// Carts. AddToCart allocates a new cart when cartID is empty or
	// unknown and returns the token the caller must present afterwards.
	// userID, when non-nil, is recorded on a newly allocated cart.
	GetCart(cartID string) (*models.CartView, error)
	AddToCart(cartID string, input models.AddToCartInput, userID *uint) (*models.CartItem, string, error)
	UpdateCartItemQuantity(cartID string, itemID uint, quantity int) (*models.CartItem, error)
	RemoveFromCart(cartID string, itemID uint) (bool, error)
	ClearCart(cartID string) (bool, error)

	// Orders
	CreateOrder(order *models.Order) error
	GetOrderByID(id uint) (*models.Order, error)
}
