package storage

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/arun20071/arun-chaudhary-ecommerce/models"
)

// MemStorage keeps everything in process memory. All methods take the
// mutex for the full read-modify-write so the one-line-per-product
// invariant holds under concurrent requests, not just by accident of
// single-threaded scheduling.
type MemStorage struct {
	mu sync.Mutex

	products     map[string]models.Product
	productOrder []string

	users         map[uint]*models.User
	userIDCounter uint

	carts     map[string]*models.Cart
	cartItems map[string][]models.CartItem
	// Item ids are unique for the lifetime of the process only.
	cartItemIDCounter uint

	orders             map[uint]*models.Order
	orderIDCounter     uint
	orderItemIDCounter uint
}

func NewMemStorage(products []models.Product) *MemStorage {
	s := &MemStorage{
		products:  make(map[string]models.Product),
		users:     make(map[uint]*models.User),
		carts:     make(map[string]*models.Cart),
		cartItems: make(map[string][]models.CartItem),
		orders:    make(map[uint]*models.Order),
	}
	for _, p := range products {
		s.products[p.ID] = p
		s.productOrder = append(s.productOrder, p.ID)
	}
	return s
}

func (s *MemStorage) GetAllProducts() ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := make([]models.Product, 0, len(s.productOrder))
	for _, id := range s.productOrder {
		products = append(products, s.products[id])
	}
	return products, nil
}

func (s *MemStorage) GetProductByID(id string) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	return &product, nil
}

func (s *MemStorage) GetProductsByCategory(category string) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := []models.Product{}
	for _, id := range s.productOrder {
		if s.products[id].Category == category {
			products = append(products, s.products[id])
		}
	}
	return products, nil
}

func (s *MemStorage) CreateUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return ErrUserExists
		}
	}

	s.userIDCounter++
	user.ID = s.userIDCounter
	stored := *user
	s.users[user.ID] = &stored
	return nil
}

func (s *MemStorage) GetUser(id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (s *MemStorage) GetUserByUsername(username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *MemStorage) GetCart(cartID string) (*models.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[cartID]
	if cartID == "" || !ok {
		return &models.CartView{Items: []models.CartItem{}}, nil
	}

	items := make([]models.CartItem, len(s.cartItems[cartID]))
	copy(items, s.cartItems[cartID])
	copied := *cart
	return &models.CartView{Items: items, Cart: &copied}, nil
}

func (s *MemStorage) AddToCart(cartID string, input models.AddToCartInput, userID *uint) (*models.CartItem, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()

	// Allocate a cart on first add when no usable token was presented.
	cart, ok := s.carts[cartID]
	if cartID == "" || !ok {
		cartID = uuid.NewString()
		cart = &models.Cart{
			ID:        cartID,
			UserID:    userID,
			CreatedAt: now,
			UpdatedAt: now,
		}
		s.carts[cartID] = cart
		s.cartItems[cartID] = []models.CartItem{}
	}

	items := s.cartItems[cartID]
	for i := range items {
		if items[i].ProductID == input.ProductID {
			// Quantity accumulates; the price snapshot from the
			// first add is kept.
			items[i].Quantity += input.Quantity
			cart.UpdatedAt = now
			updated := items[i]
			return &updated, cartID, nil
		}
	}

	s.cartItemIDCounter++
	item := models.CartItem{
		ID:        s.cartItemIDCounter,
		CartID:    cartID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		Price:     input.Price,
	}
	s.cartItems[cartID] = append(items, item)
	cart.UpdatedAt = now
	return &item, cartID, nil
}

func (s *MemStorage) UpdateCartItemQuantity(cartID string, itemID uint, quantity int) (*models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[cartID]
	if !ok {
		return nil, nil
	}

	items := s.cartItems[cartID]
	for i := range items {
		if items[i].ID == itemID {
			items[i].Quantity = quantity
			cart.UpdatedAt = time.Now()
			updated := items[i]
			return &updated, nil
		}
	}
	return nil, nil
}

func (s *MemStorage) RemoveFromCart(cartID string, itemID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[cartID]
	if !ok {
		return false, nil
	}

	items := s.cartItems[cartID]
	for i := range items {
		if items[i].ID == itemID {
			s.cartItems[cartID] = append(items[:i], items[i+1:]...)
			cart.UpdatedAt = time.Now()
			return true, nil
		}
	}
	return false, nil
}

// ClearCart empties the item list but keeps the cart record, so the
// token stays valid for later adds.
func (s *MemStorage) ClearCart(cartID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[cartID]
	if !ok {
		return false, nil
	}

	s.cartItems[cartID] = []models.CartItem{}
	cart.UpdatedAt = time.Now()
	return true, nil
}

func (s *MemStorage) CreateOrder(order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orderIDCounter++
	order.ID = s.orderIDCounter
	order.CreatedAt = time.Now()
	for i := range order.Items {
		s.orderItemIDCounter++
		order.Items[i].ID = s.orderItemIDCounter
		order.Items[i].OrderID = order.ID
	}
	stored := *order
	s.orders[order.ID] = &stored
	return nil
}

func (s *MemStorage) GetOrderByID(id uint) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, nil
	}
	copied := *order
	return &copied, nil
}
