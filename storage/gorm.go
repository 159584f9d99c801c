package storage

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/google/uuid"

	"github.com/arun20071/arun-chaudhary-ecommerce/models"
)

// GormStorage is the persistent Storage implementation, used when a
// database DSN is configured. It carries the same not-found conventions
// as MemStorage: nil/false results, errors only for database failures.
type GormStorage struct {
	db *gorm.DB
}

func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{db: db}
}

func (s *GormStorage) GetAllProducts() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *GormStorage) GetProductByID(id string) (*models.Product, error) {
	var product models.Product
	err := s.db.First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *GormStorage) GetProductsByCategory(category string) ([]models.Product, error) {
	products := []models.Product{}
	if err := s.db.Where("category = ?", category).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *GormStorage) CreateUser(user *models.User) error {
	var count int64
	err := s.db.Model(&models.User{}).
		Where("username = ? OR email = ?", user.Username, user.Email).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrUserExists
	}
	return s.db.Create(user).Error
}

func (s *GormStorage) GetUser(id uint) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormStorage) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormStorage) GetCart(cartID string) (*models.CartView, error) {
	view := &models.CartView{Items: []models.CartItem{}}
	if cartID == "" {
		return view, nil
	}

	var cart models.Cart
	err := s.db.First(&cart, "id = ?", cartID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return view, nil
	}
	if err != nil {
		return nil, err
	}

	if err := s.db.Where("cart_id = ?", cartID).Order("id").Find(&view.Items).Error; err != nil {
		return nil, err
	}
	view.Cart = &cart
	return view, nil
}

func (s *GormStorage) AddToCart(cartID string, input models.AddToCartInput, userID *uint) (*models.CartItem, string, error) {
	var item models.CartItem

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&cart, "id = ?", cartID).Error
		if cartID == "" || errors.Is(err, gorm.ErrRecordNotFound) {
			cart = models.Cart{ID: uuid.NewString(), UserID: userID}
			if err := tx.Create(&cart).Error; err != nil {
				return err
			}
			cartID = cart.ID
		} else if err != nil {
			return err
		}

		var existing models.CartItem
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("cart_id = ? AND product_id = ?", cartID, input.ProductID).
			First(&existing).Error
		switch {
		case err == nil:
			// Accumulate quantity, keep the original price snapshot.
			existing.Quantity += input.Quantity
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			item = existing
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = models.CartItem{
				CartID:    cartID,
				ProductID: input.ProductID,
				Quantity:  input.Quantity,
				Price:     input.Price,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		default:
			return err
		}

		return touchCart(tx, cartID)
	})
	if err != nil {
		return nil, "", err
	}
	return &item, cartID, nil
}

func (s *GormStorage) UpdateCartItemQuantity(cartID string, itemID uint, quantity int) (*models.CartItem, error) {
	var item models.CartItem

	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("cart_id = ? AND id = ?", cartID, itemID).First(&item).Error
		if err != nil {
			return err
		}
		item.Quantity = quantity
		if err := tx.Save(&item).Error; err != nil {
			return err
		}
		return touchCart(tx, cartID)
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *GormStorage) RemoveFromCart(cartID string, itemID uint) (bool, error) {
	removed := false

	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("cart_id = ? AND id = ?", cartID, itemID).Delete(&models.CartItem{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		removed = true
		return touchCart(tx, cartID)
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

func (s *GormStorage) ClearCart(cartID string) (bool, error) {
	cleared := false

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		err := tx.First(&cart, "id = ?", cartID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := tx.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		cleared = true
		return touchCart(tx, cartID)
	})
	if err != nil {
		return false, err
	}
	return cleared, nil
}

func (s *GormStorage) CreateOrder(order *models.Order) error {
	return s.db.Create(order).Error
}

func (s *GormStorage) GetOrderByID(id uint) (*models.Order, error) {
	var order models.Order
	err := s.db.Preload("Items").First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func touchCart(tx *gorm.DB, cartID string) error {
	return tx.Model(&models.Cart{}).
		Where("id = ?", cartID).
		Update("updated_at", gorm.Expr("CURRENT_TIMESTAMP")).Error
}
