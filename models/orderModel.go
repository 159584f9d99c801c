package models

import "time"

type Order struct {
	ID               uint        `json:"id" gorm:"primaryKey"`
	UserID           *uint       `json:"userId"`
	FirstName        string      `json:"firstName"`
	LastName         string      `json:"lastName"`
	Email            string      `json:"email"`
	Phone            string      `json:"phone"`
	DeliveryLocation string      `json:"deliveryLocation"`
	Total            int         `json:"total"`
	Status           string      `json:"status"`
	CreatedAt        time.Time   `json:"createdAt"`
	Items            []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem snapshots a cart line at checkout time.
type OrderItem struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	OrderID   uint   `json:"orderId" gorm:"index"`
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Quantity  int    `json:"quantity"`
}

type CheckoutInput struct {
	FirstName        string `json:"firstName" binding:"required"`
	LastName         string `json:"lastName" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Phone            string `json:"phone"`
	DeliveryLocation string `json:"deliveryLocation" binding:"required"`
}
