package controllers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/arun20071/arun-chaudhary-ecommerce/models"
	"github.com/arun20071/arun-chaudhary-ecommerce/storage"
	"github.com/arun20071/arun-chaudhary-ecommerce/utils"
)

const (
	msgCartEmpty             = "Cart is empty"
	msgOrderNotFound         = "Order not found"
	msgInvalidOrderID        = "Invalid order id"
	msgFailedToCreateOrder   = "Failed to create order"
	msgFailedToFetchOrder    = "Failed to fetch order"
	orderStatusProcessing    = "processing"
	orderConfirmationSubject = "Your Arun Chaudhary Order Confirmation"
)

type OrderController struct {
	store storage.Storage
}

func NewOrderController(store storage.Storage) *OrderController {
	return &OrderController{store: store}
}

// CreateOrder completes checkout: it snapshots the cart's line items
// into an order, clears the cart, and emails a confirmation. The cart
// token cookie identifies which cart is being checked out.
func (c *OrderController) CreateOrder(ctx *gin.Context) {
	token := cartToken(ctx)
	if token == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, msgCartTokenRequired)
		return
	}

	var input models.CheckoutInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	view, err := c.store.GetCart(token)
	if err != nil {
		log.Println("Storage error fetching cart:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToCreateOrder)
		return
	}
	if view.Cart == nil || len(view.Items) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, msgCartEmpty)
		return
	}

	order := models.Order{
		UserID:           view.Cart.UserID,
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		Email:            input.Email,
		Phone:            input.Phone,
		DeliveryLocation: input.DeliveryLocation,
		Status:           orderStatusProcessing,
	}
	for _, item := range view.Items {
		name := item.ProductID
		if product, err := c.store.GetProductByID(item.ProductID); err == nil && product != nil {
			name = product.Name
		}
		order.Items = append(order.Items, models.OrderItem{
			ProductID: item.ProductID,
			Name:      name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
		order.Total += item.Price * item.Quantity
	}

	if err := c.store.CreateOrder(&order); err != nil {
		log.Println("Storage error creating order:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToCreateOrder)
		return
	}

	if _, err := c.store.ClearCart(token); err != nil {
		log.Println("Storage error clearing cart after checkout:", err)
	}

	if err := sendOrderConfirmationEmail(order); err != nil {
		// Checkout has already succeeded, so only log it.
		log.Println("Error sending order confirmation email:", err)
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"order": order})
}

func (c *OrderController) GetOrder(ctx *gin.Context) {
	orderID, err := strconv.ParseUint(ctx.Param("orderId"), 10, 32)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidOrderID)
		return
	}

	order, err := c.store.GetOrderByID(uint(orderID))
	if err != nil {
		log.Println("Storage error fetching order:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToFetchOrder)
		return
	}
	if order == nil {
		sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"order": order})
}

func sendOrderConfirmationEmail(order models.Order) error {
	if os.Getenv("FROM_EMAIL") == "" {
		log.Println("Email not configured, skipping order confirmation.")
		return nil
	}

	emailData := utils.EmailData{
		Name:        order.FirstName,
		Message:     "Thank you for your purchase! Your order is being processed and will be shipped soon.",
		OrderNumber: order.ID,
		ItemCount:   len(order.Items),
		Total:       order.Total,
	}

	templatePath := filepath.Join("templates", "order_confirmation.html")
	return utils.SendEmail(order.Email, orderConfirmationSubject, emailData, templatePath)
}
