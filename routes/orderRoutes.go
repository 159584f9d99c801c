package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/arun20071/arun-chaudhary-ecommerce/controllers"
	"github.com/arun20071/arun-chaudhary-ecommerce/middlewares"
)

func OrderRoutes(server *gin.Engine, controller *controllers.OrderController) {
	orders := server.Group("/api/orders", middlewares.OptionalAuth())
	{
		orders.POST("", controller.CreateOrder)
		orders.GET("/:orderId", controller.GetOrder)
	}
}
