package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/arun20071/arun-chaudhary-ecommerce/controllers"
	"github.com/arun20071/arun-chaudhary-ecommerce/middlewares"
)

func CartRoutes(server *gin.Engine, controller *controllers.CartController) {
	cart := server.Group("/api/cart", middlewares.OptionalAuth())
	{
		cart.GET("", controller.GetCart)
		cart.POST("", controller.AddToCart)
		cart.PATCH("/:itemId", controller.UpdateCartItem)
		cart.DELETE("/:itemId", controller.RemoveCartItem)
		cart.DELETE("", controller.ClearCart)
	}
}
