package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/arun20071/arun-chaudhary-ecommerce/controllers"
)

func ProductRoutes(server *gin.Engine, controller *controllers.ProductController) {
	server.GET("/api/products", controller.GetProducts)
	server.GET("/api/products/:id", controller.GetProduct)
	server.GET("/api/categories/:category", controller.GetProductsByCategory)
}
