package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/arun20071/arun-chaudhary-ecommerce/controllers"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
}
