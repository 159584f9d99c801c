package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/arun20071/arun-chaudhary-ecommerce/controllers"
	"github.com/arun20071/arun-chaudhary-ecommerce/middlewares"
)

func AuthRoutes(server *gin.Engine, controller *controllers.AuthController) {
	auth := server.Group("/api/auth")
	{
		auth.POST("/signup", controller.Signup)
		auth.POST("/login", controller.Login)
		auth.GET("/profile", middlewares.RequireAuth(), controller.Profile)
	}
}
