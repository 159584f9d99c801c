package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/arun20071/arun-chaudhary-ecommerce/catalog"
	"github.com/arun20071/arun-chaudhary-ecommerce/controllers"
	"github.com/arun20071/arun-chaudhary-ecommerce/initializers"
	"github.com/arun20071/arun-chaudhary-ecommerce/routes"
	"github.com/arun20071/arun-chaudhary-ecommerce/storage"
)

// buildStorage picks the persistent store when a DSN is configured and
// falls back to the in-memory store otherwise.
func buildStorage() storage.Storage {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Println("DATABASE_DSN not set, using in-memory storage.")
		return storage.NewMemStorage(catalog.Products)
	}

	db, err := initializers.ConnectToDB(dsn)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	if err := initializers.SyncDatabase(db); err != nil {
		log.Fatal("Failed to sync database: ", err)
	}
	return storage.NewGormStorage(db)
}

func main() {
	initializers.LoadEnv()

	store := buildStorage()

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5000", "https://www.arunchaudhary.store"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server, controllers.NewAuthController(store))
	routes.ProductRoutes(server, controllers.NewProductController(store))
	routes.CartRoutes(server, controllers.NewCartController(store))
	routes.OrderRoutes(server, controllers.NewOrderController(store))

	server.Run()
}
