package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arun20071/arun-chaudhary-ecommerce/storage"
)

const (
	msgProductNotFound       = "Product not found"
	msgFailedToFetchProducts = "Failed to fetch products"
	msgFailedToFetchProduct  = "Failed to fetch product"
)

type ProductController struct {
	store storage.Storage
}

func NewProductController(store storage.Storage) *ProductController {
	return &ProductController{store: store}
}

func (c *ProductController) GetProducts(ctx *gin.Context) {
	products, err := c.store.GetAllProducts()
	if err != nil {
		log.Println("Storage error fetching products:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToFetchProducts)
		return
	}
	ctx.JSON(http.StatusOK, products)
}

func (c *ProductController) GetProduct(ctx *gin.Context) {
	product, err := c.store.GetProductByID(ctx.Param("id"))
	if err != nil {
		log.Println("Storage error fetching product:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToFetchProduct)
		return
	}
	if product == nil {
		sendErrorResponse(ctx, http.StatusNotFound, msgProductNotFound)
		return
	}
	ctx.JSON(http.StatusOK, product)
}

// GetProductsByCategory is a plain linear filter; an unknown category
// yields an empty list, not a 404.
func (c *ProductController) GetProductsByCategory(ctx *gin.Context) {
	products, err := c.store.GetProductsByCategory(ctx.Param("category"))
	if err != nil {
		log.Println("Storage error fetching category:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToFetchProducts)
		return
	}
	ctx.JSON(http.StatusOK, products)
}
