package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/services"
)

// ProductController handles HTTP requests for the product catalog.
type ProductController struct {
	catalogService services.CatalogService
}

// NewProductController creates a new ProductController.
func NewProductController(catalogService services.CatalogService) *ProductController {
	return &ProductController{catalogService: catalogService}
}

// ListProducts handles GET /products.
func (pc *ProductController) ListProducts(ctx *gin.Context) {
	products := pc.catalogService.ListProducts(ctx.Request.Context())
	ctx.JSON(http.StatusOK, products)
}
