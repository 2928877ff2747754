package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/models"
	"storefront/services"
)

// CartController handles HTTP requests for cart operations.
type CartController struct {
	cartService services.CartService
}

// NewCartController creates a new CartController.
func NewCartController(cartService services.CartService) *CartController {
	return &CartController{cartService: cartService}
}

// AddItem handles POST /cart/add.
func (cc *CartController) AddItem(ctx *gin.Context) {
	var req models.AddItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	cart := cc.cartService.AddItem(ctx.Request.Context(), &req)

	ctx.JSON(http.StatusOK, models.AddItemResponse{
		Message: "Item added",
		Cart:    cart,
	})
}

// GetCart handles GET /cart/:userId.
func (cc *CartController) GetCart(ctx *gin.Context) {
	userID := ctx.Param("userId")
	if userID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
		return
	}

	cart := cc.cartService.GetCart(ctx.Request.Context(), userID)
	ctx.JSON(http.StatusOK, cart)
}
