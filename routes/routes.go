package routes

import (
	"github.com/gin-gonic/gin"

	"storefront/controllers"
)

// RegisterRoutes sets up all storefront routes.
func RegisterRoutes(
	r *gin.Engine,
	cart *controllers.CartController,
	checkout *controllers.CheckoutController,
	coupon *controllers.CouponController,
	stats *controllers.StatsController,
	product *controllers.ProductController,
) {
	r.GET("/products", product.ListProducts)

	cartRoutes := r.Group("/cart")
	cartRoutes.POST("/add", cart.AddItem)
	cartRoutes.GET("/:userId", cart.GetCart)

	r.POST("/checkout", checkout.Checkout)
	r.POST("/validate-coupon", coupon.ValidateCoupon)

	adminRoutes := r.Group("/admin")
	adminRoutes.POST("/generate-coupon", coupon.GenerateCoupon)
	adminRoutes.GET("/stats", stats.GetStats)
}
