package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/models"
	"storefront/services"
)

// CouponController handles HTTP requests for coupon operations.
type CouponController struct {
	couponService services.CouponService
}

// NewCouponController creates a new CouponController.
func NewCouponController(couponService services.CouponService) *CouponController {
	return &CouponController{couponService: couponService}
}

// ValidateCoupon handles POST /validate-coupon.
func (cc *CouponController) ValidateCoupon(ctx *gin.Context) {
	var req models.ValidateCouponRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	valid := cc.couponService.Validate(ctx.Request.Context(), req.CouponCode)
	ctx.JSON(http.StatusOK, models.ValidateCouponResponse{Valid: valid})
}

// GenerateCoupon handles POST /admin/generate-coupon.
func (cc *CouponController) GenerateCoupon(ctx *gin.Context) {
	code, svcErr := cc.couponService.Generate(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, models.GenerateCouponResponse{Coupon: code})
}
