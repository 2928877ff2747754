package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"storefront/controllers"
	"storefront/logger"
	"storefront/middleware"
	"storefront/repository"
	"storefront/routes"
	"storefront/services"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := LoadConfig()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// --- State store ---
	// All storefront state lives in this process; it resets on restart.
	store := repository.NewStore(cfg.NthOrder)

	// --- HTTP router ---
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RateLimitMiddleware())

	// --- Dependency injection ---
	cartService := services.NewCartService(store, logger.Log)
	couponService := services.NewCouponService(store, logger.Log)
	checkoutService := services.NewCheckoutService(store, logger.Log)
	statsService := services.NewStatsService(store)
	catalogService := services.NewCatalogService()

	cartController := controllers.NewCartController(cartService)
	checkoutController := controllers.NewCheckoutController(checkoutService)
	couponController := controllers.NewCouponController(couponService)
	statsController := controllers.NewStatsController(statsService)
	productController := controllers.NewProductController(catalogService)

	routes.RegisterRoutes(r, cartController, checkoutController, couponController, statsController, productController)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "service": "storefront"})
	})

	// --- HTTP server ---
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Log.Info("Storefront started",
			zap.String("port", cfg.Port),
			zap.Int("nth_order", cfg.NthOrder),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("server failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Initiating graceful shutdown...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server shutdown error", zap.Error(err))
	}

	logger.Log.Info("Storefront stopped gracefully")
}
