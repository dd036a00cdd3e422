package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/yufanhao/munch-backend/internal/config"
	"github.com/yufanhao/munch-backend/internal/handler"
	"github.com/yufanhao/munch-backend/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	receiptH *handler.ReceiptHandler,
	reconcileH *handler.ReconcileHandler,
	restaurantH *handler.RestaurantHandler,
	userH *handler.UserHandler,
	paymentH *handler.PaymentHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Receipt pipeline
	receipts := v1.Group("/receipts")
	receipts.POST("/parse", receiptH.Parse)
	receipts.POST("/reconcile", reconcileH.Reconcile)

	// Restaurant catalog
	restaurants := v1.Group("/restaurants")
	restaurants.POST("", restaurantH.Create)
	restaurants.GET("", restaurantH.List)
	restaurants.GET("/:id", restaurantH.GetByID)
	restaurants.DELETE("/:id", restaurantH.Delete)
	restaurants.POST("/:id/menu", restaurantH.AddMenuItem)
	restaurants.GET("/:id/menu", restaurantH.GetMenu)
	restaurants.GET("/:id/menu/export", restaurantH.ExportMenu)
	restaurants.DELETE("/:id/menu/:foodId", restaurantH.DeleteMenuItem)
	restaurants.POST("/:id/reviews", restaurantH.AddReview)
	restaurants.GET("/:id/reviews", restaurantH.ListReviews)

	// Users and favorites
	users := v1.Group("/users")
	users.POST("", userH.Create)
	users.GET("", userH.List)
	users.GET("/:id", userH.GetByID)
	users.DELETE("/:id", userH.Delete)
	users.POST("/:id/favorites", userH.AddFavorite)
	users.GET("/:id/favorites", userH.ListFavorites)
	users.DELETE("/:id/favorites/:foodId", userH.RemoveFavorite)
	users.GET("/:id/payment-requests", paymentH.ListByUser)

	// Payment requests
	payments := v1.Group("/payment-requests")
	payments.POST("", paymentH.Create)
	payments.GET("/:id", paymentH.GetByID)
	payments.POST("/:id/settle", paymentH.Settle)

	return r
}
