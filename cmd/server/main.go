package main

import (
	"fmt"
	"log"

	"github.com/yufanhao/munch-backend/internal/config"
	"github.com/yufanhao/munch-backend/internal/handler"
	"github.com/yufanhao/munch-backend/internal/matcher"
	_ "github.com/yufanhao/munch-backend/internal/matcher/levenshtein"
	_ "github.com/yufanhao/munch-backend/internal/matcher/openai"
	"github.com/yufanhao/munch-backend/internal/parser"
	_ "github.com/yufanhao/munch-backend/internal/parser/gemini"
	_ "github.com/yufanhao/munch-backend/internal/parser/openai"
	"github.com/yufanhao/munch-backend/internal/port"
	"github.com/yufanhao/munch-backend/internal/repository/postgres"
	"github.com/yufanhao/munch-backend/internal/router"
	"github.com/yufanhao/munch-backend/internal/service"
	s3storage "github.com/yufanhao/munch-backend/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	restaurantRepo := postgres.NewRestaurantRepo(db)
	foodRepo := postgres.NewFoodRepo(db)
	userRepo := postgres.NewUserRepo(db)
	reviewRepo := postgres.NewReviewRepo(db)
	paymentRepo := postgres.NewPaymentRequestRepo(db)
	catalogRepo := postgres.NewCatalogRepo(db)

	// Initialize extraction and matching providers
	extractor, err := parser.NewExtractor(&cfg.Parser)
	if err != nil {
		return fmt.Errorf("failed to initialize extractor: %w", err)
	}
	nameMatcher, err := matcher.NewMatcher(&cfg.Matcher)
	if err != nil {
		return fmt.Errorf("failed to initialize matcher: %w", err)
	}

	// Initialize storage (optional, used for receipt archival)
	var storage port.ObjectStorage
	if cfg.S3.Bucket != "" {
		storage, err = s3storage.NewS3Client(&cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	}

	// Initialize services
	receiptSvc := service.NewReceiptService(extractor, storage, &cfg.Image, &cfg.S3)
	reconcileSvc := service.NewReconcileService(nameMatcher, catalogRepo)
	restaurantSvc := service.NewRestaurantService(restaurantRepo, foodRepo, reviewRepo)
	userSvc := service.NewUserService(userRepo, foodRepo)
	paymentSvc := service.NewPaymentService(paymentRepo, userRepo)

	// Initialize handlers
	receiptH := handler.NewReceiptHandler(receiptSvc, &cfg.Image)
	reconcileH := handler.NewReconcileHandler(reconcileSvc)
	restaurantH := handler.NewRestaurantHandler(restaurantSvc)
	userH := handler.NewUserHandler(userSvc)
	paymentH := handler.NewPaymentHandler(paymentSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, receiptH, reconcileH, restaurantH, userH, paymentH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
