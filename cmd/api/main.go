package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/tavolo/tavolo-api/internal/application/service"
	"github.com/tavolo/tavolo-api/internal/config"
	"github.com/tavolo/tavolo-api/internal/infrastructure/database"
	"github.com/tavolo/tavolo-api/internal/infrastructure/repository"
	"github.com/tavolo/tavolo-api/internal/presentation/http/handler"
	"github.com/tavolo/tavolo-api/internal/presentation/http/routes"
	"github.com/tavolo/tavolo-api/internal/printrelay"
	"github.com/tavolo/tavolo-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewSQLiteDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiry,
		cfg.JWT.PINExpiryMinutes,
	)

	// Initialize repositories
	txManager := repository.NewTxManager(db)
	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)
	subcategoryRepo := repository.NewSubcategoryRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	lineRepo := repository.NewOrderLineRepository(db)
	historyRepo := repository.NewHistoryRepository(db)
	printerRepo := repository.NewPrinterRepository(db)
	shopRepo := repository.NewShopRepository(db)

	// Initialize print relay. An empty address disables printing; orders
	// and settlements still work, tickets are just never delivered.
	var sender printrelay.Sender
	var dispatcher *printrelay.Dispatcher
	if cfg.PrintRelay.Address != "" {
		relayClient := printrelay.NewClient(cfg.PrintRelay.Address)
		dispatcher = printrelay.NewDispatcher(relayClient, cfg.PrintRelay.QueueSize)
		sender = dispatcher
		defer dispatcher.Close()
	} else {
		log.Println("Print relay address not configured, printing disabled")
		sender = printrelay.NewNopSender()
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	itemService := service.NewItemService(itemRepo, subcategoryRepo)
	subcategoryService := service.NewSubcategoryService(subcategoryRepo)
	printerService := service.NewPrinterService(printerRepo, shopRepo, sender, cfg.Receipt.Width)
	orderService := service.NewOrderService(txManager, orderRepo, lineRepo, itemRepo, printerService)
	settlementService := service.NewSettlementService(txManager, orderRepo, lineRepo, historyRepo, printerService)
	historyService := service.NewHistoryService(historyRepo, shopRepo)
	reportService := service.NewReportService(historyRepo)
	userService := service.NewUserService(userRepo)
	shopService := service.NewShopService(shopRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Item:        handler.NewItemHandler(itemService),
		Subcategory: handler.NewSubcategoryHandler(subcategoryService),
		Order:       handler.NewOrderHandler(orderService),
		Settlement:  handler.NewSettlementHandler(settlementService),
		History:     handler.NewHistoryHandler(historyService),
		Report:      handler.NewReportHandler(reportService),
		Printer:     handler.NewPrinterHandler(printerService),
		User:        handler.NewUserHandler(userService),
		Shop:        handler.NewShopHandler(shopService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	// Start server
	addr := ":" + cfg.App.Port
	log.Printf("Starting %s on %s", cfg.App.Name, addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
