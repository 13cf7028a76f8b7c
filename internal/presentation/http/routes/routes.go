package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tavolo/tavolo-api/internal/config"
	"github.com/tavolo/tavolo-api/internal/domain/enum"
	"github.com/tavolo/tavolo-api/internal/presentation/http/handler"
	"github.com/tavolo/tavolo-api/internal/presentation/http/middleware"
	"github.com/tavolo/tavolo-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth        *handler.AuthHandler
	Item        *handler.ItemHandler
	Subcategory *handler.SubcategoryHandler
	Order       *handler.OrderHandler
	Settlement  *handler.SettlementHandler
	History     *handler.HistoryHandler
	Report      *handler.ReportHandler
	Printer     *handler.PrinterHandler
	User        *handler.UserHandler
	Shop        *handler.ShopHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/pin-login", h.Auth.PINLogin)
		auth.POST("/refresh", h.Auth.Refresh)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	admin := string(enum.RoleAdmin)
	staff := string(enum.RoleStaff)
	waiter := string(enum.RoleWaiter)

	protected.GET("/auth/me", h.Auth.Me)

	// Waiter surface: menu browsing, open orders, settlement. PIN quick
	// login tokens are limited to these routes.
	floor := protected.Group("")
	floor.Use(middleware.RequireRole(admin, staff, waiter))
	{
		floor.GET("/items", h.Item.List)
		floor.GET("/items/:id", h.Item.Get)
		floor.GET("/subcategories", h.Subcategory.List)

		floor.GET("/orders", h.Order.ListOpen)
		floor.GET("/orders/table/:table", h.Order.GetByTable)
		floor.POST("/orders/lines", h.Order.AddLine)
		floor.PUT("/orders/lines/:id", h.Order.UpdateLine)
		floor.DELETE("/orders/lines/:id", h.Order.RemoveLine)

		floor.POST("/orders/table/:table/settle", h.Settlement.Settle)
		floor.POST("/orders/table/:table/settle-all", h.Settlement.SettleAll)
	}

	// Back office: settled history and catalog management. Requires a
	// password login with staff privileges or above.
	back := protected.Group("")
	back.Use(middleware.RequireFullLogin(), middleware.RequireRole(admin, staff))
	{
		back.GET("/history", h.History.List)
		back.GET("/history/:id", h.History.Get)
		back.GET("/history/:id/pdf", h.History.PDF)

		back.POST("/items", h.Item.Create)
		back.PUT("/items/:id", h.Item.Update)
		back.DELETE("/items/:id", h.Item.Delete)

		back.POST("/subcategories", h.Subcategory.Create)
		back.PUT("/subcategories/:id", h.Subcategory.Update)
		back.DELETE("/subcategories/:id", h.Subcategory.Delete)
	}

	// Admin-only: staff, printers, shop profile and reports.
	adminOnly := protected.Group("")
	adminOnly.Use(middleware.RequireFullLogin(), middleware.RequireRole(admin))
	{
		adminOnly.GET("/users", h.User.List)
		adminOnly.GET("/users/:id", h.User.Get)
		adminOnly.POST("/users", h.User.Create)
		adminOnly.PUT("/users/:id", h.User.Update)
		adminOnly.DELETE("/users/:id", h.User.Delete)

		adminOnly.GET("/printers", h.Printer.List)
		adminOnly.GET("/printers/:id", h.Printer.Get)
		adminOnly.POST("/printers", h.Printer.Create)
		adminOnly.PUT("/printers/:id", h.Printer.Update)
		adminOnly.DELETE("/printers/:id", h.Printer.Delete)
		adminOnly.POST("/printers/:id/test", h.Printer.TestPrint)

		adminOnly.GET("/shop", h.Shop.Get)
		adminOnly.PUT("/shop", h.Shop.Update)

		adminOnly.GET("/reports/orders.csv", h.Report.OrdersCSV)
		adminOnly.GET("/reports/orders.xlsx", h.Report.OrdersXLSX)
		adminOnly.GET("/reports/item-sales.csv", h.Report.ItemSalesCSV)
		adminOnly.GET("/reports/item-sales.xlsx", h.Report.ItemSalesXLSX)
	}
}
