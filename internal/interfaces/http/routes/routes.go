// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/app"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/interfaces/http/handlers"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
)

// SetupRoutes wires all route groups against the shared app container
func SetupRoutes(rg *gin.RouterGroup, a *app.App, cfg *config.Config) {
	SetupCatalogRoutes(rg, a, cfg)
	SetupCartRoutes(rg, a, cfg)
	SetupAuthRoutes(rg, a, cfg)
	SetupNavigationRoutes(rg, a, cfg)
	SetupOrderRoutes(rg, a, cfg)
	SetupNotificationRoutes(rg, a, cfg)
}

// SetupCatalogRoutes sets up catalog related routes
func SetupCatalogRoutes(rg *gin.RouterGroup, a *app.App, cfg *config.Config) {
	catalogHandler := handlers.NewCatalogHandler(a)

	catalog := rg.Group("/catalog")
	{
		catalog.GET("", catalogHandler.GetCatalog)
		catalog.POST("/load", catalogHandler.LoadCatalog)
		catalog.PUT("/filters", catalogHandler.ApplyFilters)
		catalog.DELETE("/filters", catalogHandler.ClearFilters)
	}
}

// SetupCartRoutes sets up cart related routes
func SetupCartRoutes(rg *gin.RouterGroup, a *app.App, cfg *config.Config) {
	cartHandler := handlers.NewCartHandler(a)

	cart := rg.Group("/cart")
	cart.Use(middleware.OptionalAuthMiddleware(cfg))
	{
		cart.GET("", cartHandler.GetCart)
		cart.POST("/items", cartHandler.AddToCart)
		cart.PATCH("/items/:id", cartHandler.UpdateCartItem)
		cart.DELETE("/items/:id", cartHandler.RemoveCartItem)
	}
}

// SetupAuthRoutes sets up authentication related routes
func SetupAuthRoutes(rg *gin.RouterGroup, a *app.App, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(a)

	auth := rg.Group("/auth")
	{
		// Public auth endpoints
		auth.POST("/login", authHandler.Login)
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/logout", authHandler.Logout)

		// Protected auth endpoints
		protected := auth.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			protected.GET("/profile", authHandler.GetProfile)
		}
	}
}

// SetupNavigationRoutes sets up page navigation routes
func SetupNavigationRoutes(rg *gin.RouterGroup, a *app.App, cfg *config.Config) {
	navigationHandler := handlers.NewNavigationHandler(a)

	navigation := rg.Group("/navigation")
	{
		navigation.GET("", navigationHandler.GetNavigation)
		navigation.POST("", navigationHandler.Navigate)
		navigation.POST("/checkout", navigationHandler.ProceedToCheckout)
		navigation.POST("/theme", navigationHandler.ToggleTheme)
	}
}

// SetupOrderRoutes sets up checkout and order routes
func SetupOrderRoutes(rg *gin.RouterGroup, a *app.App, cfg *config.Config) {
	orderHandler := handlers.NewOrderHandler(a)

	checkout := rg.Group("/checkout")
	checkout.Use(middleware.AuthMiddleware(cfg))
	{
		checkout.POST("/order", orderHandler.PlaceOrder)
	}

	orders := rg.Group("/orders")
	orders.Use(middleware.AuthMiddleware(cfg))
	{
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.GET("/:id/receipt", orderHandler.GenerateReceipt)
	}
}

// SetupNotificationRoutes sets up notification routes
func SetupNotificationRoutes(rg *gin.RouterGroup, a *app.App, cfg *config.Config) {
	notificationHandler := handlers.NewNotificationHandler(a)

	notifications := rg.Group("/notifications")
	{
		notifications.GET("", notificationHandler.GetNotifications)
	}
}
