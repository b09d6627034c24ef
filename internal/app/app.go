// internal/app/app.go
package app

import (
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/domain/navigation"
	"github.com/your-org/storefront/internal/domain/notification"
	"github.com/your-org/storefront/internal/domain/order"
	"github.com/your-org/storefront/internal/domain/user"
	"github.com/your-org/storefront/internal/pkg/auth"
	"github.com/your-org/storefront/internal/pkg/receipt"
)

// App is the storefront state container: one instance of every
// component, shared by all handlers. It replaces ambient globals with
// an explicitly wired object graph.
type App struct {
	Config        *config.Config
	Logger        *logrus.Logger
	Catalog       *catalog.Store
	Cart          *cart.Ledger
	Users         *user.Registry
	Nav           *navigation.Navigator
	Orders        *order.Service
	Notifications *notification.Center
	JWT           *auth.JWTManager
	Receipts      *receipt.Service
}

// New wires the storefront engine against the given catalog source
func New(cfg *config.Config, logger *logrus.Logger, source catalog.Source) *App {
	catalogStore := catalog.NewStore(source, cfg.Store.DefaultMaxPrice, logger)
	cartLedger := cart.NewLedger(catalogStore, cfg.Store.TaxRate, logger)
	users := user.NewRegistry(logger)

	return &App{
		Config:        cfg,
		Logger:        logger,
		Catalog:       catalogStore,
		Cart:          cartLedger,
		Users:         users,
		Nav:           navigation.NewNavigator(users, cartLedger, logger),
		Orders:        order.NewService(cartLedger, cfg.Store.DeliveryDays, logger),
		Notifications: notification.NewCenter(cfg.Store.NotificationTTL, logger),
		JWT:           auth.NewJWTManager(cfg),
		Receipts:      receipt.NewService(cfg),
	}
}
