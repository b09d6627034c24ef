// internal/domain/order/entity.go
package order

import (
	"time"

	"github.com/your-org/storefront/internal/domain/cart"
)

// Order represents a placed order. Payment is fake; the order exists
// only for the lifetime of the process.
type Order struct {
	ID           string      `json:"id"`
	FullName     string      `json:"full_name"`
	Email        string      `json:"email"`
	Address      string      `json:"address"`
	Items        []cart.Line `json:"items"`
	Subtotal     float64     `json:"subtotal"`
	Tax          float64     `json:"tax"`
	Total        float64     `json:"total"`
	PlacedAt     time.Time   `json:"placed_at"`
	DeliveryDate time.Time   `json:"delivery_date"`
}

// Confirmation is the projection carried by the confirmation page
type Confirmation struct {
	OrderID      string `json:"order_id"`
	DeliveryDate string `json:"delivery_date"`
}

// Confirmation returns the confirmation-page projection of the order
func (o *Order) Confirmation() Confirmation {
	return Confirmation{
		OrderID:      o.ID,
		DeliveryDate: o.DeliveryDate.Format("January 2, 2006"),
	}
}
