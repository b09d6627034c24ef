// internal/domain/cart/entity.go
package cart

// Line represents one aggregated cart entry per distinct product.
// Title, price and image are snapshots taken when the product is first
// added; later catalog changes do not affect existing lines.
type Line struct {
	ProductID int     `json:"id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// Total returns price times quantity for the line
func (l Line) Total() float64 {
	return l.Price * float64(l.Quantity)
}

// Totals represents the derived cart totals
type Totals struct {
	Subtotal  float64 `json:"subtotal"`
	Tax       float64 `json:"tax"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"item_count"`
}

// LineView is a display-ready cart row
type LineView struct {
	Line
	LineTotal float64 `json:"line_total"`
}

// View is the display-ready projection of the cart state
type View struct {
	Items  []LineView `json:"items"`
	Totals Totals     `json:"totals"`
	Empty  bool       `json:"empty"`
}
