// internal/domain/cart/service.go
package cart

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/catalog"
)

// ProductFinder looks up products in the current catalog
type ProductFinder interface {
	Product(id int) (catalog.Product, bool)
}

// Ledger is the in-memory cart: an ordered line collection with
// quantity merge semantics. Totals are derived on demand; the ledger
// stores only the lines.
type Ledger struct {
	mu      sync.Mutex
	catalog ProductFinder
	logger  *logrus.Logger
	taxRate float64
	lines   []Line
}

// NewLedger creates an empty cart ledger
func NewLedger(catalog ProductFinder, taxRate float64, logger *logrus.Logger) *Ledger {
	return &Ledger{
		catalog: catalog,
		logger:  logger,
		taxRate: taxRate,
	}
}

// AddItem adds quantity of the product to the cart. If a line for the
// product already exists its quantity is incremented; otherwise a new
// line is created snapshotting the product's title, price and image.
// The product must exist in the current catalog.
func (l *Ledger) AddItem(productID, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("quantity must be at least 1")
	}

	product, ok := l.catalog.Product(productID)
	if !ok {
		return fmt.Errorf("cannot add product %d: %w", productID, catalog.ErrProductNotFound)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.lines {
		if l.lines[i].ProductID == productID {
			l.lines[i].Quantity += quantity
			l.logger.WithFields(logrus.Fields{
				"product_id": productID,
				"quantity":   l.lines[i].Quantity,
			}).Debug("Merged quantity into existing cart line")
			return nil
		}
	}

	l.lines = append(l.lines, Line{
		ProductID: product.ID,
		Title:     product.Title,
		Price:     product.Price,
		Image:     product.Image,
		Quantity:  quantity,
	})

	l.logger.WithField("product_id", productID).Debug("Added new cart line")
	return nil
}

// RemoveItem deletes the line for the product. Removing an absent
// line is a benign no-op.
func (l *Ledger) RemoveItem(productID int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.removeLocked(productID)
}

// ChangeQuantity adds delta (possibly negative) to the line's
// quantity. A resulting quantity of zero or less removes the line.
// Changing an absent line is a benign no-op.
func (l *Ledger) ChangeQuantity(productID, delta int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.lines {
		if l.lines[i].ProductID == productID {
			l.lines[i].Quantity += delta
			if l.lines[i].Quantity <= 0 {
				l.removeLocked(productID)
			}
			return
		}
	}
}

// Clear removes all lines
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = nil
}

// Lines returns a copy of the current lines
func (l *Ledger) Lines() []Line {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Line(nil), l.lines...)
}

// Empty reports whether the cart has no lines
func (l *Ledger) Empty() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.lines) == 0
}

// Subtotal is the sum of price times quantity over all lines
func (l *Ledger) Subtotal() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.subtotalLocked()
}

// Tax is the flat-rate tax on the subtotal
func (l *Ledger) Tax() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.subtotalLocked() * l.taxRate
}

// Total is subtotal plus tax
func (l *Ledger) Total() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	subtotal := l.subtotalLocked()
	return subtotal + subtotal*l.taxRate
}

// ItemCount is the sum of quantities over all lines, used for the
// cart badge. It counts units, not lines.
func (l *Ledger) ItemCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	count := 0
	for _, line := range l.lines {
		count += line.Quantity
	}
	return count
}

// Totals returns all derived totals in one snapshot
func (l *Ledger) Totals() Totals {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.totalsLocked()
}

// View returns the display-ready cart projection
func (l *Ledger) View() View {
	l.mu.Lock()
	defer l.mu.Unlock()

	items := make([]LineView, len(l.lines))
	for i, line := range l.lines {
		items[i] = LineView{
			Line:      line,
			LineTotal: line.Total(),
		}
	}

	return View{
		Items:  items,
		Totals: l.totalsLocked(),
		Empty:  len(l.lines) == 0,
	}
}

func (l *Ledger) removeLocked(productID int) {
	for i := range l.lines {
		if l.lines[i].ProductID == productID {
			l.lines = append(l.lines[:i], l.lines[i+1:]...)
			return
		}
	}
}

func (l *Ledger) subtotalLocked() float64 {
	subtotal := 0.0
	for _, line := range l.lines {
		subtotal += line.Price * float64(line.Quantity)
	}
	return subtotal
}

func (l *Ledger) totalsLocked() Totals {
	subtotal := l.subtotalLocked()
	tax := subtotal * l.taxRate

	count := 0
	for _, line := range l.lines {
		count += line.Quantity
	}

	return Totals{
		Subtotal:  subtotal,
		Tax:       tax,
		Total:     subtotal + tax,
		ItemCount: count,
	}
}
