// internal/domain/order/service.go
package order

import (
	"errors"
	"math/rand"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/cart"
)

// Validation errors, surfaced in first-failing-check order
var (
	ErrInvalidCardNumber = errors.New("invalid card number")
	ErrInvalidExpiryDate = errors.New("invalid expiry date format (MM/YY)")
	ErrInvalidCVV        = errors.New("invalid CVV")
	ErrEmptyCart         = errors.New("cannot place an order with an empty cart")
	ErrOrderNotFound     = errors.New("order not found")
)

var expiryPattern = regexp.MustCompile(`^\d{2}/\d{2}$`)

const orderIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Cart is the slice of the ledger the checkout needs
type Cart interface {
	Lines() []cart.Line
	Totals() cart.Totals
	Clear()
}

// PlaceOrderRequest carries the checkout form fields. Card validation
// is syntactic only; no real payment happens.
type PlaceOrderRequest struct {
	FullName   string `json:"full_name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Address    string `json:"address" binding:"required"`
	CardNumber string `json:"card_number" binding:"required"`
	ExpiryDate string `json:"expiry_date" binding:"required"`
	CVV        string `json:"cvv" binding:"required"`
}

// Service finalizes checkouts and keeps the in-memory order log.
// Order-id generation and the clock are seams so a real implementation
// could swap them without touching the flow.
type Service struct {
	mu           sync.Mutex
	cart         Cart
	logger       *logrus.Logger
	deliveryDays int
	orders       []Order

	now             func() time.Time
	generateOrderID func() string
}

// NewService creates an order service draining the given cart
func NewService(c Cart, deliveryDays int, logger *logrus.Logger) *Service {
	return &Service{
		cart:            c,
		logger:          logger,
		deliveryDays:    deliveryDays,
		now:             time.Now,
		generateOrderID: generateOrderID,
	}
}

// PlaceOrder validates the payment fields and, on success, synthesizes
// an order id, computes the delivery date, snapshots and empties the
// cart, and records the order. On any validation failure no state
// changes and only the first failing check is reported.
func (s *Service) PlaceOrder(req PlaceOrderRequest) (*Order, error) {
	if err := validatePayment(req); err != nil {
		return nil, err
	}

	lines := s.cart.Lines()
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	totals := s.cart.Totals()

	s.mu.Lock()
	defer s.mu.Unlock()

	placedAt := s.now()
	o := Order{
		ID:           s.generateOrderID(),
		FullName:     req.FullName,
		Email:        req.Email,
		Address:      req.Address,
		Items:        lines,
		Subtotal:     totals.Subtotal,
		Tax:          totals.Tax,
		Total:        totals.Total,
		PlacedAt:     placedAt,
		DeliveryDate: placedAt.AddDate(0, 0, s.deliveryDays),
	}

	s.cart.Clear()
	s.orders = append(s.orders, o)

	s.logger.WithFields(logrus.Fields{
		"order_id": o.ID,
		"total":    o.Total,
		"items":    len(o.Items),
	}).Info("Order placed")

	return &o, nil
}

// Orders returns a copy of all placed orders in placement order
func (s *Service) Orders() []Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Order(nil), s.orders...)
}

// Order looks up a placed order by id
func (s *Service) Order(id string) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return Order{}, ErrOrderNotFound
}

// validatePayment runs the syntactic payment checks in order and
// reports the first failure: card number length >= 13 (spaces
// ignored), expiry matching MM/YY, CVV of exactly 3 characters.
func validatePayment(req PlaceOrderRequest) error {
	cardDigits := strings.ReplaceAll(req.CardNumber, " ", "")
	if len(cardDigits) < 13 {
		return ErrInvalidCardNumber
	}

	if !expiryPattern.MatchString(req.ExpiryDate) {
		return ErrInvalidExpiryDate
	}

	if len(req.CVV) != 3 {
		return ErrInvalidCVV
	}

	return nil
}

// generateOrderID synthesizes a token of the form ORD-XXXXXXXXX
func generateOrderID() string {
	var b strings.Builder
	b.WriteString("ORD-")
	for i := 0; i < 9; i++ {
		b.WriteByte(orderIDAlphabet[rand.Intn(len(orderIDAlphabet))])
	}
	return b.String()
}
