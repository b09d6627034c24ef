package order

import (
	"io"
	"regexp"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/domain/cart"
)

type fakeCart struct {
	lines   []cart.Line
	cleared bool
}

func (f *fakeCart) Lines() []cart.Line { return append([]cart.Line(nil), f.lines...) }

func (f *fakeCart) Totals() cart.Totals {
	subtotal := 0.0
	count := 0
	for _, l := range f.lines {
		subtotal += l.Price * float64(l.Quantity)
		count += l.Quantity
	}
	return cart.Totals{Subtotal: subtotal, Tax: subtotal * 0.10, Total: subtotal * 1.10, ItemCount: count}
}

func (f *fakeCart) Clear() {
	f.lines = nil
	f.cleared = true
}

func validRequest() PlaceOrderRequest {
	return PlaceOrderRequest{
		FullName:   "Demo User",
		Email:      "user@example.com",
		Address:    "1 Main St",
		CardNumber: "4242 4242 4242 4242",
		ExpiryDate: "12/30",
		CVV:        "123",
	}
}

func newTestService(lines []cart.Line) (*Service, *fakeCart) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	c := &fakeCart{lines: lines}
	return NewService(c, 7, logger), c
}

func sampleLines() []cart.Line {
	return []cart.Line{{ProductID: 1, Title: "Red Shirt", Price: 20, Quantity: 2}}
}

func TestPlaceOrder_Success(t *testing.T) {
	svc, c := newTestService(sampleLines())
	placedAt := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return placedAt }

	o, err := svc.PlaceOrder(validRequest())
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^ORD-[0-9A-Z]{9}$`), o.ID)
	assert.Equal(t, placedAt.AddDate(0, 0, 7), o.DeliveryDate)
	assert.InDelta(t, 40, o.Subtotal, 1e-9)
	assert.InDelta(t, 4, o.Tax, 1e-9)
	assert.InDelta(t, 44, o.Total, 1e-9)
	require.Len(t, o.Items, 1)
	assert.True(t, c.cleared, "placing an order empties the cart")

	confirmation := o.Confirmation()
	assert.Equal(t, o.ID, confirmation.OrderID)
	assert.Equal(t, "March 17, 2026", confirmation.DeliveryDate)
}

func TestPlaceOrder_ValidationFirstFailingCheck(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PlaceOrderRequest)
		wantErr error
	}{
		{
			name:    "short card number",
			mutate:  func(r *PlaceOrderRequest) { r.CardNumber = "4242 4242" },
			wantErr: ErrInvalidCardNumber,
		},
		{
			name:    "bad expiry format",
			mutate:  func(r *PlaceOrderRequest) { r.ExpiryDate = "2030-12" },
			wantErr: ErrInvalidExpiryDate,
		},
		{
			name:    "bad cvv",
			mutate:  func(r *PlaceOrderRequest) { r.CVV = "12" },
			wantErr: ErrInvalidCVV,
		},
		{
			name: "multiple invalid fields reports the card first",
			mutate: func(r *PlaceOrderRequest) {
				r.CardNumber = "1"
				r.ExpiryDate = "bad"
				r.CVV = "99999"
			},
			wantErr: ErrInvalidCardNumber,
		},
		{
			name: "bad expiry and cvv reports the expiry first",
			mutate: func(r *PlaceOrderRequest) {
				r.ExpiryDate = "bad"
				r.CVV = "9"
			},
			wantErr: ErrInvalidExpiryDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, c := newTestService(sampleLines())

			req := validRequest()
			tt.mutate(&req)

			_, err := svc.PlaceOrder(req)
			require.ErrorIs(t, err, tt.wantErr)
			assert.False(t, c.cleared, "validation failure must not change state")
			assert.Empty(t, svc.Orders())
		})
	}
}

func TestPlaceOrder_CardSpacesDoNotCountTowardLength(t *testing.T) {
	svc, _ := newTestService(sampleLines())

	req := validRequest()
	req.CardNumber = "4 2 4 2 4 2 4 2 4 2 4 2" // 12 digits padded with spaces
	_, err := svc.PlaceOrder(req)
	require.ErrorIs(t, err, ErrInvalidCardNumber)
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	svc, _ := newTestService(nil)

	_, err := svc.PlaceOrder(validRequest())
	require.ErrorIs(t, err, ErrEmptyCart)
}

func TestOrders_LogAndLookup(t *testing.T) {
	svc, c := newTestService(sampleLines())

	first, err := svc.PlaceOrder(validRequest())
	require.NoError(t, err)

	c.lines = sampleLines()
	second, err := svc.PlaceOrder(validRequest())
	require.NoError(t, err)

	orders := svc.Orders()
	require.Len(t, orders, 2)
	assert.Equal(t, first.ID, orders[0].ID)
	assert.Equal(t, second.ID, orders[1].ID)

	got, err := svc.Order(second.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)

	_, err = svc.Order("ORD-MISSING00")
	require.ErrorIs(t, err, ErrOrderNotFound)
}

func TestGenerateOrderID_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD-[0-9A-Z]{9}$`)
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := generateOrderID()
		assert.Regexp(t, pattern, id)
		seen[id] = true
	}
	assert.Greater(t, len(seen), 90, "ids should be effectively unique")
}
