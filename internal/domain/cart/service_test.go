package cart

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/domain/catalog"
)

type fixedCatalog map[int]catalog.Product

func (f fixedCatalog) Product(id int) (catalog.Product, bool) {
	p, ok := f[id]
	return p, ok
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestLedger() (*Ledger, fixedCatalog) {
	products := fixedCatalog{
		1: {ID: 1, Title: "Red Shirt", Price: 20, Category: "clothing", Image: "https://img/1.png"},
		2: {ID: 2, Title: "Gold Ring", Price: 120, Category: "jewelery", Image: "https://img/2.png"},
	}
	return NewLedger(products, 0.10, testLogger()), products
}

func TestAddItem_TotalsScenario(t *testing.T) {
	ledger, _ := newTestLedger()

	require.NoError(t, ledger.AddItem(1, 2))

	lines := ledger.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].ProductID)
	assert.Equal(t, 2, lines[0].Quantity)

	assert.InDelta(t, 40, ledger.Subtotal(), 1e-9)
	assert.InDelta(t, 4, ledger.Tax(), 1e-9)
	assert.InDelta(t, 44, ledger.Total(), 1e-9)
	assert.Equal(t, 2, ledger.ItemCount())
}

func TestAddItem_MergesIntoExistingLine(t *testing.T) {
	ledger, _ := newTestLedger()

	require.NoError(t, ledger.AddItem(1, 1))
	require.NoError(t, ledger.AddItem(1, 1))

	lines := ledger.Lines()
	require.Len(t, lines, 1, "same product must merge, not duplicate")
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestAddItem_UnknownProduct(t *testing.T) {
	ledger, _ := newTestLedger()

	err := ledger.AddItem(99, 1)
	require.ErrorIs(t, err, catalog.ErrProductNotFound)
	assert.True(t, ledger.Empty())
}

func TestAddItem_RejectsNonPositiveQuantity(t *testing.T) {
	ledger, _ := newTestLedger()
	require.Error(t, ledger.AddItem(1, 0))
	require.Error(t, ledger.AddItem(1, -3))
	assert.True(t, ledger.Empty())
}

func TestAddItem_SnapshotsPriceAtAddTime(t *testing.T) {
	ledger, products := newTestLedger()
	require.NoError(t, ledger.AddItem(1, 1))

	// Catalog price changes after the line was created.
	p := products[1]
	p.Price = 999
	products[1] = p

	assert.InDelta(t, 20, ledger.Lines()[0].Price, 1e-9, "cart line captures price by value")
	assert.InDelta(t, 20, ledger.Subtotal(), 1e-9)
}

func TestRemoveItem_IsIdempotent(t *testing.T) {
	ledger, _ := newTestLedger()
	require.NoError(t, ledger.AddItem(1, 1))

	ledger.RemoveItem(1)
	assert.True(t, ledger.Empty())

	// Removing again is a no-op, not an error.
	ledger.RemoveItem(1)
	ledger.RemoveItem(42)
	assert.True(t, ledger.Empty())
}

func TestChangeQuantity_DropsLineAtZeroOrBelow(t *testing.T) {
	ledger, _ := newTestLedger()
	require.NoError(t, ledger.AddItem(1, 2))

	ledger.ChangeQuantity(1, -5)
	assert.True(t, ledger.Empty(), "quantity <= 0 removes the line")
}

func TestChangeQuantity_AdjustsWithinBounds(t *testing.T) {
	ledger, _ := newTestLedger()
	require.NoError(t, ledger.AddItem(1, 2))

	ledger.ChangeQuantity(1, 3)
	assert.Equal(t, 5, ledger.Lines()[0].Quantity)

	ledger.ChangeQuantity(1, -4)
	assert.Equal(t, 1, ledger.Lines()[0].Quantity)

	// Absent line is a benign no-op.
	ledger.ChangeQuantity(42, 1)
	assert.Len(t, ledger.Lines(), 1)
}

func TestInvariants_UnderMixedSequence(t *testing.T) {
	ledger, _ := newTestLedger()

	require.NoError(t, ledger.AddItem(1, 3))
	require.NoError(t, ledger.AddItem(2, 1))
	ledger.ChangeQuantity(1, -1)
	require.NoError(t, ledger.AddItem(2, 2))
	ledger.RemoveItem(99)
	ledger.ChangeQuantity(2, -1)

	seen := make(map[int]bool)
	expectedSubtotal := 0.0
	for _, line := range ledger.Lines() {
		assert.False(t, seen[line.ProductID], "no two lines may share a product id")
		seen[line.ProductID] = true
		assert.GreaterOrEqual(t, line.Quantity, 1, "line quantity is always >= 1")
		expectedSubtotal += line.Price * float64(line.Quantity)
	}

	assert.InDelta(t, expectedSubtotal, ledger.Subtotal(), 1e-9)
	assert.InDelta(t, expectedSubtotal*1.10, ledger.Total(), 1e-9)
}

func TestItemCount_CountsUnitsNotLines(t *testing.T) {
	ledger, _ := newTestLedger()
	require.NoError(t, ledger.AddItem(1, 3))
	require.NoError(t, ledger.AddItem(2, 2))

	assert.Equal(t, 5, ledger.ItemCount())
	assert.Len(t, ledger.Lines(), 2)
}

func TestView_Projection(t *testing.T) {
	ledger, _ := newTestLedger()
	require.NoError(t, ledger.AddItem(2, 2))

	view := ledger.View()
	require.Len(t, view.Items, 1)
	assert.InDelta(t, 240, view.Items[0].LineTotal, 1e-9)
	assert.InDelta(t, 240, view.Totals.Subtotal, 1e-9)
	assert.InDelta(t, 24, view.Totals.Tax, 1e-9)
	assert.InDelta(t, 264, view.Totals.Total, 1e-9)
	assert.Equal(t, 2, view.Totals.ItemCount)
	assert.False(t, view.Empty)

	ledger.Clear()
	assert.True(t, ledger.View().Empty)
}
