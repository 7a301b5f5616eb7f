package store

import (
	"testing"
	"time"

	"vastratrota-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededStore() (*Store, *models.Product, *models.Customer) {
	s := NewStore()

	product := &models.Product{
		Name:            "Kurti",
		Price:           200,
		DiscountPercent: 10,
		CostPerPiece:    50,
	}
	s.CreateProduct(product)
	s.SetStock(product.ID, models.GlobalDealerID, 5)

	customer := &models.Customer{Name: "Asha", Mobile: "+919000000001", Location: "Pune"}
	s.CreateCustomer(customer)

	return s, product, customer
}

func TestRemoveStockNeverGoesNegative(t *testing.T) {
	s, product, _ := newSeededStore()

	qty, err := s.RemoveStock(product.ID, models.GlobalDealerID, 6)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 5, qty, "failed remove must leave the counter unchanged")

	qty, err = s.RemoveStock(product.ID, models.GlobalDealerID, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, qty)
}

func TestAddStockRequiresExistingEntry(t *testing.T) {
	s, product, _ := newSeededStore()

	_, err := s.AddStock("missing", models.GlobalDealerID, 1)
	assert.ErrorIs(t, err, ErrInventoryNotFound)

	qty, err := s.AddStock(product.ID, models.GlobalDealerID, 3)
	require.NoError(t, err)
	assert.Equal(t, 8, qty)
}

func TestGetInventoryFilters(t *testing.T) {
	s, product, _ := newSeededStore()
	s.SetStock(product.ID, "dealer-1", 20)
	s.SetStock("other-product", "dealer-1", 7)

	assert.Len(t, s.GetInventory("", ""), 3)
	assert.Len(t, s.GetInventory(product.ID, ""), 2)
	assert.Len(t, s.GetInventory("", "dealer-1"), 2)

	entries := s.GetInventory(product.ID, "dealer-1")
	require.Len(t, entries, 1)
	assert.Equal(t, 20, entries[0].Quantity)
}

func TestRecordSaleIsAtomic(t *testing.T) {
	s, product, customer := newSeededStore()

	sale := &models.Sale{
		SalespersonID: "sales1",
		ProductID:     product.ID,
		CustomerID:    customer.ID,
		Amount:        180,
		Timestamp:     time.Now(),
	}
	require.NoError(t, s.RecordSale(sale))
	assert.NotEmpty(t, sale.ID)

	entries := s.GetInventory(product.ID, models.GlobalDealerID)
	require.Len(t, entries, 1)
	assert.Equal(t, 4, entries[0].Quantity, "one sale decrements by exactly one unit")

	got, err := s.GetCustomer(customer.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{sale.ID}, got.PurchaseHistory)

	assert.Len(t, s.GetSales(), 1)
}

func TestRecordSaleRejectsWhenOutOfStock(t *testing.T) {
	s, product, customer := newSeededStore()
	s.SetStock(product.ID, models.GlobalDealerID, 0)

	sale := &models.Sale{
		ProductID:  product.ID,
		CustomerID: customer.ID,
		Timestamp:  time.Now(),
	}
	err := s.RecordSale(sale)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	assert.Empty(t, s.GetSales(), "rejected sale must not reach the ledger")
	got, _ := s.GetCustomer(customer.ID)
	assert.Empty(t, got.PurchaseHistory, "rejected sale must not touch purchase history")
}

func TestRecordSaleUnknownCustomer(t *testing.T) {
	s, product, _ := newSeededStore()

	err := s.RecordSale(&models.Sale{
		ProductID:  product.ID,
		CustomerID: "missing",
		Timestamp:  time.Now(),
	})
	assert.ErrorIs(t, err, ErrCustomerNotFound)

	entries := s.GetInventory(product.ID, models.GlobalDealerID)
	assert.Equal(t, 5, entries[0].Quantity)
}

func TestSaleIDsAreMonotonic(t *testing.T) {
	s, product, customer := newSeededStore()

	now := time.Now()
	var prev string
	for i := 0; i < 3; i++ {
		sale := &models.Sale{
			ProductID:  product.ID,
			CustomerID: customer.ID,
			Timestamp:  now, // same millisecond on purpose
		}
		require.NoError(t, s.RecordSale(sale))
		assert.Greater(t, sale.ID, prev)
		prev = sale.ID
	}
}

func TestTransitionDealerStatusRecordsHistory(t *testing.T) {
	s, _, _ := newSeededStore()

	dealer := &models.Dealer{Name: "Dealer1", Area: "Mumbai"}
	s.CreateDealer(dealer)
	assert.Equal(t, models.PaymentStatusPending, dealer.PaymentStatus)

	at := time.Now()
	updated, err := s.TransitionDealerStatus(dealer.ID, models.PaymentStatusOverdue, "no order in 7 days with stock on hand", at)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusOverdue, updated.PaymentStatus)
	require.Len(t, updated.StatusHistory, 1)
	assert.Equal(t, models.PaymentStatusPending, updated.StatusHistory[0].From)
	assert.Equal(t, models.PaymentStatusOverdue, updated.StatusHistory[0].To)

	// transition to the same state is a no-op
	updated, err = s.TransitionDealerStatus(dealer.ID, models.PaymentStatusOverdue, "again", at)
	require.NoError(t, err)
	assert.Len(t, updated.StatusHistory, 1)
}

func TestDeleteProductLeavesLedgerIntact(t *testing.T) {
	s, product, customer := newSeededStore()

	sale := &models.Sale{ProductID: product.ID, CustomerID: customer.ID, Timestamp: time.Now()}
	require.NoError(t, s.RecordSale(sale))
	require.NoError(t, s.DeleteProduct(product.ID))

	assert.Len(t, s.GetSales(), 1)
	assert.Len(t, s.GetInventory(product.ID, ""), 1)

	_, err := s.GetProduct(product.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)
}
