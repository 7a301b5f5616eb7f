package store

import (
	"strconv"
	"time"

	"vastratrota-backend/internal/models"
)

// RecordSale commits a sale atomically: under a single write lock it verifies
// the customer still exists, decrements the global inventory pool for the
// product by one unit, assigns a ledger id, appends the sale, and appends the
// sale id to the customer's purchase history. If the stock check fails nothing
// is applied, so the ledger and the counters can never diverge.
//
// The caller fills in everything except ID; Timestamp is taken as given so the
// amount computation and the record share one clock reading.
func (s *Store) RecordSale(sale *models.Sale) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[sale.ProductID]; !ok {
		return ErrProductNotFound
	}
	customer, ok := s.customers[sale.CustomerID]
	if !ok {
		return ErrCustomerNotFound
	}

	entry, ok := s.inventory[inventoryKey{productID: sale.ProductID, dealerID: models.GlobalDealerID}]
	if !ok {
		return ErrInventoryNotFound
	}
	if entry.Quantity < 1 {
		return ErrInsufficientStock
	}
	entry.Quantity--

	sale.ID = s.nextSaleID(sale.Timestamp)
	s.sales = append(s.sales, sale)
	customer.PurchaseHistory = append(customer.PurchaseHistory, sale.ID)

	return nil
}

// nextSaleID derives a ledger id from the creation time, bumping past the
// previous id when two sales land on the same millisecond. Caller must hold
// the write lock.
func (s *Store) nextSaleID(ts time.Time) string {
	id := ts.UnixMilli()
	if id <= s.lastSaleID {
		id = s.lastSaleID + 1
	}
	s.lastSaleID = id
	return strconv.FormatInt(id, 10)
}

// GetSales returns the full ledger in recording order.
func (s *Store) GetSales() []models.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sales := make([]models.Sale, 0, len(s.sales))
	for _, sale := range s.sales {
		sales = append(sales, *sale)
	}
	return sales
}
