package store

import "vastratrota-backend/internal/models"

// SetStock creates or replaces an inventory entry. Used by seeding and by
// catalog creation to open a zero-quantity global pool for new products.
func (s *Store) SetStock(productID, dealerID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := inventoryKey{productID: productID, dealerID: dealerID}
	if entry, ok := s.inventory[key]; ok {
		entry.Quantity = quantity
		return
	}
	s.inventory[key] = &models.InventoryEntry{
		ProductID: productID,
		DealerID:  dealerID,
		Quantity:  quantity,
	}
	s.inventoryOrder = append(s.inventoryOrder, key)
}

// GetInventory returns entries, optionally filtered by product and/or dealer.
// Empty filter values match everything.
func (s *Store) GetInventory(productID, dealerID string) []models.InventoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]models.InventoryEntry, 0, len(s.inventoryOrder))
	for _, key := range s.inventoryOrder {
		if productID != "" && key.productID != productID {
			continue
		}
		if dealerID != "" && key.dealerID != dealerID {
			continue
		}
		entries = append(entries, *s.inventory[key])
	}
	return entries
}

// AddStock increments an existing entry and returns the new quantity.
func (s *Store) AddStock(productID, dealerID string, quantity int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.inventory[inventoryKey{productID: productID, dealerID: dealerID}]
	if !ok {
		return 0, ErrInventoryNotFound
	}
	entry.Quantity += quantity
	return entry.Quantity, nil
}

// RemoveStock is an atomic compare-and-decrement: it fails with
// ErrInsufficientStock and leaves the counter unchanged when the requested
// quantity exceeds what is available. The counter can never go negative.
func (s *Store) RemoveStock(productID, dealerID string, quantity int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.inventory[inventoryKey{productID: productID, dealerID: dealerID}]
	if !ok {
		return 0, ErrInventoryNotFound
	}
	if entry.Quantity < quantity {
		return entry.Quantity, ErrInsufficientStock
	}
	entry.Quantity -= quantity
	return entry.Quantity, nil
}
