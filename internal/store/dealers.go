package store

import (
	"time"

	"vastratrota-backend/internal/models"

	"github.com/google/uuid"
)

// CreateDealer assigns a fresh id and stores the dealer. A new dealer starts
// in the pending payment state unless one was supplied, with the last-order
// clock starting now.
func (s *Store) CreateDealer(dealer *models.Dealer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dealer.ID = uuid.New().String()
	if dealer.StockLevels == nil {
		dealer.StockLevels = make(map[string]int)
	}
	if dealer.PaymentStatus == "" {
		dealer.PaymentStatus = models.PaymentStatusPending
	}
	if dealer.LastOrderDate.IsZero() {
		dealer.LastOrderDate = time.Now()
	}
	s.dealers[dealer.ID] = dealer
	s.dealerOrder = append(s.dealerOrder, dealer.ID)
}

// GetDealer retrieves a dealer by id.
func (s *Store) GetDealer(id string) (*models.Dealer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dealer, ok := s.dealers[id]
	if !ok {
		return nil, ErrDealerNotFound
	}
	cp := copyDealer(dealer)
	return &cp, nil
}

// GetDealers returns all dealers in creation order.
func (s *Store) GetDealers() []models.Dealer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dealers := make([]models.Dealer, 0, len(s.dealerOrder))
	for _, id := range s.dealerOrder {
		dealers = append(dealers, copyDealer(s.dealers[id]))
	}
	return dealers
}

// UpdateDealer applies non-zero fields from updates to an existing dealer.
// Status history is owned by the evaluation step and cannot be set here.
func (s *Store) UpdateDealer(id string, updates *models.Dealer) (*models.Dealer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dealer, ok := s.dealers[id]
	if !ok {
		return nil, ErrDealerNotFound
	}

	if updates.Name != "" {
		dealer.Name = updates.Name
	}
	if updates.Area != "" {
		dealer.Area = updates.Area
	}
	if updates.StockLevels != nil {
		dealer.StockLevels = updates.StockLevels
	}
	if updates.PaymentStatus != "" {
		dealer.PaymentStatus = updates.PaymentStatus
	}
	if !updates.LastOrderDate.IsZero() {
		dealer.LastOrderDate = updates.LastOrderDate
	}

	cp := copyDealer(dealer)
	return &cp, nil
}

// DeleteDealer removes a dealer.
func (s *Store) DeleteDealer(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.dealers[id]; !ok {
		return ErrDealerNotFound
	}
	delete(s.dealers, id)
	for i, did := range s.dealerOrder {
		if did == id {
			s.dealerOrder = append(s.dealerOrder[:i], s.dealerOrder[i+1:]...)
			break
		}
	}
	return nil
}

// TransitionDealerStatus moves a dealer to a new payment status and records
// the transition. Returns the updated dealer. No-op error if the dealer is
// already in the target state.
func (s *Store) TransitionDealerStatus(id, to, reason string, at time.Time) (*models.Dealer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dealer, ok := s.dealers[id]
	if !ok {
		return nil, ErrDealerNotFound
	}
	if dealer.PaymentStatus != to {
		dealer.StatusHistory = append(dealer.StatusHistory, models.StatusTransition{
			From:   dealer.PaymentStatus,
			To:     to,
			Reason: reason,
			At:     at,
		})
		dealer.PaymentStatus = to
	}
	cp := copyDealer(dealer)
	return &cp, nil
}

func copyDealer(dealer *models.Dealer) models.Dealer {
	cp := *dealer
	cp.StockLevels = make(map[string]int, len(dealer.StockLevels))
	for pid, qty := range dealer.StockLevels {
		cp.StockLevels[pid] = qty
	}
	cp.StatusHistory = append([]models.StatusTransition(nil), dealer.StatusHistory...)
	return cp
}
