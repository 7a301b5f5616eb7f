package service

import (
	"context"
	"fmt"
	"time"

	"vastratrota-backend/internal/broker"
	"vastratrota-backend/internal/models"
	"vastratrota-backend/internal/store"
	"vastratrota-backend/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DealerService owns dealer CRUD and the overdue evaluation step
type DealerService struct {
	store          *store.Store
	eventPublisher *broker.EventPublisher
	notifier       *Notifier
	overdueAfter   time.Duration
	logger         *zap.Logger
}

// NewDealerService creates a new dealer service
func NewDealerService(
	store *store.Store,
	eventPublisher *broker.EventPublisher,
	notifier *Notifier,
	overdueAfter time.Duration,
) *DealerService {
	return &DealerService{
		store:          store,
		eventPublisher: eventPublisher,
		notifier:       notifier,
		overdueAfter:   overdueAfter,
		logger:         util.GetLogger(),
	}
}

// ListDealers runs the overdue evaluation and returns all dealers with their
// evaluated status. A dealer is overdue when the last order is older than the
// configured window and it still holds stock of at least one product. The
// transition is written back and recorded in the dealer's status history.
func (s *DealerService) ListDealers(ctx context.Context) []models.Dealer {
	ctx, span := util.StartSpan(ctx, "DealerService.ListDealers")
	defer span.End()

	now := time.Now()
	dealers := s.store.GetDealers()
	for i, dealer := range dealers {
		if !s.isOverdue(dealer, now) || dealer.PaymentStatus == models.PaymentStatusOverdue {
			continue
		}

		updated, err := s.store.TransitionDealerStatus(
			dealer.ID,
			models.PaymentStatusOverdue,
			fmt.Sprintf("no order in %d days with stock on hand", int(s.overdueAfter.Hours()/24)),
			now,
		)
		if err != nil {
			s.logger.Error("Failed to transition dealer status",
				zap.String("dealer_id", dealer.ID),
				zap.Error(err))
			continue
		}
		dealers[i] = *updated

		util.DealerOverdueTotal.Inc()
		s.publishOverdue(ctx, updated, now)
	}
	return dealers
}

func (s *DealerService) isOverdue(dealer models.Dealer, now time.Time) bool {
	if now.Sub(dealer.LastOrderDate) <= s.overdueAfter {
		return false
	}
	for _, qty := range dealer.StockLevels {
		if qty > 0 {
			return true
		}
	}
	return false
}

func (s *DealerService) publishOverdue(ctx context.Context, dealer *models.Dealer, now time.Time) {
	event := &models.DealerOverdueEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: models.EventTypeDealerOverdue,
			Timestamp: now,
		},
		DealerID:   dealer.ID,
		DealerName: dealer.Name,
		Area:       dealer.Area,
		DaysSince:  int(now.Sub(dealer.LastOrderDate).Hours() / 24),
	}

	if err := s.eventPublisher.PublishDealerOverdue(ctx, event); err != nil {
		s.logger.Error("Failed to publish DealerOverdue event", zap.Error(err))
	}

	if !s.eventPublisher.Enabled() {
		s.notifier.SendAlert(fmt.Sprintf("Overdue dealer: %s (%s), last order %d days ago",
			dealer.Name, dealer.Area, event.DaysSince))
	}
}

// GetDealer retrieves a single dealer.
func (s *DealerService) GetDealer(ctx context.Context, id string) (*models.Dealer, error) {
	_, span := util.StartSpan(ctx, "DealerService.GetDealer")
	defer span.End()

	return s.store.GetDealer(id)
}

// CreateDealer stores a new dealer.
func (s *DealerService) CreateDealer(ctx context.Context, dealer *models.Dealer) *models.Dealer {
	_, span := util.StartSpan(ctx, "DealerService.CreateDealer")
	defer span.End()

	s.store.CreateDealer(dealer)
	s.logger.Info("Dealer created",
		zap.String("dealer_id", dealer.ID),
		zap.String("area", dealer.Area))
	return dealer
}

// UpdateDealer applies partial updates to a dealer.
func (s *DealerService) UpdateDealer(ctx context.Context, id string, updates *models.Dealer) (*models.Dealer, error) {
	_, span := util.StartSpan(ctx, "DealerService.UpdateDealer")
	defer span.End()

	return s.store.UpdateDealer(id, updates)
}

// DeleteDealer removes a dealer.
func (s *DealerService) DeleteDealer(ctx context.Context, id string) error {
	_, span := util.StartSpan(ctx, "DealerService.DeleteDealer")
	defer span.End()

	return s.store.DeleteDealer(id)
}
