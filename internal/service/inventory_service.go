package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vastratrota-backend/internal/broker"
	"vastratrota-backend/internal/models"
	"vastratrota-backend/internal/redisclient"
	"vastratrota-backend/internal/store"
	"vastratrota-backend/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrInvalidAction rejects mutation actions other than add/remove.
var ErrInvalidAction = errors.New("invalid action")

const alertDedupTTL = 15 * time.Minute

// InventoryService owns stock reads and mutations plus the low-stock check
type InventoryService struct {
	store             *store.Store
	redis             *redisclient.Client
	eventPublisher    *broker.EventPublisher
	notifier          *Notifier
	lowStockThreshold int
	logger            *zap.Logger
}

// NewInventoryService creates a new inventory service. redis may be nil, in
// which case low-stock alerts are not deduplicated.
func NewInventoryService(
	store *store.Store,
	redis *redisclient.Client,
	eventPublisher *broker.EventPublisher,
	notifier *Notifier,
	lowStockThreshold int,
) *InventoryService {
	return &InventoryService{
		store:             store,
		redis:             redis,
		eventPublisher:    eventPublisher,
		notifier:          notifier,
		lowStockThreshold: lowStockThreshold,
		logger:            util.GetLogger(),
	}
}

// MutateStockRequest represents an inventory mutation
type MutateStockRequest struct {
	ProductID string `json:"productId" binding:"required"`
	DealerID  string `json:"dealerId"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Action    string `json:"action" binding:"required"`
}

// GetInventory returns entries matching the optional product/dealer filters,
// raising a low-stock alert for any entry below the threshold.
func (s *InventoryService) GetInventory(ctx context.Context, productID, dealerID string) []models.InventoryEntry {
	ctx, span := util.StartSpan(ctx, "InventoryService.GetInventory")
	defer span.End()

	entries := s.store.GetInventory(productID, dealerID)
	for _, entry := range entries {
		if entry.Quantity < s.lowStockThreshold {
			s.raiseLowStockAlert(ctx, entry)
		}
	}
	return entries
}

// MutateStock applies an add or remove to a single entry and returns the
// updated entry. remove is atomic: it fails without touching the counter when
// the requested quantity exceeds what is held.
func (s *InventoryService) MutateStock(ctx context.Context, req *MutateStockRequest) (*models.InventoryEntry, error) {
	ctx, span := util.StartSpan(ctx, "InventoryService.MutateStock")
	defer span.End()

	var quantity int
	var err error

	switch req.Action {
	case models.InventoryActionAdd:
		quantity, err = s.store.AddStock(req.ProductID, req.DealerID, req.Quantity)
	case models.InventoryActionRemove:
		quantity, err = s.store.RemoveStock(req.ProductID, req.DealerID, req.Quantity)
	default:
		util.InventoryMutationsFailed.WithLabelValues("invalid_action").Inc()
		return nil, fmt.Errorf("%w: %s", ErrInvalidAction, req.Action)
	}

	if err != nil {
		if errors.Is(err, store.ErrInsufficientStock) {
			util.InventoryMutationsFailed.WithLabelValues("insufficient_stock").Inc()
		} else {
			util.InventoryMutationsFailed.WithLabelValues("not_found").Inc()
		}
		return nil, err
	}

	util.InventoryMutationsTotal.WithLabelValues(req.Action).Inc()

	entry := models.InventoryEntry{
		ProductID: req.ProductID,
		DealerID:  req.DealerID,
		Quantity:  quantity,
	}
	if entry.Quantity < s.lowStockThreshold {
		s.raiseLowStockAlert(ctx, entry)
	}

	return &entry, nil
}

func (s *InventoryService) raiseLowStockAlert(ctx context.Context, entry models.InventoryEntry) {
	if s.redis != nil {
		key := fmt.Sprintf("lowstock:%s:%s", entry.ProductID, entry.DealerID)
		first, err := s.redis.MarkAlertSent(ctx, key, alertDedupTTL)
		if err != nil {
			s.logger.Warn("Alert dedup check failed", zap.Error(err))
		} else if !first {
			return
		}
	}

	productName := entry.ProductID
	if product, err := s.store.GetProduct(entry.ProductID); err == nil {
		productName = product.Name
	}

	util.LowStockAlertsTotal.Inc()

	event := &models.LowStockAlertEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: models.EventTypeLowStock,
			Timestamp: time.Now(),
		},
		ProductID:   entry.ProductID,
		ProductName: productName,
		DealerID:    entry.DealerID,
		Quantity:    entry.Quantity,
		Threshold:   s.lowStockThreshold,
	}

	if err := s.eventPublisher.PublishLowStockAlert(ctx, event); err != nil {
		s.logger.Error("Failed to publish LowStock event", zap.Error(err))
	}

	if !s.eventPublisher.Enabled() {
		s.notifier.SendAlert(fmt.Sprintf("Low stock alert: %s (%d left)", productName, entry.Quantity))
	}
}
