package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vastratrota-backend/internal/broker"
	"vastratrota-backend/internal/models"
	"vastratrota-backend/internal/store"
	"vastratrota-backend/internal/util"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrInvalidDiscount rejects discounts outside [0,100].
var ErrInvalidDiscount = errors.New("discount must be between 0 and 100")

// SaleService records sales against the ledger
type SaleService struct {
	store          *store.Store
	eventPublisher *broker.EventPublisher
	notifier       *Notifier
	logger         *zap.Logger
}

// NewSaleService creates a new sale service
func NewSaleService(store *store.Store, eventPublisher *broker.EventPublisher, notifier *Notifier) *SaleService {
	return &SaleService{
		store:          store,
		eventPublisher: eventPublisher,
		notifier:       notifier,
		logger:         util.GetLogger(),
	}
}

// RecordSaleRequest represents a request to record a sale
type RecordSaleRequest struct {
	SalespersonID string              `json:"salespersonId" binding:"required"`
	ProductID     string              `json:"productId" binding:"required"`
	CustomerID    string              `json:"customerId" binding:"required"`
	Discount      float64             `json:"discount"`
	Geolocation   *models.Geolocation `json:"geolocation" binding:"required"`
}

// RecordSale validates the request, computes the discounted amount, and
// commits the sale. The ledger append, inventory decrement and purchase
// history update happen atomically in the store: a sale is either fully
// recorded or not recorded at all. Customer notification is fire-and-forget.
func (s *SaleService) RecordSale(ctx context.Context, req *RecordSaleRequest) (*models.Sale, error) {
	ctx, span := util.StartSpan(ctx, "SaleService.RecordSale")
	defer span.End()

	start := time.Now()
	defer func() {
		util.SaleRecordLatency.Observe(time.Since(start).Seconds())
	}()

	if req.Discount < 0 || req.Discount > 100 {
		util.SalesFailedTotal.WithLabelValues("invalid_discount").Inc()
		return nil, ErrInvalidDiscount
	}

	product, err := s.store.GetProduct(req.ProductID)
	if err != nil {
		util.SalesFailedTotal.WithLabelValues("product_not_found").Inc()
		return nil, err
	}
	customer, err := s.store.GetCustomer(req.CustomerID)
	if err != nil {
		util.SalesFailedTotal.WithLabelValues("customer_not_found").Inc()
		return nil, err
	}

	sale := &models.Sale{
		SalespersonID:   req.SalespersonID,
		ProductID:       req.ProductID,
		CustomerID:      req.CustomerID,
		DiscountApplied: req.Discount,
		Amount:          DiscountedAmount(product.Price, req.Discount),
		Geolocation:     *req.Geolocation,
		Timestamp:       time.Now(),
	}

	if err := s.store.RecordSale(sale); err != nil {
		if errors.Is(err, store.ErrInsufficientStock) || errors.Is(err, store.ErrInventoryNotFound) {
			util.SalesFailedTotal.WithLabelValues("out_of_stock").Inc()
		} else {
			util.SalesFailedTotal.WithLabelValues("store_error").Inc()
		}
		return nil, fmt.Errorf("failed to record sale: %w", err)
	}

	util.SalesRecordedTotal.Inc()
	s.logger.Info("Sale recorded",
		zap.String("sale_id", sale.ID),
		zap.String("product_id", sale.ProductID),
		zap.Float64("amount", sale.Amount))

	event := &models.SaleRecordedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: models.EventTypeSaleRecorded,
			Timestamp: time.Now(),
		},
		SaleID:         sale.ID,
		SalespersonID:  sale.SalespersonID,
		ProductID:      sale.ProductID,
		ProductName:    product.Name,
		CustomerID:     customer.ID,
		CustomerMobile: customer.Mobile,
		Amount:         sale.Amount,
	}

	if err := s.eventPublisher.PublishSaleRecorded(ctx, event); err != nil {
		s.logger.Error("Failed to publish SaleRecorded event", zap.Error(err))
	}

	if !s.eventPublisher.Enabled() {
		// No broker: deliver the purchase SMS in-process, off the request path.
		go s.notifier.SendSMS(customer.Mobile,
			fmt.Sprintf("Thank you for your purchase! Product: %s, Discounted Price: ₹%.2f", product.Name, sale.Amount))
	}

	return sale, nil
}

// ListSales returns the full sale ledger.
func (s *SaleService) ListSales(ctx context.Context) []models.Sale {
	_, span := util.StartSpan(ctx, "SaleService.ListSales")
	defer span.End()

	return s.store.GetSales()
}

// DiscountedAmount computes price × (1 − discount/100) in decimal arithmetic,
// rounded to 2 places.
func DiscountedAmount(price, discountPercent float64) float64 {
	amount := decimal.NewFromFloat(price).
		Mul(decimal.NewFromInt(1).Sub(decimal.NewFromFloat(discountPercent).Div(decimal.NewFromInt(100)))).
		Round(2)
	f, _ := amount.Float64()
	return f
}
