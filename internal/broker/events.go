package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"vastratrota-backend/internal/models"

	"github.com/segmentio/kafka-go"
)

// EventPublisher handles publishing domain events. A publisher constructed
// with a nil producer drops events silently so the service can run without a
// broker (the in-process notifier still covers the SMS path).
type EventPublisher struct {
	producer *Producer
}

// NewEventPublisher creates a new event publisher
func NewEventPublisher(producer *Producer) *EventPublisher {
	return &EventPublisher{producer: producer}
}

// Enabled reports whether events actually leave the process.
func (ep *EventPublisher) Enabled() bool {
	return ep.producer != nil
}

// PublishSaleRecorded publishes SaleRecorded event
func (ep *EventPublisher) PublishSaleRecorded(ctx context.Context, event *models.SaleRecordedEvent) error {
	if ep.producer == nil {
		return nil
	}
	key := fmt.Sprintf("sale-%s", event.SaleID)
	return ep.producer.PublishEvent(ctx, key, event)
}

// PublishLowStockAlert publishes LowStock event
func (ep *EventPublisher) PublishLowStockAlert(ctx context.Context, event *models.LowStockAlertEvent) error {
	if ep.producer == nil {
		return nil
	}
	key := fmt.Sprintf("stock-%s-%s", event.ProductID, event.DealerID)
	return ep.producer.PublishEvent(ctx, key, event)
}

// PublishDealerOverdue publishes DealerOverdue event
func (ep *EventPublisher) PublishDealerOverdue(ctx context.Context, event *models.DealerOverdueEvent) error {
	if ep.producer == nil {
		return nil
	}
	key := fmt.Sprintf("dealer-%s", event.DealerID)
	return ep.producer.PublishEvent(ctx, key, event)
}

// EventHandler routes incoming alert-topic messages to registered callbacks.
type EventHandler struct {
	onSaleRecorded  func(context.Context, *models.SaleRecordedEvent) error
	onLowStock      func(context.Context, *models.LowStockAlertEvent) error
	onDealerOverdue func(context.Context, *models.DealerOverdueEvent) error
}

// NewEventHandler creates a new event handler
func NewEventHandler() *EventHandler {
	return &EventHandler{}
}

// OnSaleRecorded registers a handler for SaleRecorded events
func (eh *EventHandler) OnSaleRecorded(handler func(context.Context, *models.SaleRecordedEvent) error) {
	eh.onSaleRecorded = handler
}

// OnLowStock registers a handler for LowStock events
func (eh *EventHandler) OnLowStock(handler func(context.Context, *models.LowStockAlertEvent) error) {
	eh.onLowStock = handler
}

// OnDealerOverdue registers a handler for DealerOverdue events
func (eh *EventHandler) OnDealerOverdue(handler func(context.Context, *models.DealerOverdueEvent) error) {
	eh.onDealerOverdue = handler
}

// HandleMessage routes messages to appropriate handlers
func (eh *EventHandler) HandleMessage(ctx context.Context, msg kafka.Message) error {
	var baseEvent models.BaseEvent
	if err := json.Unmarshal(msg.Value, &baseEvent); err != nil {
		return fmt.Errorf("failed to unmarshal base event: %w", err)
	}

	log.Printf("Handling event: type=%s, id=%s", baseEvent.EventType, baseEvent.EventID)

	switch baseEvent.EventType {
	case models.EventTypeSaleRecorded:
		if eh.onSaleRecorded != nil {
			var event models.SaleRecordedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				return fmt.Errorf("failed to unmarshal SaleRecorded event: %w", err)
			}
			return eh.onSaleRecorded(ctx, &event)
		}

	case models.EventTypeLowStock:
		if eh.onLowStock != nil {
			var event models.LowStockAlertEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				return fmt.Errorf("failed to unmarshal LowStock event: %w", err)
			}
			return eh.onLowStock(ctx, &event)
		}

	case models.EventTypeDealerOverdue:
		if eh.onDealerOverdue != nil {
			var event models.DealerOverdueEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				return fmt.Errorf("failed to unmarshal DealerOverdue event: %w", err)
			}
			return eh.onDealerOverdue(ctx, &event)
		}

	default:
		log.Printf("Unhandled event type: %s", baseEvent.EventType)
	}

	return nil
}
