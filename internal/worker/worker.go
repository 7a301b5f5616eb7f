package worker

import (
	"context"
	"fmt"
	"log"

	"vastratrota-backend/internal/broker"
	"vastratrota-backend/internal/models"
	"vastratrota-backend/internal/service"
)

// NotifyWorker consumes alert-topic events and dispatches the customer SMS
// and admin alerts. Runs only when a Kafka broker is configured; without one
// the services notify in-process instead.
type NotifyWorker struct {
	consumer     *broker.Consumer
	eventHandler *broker.EventHandler
	notifier     *service.Notifier
}

// NewNotifyWorker creates a new notification worker
func NewNotifyWorker(consumer *broker.Consumer, notifier *service.Notifier) *NotifyWorker {
	w := &NotifyWorker{
		consumer:     consumer,
		eventHandler: broker.NewEventHandler(),
		notifier:     notifier,
	}

	w.eventHandler.OnSaleRecorded(w.handleSaleRecorded)
	w.eventHandler.OnLowStock(w.handleLowStock)
	w.eventHandler.OnDealerOverdue(w.handleDealerOverdue)

	return w
}

// Start starts the worker
func (w *NotifyWorker) Start(ctx context.Context) error {
	log.Println("Starting notification worker...")
	return w.consumer.StartConsuming(ctx, w.eventHandler.HandleMessage)
}

// Stop stops the worker
func (w *NotifyWorker) Stop() error {
	log.Println("Stopping notification worker...")
	return w.consumer.Close()
}

func (w *NotifyWorker) handleSaleRecorded(_ context.Context, event *models.SaleRecordedEvent) error {
	w.notifier.SendSMS(event.CustomerMobile,
		fmt.Sprintf("Thank you for your purchase! Product: %s, Discounted Price: ₹%.2f",
			event.ProductName, event.Amount))
	return nil
}

func (w *NotifyWorker) handleLowStock(_ context.Context, event *models.LowStockAlertEvent) error {
	w.notifier.SendAlert(fmt.Sprintf("Low stock alert: %s (%d left)",
		event.ProductName, event.Quantity))
	return nil
}

func (w *NotifyWorker) handleDealerOverdue(_ context.Context, event *models.DealerOverdueEvent) error {
	w.notifier.SendAlert(fmt.Sprintf("Overdue dealer: %s (%s), last order %d days ago",
		event.DealerName, event.Area, event.DaysSince))
	return nil
}
