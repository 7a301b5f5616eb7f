package models

import "time"

// Event types
const (
	EventTypeSaleRecorded  = "SALE_RECORDED"
	EventTypeLowStock      = "LOW_STOCK"
	EventTypeDealerOverdue = "DEALER_OVERDUE"
)

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

// SaleRecordedEvent published when a sale is committed to the ledger.
// Carries the customer contact so the notification worker can send the
// purchase SMS without a store lookup.
type SaleRecordedEvent struct {
	BaseEvent
	SaleID         string  `json:"sale_id"`
	SalespersonID  string  `json:"salesperson_id"`
	ProductID      string  `json:"product_id"`
	ProductName    string  `json:"product_name"`
	CustomerID     string  `json:"customer_id"`
	CustomerMobile string  `json:"customer_mobile"`
	Amount         float64 `json:"amount"`
}

// LowStockAlertEvent published when a post-mutation quantity drops below
// the configured threshold.
type LowStockAlertEvent struct {
	BaseEvent
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	DealerID    string `json:"dealer_id"`
	Quantity    int    `json:"quantity"`
	Threshold   int    `json:"threshold"`
}

// DealerOverdueEvent published when the evaluation step transitions a
// dealer to overdue.
type DealerOverdueEvent struct {
	BaseEvent
	DealerID   string `json:"dealer_id"`
	DealerName string `json:"dealer_name"`
	Area       string `json:"area"`
	DaysSince  int    `json:"days_since_last_order"`
}
