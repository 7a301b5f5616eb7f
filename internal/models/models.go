package models

import "time"

// Product is a catalog entry. QRPayload holds the QR-encodable JSON blob
// synthesized at creation time; Barcode is derived from the id.
type Product struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DiscountPercent float64 `json:"discountPercent"`
	CostPerPiece    float64 `json:"costPerPiece"`
	Color           string  `json:"color"`
	Quality         string  `json:"quality"`
	ImageURL        string  `json:"imageUrl"`
	QRPayload       string  `json:"qrCode"`
	Barcode         string  `json:"barcode"`
}

// Customer holds contact details and an append-only purchase history of sale ids.
type Customer struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Mobile          string   `json:"mobile"`
	Location        string   `json:"location"`
	PurchaseHistory []string `json:"purchaseHistory"`
}

// Geolocation is the lat/lng captured by the salesperson's device at sale time.
type Geolocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Sale is an immutable ledger entry. Never updated or deleted once recorded.
type Sale struct {
	ID              string      `json:"id"`
	SalespersonID   string      `json:"salespersonId"`
	ProductID       string      `json:"productId"`
	CustomerID      string      `json:"customerId"`
	DiscountApplied float64     `json:"discountApplied"`
	Amount          float64     `json:"amount"`
	Geolocation     Geolocation `json:"geolocation"`
	Timestamp       time.Time   `json:"timestamp"`
}

// Dealer payment statuses
const (
	PaymentStatusPaid    = "paid"
	PaymentStatusPending = "pending"
	PaymentStatusOverdue = "overdue"
)

// StatusTransition records a dealer payment-status change made by the
// overdue evaluation step.
type StatusTransition struct {
	From   string    `json:"from"`
	To     string    `json:"to"`
	Reason string    `json:"reason"`
	At     time.Time `json:"at"`
}

// Dealer is a regional reseller holding consigned stock per product.
type Dealer struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Area          string             `json:"area"`
	StockLevels   map[string]int     `json:"stockLevels"`
	PaymentStatus string             `json:"paymentStatus"`
	LastOrderDate time.Time          `json:"lastOrderDate"`
	StatusHistory []StatusTransition `json:"statusHistory,omitempty"`
}

// GlobalDealerID keys the global (undealered) inventory pool.
const GlobalDealerID = ""

// InventoryEntry is a quantity counter keyed by (product, dealer-or-global).
type InventoryEntry struct {
	ProductID string `json:"productId"`
	DealerID  string `json:"dealerId"`
	Quantity  int    `json:"quantity"`
}

// Inventory actions
const (
	InventoryActionAdd    = "add"
	InventoryActionRemove = "remove"
)

// User roles
const (
	RoleAdmin       = "admin"
	RoleDealer      = "dealer"
	RoleSalesperson = "salesperson"
)

// User is an application login. Passwords are plain-text demo credentials;
// real credential handling is out of scope.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
	Role     string `json:"role"`
}

// AccountingReport is the aggregation over the sale ledger. Field names match
// what the reporting UI consumes.
type AccountingReport struct {
	TotalRevenue             float64            `json:"totalRevenue"`
	TotalCosts               float64            `json:"totalCosts"`
	TotalProfits             float64            `json:"totalProfits"`
	CollectionsBySalesperson map[string]float64 `json:"collectionsBySalesperson"`
	ProfitsByProduct         map[string]float64 `json:"profitsByProduct"`
}
