package store

import (
	"errors"
	"sync"

	"vastratrota-backend/internal/models"

	"github.com/google/uuid"
)

// Lookup and business-rule failures surfaced to callers. The API layer maps
// these to HTTP statuses.
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrDealerNotFound    = errors.New("dealer not found")
	ErrInventoryNotFound = errors.New("inventory item not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrUserNotFound      = errors.New("user not found")
)

type inventoryKey struct {
	productID string
	dealerID  string
}

// Store owns all process-resident state. Every compound mutation runs under
// the write lock, so check-then-act sequences such as stock decrements and
// sale recording are atomic with respect to concurrent requests.
//
// State is volatile: a restart resets everything.
type Store struct {
	mu sync.RWMutex

	products     map[string]*models.Product
	productOrder []string

	customers map[string]*models.Customer

	dealers     map[string]*models.Dealer
	dealerOrder []string

	inventory      map[inventoryKey]*models.InventoryEntry
	inventoryOrder []inventoryKey

	sales      []*models.Sale
	lastSaleID int64

	users map[string]*models.User
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		products:  make(map[string]*models.Product),
		customers: make(map[string]*models.Customer),
		dealers:   make(map[string]*models.Dealer),
		inventory: make(map[inventoryKey]*models.InventoryEntry),
		users:     make(map[string]*models.User),
	}
}

// CreateProduct stores the product, assigning a fresh id unless the caller
// already derived one (the catalog service bakes the id into the QR payload
// before inserting).
func (s *Store) CreateProduct(product *models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	s.products[product.ID] = product
	s.productOrder = append(s.productOrder, product.ID)
}

// GetProduct retrieves a product by id.
func (s *Store) GetProduct(id string) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	cp := *product
	return &cp, nil
}

// GetProducts returns all products in creation order.
func (s *Store) GetProducts() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]models.Product, 0, len(s.productOrder))
	for _, id := range s.productOrder {
		products = append(products, *s.products[id])
	}
	return products
}

// UpdateProduct applies non-zero fields from updates to an existing product.
// The id, QR payload and barcode are never touched by updates.
func (s *Store) UpdateProduct(id string, updates *models.Product) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}

	if updates.Name != "" {
		product.Name = updates.Name
	}
	if updates.Price != 0 {
		product.Price = updates.Price
	}
	if updates.DiscountPercent != 0 {
		product.DiscountPercent = updates.DiscountPercent
	}
	if updates.CostPerPiece != 0 {
		product.CostPerPiece = updates.CostPerPiece
	}
	if updates.Color != "" {
		product.Color = updates.Color
	}
	if updates.Quality != "" {
		product.Quality = updates.Quality
	}
	if updates.ImageURL != "" {
		product.ImageURL = updates.ImageURL
	}

	cp := *product
	return &cp, nil
}

// DeleteProduct removes a product from the catalog. Sales and inventory
// entries referencing it are left in place.
func (s *Store) DeleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return ErrProductNotFound
	}
	delete(s.products, id)
	for i, pid := range s.productOrder {
		if pid == id {
			s.productOrder = append(s.productOrder[:i], s.productOrder[i+1:]...)
			break
		}
	}
	return nil
}

// CreateCustomer assigns a fresh id and stores the customer.
func (s *Store) CreateCustomer(customer *models.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer.ID = uuid.New().String()
	if customer.PurchaseHistory == nil {
		customer.PurchaseHistory = []string{}
	}
	s.customers[customer.ID] = customer
}

// GetCustomer retrieves a customer by id.
func (s *Store) GetCustomer(id string) (*models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	customer, ok := s.customers[id]
	if !ok {
		return nil, ErrCustomerNotFound
	}
	cp := *customer
	cp.PurchaseHistory = append([]string(nil), customer.PurchaseHistory...)
	return &cp, nil
}

// CreateUser stores a login.
func (s *Store) CreateUser(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	s.users[user.Username] = user
}

// GetUserByCredentials matches a username/password pair.
func (s *Store) GetUserByCredentials(username, password string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[username]
	if !ok || user.Password != password {
		return nil, ErrUserNotFound
	}
	cp := *user
	return &cp, nil
}
