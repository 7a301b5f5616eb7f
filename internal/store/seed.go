package store

import (
	"time"

	"vastratrota-backend/internal/models"
)

// SeedDemoData loads the sample catalog, stock, dealer, customer and logins
// used by the demo deployment. Safe to skip in production via config.
func (s *Store) SeedDemoData() {
	product := &models.Product{
		Name:            "Kurti",
		Price:           200,
		DiscountPercent: 10,
		CostPerPiece:    50,
		Color:           "Red",
		Quality:         "High",
		ImageURL:        "/kurti.jpg",
	}
	s.CreateProduct(product)
	s.SetStock(product.ID, models.GlobalDealerID, 100)

	dealer := &models.Dealer{
		Name:          "Dealer1",
		Area:          "Mumbai",
		StockLevels:   map[string]int{product.ID: 50},
		PaymentStatus: models.PaymentStatusPaid,
		LastOrderDate: time.Now(),
	}
	s.CreateDealer(dealer)
	s.SetStock(product.ID, dealer.ID, 50)

	s.CreateCustomer(&models.Customer{
		Name:     "Asha",
		Mobile:   "+919000000001",
		Location: "Pune",
	})

	s.CreateUser(&models.User{ID: "1", Username: "admin", Password: "admin123", Role: models.RoleAdmin})
	s.CreateUser(&models.User{ID: "2", Username: "dealer1", Password: "dealer123", Role: models.RoleDealer})
	s.CreateUser(&models.User{ID: "3", Username: "sales1", Password: "sales123", Role: models.RoleSalesperson})
}
