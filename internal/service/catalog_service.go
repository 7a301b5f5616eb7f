package service

import (
	"context"
	"encoding/json"
	"fmt"

	"vastratrota-backend/internal/models"
	"vastratrota-backend/internal/store"
	"vastratrota-backend/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CatalogService owns product CRUD and QR/barcode synthesis
type CatalogService struct {
	store  *store.Store
	logger *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(store *store.Store) *CatalogService {
	return &CatalogService{
		store:  store,
		logger: util.GetLogger(),
	}
}

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Name            string  `json:"name" binding:"required"`
	Price           float64 `json:"price" binding:"required,gt=0"`
	DiscountPercent float64 `json:"discountPercent" binding:"gte=0,lte=100"`
	CostPerPiece    float64 `json:"costPerPiece" binding:"gte=0"`
	Color           string  `json:"color"`
	Quality         string  `json:"quality"`
	ImageURL        string  `json:"imageUrl"`
}

// qrPayload is the JSON blob the scanner app decodes from a product QR code.
type qrPayload struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Discount float64 `json:"discount"`
	Color    string  `json:"color"`
	Quality  string  `json:"quality"`
	ImageURL string  `json:"imageUrl"`
}

// CreateProduct stores a new product, synthesizing its QR payload and barcode
// and opening an empty global inventory pool for it.
func (s *CatalogService) CreateProduct(ctx context.Context, req *CreateProductRequest) (*models.Product, error) {
	_, span := util.StartSpan(ctx, "CatalogService.CreateProduct")
	defer span.End()

	product := &models.Product{
		ID:              uuid.New().String(),
		Name:            req.Name,
		Price:           req.Price,
		DiscountPercent: req.DiscountPercent,
		CostPerPiece:    req.CostPerPiece,
		Color:           req.Color,
		Quality:         req.Quality,
		ImageURL:        req.ImageURL,
	}

	payload, err := json.Marshal(qrPayload{
		ID:       product.ID,
		Name:     product.Name,
		Price:    product.Price,
		Discount: product.DiscountPercent,
		Color:    product.Color,
		Quality:  product.Quality,
		ImageURL: product.ImageURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build qr payload: %w", err)
	}
	product.QRPayload = string(payload)
	product.Barcode = fmt.Sprintf("BAR%s", product.ID)

	s.store.CreateProduct(product)
	s.store.SetStock(product.ID, models.GlobalDealerID, 0)

	util.ProductsCreatedTotal.Inc()
	s.logger.Info("Product created",
		zap.String("product_id", product.ID),
		zap.String("name", product.Name))

	return product, nil
}

// ListProducts returns all catalog entries.
func (s *CatalogService) ListProducts(ctx context.Context) []models.Product {
	_, span := util.StartSpan(ctx, "CatalogService.ListProducts")
	defer span.End()

	return s.store.GetProducts()
}

// UpdateProduct applies partial updates to a product.
func (s *CatalogService) UpdateProduct(ctx context.Context, id string, updates *models.Product) (*models.Product, error) {
	_, span := util.StartSpan(ctx, "CatalogService.UpdateProduct")
	defer span.End()

	return s.store.UpdateProduct(id, updates)
}

// DeleteProduct removes a product from the catalog. Historical sales and
// inventory entries keep their (now dangling) product references.
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	_, span := util.StartSpan(ctx, "CatalogService.DeleteProduct")
	defer span.End()

	return s.store.DeleteProduct(id)
}
