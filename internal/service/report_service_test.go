package service

import (
	"context"
	"testing"

	"vastratrota-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountingTotals(t *testing.T) {
	s, product, customer := newTestStore(100)
	saleSvc := newTestSaleService(s)
	reportSvc := NewReportService(s)
	ctx := context.Background()

	// two sales by sales1 at 10% (180 each), one by sales2 at full price (200)
	for _, tc := range []struct {
		salesperson string
		discount    float64
	}{
		{"sales1", 10},
		{"sales1", 10},
		{"sales2", 0},
	} {
		_, err := saleSvc.RecordSale(ctx, &RecordSaleRequest{
			SalespersonID: tc.salesperson,
			ProductID:     product.ID,
			CustomerID:    customer.ID,
			Discount:      tc.discount,
			Geolocation:   &models.Geolocation{},
		})
		require.NoError(t, err)
	}

	report := reportSvc.Accounting(ctx)

	assert.Equal(t, 560.0, report.TotalRevenue)
	assert.Equal(t, 150.0, report.TotalCosts, "three units at cost 50")
	assert.Equal(t, 410.0, report.TotalProfits)
	assert.Equal(t, 360.0, report.CollectionsBySalesperson["sales1"])
	assert.Equal(t, 200.0, report.CollectionsBySalesperson["sales2"])
	assert.Equal(t, 410.0, report.ProfitsByProduct[product.ID])
}

func TestAccountingIsIdempotent(t *testing.T) {
	s, product, customer := newTestStore(100)
	saleSvc := newTestSaleService(s)
	reportSvc := NewReportService(s)
	ctx := context.Background()

	_, err := saleSvc.RecordSale(ctx, &RecordSaleRequest{
		SalespersonID: "sales1",
		ProductID:     product.ID,
		CustomerID:    customer.ID,
		Discount:      10,
		Geolocation:   &models.Geolocation{},
	})
	require.NoError(t, err)

	first := reportSvc.Accounting(ctx)
	second := reportSvc.Accounting(ctx)
	assert.Equal(t, first, second)
}

func TestAccountingEmptyLedger(t *testing.T) {
	s, _, _ := newTestStore(100)
	report := NewReportService(s).Accounting(context.Background())

	assert.Zero(t, report.TotalRevenue)
	assert.Zero(t, report.TotalCosts)
	assert.Zero(t, report.TotalProfits)
	assert.Empty(t, report.CollectionsBySalesperson)
	assert.Empty(t, report.ProfitsByProduct)
}

func TestAccountingDeletedProductKeepsRevenue(t *testing.T) {
	s, product, customer := newTestStore(100)
	saleSvc := newTestSaleService(s)
	ctx := context.Background()

	_, err := saleSvc.RecordSale(ctx, &RecordSaleRequest{
		SalespersonID: "sales1",
		ProductID:     product.ID,
		CustomerID:    customer.ID,
		Discount:      10,
		Geolocation:   &models.Geolocation{},
	})
	require.NoError(t, err)
	require.NoError(t, s.DeleteProduct(product.ID))

	report := NewReportService(s).Accounting(ctx)
	assert.Equal(t, 180.0, report.TotalRevenue)
	assert.Zero(t, report.TotalCosts, "cost basis is gone with the product")
	assert.Equal(t, 180.0, report.TotalProfits)
}
