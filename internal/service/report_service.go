package service

import (
	"context"

	"vastratrota-backend/internal/models"
	"vastratrota-backend/internal/store"
	"vastratrota-backend/internal/util"

	"github.com/shopspring/decimal"
)

// ReportService derives accounting rollups from the sale ledger
type ReportService struct {
	store *store.Store
}

// NewReportService creates a new report service
func NewReportService(store *store.Store) *ReportService {
	return &ReportService{store: store}
}

// Accounting folds the whole ledger into revenue, cost, profit and the
// per-salesperson / per-product rollups. Pure and idempotent: the same ledger
// always yields the same report. Sales referencing a deleted product
// contribute revenue but no cost, since the cost basis is gone.
func (s *ReportService) Accounting(ctx context.Context) *models.AccountingReport {
	_, span := util.StartSpan(ctx, "ReportService.Accounting")
	defer span.End()

	products := make(map[string]models.Product)
	for _, product := range s.store.GetProducts() {
		products[product.ID] = product
	}

	revenue := decimal.Zero
	costs := decimal.Zero
	bySalesperson := make(map[string]decimal.Decimal)
	byProduct := make(map[string]decimal.Decimal)

	for _, sale := range s.store.GetSales() {
		amount := decimal.NewFromFloat(sale.Amount)
		revenue = revenue.Add(amount)
		bySalesperson[sale.SalespersonID] = bySalesperson[sale.SalespersonID].Add(amount)

		if product, ok := products[sale.ProductID]; ok {
			cost := decimal.NewFromFloat(product.CostPerPiece)
			costs = costs.Add(cost)
			byProduct[sale.ProductID] = byProduct[sale.ProductID].Add(amount.Sub(cost))
		} else {
			byProduct[sale.ProductID] = byProduct[sale.ProductID].Add(amount)
		}
	}

	report := &models.AccountingReport{
		TotalRevenue:             toFloat(revenue),
		TotalCosts:               toFloat(costs),
		TotalProfits:             toFloat(revenue.Sub(costs)),
		CollectionsBySalesperson: make(map[string]float64, len(bySalesperson)),
		ProfitsByProduct:         make(map[string]float64, len(byProduct)),
	}
	for id, amount := range bySalesperson {
		report.CollectionsBySalesperson[id] = toFloat(amount)
	}
	for id, profit := range byProduct {
		report.ProfitsByProduct[id] = toFloat(profit)
	}
	return report
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
