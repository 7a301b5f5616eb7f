package service

import (
	"context"
	"testing"
	"time"

	"vastratrota-backend/internal/broker"
	"vastratrota-backend/internal/models"
	"vastratrota-backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDealerService(s *store.Store) *DealerService {
	return NewDealerService(s, broker.NewEventPublisher(nil), NewNotifier(), 7*24*time.Hour)
}

func TestListDealersMarksOverdue(t *testing.T) {
	s := store.NewStore()
	svc := newTestDealerService(s)

	stale := svc.CreateDealer(context.Background(), &models.Dealer{
		Name:        "Stale",
		Area:        "Mumbai",
		StockLevels: map[string]int{"p1": 50},
	})
	_, err := s.UpdateDealer(stale.ID, &models.Dealer{LastOrderDate: time.Now().Add(-8 * 24 * time.Hour)})
	require.NoError(t, err)

	fresh := svc.CreateDealer(context.Background(), &models.Dealer{
		Name:        "Fresh",
		Area:        "Delhi",
		StockLevels: map[string]int{"p1": 50},
	})

	dealers := svc.ListDealers(context.Background())
	require.Len(t, dealers, 2)

	byID := map[string]models.Dealer{}
	for _, d := range dealers {
		byID[d.ID] = d
	}

	assert.Equal(t, models.PaymentStatusOverdue, byID[stale.ID].PaymentStatus)
	require.Len(t, byID[stale.ID].StatusHistory, 1)
	assert.Equal(t, models.PaymentStatusPending, byID[stale.ID].StatusHistory[0].From)

	assert.Equal(t, models.PaymentStatusPending, byID[fresh.ID].PaymentStatus)
	assert.Empty(t, byID[fresh.ID].StatusHistory)
}

func TestEmptyStockDealerIsNeverOverdue(t *testing.T) {
	s := store.NewStore()
	svc := newTestDealerService(s)

	dealer := svc.CreateDealer(context.Background(), &models.Dealer{
		Name:        "NoStock",
		Area:        "Pune",
		StockLevels: map[string]int{"p1": 0},
	})
	_, err := s.UpdateDealer(dealer.ID, &models.Dealer{LastOrderDate: time.Now().Add(-30 * 24 * time.Hour)})
	require.NoError(t, err)

	dealers := svc.ListDealers(context.Background())
	require.Len(t, dealers, 1)
	assert.Equal(t, models.PaymentStatusPending, dealers[0].PaymentStatus,
		"an old last order without stock on hand must not flag the dealer")
}

func TestOverdueEvaluationIsIdempotent(t *testing.T) {
	s := store.NewStore()
	svc := newTestDealerService(s)

	dealer := svc.CreateDealer(context.Background(), &models.Dealer{
		Name:        "Stale",
		Area:        "Mumbai",
		StockLevels: map[string]int{"p1": 1},
	})
	_, err := s.UpdateDealer(dealer.ID, &models.Dealer{LastOrderDate: time.Now().Add(-10 * 24 * time.Hour)})
	require.NoError(t, err)

	svc.ListDealers(context.Background())
	dealers := svc.ListDealers(context.Background())
	require.Len(t, dealers, 1)
	assert.Len(t, dealers[0].StatusHistory, 1, "re-evaluation must not append another transition")
}

func TestDealerCRUD(t *testing.T) {
	s := store.NewStore()
	svc := newTestDealerService(s)
	ctx := context.Background()

	dealer := svc.CreateDealer(ctx, &models.Dealer{Name: "Dealer1", Area: "Mumbai"})
	require.NotEmpty(t, dealer.ID)

	got, err := svc.GetDealer(ctx, dealer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dealer1", got.Name)

	updated, err := svc.UpdateDealer(ctx, dealer.ID, &models.Dealer{Area: "Nagpur"})
	require.NoError(t, err)
	assert.Equal(t, "Nagpur", updated.Area)
	assert.Equal(t, "Dealer1", updated.Name)

	require.NoError(t, svc.DeleteDealer(ctx, dealer.ID))
	_, err = svc.GetDealer(ctx, dealer.ID)
	assert.ErrorIs(t, err, store.ErrDealerNotFound)
}
