package store

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivo0509/Glitchy-Game-Emporium/metrics"
)

func TestCheckoutMetrics(t *testing.T) {
	reg := metrics.NewRegistry()
	s := newTestStore(t, DefaultConfig(), WithMetrics(reg))

	addGame(t, s, "tg", "Ten Bucks", 10.00, 5)
	require.NoError(t, s.AddToCart("customer2", "tg"))
	_, err := s.Checkout("customer2")
	require.NoError(t, err)

	assert.InDelta(t, 1, testutil.ToFloat64(reg.CheckoutsCommitted), 1e-9)
	assert.InDelta(t, 10.00, testutil.ToFloat64(reg.Revenue), 1e-9)
	assert.InDelta(t, 2.00, testutil.ToFloat64(reg.TaxCollected), 1e-9)

	_, err = s.Checkout("customer2") // cart now empty
	require.Error(t, err)
	assert.InDelta(t, 1, testutil.ToFloat64(reg.CheckoutsRejected), 1e-9)
}

func TestRefundAndGiftMetrics(t *testing.T) {
	reg := metrics.NewRegistry()
	s := newTestStore(t, DefaultConfig(), WithMetrics(reg))

	addGame(t, s, "tg", "Ten Bucks", 10.00, 5)
	require.NoError(t, s.AddToCart("customer2", "tg"))
	_, err := s.Checkout("customer2")
	require.NoError(t, err)
	_, err = s.CancelPurchase("customer2", "tg")
	require.NoError(t, err)
	assert.InDelta(t, 1, testutil.ToFloat64(reg.Refunds), 1e-9)

	_, err = s.GiftGame("customer2", "customer1", "game1", "enjoy")
	require.NoError(t, err)
	assert.InDelta(t, 1, testutil.ToFloat64(reg.GiftsSent), 1e-9)
}
