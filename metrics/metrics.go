package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry collects storefront counters on a private Prometheus registry.
// Nothing exposes it over HTTP; callers can Gather() it directly.
type Registry struct {
	reg *prometheus.Registry

	CheckoutsCommitted prometheus.Counter
	CheckoutsRejected  prometheus.Counter
	Revenue            prometheus.Counter
	TaxCollected       prometheus.Counter
	Refunds            prometheus.Counter
	StockUnitsReceived prometheus.Counter
	GiftsSent          prometheus.Counter
	TradesAccepted     prometheus.Counter
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	committed := prometheus.NewCounter(prometheus.CounterOpts{Name: "emporium_checkouts_committed_total"})
	rejected := prometheus.NewCounter(prometheus.CounterOpts{Name: "emporium_checkouts_rejected_total"})
	revenue := prometheus.NewCounter(prometheus.CounterOpts{Name: "emporium_revenue_total"})
	tax := prometheus.NewCounter(prometheus.CounterOpts{Name: "emporium_tax_collected_total"})
	refunds := prometheus.NewCounter(prometheus.CounterOpts{Name: "emporium_refunds_total"})
	stockUnits := prometheus.NewCounter(prometheus.CounterOpts{Name: "emporium_stock_units_received_total"})
	gifts := prometheus.NewCounter(prometheus.CounterOpts{Name: "emporium_gifts_sent_total"})
	trades := prometheus.NewCounter(prometheus.CounterOpts{Name: "emporium_trades_accepted_total"})

	r.MustRegister(committed, rejected, revenue, tax, refunds, stockUnits, gifts, trades)
	return &Registry{
		reg:                r,
		CheckoutsCommitted: committed,
		CheckoutsRejected:  rejected,
		Revenue:            revenue,
		TaxCollected:       tax,
		Refunds:            refunds,
		StockUnitsReceived: stockUnits,
		GiftsSent:          gifts,
		TradesAccepted:     trades,
	}
}

// Gatherer returns the underlying registry for inspection or exposition.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }
