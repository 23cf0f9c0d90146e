// Package metrics exposes Prometheus collectors for order processing.
package metrics

import (
	"errors"
	"fmt"

	"oms/internal/core/domain/model/customer"
	"oms/internal/core/domain/model/order"
	"oms/internal/core/domain/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

// OrderMetrics records order creation, lifecycle moves, committed writes and the
// latest analytics report. It satisfies the recorder interfaces of the command and
// query handlers and observes unit of work commits.
type OrderMetrics struct {
	ordersCreated       prometheus.Counter
	statusTransitions   *prometheus.CounterVec
	discountRate        prometheus.Histogram
	committedAggregates *prometheus.CounterVec

	averageOrderValue      prometheus.Gauge
	averageFulfillmentTime prometheus.Gauge
	deliveredOrders        prometheus.Gauge

	registerer prometheus.Registerer
}

// SequenceSource reports the last tracking sequence handed out.
type SequenceSource interface {
	Current() int64
}

// NewOrderMetrics registers the collectors with the default registerer.
func NewOrderMetrics() *OrderMetrics {
	return NewOrderMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewOrderMetricsWithRegisterer registers the collectors with registerer. Registering
// twice on the same registerer reuses the existing collectors.
func NewOrderMetricsWithRegisterer(registerer prometheus.Registerer) *OrderMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &OrderMetrics{
		ordersCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "oms_orders_created_total",
			Help: "Total number of orders created",
		}),
		statusTransitions: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "oms_order_status_transitions_total",
			Help: "Total number of order status transitions by target status",
		}, []string{"status"}),
		discountRate: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "oms_order_discount_rate",
			Help:    "Discount rate applied to new orders",
			Buckets: []float64{0, 0.05, 0.10, 0.15, 0.20, 0.25},
		}),
		committedAggregates: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "oms_committed_aggregates_total",
			Help: "Total number of aggregate writes made permanent by a commit, by aggregate type",
		}, []string{"aggregate"}),
		averageOrderValue: registerGauge(registerer, prometheus.GaugeOpts{
			Name: "oms_analytics_average_order_value",
			Help: "Average discounted amount of delivered orders in the last analytics report",
		}),
		averageFulfillmentTime: registerGauge(registerer, prometheus.GaugeOpts{
			Name: "oms_analytics_average_fulfillment_seconds",
			Help: "Average fulfillment time of delivered orders in the last analytics report",
		}),
		deliveredOrders: registerGauge(registerer, prometheus.GaugeOpts{
			Name: "oms_analytics_delivered_orders",
			Help: "Number of delivered orders in the last analytics report",
		}),
		registerer: registerer,
	}
}

// TrackSequence exports the allocator position as a gauge read at scrape time.
func (m *OrderMetrics) TrackSequence(source SequenceSource) error {
	gauge := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "oms_tracking_sequence",
		Help: "Last tracking number sequence allocated",
	}, func() float64 {
		return float64(source.Current())
	})

	if err := m.registerer.Register(gauge); err != nil {
		return fmt.Errorf("register tracking sequence gauge: %w", err)
	}
	return nil
}

// OrderCreated counts a new order and observes the discount it received.
func (m *OrderMetrics) OrderCreated(rate decimal.Decimal) {
	m.ordersCreated.Inc()
	m.discountRate.Observe(rate.InexactFloat64())
}

// StatusChanged counts a lifecycle move into status.
func (m *OrderMetrics) StatusChanged(status order.Status) {
	m.statusTransitions.WithLabelValues(status.String()).Inc()
}

// AggregatesCommitted counts the aggregates written by one committed transaction.
func (m *OrderMetrics) AggregatesCommitted(aggregates []any) {
	for _, aggregate := range aggregates {
		switch aggregate.(type) {
		case *order.Order:
			m.committedAggregates.WithLabelValues("order").Inc()
		case *customer.Customer:
			m.committedAggregates.WithLabelValues("customer").Inc()
		default:
			m.committedAggregates.WithLabelValues("other").Inc()
		}
	}
}

// ReportComputed publishes the figures of the latest analytics report.
func (m *OrderMetrics) ReportComputed(report services.AnalyticsReport) {
	m.averageOrderValue.Set(report.AverageOrderValue.InexactFloat64())
	m.averageFulfillmentTime.Set(report.AverageFulfillmentTime.Seconds())
	m.deliveredOrders.Set(float64(report.DeliveredOrders))
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		return existing[prometheus.Counter](err, opts.Name)
	}
	return collector
}

func registerCounterVec(
	registerer prometheus.Registerer,
	opts prometheus.CounterOpts,
	labels []string,
) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		return existing[*prometheus.CounterVec](err, opts.Name)
	}
	return collector
}

func registerGauge(registerer prometheus.Registerer, opts prometheus.GaugeOpts) prometheus.Gauge {
	collector := prometheus.NewGauge(opts)
	if err := registerer.Register(collector); err != nil {
		return existing[prometheus.Gauge](err, opts.Name)
	}
	return collector
}

func registerHistogram(registerer prometheus.Registerer, opts prometheus.HistogramOpts) prometheus.Histogram {
	collector := prometheus.NewHistogram(opts)
	if err := registerer.Register(collector); err != nil {
		return existing[prometheus.Histogram](err, opts.Name)
	}
	return collector
}

// existing returns the collector already registered under name. Any other
// registration failure is a programming error.
func existing[T prometheus.Collector](err error, name string) T {
	var alreadyRegistered prometheus.AlreadyRegisteredError
	if !errors.As(err, &alreadyRegistered) {
		panic(fmt.Sprintf("register collector %q: %v", name, err))
	}

	collector, ok := alreadyRegistered.ExistingCollector.(T)
	if !ok {
		panic(fmt.Sprintf("collector %q already registered with unexpected type", name))
	}
	return collector
}
