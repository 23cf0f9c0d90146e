package metrics

import (
	"testing"
	"time"

	"oms/internal/core/domain/model/customer"
	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/order"
	"oms/internal/core/domain/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSequence int64

func (s fixedSequence) Current() int64 {
	return int64(s)
}

func TestOrderCreated_CountsAndObservesDiscount(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewOrderMetricsWithRegisterer(reg)

	m.OrderCreated(decimal.RequireFromString("0.10"))
	m.OrderCreated(decimal.RequireFromString("0.25"))
	m.OrderCreated(decimal.Zero)

	assert.InDelta(t, 3, testutil.ToFloat64(m.ordersCreated), 0)

	histogram := gatherOne(t, reg, "oms_order_discount_rate").GetHistogram()
	require.NotNil(t, histogram)
	assert.Equal(t, uint64(3), histogram.GetSampleCount())
	assert.InDelta(t, 0.35, histogram.GetSampleSum(), 1e-9)
}

func TestStatusChanged_LabelsByTarget(t *testing.T) {
	m := NewOrderMetricsWithRegisterer(prometheus.NewRegistry())

	m.StatusChanged(order.Processing)
	m.StatusChanged(order.Processing)
	m.StatusChanged(order.Cancelled)

	assert.InDelta(t, 2, testutil.ToFloat64(m.statusTransitions.WithLabelValues("Processing")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.statusTransitions.WithLabelValues("Cancelled")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(m.statusTransitions.WithLabelValues("Delivered")), 0)
}

func TestAggregatesCommitted_CountsByType(t *testing.T) {
	m := NewOrderMetricsWithRegisterer(prometheus.NewRegistry())
	now := time.Date(2025, 5, 21, 12, 0, 0, 0, time.UTC)
	buyer, err := customer.NewCustomer(kernel.NewUUID(), "Ada", "Lovelace", "ada@example.com", "", customer.Gold, now)
	require.NoError(t, err)
	item, err := order.NewLineItem(kernel.NewUUID(), "Lamp", decimal.NewFromInt(30), 1)
	require.NoError(t, err)
	placed, err := order.NewOrder(kernel.NewUUID(), buyer.ID(), []order.LineItem{item}, now)
	require.NoError(t, err)

	m.AggregatesCommitted([]any{buyer, placed})
	m.AggregatesCommitted([]any{placed})
	m.AggregatesCommitted(nil)

	assert.InDelta(t, 2, testutil.ToFloat64(m.committedAggregates.WithLabelValues("order")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.committedAggregates.WithLabelValues("customer")), 0)
}

func TestReportComputed_SetsGauges(t *testing.T) {
	m := NewOrderMetricsWithRegisterer(prometheus.NewRegistry())

	m.ReportComputed(services.AnalyticsReport{
		AverageOrderValue:      decimal.RequireFromString("152.75"),
		AverageFulfillmentTime: 36 * time.Hour,
		DeliveredOrders:        4,
	})

	assert.InDelta(t, 152.75, testutil.ToFloat64(m.averageOrderValue), 1e-9)
	assert.InDelta(t, 36*60*60, testutil.ToFloat64(m.averageFulfillmentTime), 0)
	assert.InDelta(t, 4, testutil.ToFloat64(m.deliveredOrders), 0)

	m.ReportComputed(services.AnalyticsReport{AverageOrderValue: decimal.Zero})

	assert.InDelta(t, 0, testutil.ToFloat64(m.deliveredOrders), 0)
}

func TestTrackSequence_ReadsSourceAtScrape(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewOrderMetricsWithRegisterer(reg)

	require.NoError(t, m.TrackSequence(fixedSequence(42)))

	gauge := gatherOne(t, reg, "oms_tracking_sequence").GetGauge()
	require.NotNil(t, gauge)
	assert.InDelta(t, 42, gauge.GetValue(), 0)

	assert.Error(t, m.TrackSequence(fixedSequence(1)), "a second gauge under the same name must be rejected")
}

func TestNewOrderMetrics_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := NewOrderMetricsWithRegisterer(reg)
	second := NewOrderMetricsWithRegisterer(reg)

	first.OrderCreated(decimal.Zero)
	second.OrderCreated(decimal.Zero)

	assert.Same(t, first.statusTransitions, second.statusTransitions)
	assert.InDelta(t, 2, testutil.ToFloat64(second.ordersCreated), 0)
}

func TestNewOrderMetrics_PanicsOnConflictingCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{
		Name: "oms_order_status_transitions_total",
		Help: "Total number of order status transitions by target status",
	}))

	assert.Panics(t, func() { NewOrderMetricsWithRegisterer(reg) })
}

func gatherOne(t *testing.T, reg *prometheus.Registry, name string) *dto.Metric {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() == name {
			require.Len(t, family.GetMetric(), 1)
			return family.GetMetric()[0]
		}
	}
	t.Fatalf("metric %q not gathered", name)
	return nil
}
