package jobs

import (
	"context"
	"log/slog"
	"time"

	"oms/internal/core/application/usecases/queries"
	"oms/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// AnalyticsReporter computes the analytics report of a date range.
type AnalyticsReporter interface {
	Handle(ctx context.Context, query queries.GetOrderAnalyticsQuery) (services.AnalyticsReport, error)
}

// AnalyticsReportJob periodically aggregates the orders placed within a trailing
// window and logs the result. Metrics are updated by the query handler itself.
type AnalyticsReportJob struct {
	reporter AnalyticsReporter
	schedule string
	window   time.Duration
	now      services.Clock
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewAnalyticsReportJob creates the job. schedule is a six-field cron expression
// (seconds first); a non-positive window reports over every order.
func NewAnalyticsReportJob(
	reporter AnalyticsReporter,
	schedule string,
	window time.Duration,
	now services.Clock,
	logger *slog.Logger,
) *AnalyticsReportJob {
	if now == nil {
		now = time.Now
	}
	return &AnalyticsReportJob{
		reporter: reporter,
		schedule: schedule,
		window:   window,
		now:      now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "analytics_report_job"),
	}
}

// Start registers the job with its schedule and starts the scheduler.
// An invalid schedule is returned as an error and nothing is started.
func (j *AnalyticsReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, runErr := j.Run(ctx); runErr != nil {
			j.logger.ErrorContext(ctx, "Analytics report job failed", "error", runErr)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Analytics report job started",
		"schedule", j.schedule, "window", j.window.String())
	return nil
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *AnalyticsReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Analytics report job stopped")
}

// Run computes one report immediately.
func (j *AnalyticsReportJob) Run(ctx context.Context) (services.AnalyticsReport, error) {
	to := j.now().UTC()
	var from *time.Time
	if j.window > 0 {
		start := to.Add(-j.window)
		from = &start
	}

	query, err := queries.NewGetOrderAnalyticsQuery(from, &to)
	if err != nil {
		return services.AnalyticsReport{}, err
	}

	report, err := j.reporter.Handle(ctx, query)
	if err != nil {
		return services.AnalyticsReport{}, err
	}

	j.logger.InfoContext(ctx, "Analytics report computed",
		"average_order_value", report.AverageOrderValue.StringFixed(2),
		"average_fulfillment_time", report.AverageFulfillmentTime.String(),
		"delivered_orders", report.DeliveredOrders,
		"considered_orders", report.ConsideredOrders,
	)
	return report, nil
}
