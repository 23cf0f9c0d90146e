package queries

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"oms/internal/pkg/errs"
	"oms/internal/pkg/guard"
)

// AnalyticsDateLayout is the accepted format of range bounds.
const AnalyticsDateLayout = "2006-01-02"

var ErrGetOrderAnalyticsQueryIsNotConstructed = errors.New(
	"GetOrderAnalyticsQuery must be created via NewGetOrderAnalyticsQuery constructor",
)

// GetOrderAnalyticsQuery asks for statistics over the orders placed in [From, To].
// Either bound may be open.
//
// Example:
//
//	query, err := NewGetOrderAnalyticsQueryFromStrings("2025-05-01", "2025-05-31")
//	if err != nil {
//	    return err
//	}
//	report, err := handler.Handle(ctx, query)
type GetOrderAnalyticsQuery struct {
	from *time.Time
	to   *time.Time

	guard guard.ConstructorGuard
}

// NewGetOrderAnalyticsQuery builds a query from explicit bounds. Both are normalised to UTC.
func NewGetOrderAnalyticsQuery(from, to *time.Time) (GetOrderAnalyticsQuery, error) {
	q := GetOrderAnalyticsQuery{guard: guard.NewConstructorGuard()}

	if from != nil {
		t := from.UTC()
		q.from = &t
	}
	if to != nil {
		t := to.UTC()
		q.to = &t
	}
	if q.from != nil && q.to != nil && q.from.After(*q.to) {
		return GetOrderAnalyticsQuery{}, errs.NewValueIsInvalidErrorWithCause("date range",
			fmt.Errorf("start %s is after end %s", q.from.Format(time.RFC3339), q.to.Format(time.RFC3339)))
	}

	return q, nil
}

// NewGetOrderAnalyticsQueryFromStrings parses YYYY-MM-DD bounds. Empty strings leave a bound open.
// The end date is inclusive: it covers the whole day.
func NewGetOrderAnalyticsQueryFromStrings(startDate, endDate string) (GetOrderAnalyticsQuery, error) {
	from, fromErr := parseDate("start date", startDate)
	to, toErr := parseDate("end date", endDate)
	if err := errors.Join(fromErr, toErr); err != nil {
		return GetOrderAnalyticsQuery{}, err
	}

	if to != nil {
		endOfDay := to.Add(24*time.Hour - time.Nanosecond)
		to = &endOfDay
	}

	return NewGetOrderAnalyticsQuery(from, to)
}

func (q GetOrderAnalyticsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderAnalyticsQueryIsNotConstructed)
}

func (q GetOrderAnalyticsQuery) From() *time.Time {
	return q.from
}

func (q GetOrderAnalyticsQuery) To() *time.Time {
	return q.to
}

func parseDate(paramName, value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil //nolint:nilnil // an empty bound is open
	}

	t, err := time.ParseInLocation(AnalyticsDateLayout, value, time.UTC)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return &t, nil
}
