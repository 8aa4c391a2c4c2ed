package queries

import (
	"context"
	"time"

	"festivo/internal/pkg/errs"
)

// Valid granularities for revenue-by-period reports.
const (
	GranularityDay   = "day"
	GranularityMonth = "month"
	GranularityYear  = "year"
)

type RevenueQueries interface {
	Total(ctx context.Context, startDate, endDate *string) (*TotalRevenue, error)
	ByMethod(ctx context.Context) ([]MethodRevenue, error)
	ByPeriod(ctx context.Context, granularity string) ([]PeriodRevenue, error)
	PaidReservations(ctx context.Context) ([]PaidReservationItem, error)
}

type RevenueRepo interface {
	TotalRevenue(ctx context.Context, r DateRange) (*TotalRevenue, error)
	ByMethod(ctx context.Context) ([]MethodRevenue, error)
	ByPeriod(ctx context.Context, granularity string) ([]PeriodRevenue, error)
	PaidReservations(ctx context.Context) ([]PaidReservationItem, error)
}

type revenueQueriesImpl struct {
	repo RevenueRepo
}

func NewRevenueQueries(repo RevenueRepo) RevenueQueries {
	return &revenueQueriesImpl{repo: repo}
}

// Total aggregates paid revenue, bounded by an optional inclusive ISO date
// range. Bad date input is a field validation error, not a server fault.
func (q *revenueQueriesImpl) Total(ctx context.Context, startDate, endDate *string) (*TotalRevenue, error) {
	r, err := parseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return q.repo.TotalRevenue(ctx, r)
}

func (q *revenueQueriesImpl) ByMethod(ctx context.Context) ([]MethodRevenue, error) {
	return q.repo.ByMethod(ctx)
}

func (q *revenueQueriesImpl) ByPeriod(ctx context.Context, granularity string) ([]PeriodRevenue, error) {
	switch granularity {
	case GranularityDay, GranularityMonth, GranularityYear:
	case "":
		granularity = GranularityMonth
	default:
		fe := errs.FieldErrors{}
		fe.Add("granularity", "must be one of day, month, year")
		return nil, fe
	}
	return q.repo.ByPeriod(ctx, granularity)
}

func (q *revenueQueriesImpl) PaidReservations(ctx context.Context) ([]PaidReservationItem, error) {
	return q.repo.PaidReservations(ctx)
}

func parseDateRange(startDate, endDate *string) (DateRange, error) {
	fe := errs.FieldErrors{}
	var r DateRange

	if startDate != nil && *startDate != "" {
		t, err := time.Parse(time.DateOnly, *startDate)
		if err != nil {
			fe.Add("start_date", "must be a date in YYYY-MM-DD format")
		} else {
			r.Start = &t
		}
	}
	if endDate != nil && *endDate != "" {
		t, err := time.Parse(time.DateOnly, *endDate)
		if err != nil {
			fe.Add("end_date", "must be a date in YYYY-MM-DD format")
		} else {
			r.End = &t
		}
	}
	if r.Start != nil && r.End != nil && r.End.Before(*r.Start) {
		fe.Add("end_date", "must not be before start_date")
	}

	if fe.HasErrors() {
		return DateRange{}, fe
	}
	return r, nil
}
