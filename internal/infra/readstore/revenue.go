package readstore

import (
	"context"

	"festivo/internal/infra"
	"festivo/internal/infra/db"
	"festivo/internal/usecase/queries"
)

// RevenueReadStore aggregates over Paid payments only. In Progress payments
// never contribute to any figure here.
type RevenueReadStore struct {
	db db.DBTX
}

func NewRevenueReadStore(dbtx db.DBTX) *RevenueReadStore {
	return &RevenueReadStore{db: dbtx}
}

// TotalRevenue sums paid payments, optionally bounded by an inclusive
// calendar-date range over paid_at.
func (s *RevenueReadStore) TotalRevenue(ctx context.Context, r queries.DateRange) (*queries.TotalRevenue, error) {
	const query = `
		SELECT COALESCE(SUM(amount), 0), COUNT(*)
		FROM payments
		WHERE status = 'Paid'
		  AND ($1::date IS NULL OR paid_at::date >= $1::date)
		  AND ($2::date IS NULL OR paid_at::date <= $2::date)`

	var total queries.TotalRevenue
	err := s.db.QueryRow(ctx, query, r.Start, r.End).Scan(&total.Total, &total.PaymentCount)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to compute total revenue", err)
	}
	return &total, nil
}

// ByMethod groups paid revenue per payment method, largest first.
func (s *RevenueReadStore) ByMethod(ctx context.Context) ([]queries.MethodRevenue, error) {
	const query = `
		SELECT payment_method, SUM(amount), COUNT(*)
		FROM payments
		WHERE status = 'Paid'
		GROUP BY payment_method
		ORDER BY SUM(amount) DESC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to compute revenue by method", err)
	}
	defer rows.Close()

	out := make([]queries.MethodRevenue, 0)
	for rows.Next() {
		var m queries.MethodRevenue
		if err := rows.Scan(&m.Method, &m.Revenue, &m.PaymentCount); err != nil {
			return nil, infra.WrapRepoErr("failed to scan method revenue row", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate method revenue rows", err)
	}
	return out, nil
}

// ByPeriod buckets paid revenue by day, month, or year of paid_at, in
// ascending period order. The granularity must already be validated.
func (s *RevenueReadStore) ByPeriod(ctx context.Context, granularity string) ([]queries.PeriodRevenue, error) {
	var format string
	switch granularity {
	case "day":
		format = "YYYY-MM-DD"
	case "month":
		format = "YYYY-MM"
	case "year":
		format = "YYYY"
	default:
		return nil, infra.WrapRepoErr("unsupported revenue granularity: "+granularity, nil)
	}

	const query = `
		SELECT to_char(date_trunc($1, paid_at), $2), SUM(amount), COUNT(*)
		FROM payments
		WHERE status = 'Paid'
		GROUP BY date_trunc($1, paid_at)
		ORDER BY date_trunc($1, paid_at)`

	rows, err := s.db.Query(ctx, query, granularity, format)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to compute revenue by period", err)
	}
	defer rows.Close()

	out := make([]queries.PeriodRevenue, 0)
	for rows.Next() {
		var p queries.PeriodRevenue
		if err := rows.Scan(&p.Period, &p.Revenue, &p.PaymentCount); err != nil {
			return nil, infra.WrapRepoErr("failed to scan period revenue row", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate period revenue rows", err)
	}
	return out, nil
}

// PaidReservations lists the reservations behind the revenue figures,
// most recently paid first.
func (s *RevenueReadStore) PaidReservations(ctx context.Context) ([]queries.PaidReservationItem, error) {
	const query = `
		SELECT r.id, r.full_name, r.event_type, r.event_date,
		       p.amount, p.payment_method, p.paid_at
		FROM payments p
		JOIN reservations r ON r.id = p.reservation_id
		WHERE p.status = 'Paid'
		ORDER BY p.paid_at DESC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list paid reservations", err)
	}
	defer rows.Close()

	out := make([]queries.PaidReservationItem, 0)
	for rows.Next() {
		var item queries.PaidReservationItem
		if err := rows.Scan(
			&item.ReservationID, &item.FullName, &item.EventType, &item.EventDate,
			&item.Amount, &item.Method, &item.PaidAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan paid reservation row", err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate paid reservation rows", err)
	}
	return out, nil
}
