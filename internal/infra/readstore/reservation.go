package readstore

import (
	"context"

	"festivo/internal/domain/reservation"
	"festivo/internal/infra"
	"festivo/internal/infra/db"
	"festivo/internal/pkg/pgconv"
	"festivo/internal/usecase/queries"
	"festivo/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

// SnapshotByID loads the minimal reservation state commands need for
// ownership, status, and amount checks.
func (s *ReservationReadStore) SnapshotByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	const query = `
		SELECT id, user_id, package_id, total_amount, status, payment_status
		FROM reservations
		WHERE id = $1`

	var (
		snap                  shared.ReservationSnapshot
		status, paymentStatus string
	)
	err := s.db.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.UserID, &snap.PackageID, &snap.TotalAmount, &status, &paymentStatus,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}

	snap.Status = reservation.Status(status)
	snap.PaymentStatus = reservation.PaymentStatus(paymentStatus)
	return &snap, nil
}

// FindViewByID loads the full reservation detail with its customization.
func (s *ReservationReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	const query = `
		SELECT r.id, r.user_id, r.package_id, p.name,
		       r.full_name, r.email, r.contact_number, r.address,
		       r.event_type, r.event_date, r.event_time, r.venue, r.guest_count,
		       r.total_amount, r.status, r.payment_status,
		       c.selected_table_type, c.selected_chair_type, c.selected_foods, c.customization_notes,
		       r.created_at, r.updated_at
		FROM reservations r
		JOIN packages p ON p.id = r.package_id
		LEFT JOIN package_customizations c ON c.reservation_id = r.id
		WHERE r.id = $1`

	var (
		view                 queries.ReservationView
		tableType, chairType *string
		foods                []byte
		notes                *string
	)
	err := s.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.UserID, &view.PackageID, &view.PackageName,
		&view.FullName, &view.Email, &view.ContactNumber, &view.Address,
		&view.EventType, &view.EventDate, &view.EventTime, &view.Venue, &view.GuestCount,
		&view.TotalAmount, &view.Status, &view.PaymentStatus,
		&tableType, &chairType, &foods, &notes,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}

	if tableType != nil || chairType != nil || foods != nil || notes != nil {
		selectedFoods, err := decodeFoods(foods)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode selected foods", err)
		}
		view.Customization = &queries.CustomizationView{
			SelectedTableType: deref(tableType),
			SelectedChairType: deref(chairType),
			SelectedFoods:     toFoodViews(selectedFoods),
			Notes:             deref(notes),
		}
	}
	return &view, nil
}

// ListByUser returns the caller's reservations, newest first.
func (s *ReservationReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]queries.ReservationListItem, error) {
	const query = listItemQuery + ` WHERE r.user_id = $1 ORDER BY r.created_at DESC`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	return scanListItems(rows)
}

// ListAll returns every reservation for the admin dashboard, newest first.
func (s *ReservationReadStore) ListAll(ctx context.Context) ([]queries.ReservationListItem, error) {
	const query = listItemQuery + ` ORDER BY r.created_at DESC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	return scanListItems(rows)
}

const listItemQuery = `
	SELECT r.id, r.user_id, p.name, r.full_name,
	       r.event_type, r.event_date, r.venue,
	       r.total_amount, r.status, r.payment_status, r.created_at
	FROM reservations r
	JOIN packages p ON p.id = r.package_id`

func scanListItems(rows pgx.Rows) ([]queries.ReservationListItem, error) {
	defer rows.Close()

	items := make([]queries.ReservationListItem, 0)
	for rows.Next() {
		var item queries.ReservationListItem
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.PackageName, &item.FullName,
			&item.EventType, &item.EventDate, &item.Venue,
			&item.TotalAmount, &item.Status, &item.PaymentStatus, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}
	return items, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
