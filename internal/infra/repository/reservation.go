package repository

import (
	"context"
	"encoding/json"

	"festivo/internal/domain/reservation"
	"festivo/internal/infra"
	"festivo/internal/infra/db"

	"github.com/google/uuid"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation, cust *reservation.Customization) error {
	const insertReservation = `
		INSERT INTO reservations (
			id, user_id, package_id,
			full_name, email, contact_number, address,
			event_type, event_date, event_time, venue, guest_count,
			total_amount, status, payment_status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := r.db.Exec(ctx, insertReservation,
		res.ID(), res.UserID(), res.PackageID(),
		res.Customer().FullName(), res.Customer().Email(), res.Customer().ContactNumber(), res.Customer().Address(),
		res.Event().EventType(), res.Event().EventDate(), res.Event().EventTime(), res.Event().Venue(), res.Event().GuestCount(),
		res.TotalAmount(), res.Status().String(), res.PaymentStatus().String(),
	)
	if err != nil {
		return wrapPgError("failed to create reservation", err)
	}

	foods, err := json.Marshal(cust.SelectedFoods())
	if err != nil {
		return infra.WrapRepoErr("failed to encode selected foods", err)
	}

	const insertCustomization = `
		INSERT INTO package_customizations (
			id, reservation_id, selected_table_type, selected_chair_type,
			selected_foods, customization_notes
		) VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = r.db.Exec(ctx, insertCustomization,
		cust.ID(), cust.ReservationID(), cust.SelectedTableType(), cust.SelectedChairType(),
		foods, cust.Notes(),
	)
	if err != nil {
		return wrapPgError("failed to create customization", err)
	}

	return nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status) error {
	const query = `UPDATE reservations SET status = $2, updated_at = now() WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, status.String())
	if err != nil {
		return wrapPgError("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status reservation.PaymentStatus) error {
	const query = `UPDATE reservations SET payment_status = $2, updated_at = now() WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, status.String())
	if err != nil {
		return wrapPgError("failed to update reservation payment status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete removes the reservation; customization, payment, and receipt rows go
// with it via ON DELETE CASCADE.
func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM reservations WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return wrapPgError("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}
