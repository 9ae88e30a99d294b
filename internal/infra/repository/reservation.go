package repository

import (
	"context"
	"time"

	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/domain/room"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/db"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

const insertReservationSQL = `
INSERT INTO reservations
  (id, number, room_id, room_type, check_in, check_out, customer_id, guests, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (number) DO NOTHING
`

const reservationViewSQL = `
SELECT r.id, r.number, r.room_id, rm.title, r.room_type,
       r.check_in, r.check_out,
       r.customer_id, c.first_name || ' ' || c.last_name, c.email,
       r.guests, r.status, r.created_at, r.updated_at
FROM reservations r
JOIN rooms rm ON rm.id = r.room_id
JOIN customers c ON c.id = r.customer_id
`

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

// Insert persists a new reservation. The exclusion constraint reports a lost
// availability race as KindConflict. A booking-number collision is absorbed by
// ON CONFLICT DO NOTHING and surfaces as KindDuplicateKey; because no
// statement fails, the transaction stays usable and the caller can regenerate
// the number and retry on the same tx.
func (r *ReservationRepository) Insert(ctx context.Context, res *reservation.Reservation) error {
	tag, err := r.db.Exec(ctx, insertReservationSQL,
		res.ID(),
		res.Number().String(),
		res.RoomID(),
		res.RoomType().String(),
		res.Stay().CheckIn(),
		res.Stay().CheckOut(),
		res.CustomerID(),
		res.Guests(),
		res.Status().String(),
	)
	if err != nil {
		switch {
		case isExclusionViolation(err):
			return infra.WrapRepoErr("room is booked for an overlapping stay", err, infra.KindConflict)
		case isForeignKeyViolation(err):
			return infra.WrapRepoErr("room or customer does not exist", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to insert reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation number already taken", nil, infra.KindDuplicateKey)
	}
	return nil
}

// StaysForRoom returns the stays that block availability: everything for the
// room that is not cancelled.
func (r *ReservationRepository) StaysForRoom(ctx context.Context, roomID uuid.UUID) ([]reservation.Stay, error) {
	rows, err := r.db.Query(ctx,
		`SELECT check_in, check_out FROM reservations WHERE room_id = $1 AND status <> 'Cancelled'`,
		roomID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load stays for room", err)
	}
	defer rows.Close()

	var stays []reservation.Stay
	for rows.Next() {
		var checkIn, checkOut time.Time
		if err := rows.Scan(&checkIn, &checkOut); err != nil {
			return nil, infra.WrapRepoErr("failed to scan stay", err)
		}
		stays = append(stays, reservation.ReconstructStay(checkIn, checkOut))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate stays", err)
	}
	return stays, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE reservations SET status = $2, updated_at = now() WHERE id = $1`,
		id, status.String(),
	)
	if err != nil {
		if isExclusionViolation(err) {
			// Un-cancelling into a stay that has since been booked over.
			return infra.WrapRepoErr("room is booked for an overlapping stay", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("reservation has payments", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row := r.db.QueryRow(ctx, reservationViewSQL+` WHERE r.id = $1`, id)
	view, err := scanReservationView(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by id", err)
	}
	return view, nil
}

func (r *ReservationRepository) FindViewByNumber(ctx context.Context, number reservation.Number) (*queries.ReservationView, error) {
	row := r.db.QueryRow(ctx, reservationViewSQL+` WHERE r.number = $1`, number.String())
	view, err := scanReservationView(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by number", err)
	}
	return view, nil
}

// ListViews returns reservations newest-first with room and customer resolved.
func (r *ReservationRepository) ListViews(ctx context.Context) ([]*queries.ReservationView, error) {
	rows, err := r.db.Query(ctx, reservationViewSQL+` ORDER BY r.created_at DESC, r.id DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var views []*queries.ReservationView
	for rows.Next() {
		view, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}
	return views, nil
}

// FindByID rehydrates the domain entity for status transitions.
func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	var (
		resID, roomID, customerID uuid.UUID
		number, roomType, status  string
		checkIn, checkOut         time.Time
		guests                    int
		createdAt, updatedAt      time.Time
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, number, room_id, room_type, check_in, check_out, customer_id, guests, status, created_at, updated_at
		 FROM reservations WHERE id = $1`, id,
	).Scan(&resID, &number, &roomID, &roomType, &checkIn, &checkOut, &customerID, &guests, &status, &createdAt, &updatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}

	return reservation.Reconstruct(
		resID,
		reservation.Number(number),
		roomID,
		room.Type(roomType),
		reservation.ReconstructStay(checkIn, checkOut),
		customerID,
		guests,
		reservation.Status(status),
		createdAt,
		updatedAt,
	), nil
}

// CountCreatedBetween counts reservations created inside the window,
// regardless of status.
func (r *ReservationRepository) CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM reservations WHERE created_at BETWEEN $1 AND $2`,
		start, end,
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count created reservations", err)
	}
	return count, nil
}

// CountActiveCovering counts Confirmed/CheckedIn reservations whose stay
// covers the given day. The day arrives as a plain date string so the
// comparison never passes through the session timezone.
func (r *ReservationRepository) CountActiveCovering(ctx context.Context, day string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM reservations
		 WHERE status IN ('Confirmed', 'CheckedIn')
		   AND check_in <= $1::date AND check_out > $1::date`,
		day,
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count active reservations", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservationView(row rowScanner) (*queries.ReservationView, error) {
	var v queries.ReservationView
	err := row.Scan(
		&v.ID, &v.Number, &v.RoomID, &v.RoomTitle, &v.RoomType,
		&v.CheckIn, &v.CheckOut,
		&v.CustomerID, &v.CustomerName, &v.CustomerEmail,
		&v.Guests, &v.Status, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
