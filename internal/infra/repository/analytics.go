package repository

import (
	"context"
	"time"

	"hotel-backoffice/internal/domain/analytics"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/db"
	"hotel-backoffice/internal/usecase/queries"
)

type AnalyticsRepository struct {
	db db.DBTX
}

func NewAnalyticsRepository(dbtx db.DBTX) *AnalyticsRepository {
	return &AnalyticsRepository{db: dbtx}
}

const upsertSnapshotSQL = `
INSERT INTO analytics_snapshots (
    day, total_bookings, available_rooms, current_guests,
    earnings_cents, currency, computed_at
) VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (day) DO UPDATE SET
    total_bookings  = EXCLUDED.total_bookings,
    available_rooms = EXCLUDED.available_rooms,
    current_guests  = EXCLUDED.current_guests,
    earnings_cents  = EXCLUDED.earnings_cents,
    currency        = EXCLUDED.currency,
    computed_at     = EXCLUDED.computed_at
`

// UpsertSnapshot overwrites the snapshot for the day so recomputation is
// idempotent.
func (r *AnalyticsRepository) UpsertSnapshot(ctx context.Context, s analytics.Snapshot) error {
	_, err := r.db.Exec(ctx, upsertSnapshotSQL,
		s.Day, s.TotalBookings, s.AvailableRooms, s.CurrentGuests,
		s.EarningsCents, s.Currency, s.ComputedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert analytics snapshot", err)
	}
	return nil
}

const snapshotViewSQL = `
SELECT day, total_bookings, available_rooms, current_guests,
       earnings_cents, currency, computed_at
FROM analytics_snapshots
`

func (r *AnalyticsRepository) FindByDay(ctx context.Context, day time.Time) (*queries.SnapshotView, error) {
	row := r.db.QueryRow(ctx, snapshotViewSQL+`WHERE day = $1`, day)
	v, err := scanSnapshotView(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("analytics snapshot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find analytics snapshot", err)
	}
	return v, nil
}

func (r *AnalyticsRepository) List(ctx context.Context, from, to *time.Time) ([]*queries.SnapshotView, error) {
	sql := snapshotViewSQL + `WHERE ($1::date IS NULL OR day >= $1) AND ($2::date IS NULL OR day <= $2) ORDER BY day DESC`
	rows, err := r.db.Query(ctx, sql, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list analytics snapshots", err)
	}
	defer rows.Close()

	views := make([]*queries.SnapshotView, 0)
	for rows.Next() {
		v, err := scanSnapshotView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan analytics snapshot", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate analytics snapshots", err)
	}
	return views, nil
}

func scanSnapshotView(row rowScanner) (*queries.SnapshotView, error) {
	var (
		v   queries.SnapshotView
		day time.Time
	)
	if err := row.Scan(
		&day, &v.TotalBookings, &v.AvailableRooms, &v.CurrentGuests,
		&v.EarningsCents, &v.Currency, &v.ComputedAt,
	); err != nil {
		return nil, err
	}
	v.Date = day.Format(time.DateOnly)
	return &v, nil
}
