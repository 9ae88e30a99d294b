package queries

import (
	"context"
	"time"

	"hotel-backoffice/internal/domain/analytics"
	"hotel-backoffice/internal/pkg/errs"
)

var ErrInvalidDateRange = errs.New("invalid date range")

func NewSnapshotView(s analytics.Snapshot) *SnapshotView {
	return &SnapshotView{
		Date:           s.Day.Format(time.DateOnly),
		TotalBookings:  s.TotalBookings,
		AvailableRooms: s.AvailableRooms,
		CurrentGuests:  s.CurrentGuests,
		EarningsCents:  s.EarningsCents,
		Currency:       s.Currency,
		ComputedAt:     s.ComputedAt,
	}
}

type AnalyticsQueries interface {
	// History lists stored snapshots newest first, optionally bounded by
	// inclusive from/to dates.
	History(ctx context.Context, rawFrom, rawTo string) ([]*SnapshotView, error)
}

type SnapshotViewRepo interface {
	List(ctx context.Context, from, to *time.Time) ([]*SnapshotView, error)
}

type analyticsQueriesImpl struct {
	repo SnapshotViewRepo
}

func NewAnalyticsQueries(repo SnapshotViewRepo) AnalyticsQueries {
	return &analyticsQueriesImpl{repo: repo}
}

func (q *analyticsQueriesImpl) History(ctx context.Context, rawFrom, rawTo string) ([]*SnapshotView, error) {
	var from, to *time.Time
	if rawFrom != "" {
		parsed, err := time.Parse(time.DateOnly, rawFrom)
		if err != nil {
			return nil, ErrInvalidDateRange
		}
		from = &parsed
	}
	if rawTo != "" {
		parsed, err := time.Parse(time.DateOnly, rawTo)
		if err != nil {
			return nil, ErrInvalidDateRange
		}
		to = &parsed
	}
	return q.repo.List(ctx, from, to)
}
