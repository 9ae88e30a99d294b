package commands

import (
	"context"
	"time"

	"hotel-backoffice/internal/domain/analytics"
	"hotel-backoffice/internal/pkg/clock"
	"hotel-backoffice/internal/pkg/config"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/usecase/queries"
	"hotel-backoffice/internal/usecase/shared"
)

var ErrInvalidDate = errs.New("date must look like 2006-01-02")

type AnalyticsCommands interface {
	// ComputeForDate rolls the day up and overwrites any snapshot already
	// stored for it. An empty date means today.
	ComputeForDate(ctx context.Context, rawDate string) (*queries.SnapshotView, error)
}

type analyticsCommandsImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	currency string
	location *time.Location
}

func NewAnalyticsCommands(uow shared.UnitOfWork, clk clock.Clock, cfg config.AnalyticsConfig) AnalyticsCommands {
	location, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		location = time.UTC
	}
	return &analyticsCommandsImpl{
		uow:      uow,
		clock:    clk,
		currency: cfg.Currency,
		location: location,
	}
}

func (a *analyticsCommandsImpl) ComputeForDate(ctx context.Context, rawDate string) (*queries.SnapshotView, error) {
	day := a.clock.Now().In(a.location)
	if rawDate != "" {
		parsed, err := time.ParseInLocation(time.DateOnly, rawDate, a.location)
		if err != nil {
			return nil, ErrInvalidDate
		}
		day = parsed
	}
	window := analytics.WindowFor(day)

	// All reads and the upsert share one transaction so the snapshot never
	// mixes two states of the data.
	var snapshot analytics.Snapshot
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		totalRooms, err := tx.Rooms().Count(ctx)
		if err != nil {
			return errs.Wrap(err, "failed to count rooms")
		}
		bookings, err := tx.Reservations().CountCreatedBetween(ctx, window.Start, window.End)
		if err != nil {
			return errs.Wrap(err, "failed to count bookings")
		}
		earnings, err := tx.Payments().SumPaidBetween(ctx, window.Start, window.End)
		if err != nil {
			return errs.Wrap(err, "failed to sum payments")
		}
		active, err := tx.Reservations().CountActiveCovering(ctx, window.Start.Format(time.DateOnly))
		if err != nil {
			return errs.Wrap(err, "failed to count active stays")
		}

		snapshot = analytics.Compute(window, analytics.Inputs{
			TotalRooms:      totalRooms,
			BookingsCreated: bookings,
			PaidCents:       earnings,
			ActiveStays:     active,
		}, a.currency, a.clock.Now())

		return tx.Analytics().UpsertSnapshot(ctx, snapshot)
	})
	if err != nil {
		return nil, err
	}

	return queries.NewSnapshotView(snapshot), nil
}
