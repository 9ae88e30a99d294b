//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-backoffice/internal/domain/analytics"
	"hotel-backoffice/internal/pkg/clock"
	"hotel-backoffice/internal/pkg/config"
	"hotel-backoffice/internal/usecase/commands"
	"hotel-backoffice/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The rollup fakes record what the command asked storage for, so the tests
// can pin down how the reporting day and window are derived.

type rollupReservationRepo struct {
	fakeReservationRepo
	createdStart time.Time
	createdEnd   time.Time
	activeDay    string
}

func (f *rollupReservationRepo) CountCreatedBetween(_ context.Context, start, end time.Time) (int64, error) {
	f.createdStart = start
	f.createdEnd = end
	return 3, nil
}

func (f *rollupReservationRepo) CountActiveCovering(_ context.Context, day string) (int64, error) {
	f.activeDay = day
	return 2, nil
}

type rollupPaymentRepo struct{}

func (f *rollupPaymentRepo) SumPaidBetween(_ context.Context, _, _ time.Time) (int64, error) {
	return 45000, nil
}

type rollupAnalyticsRepo struct {
	stored analytics.Snapshot
}

func (f *rollupAnalyticsRepo) UpsertSnapshot(_ context.Context, s analytics.Snapshot) error {
	f.stored = s
	return nil
}

type rollupTx struct {
	reservations *rollupReservationRepo
	snapshots    *rollupAnalyticsRepo
}

func (t *rollupTx) Reservations() shared.ReservationRepository { return t.reservations }
func (t *rollupTx) Rooms() shared.RoomRepository               { return &fakeRoomRepo{} }
func (t *rollupTx) Customers() shared.CustomerRepository       { return nil }
func (t *rollupTx) Payments() shared.PaymentRepository         { return &rollupPaymentRepo{} }
func (t *rollupTx) Users() shared.UserRepository               { return nil }
func (t *rollupTx) Analytics() shared.AnalyticsRepository      { return t.snapshots }

type rollupUoW struct {
	tx *rollupTx
}

func (u *rollupUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *rollupUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func newRollup(now time.Time, tz string) (commands.AnalyticsCommands, *rollupTx) {
	tx := &rollupTx{
		reservations: &rollupReservationRepo{},
		snapshots:    &rollupAnalyticsRepo{},
	}
	cmd := commands.NewAnalyticsCommands(&rollupUoW{tx: tx}, clock.NewMockClock(now),
		config.AnalyticsConfig{Currency: "EUR", TimeZone: tz})
	return cmd, tx
}

func TestComputeForDate(t *testing.T) {
	t.Run("today resolves in the reporting timezone, not UTC", func(t *testing.T) {
		// 23:30 UTC on July 14th is already July 15th in Berlin.
		cmd, tx := newRollup(time.Date(2026, time.July, 14, 23, 30, 0, 0, time.UTC), "Europe/Berlin")

		view, err := cmd.ComputeForDate(context.Background(), "")

		require.NoError(t, err)
		assert.Equal(t, "2026-07-15", tx.reservations.activeDay)
		assert.Equal(t, "2026-07-15", view.Date)
		assert.Equal(t, "2026-07-15", tx.reservations.createdStart.Format(time.DateOnly))
	})

	t.Run("explicit date is taken verbatim as the reporting day", func(t *testing.T) {
		cmd, tx := newRollup(time.Date(2026, time.July, 14, 12, 0, 0, 0, time.UTC), "Europe/Berlin")

		view, err := cmd.ComputeForDate(context.Background(), "2026-02-01")

		require.NoError(t, err)
		assert.Equal(t, "2026-02-01", tx.reservations.activeDay)
		assert.Equal(t, "2026-02-01", view.Date)
	})

	t.Run("rolled-up counts land in the stored snapshot", func(t *testing.T) {
		cmd, tx := newRollup(time.Date(2026, time.July, 14, 12, 0, 0, 0, time.UTC), "Europe/Berlin")

		_, err := cmd.ComputeForDate(context.Background(), "")

		require.NoError(t, err)
		assert.Equal(t, int64(3), tx.snapshots.stored.TotalBookings)
		assert.Equal(t, int64(2), tx.snapshots.stored.CurrentGuests)
		assert.Equal(t, int64(45000), tx.snapshots.stored.EarningsCents)
	})

	t.Run("malformed date maps to ErrInvalidDate", func(t *testing.T) {
		cmd, _ := newRollup(time.Date(2026, time.July, 14, 12, 0, 0, 0, time.UTC), "Europe/Berlin")

		_, err := cmd.ComputeForDate(context.Background(), "01.02.2026")

		assert.ErrorIs(t, err, commands.ErrInvalidDate)
	})
}
