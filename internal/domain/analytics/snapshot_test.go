//go:build unit

package analytics_test

import (
	"testing"
	"time"

	"hotel-backoffice/internal/domain/analytics"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

func TestWindowFor(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	w := analytics.WindowFor(time.Date(2026, time.July, 14, 16, 45, 12, 0, berlin))

	assert.Equal(t, time.Date(2026, time.July, 14, 0, 0, 0, 0, berlin), w.Start)
	assert.Equal(t, time.Date(2026, time.July, 14, 23, 59, 59, 999000000, berlin), w.End)
}

func TestCompute(t *testing.T) {
	window := analytics.WindowFor(time.Date(2026, time.July, 14, 12, 0, 0, 0, time.UTC))
	computedAt := time.Date(2026, time.July, 14, 18, 0, 0, 0, time.UTC)

	t.Run("straightforward rollup", func(t *testing.T) {
		got := analytics.Compute(window, analytics.Inputs{
			TotalRooms:      20,
			BookingsCreated: 3,
			PaidCents:       45800,
			ActiveStays:     7,
		}, "EUR", computedAt)

		want := analytics.Snapshot{
			Day:            window.Start,
			TotalBookings:  3,
			AvailableRooms: 13,
			CurrentGuests:  7,
			EarningsCents:  45800,
			Currency:       "EUR",
			ComputedAt:     computedAt,
		}

		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Snapshot mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("available rooms floor at zero", func(t *testing.T) {
		got := analytics.Compute(window, analytics.Inputs{
			TotalRooms:  5,
			ActiveStays: 9,
		}, "EUR", computedAt)

		assert.Equal(t, int64(0), got.AvailableRooms)
		assert.Equal(t, int64(9), got.CurrentGuests)
	})

	t.Run("empty day", func(t *testing.T) {
		got := analytics.Compute(window, analytics.Inputs{TotalRooms: 12}, "EUR", computedAt)

		assert.Equal(t, int64(12), got.AvailableRooms)
		assert.Zero(t, got.TotalBookings)
		assert.Zero(t, got.EarningsCents)
	})

	t.Run("recomputation is deterministic apart from the timestamp", func(t *testing.T) {
		in := analytics.Inputs{TotalRooms: 10, BookingsCreated: 2, PaidCents: 10000, ActiveStays: 4}

		first := analytics.Compute(window, in, "EUR", computedAt)
		second := analytics.Compute(window, in, "EUR", computedAt.Add(time.Hour))

		if diff := cmp.Diff(first, second, cmpopts.IgnoreFields(analytics.Snapshot{}, "ComputedAt")); diff != "" {
			t.Errorf("Snapshot mismatch (-want +got):\n%s", diff)
		}
	})
}
