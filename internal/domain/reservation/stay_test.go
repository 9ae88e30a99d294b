//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"hotel-backoffice/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
}

func mustStay(t *testing.T, checkIn, checkOut time.Time) reservation.Stay {
	t.Helper()
	s, err := reservation.NewStay(checkIn, checkOut)
	require.NoError(t, err)
	return s
}

func TestNewStay(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		s, err := reservation.NewStay(day(10), day(12))
		require.NoError(t, err)
		assert.Equal(t, day(10), s.CheckIn())
		assert.Equal(t, day(12), s.CheckOut())
		assert.Equal(t, 2, s.Nights())
	})

	t.Run("times are truncated to the day", func(t *testing.T) {
		s, err := reservation.NewStay(
			time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC),
			time.Date(2026, time.March, 12, 9, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)
		assert.Equal(t, day(10), s.CheckIn())
		assert.Equal(t, day(12), s.CheckOut())
	})

	t.Run("zero-night stay rejected", func(t *testing.T) {
		_, err := reservation.NewStay(day(10), day(10))
		assert.ErrorIs(t, err, reservation.ErrInvalidStay)
	})

	t.Run("inverted range rejected", func(t *testing.T) {
		_, err := reservation.NewStay(day(12), day(10))
		assert.ErrorIs(t, err, reservation.ErrInvalidStay)
	})
}

func TestStayOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     reservation.Stay
		overlaps bool
	}{
		{
			name:     "identical stays",
			a:        mustStay(t, day(10), day(12)),
			b:        mustStay(t, day(10), day(12)),
			overlaps: true,
		},
		{
			name:     "partial overlap",
			a:        mustStay(t, day(10), day(14)),
			b:        mustStay(t, day(12), day(16)),
			overlaps: true,
		},
		{
			name:     "containment",
			a:        mustStay(t, day(10), day(20)),
			b:        mustStay(t, day(12), day(14)),
			overlaps: true,
		},
		{
			name:     "single shared night",
			a:        mustStay(t, day(10), day(12)),
			b:        mustStay(t, day(11), day(13)),
			overlaps: true,
		},
		{
			name:     "back to back is free",
			a:        mustStay(t, day(10), day(12)),
			b:        mustStay(t, day(12), day(14)),
			overlaps: false,
		},
		{
			name:     "disjoint",
			a:        mustStay(t, day(10), day(12)),
			b:        mustStay(t, day(20), day(22)),
			overlaps: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlaps, tt.a.Overlaps(tt.b))
			// Overlap is symmetric.
			assert.Equal(t, tt.overlaps, tt.b.Overlaps(tt.a))
		})
	}
}

func TestAvailable(t *testing.T) {
	existing := []reservation.Stay{
		mustStay(t, day(10), day(12)),
		mustStay(t, day(15), day(18)),
	}

	t.Run("gap between stays", func(t *testing.T) {
		assert.True(t, reservation.Available(mustStay(t, day(12), day(15)), existing))
	})

	t.Run("collides with first", func(t *testing.T) {
		assert.False(t, reservation.Available(mustStay(t, day(11), day(13)), existing))
	})

	t.Run("collides with second", func(t *testing.T) {
		assert.False(t, reservation.Available(mustStay(t, day(17), day(20)), existing))
	})

	t.Run("no existing stays", func(t *testing.T) {
		assert.True(t, reservation.Available(mustStay(t, day(10), day(12)), nil))
	})
}
