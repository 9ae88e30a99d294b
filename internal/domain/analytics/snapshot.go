package analytics

import (
	"time"
)

// Snapshot is the rollup for one calendar day. There is at most one snapshot
// per day; recomputation overwrites in place.
type Snapshot struct {
	Day            time.Time
	TotalBookings  int64
	AvailableRooms int64
	CurrentGuests  int64
	EarningsCents  int64
	Currency       string
	ComputedAt     time.Time
}

// DayWindow is the inclusive window [00:00:00.000, 23:59:59.999] the rollup
// aggregates over.
type DayWindow struct {
	Start time.Time
	End   time.Time
}

// WindowFor normalizes a timestamp to its local day window.
func WindowFor(t time.Time) DayWindow {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end := start.Add(24*time.Hour - time.Millisecond)
	return DayWindow{Start: start, End: end}
}

// Inputs are the raw counts the aggregator reads from storage.
type Inputs struct {
	TotalRooms      int64
	BookingsCreated int64
	PaidCents       int64
	ActiveStays     int64 // confirmed reservations covering the window
}

// Compute derives a snapshot from raw counts. CurrentGuests deliberately
// counts overlapping reservations rather than summed guest counts; available
// rooms floor at zero even when occupancy exceeds inventory.
func Compute(window DayWindow, in Inputs, currency string, computedAt time.Time) Snapshot {
	available := in.TotalRooms - in.ActiveStays
	if available < 0 {
		available = 0
	}

	return Snapshot{
		Day:            window.Start,
		TotalBookings:  in.BookingsCreated,
		AvailableRooms: available,
		CurrentGuests:  in.ActiveStays,
		EarningsCents:  in.PaidCents,
		Currency:       currency,
		ComputedAt:     computedAt,
	}
}
