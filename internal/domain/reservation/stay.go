package reservation

import (
	"errors"
	"time"
)

var ErrInvalidStay = errors.New("check-in must be before check-out")

// Stay is a half-open date interval [checkIn, checkOut). A guest leaving on
// day D and another arriving on day D never conflict.
type Stay struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStay(checkIn, checkOut time.Time) (Stay, error) {
	checkIn = truncateToDay(checkIn)
	checkOut = truncateToDay(checkOut)
	if !checkIn.Before(checkOut) {
		return Stay{}, ErrInvalidStay
	}
	return Stay{checkIn: checkIn, checkOut: checkOut}, nil
}

// ReconstructStay rebuilds a stay from stored dates without revalidating.
func ReconstructStay(checkIn, checkOut time.Time) Stay {
	return Stay{checkIn: checkIn, checkOut: checkOut}
}

func (s Stay) CheckIn() time.Time {
	return s.checkIn
}

func (s Stay) CheckOut() time.Time {
	return s.checkOut
}

func (s Stay) Nights() int {
	return int(s.checkOut.Sub(s.checkIn).Hours() / 24)
}

// Overlaps reports whether two stays share at least one night. Strict
// inequalities keep back-to-back stays (one checkout equals the other's
// check-in) non-conflicting.
func (s Stay) Overlaps(other Stay) bool {
	return s.checkIn.Before(other.checkOut) && other.checkIn.Before(s.checkOut)
}

// Covers reports whether the stay occupies any part of the given window,
// checkOut exclusive. Used by the analytics occupancy count.
func (s Stay) Covers(windowStart, windowEnd time.Time) bool {
	return !s.checkIn.After(windowEnd) && s.checkOut.After(windowStart)
}

// Available reports whether a new stay can be booked against the given
// existing stays. Callers are expected to pass only non-cancelled stays for
// the same room; the scan is linear, which is fine at per-room counts.
func Available(candidate Stay, existing []Stay) bool {
	for _, e := range existing {
		if candidate.Overlaps(e) {
			return false
		}
	}
	return true
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
