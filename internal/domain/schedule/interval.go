package schedule

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/tutorlinkhq/tutor-marketplace/internal/apperr"
)

// Minutes is a clock time as minutes since midnight, 0..1439. It is the
// one canonical clock representation in the system; "HH:MM" strings and
// timestamps are converted at the edges only.
type Minutes int

// ParseClock accepts "HH:MM" or "HH:MM:SS" (the seconds are discarded).
func ParseClock(s string) (Minutes, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, apperr.Validation("invalid time format")
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, apperr.Validation("invalid time format")
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, apperr.Validation("invalid time format")
	}

	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, apperr.Validation("invalid time format")
	}

	return Minutes(h*60 + m), nil
}

func MinutesOf(t time.Time) Minutes {
	t = t.UTC()
	return Minutes(t.Hour()*60 + t.Minute())
}

type Interval struct {
	Start Minutes
	End   Minutes
}

// Overlaps is the strict half-open test: touching intervals do not
// overlap, so back-to-back availability slots and bookings that share a
// boundary minute are both legal.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start < o.End && o.Start < i.End
}

// Contains is inclusive on both ends: a booking may start exactly when a
// window opens and end exactly when it closes. Deliberately not the same
// predicate as Overlaps.
func (i Interval) Contains(start, end Minutes) bool {
	return i.Start <= start && i.End >= end
}

// HasAnyOverlap reports whether any two intervals in the set overlap.
// Sorting by start and testing consecutive pairs is sufficient only when
// every interval has positive duration; callers reject start >= end before
// calling this.
func HasAnyOverlap(intervals []Interval) bool {
	if len(intervals) < 2 {
		return false
	}

	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Overlaps(sorted[i]) {
			return true
		}
	}
	return false
}
