package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    Minutes
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"06:00:00", 360, false},
		{"9:05", 545, false},
		{"", 0, true},
		{"09", 0, true},
		{"09:00:00:00", 0, true},
		{"ab:00", 0, true},
		{"09:xy", 0, true},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"-1:30", 0, true},
	}

	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if tc.wantErr {
			assert.Error(t, err, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestMinutesOf(t *testing.T) {
	ts := time.Date(2026, 1, 5, 10, 30, 45, 0, time.UTC)
	assert.Equal(t, Minutes(630), MinutesOf(ts))

	// non-UTC input is projected to UTC first
	loc := time.FixedZone("plus2", 2*3600)
	assert.Equal(t, Minutes(510), MinutesOf(time.Date(2026, 1, 5, 10, 30, 0, 0, loc)))
}

func TestOverlapsSymmetry(t *testing.T) {
	a := Interval{Start: 60, End: 180}
	b := Interval{Start: 120, End: 240}
	c := Interval{Start: 300, End: 360}

	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))
	assert.False(t, a.Overlaps(c))
	assert.False(t, c.Overlaps(a))
}

func TestOverlapsSelf(t *testing.T) {
	a := Interval{Start: 0, End: 60}
	assert.True(t, a.Overlaps(a))
}

func TestTouchingIntervalsDoNotOverlap(t *testing.T) {
	a := Interval{Start: 0, End: 60}
	b := Interval{Start: 60, End: 120}

	assert.False(t, a.Overlaps(b))
	assert.False(t, b.Overlaps(a))
}

func TestContainsInclusiveBounds(t *testing.T) {
	window := Interval{Start: 540, End: 720} // 09:00-12:00

	assert.True(t, window.Contains(540, 720))
	assert.True(t, window.Contains(540, 600))
	assert.True(t, window.Contains(660, 720))
	assert.False(t, window.Contains(480, 570))
	assert.False(t, window.Contains(700, 750))
}

func TestHasAnyOverlap(t *testing.T) {
	backToBack := []Interval{
		{Start: 540, End: 600}, // 09:00-10:00
		{Start: 600, End: 660}, // 10:00-11:00
	}
	assert.False(t, HasAnyOverlap(backToBack))

	overlapping := []Interval{
		{Start: 540, End: 630}, // 09:00-10:30
		{Start: 600, End: 660}, // 10:00-11:00
	}
	assert.True(t, HasAnyOverlap(overlapping))

	assert.False(t, HasAnyOverlap(nil))
	assert.False(t, HasAnyOverlap([]Interval{{Start: 0, End: 60}}))

	// non-adjacent pair in input order, caught after sorting
	unsorted := []Interval{
		{Start: 600, End: 660},
		{Start: 60, End: 120},
		{Start: 630, End: 690},
	}
	assert.True(t, HasAnyOverlap(unsorted))

	// input must not be mutated
	in := []Interval{{Start: 600, End: 660}, {Start: 0, End: 60}}
	HasAnyOverlap(in)
	assert.Equal(t, Minutes(600), in[0].Start)
}

func TestWeekdayOf(t *testing.T) {
	// 2026-01-04 is a Sunday, 2026-01-05 a Monday
	assert.Equal(t, Sunday, WeekdayOf(time.Date(2026, 1, 4, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, Monday, WeekdayOf(time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, Saturday, WeekdayOf(time.Date(2026, 1, 10, 23, 59, 0, 0, time.UTC)))
}

func TestWeekdayOfUsesUTC(t *testing.T) {
	// Monday 01:00 UTC is still Sunday in UTC-3; the UTC day must win so
	// availability lookup and booking validation agree.
	loc := time.FixedZone("minus3", -3*3600)
	local := time.Date(2026, 1, 4, 22, 0, 0, 0, loc) // 2026-01-05 01:00 UTC

	assert.Equal(t, Monday, WeekdayOf(local))
}

func TestParseWeekday(t *testing.T) {
	d, ok := ParseWeekday("mon")
	require.True(t, ok)
	assert.Equal(t, Monday, d)

	_, ok = ParseWeekday("monday")
	assert.False(t, ok)
	_, ok = ParseWeekday("")
	assert.False(t, ok)
}
