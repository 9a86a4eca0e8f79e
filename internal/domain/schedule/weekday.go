package schedule

import "time"

// Weekday is the seven-value day enumeration stored with availability
// slots. Values are derived from the UTC day-of-week, Sunday-indexed, so
// availability lookups and booking validation always agree on the day.
type Weekday string

const (
	Sunday    Weekday = "sun"
	Monday    Weekday = "mon"
	Tuesday   Weekday = "tue"
	Wednesday Weekday = "wed"
	Thursday  Weekday = "thu"
	Friday    Weekday = "fri"
	Saturday  Weekday = "sat"
)

var weekdays = [7]Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

func WeekdayOf(t time.Time) Weekday {
	return weekdays[int(t.UTC().Weekday())]
}

func ParseWeekday(s string) (Weekday, bool) {
	for _, d := range weekdays {
		if Weekday(s) == d {
			return d, true
		}
	}
	return "", false
}
