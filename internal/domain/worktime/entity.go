package worktime

import (
	"fmt"
	"time"
)

// DayTime is a clock time without a date. All threshold comparisons in the
// attendance engine happen at whole-minute granularity on this type; the
// date boundary resets the state machine every calendar day.
type DayTime struct {
	Hour   int
	Minute int
	Second int
}

// ParseDayTime accepts "15:04:05" or "15:04".
func ParseDayTime(s string) (DayTime, error) {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		t, err = time.Parse("15:04", s)
		if err != nil {
			return DayTime{}, fmt.Errorf("invalid clock time %q: %w", s, err)
		}
	}
	return DayTime{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, nil
}

// DayTimeOf extracts the clock time of t in its own location.
func DayTimeOf(t time.Time) DayTime {
	return DayTime{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}

// Minutes returns whole minutes since midnight, dropping seconds.
func (d DayTime) Minutes() int {
	return d.Hour*60 + d.Minute
}

func (d DayTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", d.Hour, d.Minute, d.Second)
}

// On anchors the clock time to the calendar day of day in loc.
func (d DayTime) On(day time.Time, loc *time.Location) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), d.Hour, d.Minute, d.Second, 0, loc)
}

// FullTime is the organization-wide default schedule, a singleton.
type FullTime struct {
	EntryTime DayTime
	ExitTime  DayTime
	UpdatedAt time.Time
}

// PartTimeCategory is a named shift (A, B, ...) overriding the full-time
// schedule for its members.
type PartTimeCategory struct {
	Category    string
	EntryTime   DayTime
	ExitTime    DayTime
	EmployeeIDs []string
}

// Schedule is the pair of thresholds effective for one employee: the
// work-start threshold (late past this) and the base expected-exit threshold.
type Schedule struct {
	WorkStart    DayTime
	ExpectedExit DayTime
}
