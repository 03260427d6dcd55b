package globals

import (
	"fmt"
	"time"
)

// Date wraps an instant with the emulated language's accessor surface.
// Accessors report in local time; ToISOString reports in UTC.
type Date struct {
	t time.Time
}

// NewDate returns the current instant.
func NewDate() Date {
	return Date{t: time.Now()}
}

// DateFromMillis builds a Date from milliseconds since the Unix epoch.
func DateFromMillis(ms float64) Date {
	return Date{t: time.UnixMilli(int64(ms))}
}

// DateFromTime wraps an existing time.Time.
func DateFromTime(t time.Time) Date {
	return Date{t: t}
}

// Now returns milliseconds since the Unix epoch.
func Now() float64 {
	return float64(time.Now().UnixMilli())
}

// GetTime returns milliseconds since the Unix epoch.
func (d Date) GetTime() float64 {
	return float64(d.t.UnixMilli())
}

func (d Date) GetFullYear() int { return d.t.Year() }

// GetMonth returns the zero-based month.
func (d Date) GetMonth() int { return int(d.t.Month()) - 1 }

func (d Date) GetDate() int { return d.t.Day() }

// GetDay returns the day of the week, Sunday = 0.
func (d Date) GetDay() int { return int(d.t.Weekday()) }

func (d Date) GetHours() int   { return d.t.Hour() }
func (d Date) GetMinutes() int { return d.t.Minute() }
func (d Date) GetSeconds() int { return d.t.Second() }

func (d Date) GetMilliseconds() int {
	return d.t.Nanosecond() / int(time.Millisecond)
}

// GetTimezoneOffset returns minutes between UTC and local time, positive
// west of UTC.
func (d Date) GetTimezoneOffset() int {
	_, offsetSeconds := d.t.Zone()
	return -offsetSeconds / 60
}

// ToISOString renders the UTC instant with millisecond precision.
func (d Date) ToISOString() string {
	utc := d.t.UTC()
	return fmt.Sprintf("%s.%03dZ", utc.Format("2006-01-02T15:04:05"), utc.Nanosecond()/int(time.Millisecond))
}

// Time exposes the wrapped instant.
func (d Date) Time() time.Time { return d.t }
