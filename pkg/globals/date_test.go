package globals

import (
	"testing"
	"time"
)

func TestDateAccessors(t *testing.T) {
	// 2024-03-15T12:30:45.123Z, a Friday.
	instant := time.Date(2024, time.March, 15, 12, 30, 45, 123_000_000, time.UTC)
	d := DateFromTime(instant)

	if got := d.GetTime(); got != float64(instant.UnixMilli()) {
		t.Fatalf("GetTime = %v", got)
	}
	utc := DateFromTime(instant.In(time.UTC))
	if utc.GetFullYear() != 2024 || utc.GetMonth() != 2 || utc.GetDate() != 15 {
		t.Fatalf("date parts = %d-%d-%d, want 2024-2-15 (month zero-based)",
			utc.GetFullYear(), utc.GetMonth(), utc.GetDate())
	}
	if utc.GetDay() != 5 {
		t.Fatalf("GetDay = %d, want 5 (Friday)", utc.GetDay())
	}
	if utc.GetHours() != 12 || utc.GetMinutes() != 30 || utc.GetSeconds() != 45 {
		t.Fatalf("time parts = %d:%d:%d", utc.GetHours(), utc.GetMinutes(), utc.GetSeconds())
	}
	if utc.GetMilliseconds() != 123 {
		t.Fatalf("GetMilliseconds = %d, want 123", utc.GetMilliseconds())
	}
}

func TestToISOString(t *testing.T) {
	instant := time.Date(2024, time.March, 15, 12, 30, 45, 7_000_000, time.UTC)
	if got := DateFromTime(instant).ToISOString(); got != "2024-03-15T12:30:45.007Z" {
		t.Fatalf("ToISOString = %q", got)
	}
	// Non-UTC instants are rendered in UTC.
	est := time.FixedZone("EST", -5*3600)
	shifted := time.Date(2024, time.March, 15, 7, 30, 45, 7_000_000, est)
	if got := DateFromTime(shifted).ToISOString(); got != "2024-03-15T12:30:45.007Z" {
		t.Fatalf("shifted ToISOString = %q", got)
	}
}

func TestDateFromMillisRoundTrip(t *testing.T) {
	ms := 1_700_000_000_123.0
	if got := DateFromMillis(ms).GetTime(); got != ms {
		t.Fatalf("round trip = %v, want %v", got, ms)
	}
}

func TestTimezoneOffsetSign(t *testing.T) {
	west := time.FixedZone("W", -5*3600)
	d := DateFromTime(time.Date(2024, 1, 1, 0, 0, 0, 0, west))
	if got := d.GetTimezoneOffset(); got != 300 {
		t.Fatalf("offset west of UTC = %d, want 300", got)
	}
	east := time.FixedZone("E", 2*3600)
	d = DateFromTime(time.Date(2024, 1, 1, 0, 0, 0, 0, east))
	if got := d.GetTimezoneOffset(); got != -120 {
		t.Fatalf("offset east of UTC = %d, want -120", got)
	}
}
