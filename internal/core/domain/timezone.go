package domain

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // zone database must not depend on the host
)

// DefaultTimezone is the fixed locale timezone used to localize naive
// timestamps and to express reminder times.
const DefaultTimezone = "Asia/Kolkata"

// isoLayout matches the ISO-8601 rendering used for stored timestamps,
// e.g. 2025-06-01T04:30:00+00:00.
const (
	isoLayout       = "2006-01-02T15:04:05-07:00"
	isoLayoutMicros = "2006-01-02T15:04:05.000000-07:00"
)

// awareLayouts are accepted after RFC 3339 for zoned values using a space
// separator.
var awareLayouts = []string{
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04Z07:00",
}

// naiveLayouts are accepted for timestamps carrying no zone information.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// Timestamp is a wall-clock value that may or may not carry a timezone.
// When Aware is false, Wall's location is meaningless and only its clock
// fields are used.
type Timestamp struct {
	Wall  time.Time
	Aware bool
}

// AwareTimestamp wraps a zoned time.
func AwareTimestamp(t time.Time) Timestamp {
	return Timestamp{Wall: t, Aware: true}
}

// NaiveTimestamp builds a timestamp without zone from its clock fields.
func NaiveTimestamp(year int, month time.Month, day, hour, min, sec int) Timestamp {
	return Timestamp{Wall: time.Date(year, month, day, hour, min, sec, 0, time.UTC)}
}

// ParseTimestamp accepts either an RFC 3339 value (aware) or one of the
// naive date-time layouts.
func ParseTimestamp(value string) (Timestamp, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return AwareTimestamp(t), nil
	}
	for _, layout := range awareLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return AwareTimestamp(t), nil
		}
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return Timestamp{Wall: t}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("unrecognised timestamp %q", value)
}

// LoadLocation resolves an IANA zone name, falling back to DefaultTimezone
// when name is empty.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", name, err)
	}
	return loc, nil
}

// Localize attaches loc to a naive timestamp, keeping its clock value.
// Aware timestamps are returned unchanged.
func Localize(ts Timestamp, loc *time.Location) time.Time {
	if ts.Aware {
		return ts.Wall
	}
	w := ts.Wall
	return time.Date(w.Year(), w.Month(), w.Day(), w.Hour(), w.Minute(), w.Second(), w.Nanosecond(), loc)
}

// AppointmentInstant localizes naive input to loc and converts to UTC.
func AppointmentInstant(ts Timestamp, loc *time.Location) time.Time {
	return Localize(ts, loc).UTC()
}

// ReminderInstant expresses the timestamp in loc. Naive input is read as
// already being in loc.
func ReminderInstant(ts Timestamp, loc *time.Location) time.Time {
	return Localize(ts, loc).In(loc)
}

// FormatISO renders t with its own offset, adding microseconds only when
// they are non-zero.
func FormatISO(t time.Time) string {
	if t.Nanosecond()/1000 != 0 {
		return t.Format(isoLayoutMicros)
	}
	return t.Format(isoLayout)
}

// ParseISO reads a stored timestamp back.
func ParseISO(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid stored timestamp %q: %w", value, err)
	}
	return t, nil
}

// FormatDisplay renders t the way the listing tables show it.
func FormatDisplay(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}
