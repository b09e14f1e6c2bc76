// Package timestamp implements the broken-down civil time used throughout
// the cache: item timestamps, directory rollups and the display form used
// in synthesized file names.
package timestamp

import "time"

// Timestamp is a civil time with whole-second precision, always carried in
// UTC so that two Timestamps built from equivalent wall-clock values compare
// equal regardless of the caller's local zone.
type Timestamp struct {
	t time.Time
}

// Zero is the zero-value timestamp, used as the rollup of an empty
// directory.
var Zero = Timestamp{}

// New builds a timestamp from a calendar date at midnight.
func New(year int, month time.Month, day int) Timestamp {
	return Timestamp{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// NewDateTime builds a timestamp from a full civil time.
func NewDateTime(year int, month time.Month, day, hour, minute, second int) Timestamp {
	return Timestamp{time.Date(year, month, day, hour, minute, second, 0, time.UTC)}
}

// FromTime truncates t to whole-second precision and records it as a
// timestamp.
func FromTime(t time.Time) Timestamp {
	return Timestamp{t.UTC().Truncate(time.Second)}
}

// FromUnix builds a timestamp from a signed seconds-since-epoch value;
// negative values (pre-epoch) are accepted.
func FromUnix(sec int64) Timestamp {
	return Timestamp{time.Unix(sec, 0).UTC()}
}

// Now returns the timestamp for the current time.
func Now() Timestamp {
	return FromTime(time.Now())
}

// Year returns the calendar year.
func (ts Timestamp) Year() int { return ts.t.Year() }

// Month returns the calendar month, 1-12.
func (ts Timestamp) Month() time.Month { return ts.t.Month() }

// Day returns the day of month, 1-31.
func (ts Timestamp) Day() int { return ts.t.Day() }

// Hour returns the hour of day, 0-23.
func (ts Timestamp) Hour() int { return ts.t.Hour() }

// Minute returns the minute of hour, 0-59.
func (ts Timestamp) Minute() int { return ts.t.Minute() }

// Second returns the second of minute, 0-59.
func (ts Timestamp) Second() int { return ts.t.Second() }

// Time returns the underlying time.Time, in UTC.
func (ts Timestamp) Time() time.Time { return ts.t }

// Unix returns the seconds-since-epoch representation, which may be
// negative for pre-epoch timestamps.
func (ts Timestamp) Unix() int64 { return ts.t.Unix() }

// Before reports whether ts happened strictly before other.
func (ts Timestamp) Before(other Timestamp) bool { return ts.t.Before(other.t) }

// Equal reports whether ts and other represent the same instant.
func (ts Timestamp) Equal(other Timestamp) bool { return ts.t.Equal(other.t) }

// Max returns the later of a and b.
func Max(a, b Timestamp) Timestamp {
	if a.Before(b) {
		return b
	}
	return a
}

// Display renders the timestamp the way synthesized file and symlink names
// do: "YYYY-MM-DD HH:MM".
func (ts Timestamp) Display() string {
	return ts.t.Format("2006-01-02 15:04")
}

// String implements fmt.Stringer using the display form.
func (ts Timestamp) String() string {
	return ts.Display()
}
