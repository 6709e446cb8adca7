package types

import "time"

const nanosPerSecond = int64(time.Second)

// ToTime converts an AbsoluteTime to a time.Time (UTC).
func (t AbsoluteTime) ToTime() time.Time {
	return time.Unix(0, int64(t)).UTC()
}

// FromTime converts a time.Time to an AbsoluteTime. The result is
// undefined for instants outside the representable nanosecond range.
func FromTime(t time.Time) AbsoluteTime {
	return AbsoluteTime(t.UnixNano())
}

// Split returns the whole-second component of t and the sub-second
// remainder in nanoseconds, with 0 <= nanos < 1e9 for any t.
func (t AbsoluteTime) Split() (secs, nanos int64) {
	secs = int64(t) / nanosPerSecond
	nanos = int64(t) % nanosPerSecond
	if nanos < 0 {
		secs--
		nanos += nanosPerSecond
	}
	return secs, nanos
}

// WeekdayFromTime converts a time.Weekday (Sunday = 0) to a Weekday
// (Sunday = 1).
func WeekdayFromTime(w time.Weekday) Weekday {
	return Weekday(w + 1)
}

// MonthFromTime converts a time.Month to a Month. Both are 1-based.
func MonthFromTime(m time.Month) Month {
	return Month(m)
}
