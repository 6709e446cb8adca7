package engine

import (
	"time"

	"github.com/chronoplane/tzapi"
	"github.com/chronoplane/tzapi/types"
)

// requiredFieldsPresent reports whether the three mandatory civil
// fields are set.
func requiredFieldsPresent(c types.CivilTime) bool {
	return c.Year != nil && c.Month != nil && c.Day != nil
}

// checkFieldRanges validates the statically checkable invariants: a
// real calendar date and in-range clock fields. There is no
// normalization — February 30th is an error, not March 2nd.
func checkFieldRanges(c types.CivilTime) error {
	if !c.Month.Valid() {
		return tzapi.InvalidDateError("month %d out of range 1..12", *c.Month)
	}
	if max := daysIn(int(*c.Year), *c.Month); *c.Day < 1 || *c.Day > max {
		return tzapi.InvalidDateError("day %d out of range 1..%d for %s %d", *c.Day, max, *c.Month, *c.Year)
	}
	if c.Hour > 23 {
		return tzapi.InvalidDateError("hour %d out of range 0..23", c.Hour)
	}
	if c.Minute > 59 {
		return tzapi.InvalidDateError("minute %d out of range 0..59", c.Minute)
	}
	if c.Second > 59 {
		return tzapi.InvalidDateError("second %d out of range 0..59", c.Second)
	}
	if c.Nanos > 999999999 {
		return tzapi.InvalidDateError("nanos %d out of range 0..999999999", c.Nanos)
	}
	if c.Weekday != nil && !c.Weekday.Valid() {
		return tzapi.InvalidDateError("weekday %d out of range 1..7", *c.Weekday)
	}
	return nil
}

// redundantFieldsConsistent compares caller-supplied weekday and
// year-day assertions against the resolved calendar values. Absent
// fields are vacuously consistent.
func redundantFieldsConsistent(c types.CivilTime, resolved time.Time) bool {
	if c.Weekday != nil && *c.Weekday != types.WeekdayFromTime(resolved.Weekday()) {
		return false
	}
	if c.YearDay != nil && int(*c.YearDay) != resolved.YearDay()-1 {
		return false
	}
	return true
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var daysInMonth = [...]uint8{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// daysIn returns the day count of a month. The caller has already
// validated the month.
func daysIn(year int, m types.Month) uint8 {
	if m == types.February && isLeap(year) {
		return 29
	}
	return daysInMonth[m-1]
}
