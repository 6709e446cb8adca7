// Package types defines the wire-safe value types shared by every
// tzapi transport.
//
// These are plain Go structs with cramberry struct tags for
// deterministic binary serialization. Transport concerns (gRPC codec
// registration) are handled in the transport packages.
package types

// AbsoluteTime is a zone-independent instant: a signed count of
// nanoseconds since the Unix epoch.
type AbsoluteTime int64

// TimeZoneID is an opaque IANA-style zone identifier
// (e.g. "America/New_York").
type TimeZoneID string

const (
	// DefaultTimeZoneID is the reserved sentinel meaning "unspecified".
	// The engine substitutes its configured default zone before
	// resolving it.
	DefaultTimeZoneID TimeZoneID = ""

	// UnknownTimeZoneID is the canonical unknown-zone placeholder.
	// Resolving it succeeds and yields the rule database's own
	// fallback zone; it is not a caller error.
	UnknownTimeZoneID TimeZoneID = "Etc/Unknown"
)

// Month is a calendar month, January = 1.
type Month uint8

const (
	January Month = 1 + iota
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Valid reports whether m is in January..December.
func (m Month) Valid() bool { return m >= January && m <= December }

// String returns the English month name.
func (m Month) String() string {
	if !m.Valid() {
		return "Month(?)"
	}
	return monthNames[m-1]
}

// Weekday is a day of the week, Sunday = 1.
type Weekday uint8

const (
	Sunday Weekday = 1 + iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = [...]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// Valid reports whether w is in Sunday..Saturday.
func (w Weekday) Valid() bool { return w >= Sunday && w <= Saturday }

// String returns the English weekday name.
func (w Weekday) String() string {
	if !w.Valid() {
		return "Weekday(?)"
	}
	return weekdayNames[w-1]
}

// CivilTime is the human calendar/clock representation of an instant
// relative to a time zone.
//
// Year, month and day are required on input to CivilToAbsoluteTime and
// carry presence as nil-ness. Hour, minute, second and nanos default
// to zero when left unset, and TimeZoneID to the engine default.
// Weekday and YearDay are redundant assertions on input — they never
// influence the conversion, but when set they must match the computed
// date or the conversion fails. YearDay is 0-based.
type CivilTime struct {
	Year       *int16     `cramberry:"1"`
	Month      *Month     `cramberry:"2"`
	Day        *uint8     `cramberry:"3"`
	Hour       uint8      `cramberry:"4"`
	Minute     uint8      `cramberry:"5"`
	Second     uint8      `cramberry:"6"`
	Nanos      uint32     `cramberry:"7"`
	Weekday    *Weekday   `cramberry:"8"`
	YearDay    *uint16    `cramberry:"9"`
	TimeZoneID TimeZoneID `cramberry:"10"`
}

// Date returns a CivilTime with the three required fields set and all
// optional fields at their defaults (midnight, default zone).
func Date(year int16, month Month, day uint8) CivilTime {
	return CivilTime{Year: &year, Month: &month, Day: &day}
}

// At returns a copy of c with the clock fields set.
func (c CivilTime) At(hour, minute, second uint8, nanos uint32) CivilTime {
	c.Hour, c.Minute, c.Second, c.Nanos = hour, minute, second, nanos
	return c
}

// In returns a copy of c placed in the given zone.
func (c CivilTime) In(id TimeZoneID) CivilTime {
	c.TimeZoneID = id
	return c
}

// WithWeekday returns a copy of c asserting the given weekday.
func (c CivilTime) WithWeekday(w Weekday) CivilTime {
	c.Weekday = &w
	return c
}

// WithYearDay returns a copy of c asserting the given 0-based year day.
func (c CivilTime) WithYearDay(d uint16) CivilTime {
	c.YearDay = &d
	return c
}
