package tzapi

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure a Converter can return.
type ErrorKind uint8

const (
	// KindUnknownTimeZone: the supplied zone identifier is not present
	// in the rule database.
	KindUnknownTimeZone ErrorKind = iota + 1

	// KindInvalidDate: required civil fields missing, redundant fields
	// inconsistent with the computed date, a skipped wall time under
	// the reject policy, or a result outside the representable range.
	KindInvalidDate

	// KindInternal: a rule-database or calendar fault not attributable
	// to caller input.
	KindInternal
)

// String returns a human-readable name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindUnknownTimeZone:
		return "unknown time zone"
	case KindInvalidDate:
		return "invalid date"
	case KindInternal:
		return "internal error"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

// Error is the typed error value returned by every conversion failure.
// Failures are classified at the point of occurrence and returned, never
// retried: conversions are pure, so a retry would reproduce the error.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("tzapi: %s: %s", e.Kind, e.Msg)
}

// UnknownTimeZoneError creates a KindUnknownTimeZone error for id.
func UnknownTimeZoneError(id string) *Error {
	return &Error{Kind: KindUnknownTimeZone, Msg: fmt.Sprintf("unrecognized zone identifier %q", id)}
}

// InvalidDateError creates a KindInvalidDate error.
func InvalidDateError(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidDate, Msg: fmt.Sprintf(format, args...)}
}

// InternalError creates a KindInternal error.
func InternalError(format string, args ...any) *Error {
	return &Error{Kind: KindInternal, Msg: fmt.Sprintf(format, args...)}
}

// AsError extracts the typed conversion error from err's chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf returns the kind of err, or 0 if err is not a conversion error.
func KindOf(err error) ErrorKind {
	if e, ok := AsError(err); ok {
		return e.Kind
	}
	return 0
}

// IsUnknownTimeZone reports whether err is a KindUnknownTimeZone error.
func IsUnknownTimeZone(err error) bool { return KindOf(err) == KindUnknownTimeZone }

// IsInvalidDate reports whether err is a KindInvalidDate error.
func IsInvalidDate(err error) bool { return KindOf(err) == KindInvalidDate }

// IsInternal reports whether err is a KindInternal error.
func IsInternal(err error) bool { return KindOf(err) == KindInternal }
