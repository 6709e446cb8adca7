package tzapi

import (
	"fmt"
	"testing"
)

func TestErrorString(t *testing.T) {
	err := InvalidDateError("day %d out of range", 32)
	expected := "tzapi: invalid date: day 32 out of range"
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}

	err = UnknownTimeZoneError("Not/AZone")
	expected = `tzapi: unknown time zone: unrecognized zone identifier "Not/AZone"`
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
}

func TestKindOf(t *testing.T) {
	if k := KindOf(InternalError("calendar fault")); k != KindInternal {
		t.Errorf("expected KindInternal, got %v", k)
	}

	// Wrapped.
	wrapped := fmt.Errorf("rpc failed: %w", UnknownTimeZoneError("Mars/Olympus"))
	if !IsUnknownTimeZone(wrapped) {
		t.Error("expected KindOf to unwrap wrapped error")
	}

	// Non-conversion error.
	if k := KindOf(fmt.Errorf("just a regular error")); k != 0 {
		t.Errorf("expected 0 for plain error, got %v", k)
	}

	// Nil.
	if k := KindOf(nil); k != 0 {
		t.Errorf("expected 0 for nil, got %v", k)
	}
}

func TestAsError(t *testing.T) {
	orig := InvalidDateError("missing day")
	e, ok := AsError(fmt.Errorf("wrapped: %w", orig))
	if !ok {
		t.Fatal("expected AsError to find the typed error")
	}
	if e.Kind != KindInvalidDate || e.Msg != "missing day" {
		t.Errorf("unexpected error contents: %+v", e)
	}

	if _, ok := AsError(nil); ok {
		t.Error("expected AsError to return false for nil")
	}
}

func TestKindPredicates(t *testing.T) {
	if !IsInvalidDate(InvalidDateError("x")) {
		t.Error("IsInvalidDate false for invalid-date error")
	}
	if IsInvalidDate(InternalError("x")) {
		t.Error("IsInvalidDate true for internal error")
	}
	if !IsInternal(InternalError("x")) {
		t.Error("IsInternal false for internal error")
	}
}
