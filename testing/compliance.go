package tzapitest

import (
	"context"
	"sync"
	"testing"

	"github.com/chronoplane/tzapi"
	"github.com/chronoplane/tzapi/types"
)

const newYork = types.TimeZoneID("America/New_York")

// RunConversionSuite runs the standard conversion compliance suite
// against a Converter. The factory should return a fresh converter
// for each subtest; for connection-backed converters it may return
// the same connection, since converters are stateless.
//
// The suite covers the full conversion contract: the nominal paths,
// round-trip and determinism properties, transition ambiguity in both
// directions, field validation, and range checking. It is the same
// suite for every transport, so in-process and gRPC-backed converters
// are held to identical behavior.
func RunConversionSuite(t *testing.T, factory func() tzapi.Converter) {
	t.Helper()

	t.Run("nominal_absolute_to_civil", func(t *testing.T) {
		h := NewHarness(t, factory())
		civil := h.AbsoluteToCivil(newYork, 1629073062*1e9+123456789)

		assertCivil(t, civil, 2021, types.August, 15, 20, 17, 42, 123456789)
		if civil.Weekday == nil || *civil.Weekday != types.Sunday {
			t.Errorf("expected Sunday, got %v", civil.Weekday)
		}
		if civil.YearDay == nil || *civil.YearDay != 226 {
			t.Errorf("expected year day 226, got %v", civil.YearDay)
		}
		if civil.TimeZoneID != newYork {
			t.Errorf("expected zone %q, got %q", newYork, civil.TimeZoneID)
		}
	})

	t.Run("round_trip_unambiguous", func(t *testing.T) {
		h := NewHarness(t, factory())
		instants := []types.AbsoluteTime{
			0,
			1629073062*1e9 + 123456789,
			1577836800 * 1e9, // 2020-01-01T00:00:00Z
			-1000000000,
		}
		zones := []types.TimeZoneID{"UTC", newYork, "Asia/Tokyo", "Australia/Lord_Howe"}
		for _, z := range zones {
			for _, at := range instants {
				civil := h.AbsoluteToCivil(z, at)
				back := h.CivilToAbsolute(civil)
				if back != at {
					t.Errorf("%s: round trip of %d returned %d", z, at, back)
				}
			}
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		h := NewHarness(t, factory())
		a := h.AbsoluteToCivil(newYork, 1629073062*1e9)
		b := h.AbsoluteToCivil(newYork, 1629073062*1e9)
		if !civilEqual(a, b) {
			t.Error("identical inputs produced different civil times")
		}

		civil := types.Date(2021, types.August, 15).At(20, 17, 42, 0).In(newYork)
		if h.CivilToAbsolute(civil) != h.CivilToAbsolute(civil) {
			t.Error("identical inputs produced different instants")
		}
	})

	t.Run("unknown_zone", func(t *testing.T) {
		h := NewHarness(t, factory())
		h.WantAbsoluteToCivilKind("Not/AZone", 0, tzapi.KindUnknownTimeZone)
		h.WantCivilToAbsoluteKind(
			types.Date(2021, types.August, 15).In("Not/AZone"),
			types.CivilToAbsoluteOptions{}, tzapi.KindUnknownTimeZone)
	})

	t.Run("unknown_zone_placeholder_accepted", func(t *testing.T) {
		// The canonical placeholder is the database's own fallback,
		// not a user error.
		h := NewHarness(t, factory())
		civil := h.AbsoluteToCivil(types.UnknownTimeZoneID, 1629073062*1e9)
		if civil.TimeZoneID != types.UnknownTimeZoneID {
			t.Errorf("expected placeholder zone in result, got %q", civil.TimeZoneID)
		}
	})

	t.Run("missing_required_field", func(t *testing.T) {
		h := NewHarness(t, factory())
		civil := types.Date(2021, types.August, 15).In(newYork)
		civil.Day = nil
		h.WantCivilToAbsoluteKind(civil, types.CivilToAbsoluteOptions{}, tzapi.KindInvalidDate)
	})

	t.Run("weekday_mismatch", func(t *testing.T) {
		h := NewHarness(t, factory())
		// 2021-08-15 is a Sunday.
		civil := types.Date(2021, types.August, 15).In(newYork).WithWeekday(types.Friday)
		h.WantCivilToAbsoluteKind(civil, types.CivilToAbsoluteOptions{}, tzapi.KindInvalidDate)
	})

	t.Run("redundant_fields_match", func(t *testing.T) {
		h := NewHarness(t, factory())
		civil := types.Date(2021, types.August, 15).At(20, 17, 42, 123456789).In(newYork).
			WithWeekday(types.Sunday).WithYearDay(226)
		if got := h.CivilToAbsolute(civil); got != 1629073062*1e9+123456789 {
			t.Errorf("got %d", got)
		}
	})

	t.Run("repeated_wall_time_before_transition", func(t *testing.T) {
		h := NewHarness(t, factory())
		// 2021-11-07 01:30:42 occurs twice in New York; the default
		// policy picks the earlier instant.
		civil := types.Date(2021, types.November, 7).At(1, 30, 42, 123456789).In(newYork)
		if got := h.CivilToAbsolute(civil); got != 1636263042*1e9+123456789 {
			t.Errorf("expected earlier instant 1636263042.123456789, got %d", got)
		}
	})

	t.Run("skipped_wall_time_next_valid", func(t *testing.T) {
		h := NewHarness(t, factory())
		// 2021-03-14 02:30:42 never occurs in New York; the default
		// policy substitutes 03:00:00 and drops the fraction.
		civil := types.Date(2021, types.March, 14).At(2, 30, 42, 123456789).In(newYork)
		if got := h.CivilToAbsolute(civil); got != 1615705200*1e9 {
			t.Errorf("expected transition instant 1615705200, got %d", got)
		}
	})

	t.Run("skipped_wall_time_reject", func(t *testing.T) {
		h := NewHarness(t, factory())
		civil := types.Date(2021, types.March, 14).At(2, 30, 42, 123456789).In(newYork)
		opts := types.CivilToAbsoluteOptions{SkippedTimeConversion: types.SkippedReject}
		h.WantCivilToAbsoluteKind(civil, opts, tzapi.KindInvalidDate)
	})

	t.Run("date_outside_range", func(t *testing.T) {
		h := NewHarness(t, factory())
		for _, zone := range []types.TimeZoneID{"UTC", newYork, "Asia/Tokyo"} {
			civil := types.Date(1321, types.June, 1).In(zone)
			h.WantCivilToAbsoluteKind(civil, types.CivilToAbsoluteOptions{}, tzapi.KindInvalidDate)
		}
	})

	t.Run("default_zone_sentinel", func(t *testing.T) {
		h := NewHarness(t, factory())
		// The unspecified sentinel resolves to the configured default
		// zone (UTC unless overridden).
		civil := h.AbsoluteToCivil(types.DefaultTimeZoneID, 1629073062*1e9)
		if civil.TimeZoneID == types.DefaultTimeZoneID {
			t.Error("result should carry the substituted zone, not the sentinel")
		}
	})

	t.Run("concurrent_conversions", func(t *testing.T) {
		conv := factory()
		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := conv.AbsoluteToCivilTime(context.Background(), newYork, 1629073062*1e9)
				if err != nil {
					t.Errorf("concurrent AbsoluteToCivilTime: %v", err)
				}
				civil := types.Date(2021, types.August, 15).In(newYork)
				if _, err := conv.CivilToAbsoluteTime(context.Background(), civil, types.CivilToAbsoluteOptions{}); err != nil {
					t.Errorf("concurrent CivilToAbsoluteTime: %v", err)
				}
			}()
		}
		wg.Wait()
	})
}

// assertCivil checks the seven core civil fields.
func assertCivil(t *testing.T, c types.CivilTime, year int16, month types.Month, day, hour, minute, second uint8, nanos uint32) {
	t.Helper()
	if c.Year == nil || *c.Year != year {
		t.Errorf("year: got %v, want %d", c.Year, year)
	}
	if c.Month == nil || *c.Month != month {
		t.Errorf("month: got %v, want %s", c.Month, month)
	}
	if c.Day == nil || *c.Day != day {
		t.Errorf("day: got %v, want %d", c.Day, day)
	}
	if c.Hour != hour || c.Minute != minute || c.Second != second {
		t.Errorf("clock: got %02d:%02d:%02d, want %02d:%02d:%02d",
			c.Hour, c.Minute, c.Second, hour, minute, second)
	}
	if c.Nanos != nanos {
		t.Errorf("nanos: got %d, want %d", c.Nanos, nanos)
	}
}

func civilEqual(a, b types.CivilTime) bool {
	eq16 := func(x, y *int16) bool { return (x == nil) == (y == nil) && (x == nil || *x == *y) }
	eqM := func(x, y *types.Month) bool { return (x == nil) == (y == nil) && (x == nil || *x == *y) }
	eq8 := func(x, y *uint8) bool { return (x == nil) == (y == nil) && (x == nil || *x == *y) }
	eqW := func(x, y *types.Weekday) bool { return (x == nil) == (y == nil) && (x == nil || *x == *y) }
	eqD := func(x, y *uint16) bool { return (x == nil) == (y == nil) && (x == nil || *x == *y) }
	return eq16(a.Year, b.Year) && eqM(a.Month, b.Month) && eq8(a.Day, b.Day) &&
		a.Hour == b.Hour && a.Minute == b.Minute && a.Second == b.Second &&
		a.Nanos == b.Nanos && eqW(a.Weekday, b.Weekday) && eqD(a.YearDay, b.YearDay) &&
		a.TimeZoneID == b.TimeZoneID
}
