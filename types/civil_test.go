package types

import (
	"testing"
	"time"
)

func TestDateBuilders(t *testing.T) {
	c := Date(2021, August, 15).At(20, 17, 42, 123456789).In("America/New_York").
		WithWeekday(Sunday).WithYearDay(226)

	if c.Year == nil || *c.Year != 2021 {
		t.Fatal("year not set")
	}
	if c.Month == nil || *c.Month != August {
		t.Fatal("month not set")
	}
	if c.Day == nil || *c.Day != 15 {
		t.Fatal("day not set")
	}
	if c.Hour != 20 || c.Minute != 17 || c.Second != 42 || c.Nanos != 123456789 {
		t.Errorf("unexpected clock fields: %+v", c)
	}
	if c.Weekday == nil || *c.Weekday != Sunday {
		t.Error("weekday assertion not set")
	}
	if c.YearDay == nil || *c.YearDay != 226 {
		t.Error("year-day assertion not set")
	}
	if c.TimeZoneID != "America/New_York" {
		t.Errorf("unexpected zone: %q", c.TimeZoneID)
	}
}

func TestDateDefaults(t *testing.T) {
	c := Date(1999, December, 31)
	if c.Hour != 0 || c.Minute != 0 || c.Second != 0 || c.Nanos != 0 {
		t.Error("clock fields should default to zero")
	}
	if c.Weekday != nil || c.YearDay != nil {
		t.Error("redundant assertions should default to absent")
	}
	if c.TimeZoneID != DefaultTimeZoneID {
		t.Error("zone should default to the unspecified sentinel")
	}
}

func TestSplit(t *testing.T) {
	cases := []struct {
		in    AbsoluteTime
		secs  int64
		nanos int64
	}{
		{0, 0, 0},
		{1629073062123456789, 1629073062, 123456789},
		{-1, -1, 999999999},
		{-1500000000, -2, 500000000},
		{999999999, 0, 999999999},
	}
	for _, c := range cases {
		secs, nanos := c.in.Split()
		if secs != c.secs || nanos != c.nanos {
			t.Errorf("Split(%d) = (%d, %d), want (%d, %d)", c.in, secs, nanos, c.secs, c.nanos)
		}
	}
}

func TestSplitRemainderInvariant(t *testing.T) {
	for _, in := range []AbsoluteTime{-9223372036854775808, -1, 0, 1, 9223372036854775807} {
		secs, nanos := in.Split()
		if nanos < 0 || nanos >= 1000000000 {
			t.Errorf("Split(%d): remainder %d out of [0, 1e9)", in, nanos)
		}
		if secs*1000000000+nanos != int64(in) {
			t.Errorf("Split(%d): components do not recompose", in)
		}
	}
}

func TestToTimeRoundTrip(t *testing.T) {
	base := time.Date(2021, time.August, 16, 0, 17, 42, 123456789, time.UTC)
	at := FromTime(base)
	if at != 1629073062123456789 {
		t.Fatalf("FromTime = %d", at)
	}
	if !at.ToTime().Equal(base) {
		t.Errorf("ToTime round trip: got %v", at.ToTime())
	}
}

func TestWeekdayFromTime(t *testing.T) {
	if WeekdayFromTime(time.Sunday) != Sunday {
		t.Error("Sunday should map to 1")
	}
	if WeekdayFromTime(time.Saturday) != Saturday {
		t.Error("Saturday should map to 7")
	}
}

func TestEnumStrings(t *testing.T) {
	if August.String() != "August" {
		t.Errorf("got %q", August.String())
	}
	if Sunday.String() != "Sunday" {
		t.Errorf("got %q", Sunday.String())
	}
	if Month(13).Valid() || Month(0).Valid() {
		t.Error("out-of-range months reported valid")
	}
	if Weekday(8).Valid() || Weekday(0).Valid() {
		t.Error("out-of-range weekdays reported valid")
	}
}
