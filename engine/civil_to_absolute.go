package engine

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/chronoplane/tzapi"
	"github.com/chronoplane/tzapi/types"
)

const nsPerSec = int64(time.Second)

// The representable range keeps a one-second safety margin so the
// nanosecond remainder can always be added after the check.
const (
	maxWholeSeconds = (math.MaxInt64 - nsPerSec) / nsPerSec
	minWholeSeconds = (math.MinInt64 + nsPerSec) / nsPerSec
)

// CivilToAbsoluteTime converts civil fields into the absolute instant
// they denote in their zone, applying the transition-disambiguation
// policies in opts.
//
// Year, month and day are required; the remaining fields default per
// the CivilTime contract. Selecting an unimplemented repeated-time
// policy is a caller programming error and panics rather than
// silently picking a semantic the caller did not ask for.
func (e *Engine) CivilToAbsoluteTime(_ context.Context, civil types.CivilTime, opts types.CivilToAbsoluteOptions) (types.AbsoluteTime, error) {
	if !requiredFieldsPresent(civil) {
		return 0, tzapi.InvalidDateError("year, month and day are required")
	}
	zone, err := e.resolve(civil.TimeZoneID)
	if err != nil {
		return 0, err
	}
	if err := checkFieldRanges(civil); err != nil {
		return 0, err
	}

	switch opts.RepeatedTimeConversion {
	case types.RepeatedBeforeTransition:
		// The only implemented policy: a repeated wall time resolves
		// to the earlier of its two instants.
	default:
		panic(fmt.Sprintf("tzapi/engine: unimplemented repeated-time policy %s", opts.RepeatedTimeConversion))
	}

	fields := wallFields{
		year:  int(*civil.Year),
		month: time.Month(*civil.Month),
		day:   int(*civil.Day),
		hour:  int(civil.Hour),
		min:   int(civil.Minute),
		sec:   int(civil.Second),
	}
	resolved, substituted, err := resolveWall(fields, zone.loc, opts.SkippedTimeConversion)
	if err != nil {
		return 0, err
	}

	if !redundantFieldsConsistent(civil, resolved) {
		return 0, tzapi.InvalidDateError("weekday or year-day assertion does not match %04d-%02d-%02d",
			*civil.Year, *civil.Month, *civil.Day)
	}

	secs := resolved.Unix()
	if secs < minWholeSeconds || secs > maxWholeSeconds {
		return 0, tzapi.InvalidDateError("%04d-%02d-%02d is outside the representable instant range",
			*civil.Year, *civil.Month, *civil.Day)
	}

	result := secs * nsPerSec
	if !substituted {
		// A skipped-time substitution drops the fractional second:
		// the substituted wall second is already only the nearest
		// valid approximation of the caller's input.
		result += int64(civil.Nanos)
	}
	return types.AbsoluteTime(result), nil
}

// wallFields is a wall-clock reading stripped of zone information.
type wallFields struct {
	year           int
	month          time.Month
	day            int
	hour, min, sec int
}

// resolveWall finds the instant whose wall clock in loc reads exactly
// the given fields. A repeated wall time yields the earlier of its
// instants; a skipped wall time is resolved per the policy. The bool
// result reports whether a skipped-time substitution occurred.
func resolveWall(f wallFields, loc *time.Location, skipped types.SkippedTimeConversion) (time.Time, bool, error) {
	// The pseudo-instant: the wall fields read as if they were UTC.
	// Every real solution is this value shifted by one of the zone's
	// nearby UTC offsets.
	wall := time.Date(f.year, f.month, f.day, f.hour, f.min, f.sec, 0, time.UTC).Unix()

	offsets := probeOffsets(wall, loc)

	var solutions []int64
	for _, off := range offsets {
		cand := wall - int64(off)
		if matchesWall(cand, loc, f) {
			solutions = append(solutions, cand)
		}
	}
	if len(solutions) > 0 {
		sort.Slice(solutions, func(i, j int) bool { return solutions[i] < solutions[j] })
		return time.Unix(solutions[0], 0).In(loc), false, nil
	}

	// No instant reads these fields: the wall time falls inside a
	// spring-forward gap.
	if skipped == types.SkippedReject {
		return time.Time{}, false, tzapi.InvalidDateError(
			"%04d-%02d-%02d %02d:%02d:%02d does not exist in zone %s",
			f.year, f.month, f.day, f.hour, f.min, f.sec, loc)
	}
	next, err := nextValidInstant(wall, offsets, loc)
	if err != nil {
		return time.Time{}, false, err
	}
	return next, true, nil
}

// probeOffsets returns the distinct UTC offsets (seconds) in effect in
// the two days around the pseudo-instant, largest first. Any
// transition affecting the wall fields uses one of these.
func probeOffsets(wall int64, loc *time.Location) []int {
	var out []int
	for _, d := range []int64{-86400, 0, 86400} {
		_, off := time.Unix(wall+d, 0).In(loc).Zone()
		seen := false
		for _, o := range out {
			if o == off {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, off)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

// matchesWall reports whether the instant sec reads exactly the wall
// fields f in loc.
func matchesWall(sec int64, loc *time.Location, f wallFields) bool {
	t := time.Unix(sec, 0).In(loc)
	return t.Year() == f.year && t.Month() == f.month && t.Day() == f.day &&
		t.Hour() == f.hour && t.Minute() == f.min && t.Second() == f.sec
}

// nextValidInstant locates the transition that closes the gap holding
// the wall fields: the first instant at which the clock has jumped
// past them. This is the "next valid wall time" substitute.
func nextValidInstant(wall int64, offsets []int, loc *time.Location) (time.Time, error) {
	if len(offsets) < 2 {
		return time.Time{}, tzapi.InternalError("no transition found near nonexistent wall time")
	}

	// The gap is bracketed by the candidates built from the largest
	// and smallest nearby offsets: lo sits before the transition, hi
	// after it.
	lo := wall - int64(offsets[0])
	hi := wall - int64(offsets[len(offsets)-1])

	_, target := time.Unix(hi, 0).In(loc).Zone()
	if _, atLo := time.Unix(lo, 0).In(loc).Zone(); atLo == target {
		return time.Time{}, tzapi.InternalError("transition search bracket collapsed")
	}

	// Binary search for the first second carrying the post-transition
	// offset.
	for hi-lo > 1 {
		mid := lo + (hi-lo)/2
		if _, off := time.Unix(mid, 0).In(loc).Zone(); off == target {
			hi = mid
		} else {
			lo = mid
		}
	}
	return time.Unix(hi, 0).In(loc), nil
}
