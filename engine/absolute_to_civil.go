package engine

import (
	"context"
	"math"
	"time"

	"github.com/chronoplane/tzapi"
	"github.com/chronoplane/tzapi/types"
)

// AbsoluteToCivilTime converts an absolute instant into its civil
// representation in the given zone.
//
// The calendar works in whole seconds; the sub-second remainder is
// split off first, carried alongside, and reattached to the result.
// Conversion in this direction is never ambiguous — the zone offset
// for an instant is fully determined — so the only possible failures
// are an unknown zone and internal calendar faults.
func (e *Engine) AbsoluteToCivilTime(_ context.Context, id types.TimeZoneID, t types.AbsoluteTime) (types.CivilTime, error) {
	zone, err := e.resolve(id)
	if err != nil {
		return types.CivilTime{}, err
	}

	secs, nanos := t.Split()
	local := time.Unix(secs, 0).In(zone.loc)

	year := local.Year()
	if year < math.MinInt16 || year > math.MaxInt16 {
		// Unreachable for any int64 nanosecond instant; kept as a
		// malformed-calendar guard.
		return types.CivilTime{}, tzapi.InternalError("computed year %d outside civil range", year)
	}

	y := int16(year)
	m := types.MonthFromTime(local.Month())
	d := uint8(local.Day())
	w := types.WeekdayFromTime(local.Weekday())
	yd := uint16(local.YearDay() - 1) // 0-based

	return types.CivilTime{
		Year:       &y,
		Month:      &m,
		Day:        &d,
		Hour:       uint8(local.Hour()),
		Minute:     uint8(local.Minute()),
		Second:     uint8(local.Second()),
		Nanos:      uint32(nanos),
		Weekday:    &w,
		YearDay:    &yd,
		TimeZoneID: zone.id,
	}, nil
}
