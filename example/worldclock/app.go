// Package worldclock implements a minimal tzapi example that renders
// one absolute instant across a list of zones. It demonstrates the
// AbsoluteToCivilTime operation through the transport-agnostic
// Converter interface.
package worldclock

import (
	"context"
	"fmt"
	"strings"

	"github.com/chronoplane/tzapi"
	"github.com/chronoplane/tzapi/types"
)

// Row is one zone's civil reading of the instant.
type Row struct {
	Zone  types.TimeZoneID
	Civil types.CivilTime
}

// App renders instants across a fixed zone list.
type App struct {
	conv  tzapi.Converter
	zones []types.TimeZoneID
}

// New creates a world clock over the given zones.
func New(conv tzapi.Converter, zones ...types.TimeZoneID) *App {
	return &App{conv: conv, zones: zones}
}

// Rows converts the instant into every configured zone, in order.
func (a *App) Rows(ctx context.Context, t types.AbsoluteTime) ([]Row, error) {
	rows := make([]Row, 0, len(a.zones))
	for _, z := range a.zones {
		civil, err := a.conv.AbsoluteToCivilTime(ctx, z, t)
		if err != nil {
			return nil, fmt.Errorf("worldclock: zone %q: %w", z, err)
		}
		rows = append(rows, Row{Zone: z, Civil: civil})
	}
	return rows, nil
}

// Render formats the instant as one line per zone.
func (a *App) Render(ctx context.Context, t types.AbsoluteTime) (string, error) {
	rows, err := a.Rows(ctx, t)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&b, "%-24s %s\n", r.Zone, FormatCivil(r.Civil))
	}
	return b.String(), nil
}

// FormatCivil renders a complete civil time as
// "2021-08-15 20:17:42.123456789 Sunday".
func FormatCivil(c types.CivilTime) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%04d-%02d-%02d %02d:%02d:%02d",
		*c.Year, *c.Month, *c.Day, c.Hour, c.Minute, c.Second)
	if c.Nanos != 0 {
		fmt.Fprintf(&b, ".%09d", c.Nanos)
	}
	if c.Weekday != nil {
		fmt.Fprintf(&b, " %s", *c.Weekday)
	}
	return b.String()
}
