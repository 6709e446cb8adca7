// Package deadline implements a tzapi example that turns civil
// wall-clock deadlines in different zones into one ordered schedule.
// It demonstrates the CivilToAbsoluteTime operation, including the
// transition-disambiguation options.
package deadline

import (
	"context"
	"fmt"
	"sort"

	"github.com/chronoplane/tzapi"
	"github.com/chronoplane/tzapi/types"
)

// Entry is a named wall-clock deadline in a zone.
type Entry struct {
	Name  string
	Civil types.CivilTime
}

// Deadline is a resolved entry: the absolute instant its wall clock
// denotes.
type Deadline struct {
	Name string
	Zone types.TimeZoneID
	At   types.AbsoluteTime
}

// Resolve converts every entry and returns the deadlines ordered by
// instant, earliest first. A wall time that falls in a spring-forward
// gap resolves per opts; with the default options it snaps to the
// next valid time instead of failing.
func Resolve(ctx context.Context, conv tzapi.Converter, entries []Entry, opts types.CivilToAbsoluteOptions) ([]Deadline, error) {
	out := make([]Deadline, 0, len(entries))
	for _, e := range entries {
		at, err := conv.CivilToAbsoluteTime(ctx, e.Civil, opts)
		if err != nil {
			return nil, fmt.Errorf("deadline: %s: %w", e.Name, err)
		}
		out = append(out, Deadline{Name: e.Name, Zone: e.Civil.TimeZoneID, At: at})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].At < out[j].At })
	return out, nil
}

// Next returns the first deadline strictly after now, if any.
func Next(deadlines []Deadline, now types.AbsoluteTime) (Deadline, bool) {
	for _, d := range deadlines {
		if d.At > now {
			return d, true
		}
	}
	return Deadline{}, false
}
