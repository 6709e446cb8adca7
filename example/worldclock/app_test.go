package worldclock_test

import (
	"context"
	"strings"
	"testing"

	"github.com/chronoplane/tzapi"
	"github.com/chronoplane/tzapi/engine"
	"github.com/chronoplane/tzapi/example/worldclock"
	"github.com/chronoplane/tzapi/local"
	"github.com/chronoplane/tzapi/types"
	"github.com/chronoplane/tzapi/zonedb"
)

func newConn() tzapi.Connection {
	return local.NewConnection(engine.New(zonedb.Std()))
}

func TestRows(t *testing.T) {
	app := worldclock.New(newConn(), "America/New_York", "Asia/Tokyo", "UTC")
	rows, err := app.Rows(context.Background(), 1629073062*1e9+123456789)
	if err != nil {
		t.Fatalf("Rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	ny := rows[0].Civil
	if *ny.Day != 15 || ny.Hour != 20 || ny.Minute != 17 {
		t.Errorf("New York: %s", worldclock.FormatCivil(ny))
	}
	// Tokyo is already past midnight on the 16th.
	tokyo := rows[1].Civil
	if *tokyo.Day != 16 || tokyo.Hour != 9 {
		t.Errorf("Tokyo: %s", worldclock.FormatCivil(tokyo))
	}
}

func TestRender(t *testing.T) {
	app := worldclock.New(newConn(), "UTC")
	out, err := app.Render(context.Background(), 1629073062*1e9+123456789)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "2021-08-16 00:17:42.123456789 Monday"
	if !strings.Contains(out, want) {
		t.Errorf("output %q does not contain %q", out, want)
	}
}

func TestRowsUnknownZone(t *testing.T) {
	app := worldclock.New(newConn(), "UTC", "Not/AZone")
	_, err := app.Rows(context.Background(), 0)
	if !tzapi.IsUnknownTimeZone(err) {
		t.Errorf("expected unknown-time-zone error, got %v", err)
	}
}

func TestFormatCivilOmitsZeroFraction(t *testing.T) {
	c := types.Date(2021, types.August, 15).At(20, 17, 42, 0)
	if got := worldclock.FormatCivil(c); got != "2021-08-15 20:17:42" {
		t.Errorf("got %q", got)
	}
}
