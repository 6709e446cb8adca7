package deadline_test

import (
	"context"
	"testing"

	"github.com/chronoplane/tzapi"
	"github.com/chronoplane/tzapi/engine"
	"github.com/chronoplane/tzapi/example/deadline"
	"github.com/chronoplane/tzapi/local"
	"github.com/chronoplane/tzapi/types"
	"github.com/chronoplane/tzapi/zonedb"
)

func newConn() tzapi.Connection {
	return local.NewConnection(engine.New(zonedb.Std()))
}

func TestResolveOrdersByInstant(t *testing.T) {
	entries := []deadline.Entry{
		// 17:00 in New York on 2021-08-15 is 21:00 UTC.
		{Name: "us-filing", Civil: types.Date(2021, types.August, 15).At(17, 0, 0, 0).In("America/New_York")},
		// 17:00 in Tokyo the same day is 08:00 UTC — earlier.
		{Name: "jp-filing", Civil: types.Date(2021, types.August, 15).At(17, 0, 0, 0).In("Asia/Tokyo")},
	}
	ds, err := deadline.Resolve(context.Background(), newConn(), entries, types.CivilToAbsoluteOptions{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if ds[0].Name != "jp-filing" || ds[1].Name != "us-filing" {
		t.Errorf("unexpected order: %v", ds)
	}
	if ds[0].At >= ds[1].At {
		t.Error("deadlines not ascending")
	}
}

func TestResolveSkippedTimeSnapsForward(t *testing.T) {
	entries := []deadline.Entry{
		// 02:30 on 2021-03-14 does not exist in New York; the default
		// policy snaps to 03:00 local.
		{Name: "dst-gap", Civil: types.Date(2021, types.March, 14).At(2, 30, 0, 0).In("America/New_York")},
	}
	ds, err := deadline.Resolve(context.Background(), newConn(), entries, types.CivilToAbsoluteOptions{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if ds[0].At != 1615705200*1e9 {
		t.Errorf("got %d", ds[0].At)
	}
}

func TestResolveSkippedTimeRejectPolicy(t *testing.T) {
	entries := []deadline.Entry{
		{Name: "dst-gap", Civil: types.Date(2021, types.March, 14).At(2, 30, 0, 0).In("America/New_York")},
	}
	opts := types.CivilToAbsoluteOptions{SkippedTimeConversion: types.SkippedReject}
	_, err := deadline.Resolve(context.Background(), newConn(), entries, opts)
	if !tzapi.IsInvalidDate(err) {
		t.Errorf("expected invalid-date error, got %v", err)
	}
}

func TestNext(t *testing.T) {
	ds := []deadline.Deadline{
		{Name: "a", At: 100},
		{Name: "b", At: 200},
	}
	if d, ok := deadline.Next(ds, 150); !ok || d.Name != "b" {
		t.Errorf("Next(150) = %v, %v", d, ok)
	}
	if _, ok := deadline.Next(ds, 200); ok {
		t.Error("Next past the last deadline should report none")
	}
}
