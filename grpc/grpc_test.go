package tzgrpc_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/chronoplane/tzapi"
	"github.com/chronoplane/tzapi/engine"
	tzgrpc "github.com/chronoplane/tzapi/grpc"
	tzapitest "github.com/chronoplane/tzapi/testing"
	"github.com/chronoplane/tzapi/types"
	"github.com/chronoplane/tzapi/zonedb"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// startServer starts a gRPC server on a random port and returns the
// listener address and a cleanup function.
func startServer(t *testing.T, gs *tzgrpc.GRPCServer) (string, func()) {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	s := grpc.NewServer()
	gs.Register(s)

	go func() {
		if err := s.Serve(lis); err != nil {
			// Ignore errors from graceful stop.
		}
	}()

	return lis.Addr().String(), func() {
		s.GracefulStop()
	}
}

func dial(t *testing.T, addr string) *tzgrpc.Client {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client, err := tzgrpc.Dial(ctx, addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	return client
}

func TestGRPC_Compliance(t *testing.T) {
	gs := tzgrpc.NewGRPCServer(engine.New(zonedb.Std()))
	addr, cleanup := startServer(t, gs)
	defer cleanup()

	client := dial(t, addr)
	defer client.Close()

	tzapitest.RunConversionSuite(t, func() tzapi.Converter {
		return client
	})
}

func TestGRPC_TypedErrorsSurviveWire(t *testing.T) {
	gs := tzgrpc.NewGRPCServer(engine.New(zonedb.Std()))
	addr, cleanup := startServer(t, gs)
	defer cleanup()

	client := dial(t, addr)
	defer client.Close()

	ctx := context.Background()

	_, err := client.AbsoluteToCivilTime(ctx, "Not/AZone", 0)
	if !tzapi.IsUnknownTimeZone(err) {
		t.Errorf("expected unknown-time-zone error over the wire, got %v", err)
	}

	civil := types.Date(2021, types.March, 14).At(2, 30, 0, 0).In("America/New_York")
	opts := types.CivilToAbsoluteOptions{SkippedTimeConversion: types.SkippedReject}
	_, err = client.CivilToAbsoluteTime(ctx, civil, opts)
	if !tzapi.IsInvalidDate(err) {
		t.Errorf("expected invalid-date error over the wire, got %v", err)
	}
}

func TestGRPC_SubSecondFieldsRoundTrip(t *testing.T) {
	gs := tzgrpc.NewGRPCServer(engine.New(zonedb.Std()))
	addr, cleanup := startServer(t, gs)
	defer cleanup()

	client := dial(t, addr)
	defer client.Close()

	civil, err := client.AbsoluteToCivilTime(context.Background(), "America/New_York", 1629073062*1e9+123456789)
	if err != nil {
		t.Fatalf("AbsoluteToCivilTime: %v", err)
	}
	if civil.Nanos != 123456789 {
		t.Errorf("nanos lost in serialization: %d", civil.Nanos)
	}
	if civil.Weekday == nil || *civil.Weekday != types.Sunday {
		t.Errorf("optional fields lost in serialization: %+v", civil)
	}
}
