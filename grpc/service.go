package tzgrpc

import (
	"context"
	"fmt"

	"github.com/chronoplane/tzapi/types"

	"google.golang.org/grpc"
)

const serviceName = "chronoplane.tzapi.v1.TimeZonesService"

// TimeZonesServiceServer is the server-side interface for the tzapi
// gRPC service.
type TimeZonesServiceServer interface {
	AbsoluteToCivilTime(context.Context, *AbsoluteToCivilRequest) (*types.CivilTime, error)
	CivilToAbsoluteTime(context.Context, *CivilToAbsoluteRequest) (*CivilToAbsoluteResponse, error)
}

// RegisterTimeZonesServiceServer registers the service on a gRPC server.
func RegisterTimeZonesServiceServer(s *grpc.Server, srv TimeZonesServiceServer) {
	s.RegisterService(&serviceDesc, srv)
}

// --- Handler functions ---

func handlerAbsoluteToCivilTime(srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor) (any, error) {
	req := new(AbsoluteToCivilRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(TimeZonesServiceServer).AbsoluteToCivilTime(ctx, req)
}

func handlerCivilToAbsoluteTime(srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor) (any, error) {
	req := new(CivilToAbsoluteRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(TimeZonesServiceServer).CivilToAbsoluteTime(ctx, req)
}

// fullMethod builds the full gRPC method path.
func fullMethod(method string) string {
	return fmt.Sprintf("/%s/%s", serviceName, method)
}

// serviceDesc is the manual gRPC service descriptor for the
// TimeZones service.
var serviceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*TimeZonesServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "AbsoluteToCivilTime", Handler: handlerAbsoluteToCivilTime},
		{MethodName: "CivilToAbsoluteTime", Handler: handlerCivilToAbsoluteTime},
	},
	Metadata: "chronoplane/tzapi/v1/service.cram",
}
