package tzgrpc

import (
	"context"
	"net"

	"github.com/chronoplane/tzapi"
	"github.com/chronoplane/tzapi/types"

	"google.golang.org/grpc"
)

// Compile-time interface check.
var _ TimeZonesServiceServer = (*GRPCServer)(nil)

// GRPCServer exposes a Converter as a gRPC service. No type
// conversion is needed — domain types are serialized directly via
// cramberry.
type GRPCServer struct {
	conv tzapi.Converter
}

// NewGRPCServer creates a gRPC server adapter around the given
// converter.
func NewGRPCServer(conv tzapi.Converter) *GRPCServer {
	return &GRPCServer{conv: conv}
}

// Register adds the TimeZones service to a gRPC server.
func (s *GRPCServer) Register(gs *grpc.Server) {
	RegisterTimeZonesServiceServer(gs, s)
}

// Serve starts a gRPC server on the given listener.
func (s *GRPCServer) Serve(lis net.Listener, opts ...grpc.ServerOption) error {
	gs := grpc.NewServer(opts...)
	s.Register(gs)
	return gs.Serve(lis)
}

// --- RPCs ---

func (s *GRPCServer) AbsoluteToCivilTime(ctx context.Context, req *AbsoluteToCivilRequest) (*types.CivilTime, error) {
	civil, err := s.conv.AbsoluteToCivilTime(ctx, req.TimeZoneID, req.AbsoluteTime)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &civil, nil
}

func (s *GRPCServer) CivilToAbsoluteTime(ctx context.Context, req *CivilToAbsoluteRequest) (*CivilToAbsoluteResponse, error) {
	at, err := s.conv.CivilToAbsoluteTime(ctx, req.Civil, req.Options)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &CivilToAbsoluteResponse{AbsoluteTime: at}, nil
}
