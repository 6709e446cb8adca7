package tzgrpc

import (
	"github.com/chronoplane/tzapi"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// The typed error taxonomy must survive the wire: the server maps
// each kind onto a gRPC status code and the client reconstructs the
// typed error, so callers see identical errors over any transport.

func toStatusError(err error) error {
	e, ok := tzapi.AsError(err)
	if !ok {
		return err
	}
	var code codes.Code
	switch e.Kind {
	case tzapi.KindUnknownTimeZone:
		code = codes.NotFound
	case tzapi.KindInvalidDate:
		code = codes.InvalidArgument
	default:
		code = codes.Internal
	}
	return status.Error(code, e.Msg)
}

func fromStatusError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.NotFound:
		return &tzapi.Error{Kind: tzapi.KindUnknownTimeZone, Msg: st.Message()}
	case codes.InvalidArgument:
		return &tzapi.Error{Kind: tzapi.KindInvalidDate, Msg: st.Message()}
	case codes.Internal:
		return &tzapi.Error{Kind: tzapi.KindInternal, Msg: st.Message()}
	default:
		return err
	}
}
