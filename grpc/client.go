package tzgrpc

import (
	"context"
	"fmt"

	"github.com/chronoplane/tzapi"
	"github.com/chronoplane/tzapi/types"

	"google.golang.org/grpc"
)

// Compile-time interface check.
var _ tzapi.Connection = (*Client)(nil)

// Client implements tzapi.Connection for a remote conversion engine
// over gRPC using cramberry serialization. No protobuf types or
// conversion layer required.
type Client struct {
	cc *grpc.ClientConn
}

// Dial connects to a remote TimeZones service.
func Dial(ctx context.Context, addr string, opts ...grpc.DialOption) (*Client, error) {
	opts = append(opts, grpc.WithDefaultCallOptions(
		grpc.ForceCodec(CramberryCodec{}),
	))
	cc, err := grpc.DialContext(ctx, addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("tzapi client: dial %s: %w", addr, err)
	}
	return &Client{cc: cc}, nil
}

func (c *Client) Close() error {
	return c.cc.Close()
}

func (c *Client) AbsoluteToCivilTime(ctx context.Context, id types.TimeZoneID, t types.AbsoluteTime) (types.CivilTime, error) {
	req := &AbsoluteToCivilRequest{TimeZoneID: id, AbsoluteTime: t}
	resp := new(types.CivilTime)
	if err := c.cc.Invoke(ctx, fullMethod("AbsoluteToCivilTime"), req, resp); err != nil {
		return types.CivilTime{}, fromStatusError(err)
	}
	return *resp, nil
}

func (c *Client) CivilToAbsoluteTime(ctx context.Context, civil types.CivilTime, opts types.CivilToAbsoluteOptions) (types.AbsoluteTime, error) {
	req := &CivilToAbsoluteRequest{Civil: civil, Options: opts}
	resp := new(CivilToAbsoluteResponse)
	if err := c.cc.Invoke(ctx, fullMethod("CivilToAbsoluteTime"), req, resp); err != nil {
		return 0, fromStatusError(err)
	}
	return resp.AbsoluteTime, nil
}
