// Package local provides a zero-copy, in-process tzapi connection.
//
// For callers compiled into the same binary as the conversion engine,
// this adapter exposes the engine through the same Connection
// interface the gRPC client implements — with no serialization
// overhead.
package local

import (
	"context"

	"github.com/chronoplane/tzapi"
	"github.com/chronoplane/tzapi/engine"
	"github.com/chronoplane/tzapi/types"
)

// Compile-time interface check.
var _ tzapi.Connection = (*Connection)(nil)

// Connection is an in-process connection to a conversion engine.
type Connection struct {
	eng *engine.Engine
}

// NewConnection creates an in-process connection wrapping the given
// engine.
func NewConnection(eng *engine.Engine) *Connection {
	return &Connection{eng: eng}
}

func (c *Connection) AbsoluteToCivilTime(ctx context.Context, id types.TimeZoneID, t types.AbsoluteTime) (types.CivilTime, error) {
	return c.eng.AbsoluteToCivilTime(ctx, id, t)
}

func (c *Connection) CivilToAbsoluteTime(ctx context.Context, civil types.CivilTime, opts types.CivilToAbsoluteOptions) (types.AbsoluteTime, error) {
	return c.eng.CivilToAbsoluteTime(ctx, civil, opts)
}

func (c *Connection) Close() error { return nil }

// Engine returns the underlying engine for advanced use cases.
func (c *Connection) Engine() *engine.Engine {
	return c.eng
}
