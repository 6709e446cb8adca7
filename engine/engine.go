// Package engine implements the time zone conversion engine: the
// stateless core mapping absolute instants to civil times and back.
//
// Every adapter — the in-process connection in local/ and the gRPC
// server in grpc/ — wraps an Engine; the conversion semantics live
// here and nowhere else. Each call resolves its own zone context and
// shares nothing with any other call, so an Engine supports unbounded
// concurrent use with no locking.
package engine

import (
	"github.com/chronoplane/tzapi"
	"github.com/chronoplane/tzapi/types"
	"github.com/chronoplane/tzapi/zonedb"
)

// Compile-time interface check.
var _ tzapi.Converter = (*Engine)(nil)

// Engine converts between absolute and civil time against a zone rule
// database. The zero value is not usable; construct with New.
type Engine struct {
	db          zonedb.Provider
	defaultZone types.TimeZoneID
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithDefaultZone sets the zone substituted for the unspecified
// sentinel identifier. The default is UTC.
func WithDefaultZone(id types.TimeZoneID) Option {
	return func(e *Engine) { e.defaultZone = id }
}

// New creates an Engine backed by the given rule database provider.
func New(db zonedb.Provider, opts ...Option) *Engine {
	e := &Engine{
		db:          db,
		defaultZone: "UTC",
	}
	for _, o := range opts {
		o(e)
	}
	return e
}
