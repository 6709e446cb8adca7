// Package tzapi defines the Time Zone API — a transport-agnostic
// boundary between callers that need civil/absolute time conversion
// and the engine that implements it.
//
// The core [Converter] interface is the entire surface: two stateless,
// side-effect-free operations. The in-process adapter in local/ and
// the gRPC adapter in grpc/ expose the same interface, so callers are
// written once against Converter and wired to either.
package tzapi

import (
	"context"

	"github.com/chronoplane/tzapi/types"
)

// Converter converts between absolute instants and civil (broken-down
// calendar) times in named zones.
//
// Every call is independent: implementations hold no mutable state
// between calls and must be safe for unbounded concurrent use. All
// failures are returned as *Error values classified by ErrorKind.
type Converter interface {
	// AbsoluteToCivilTime converts a zone-independent instant into its
	// civil representation in the given zone.
	//
	// The empty identifier selects the engine's default zone.
	// Conversion in this direction is never ambiguous: the zone offset
	// (including DST) is fully determined by the instant.
	//
	// Fails with KindUnknownTimeZone if the identifier is not in the
	// rule database, or KindInternal for rule-database faults.
	AbsoluteToCivilTime(ctx context.Context, id types.TimeZoneID, t types.AbsoluteTime) (types.CivilTime, error)

	// CivilToAbsoluteTime converts civil fields into the absolute
	// instant they denote in their zone.
	//
	// Year, month and day are required. A wall-clock time that occurs
	// twice (fall-back) or never (spring-forward) is resolved per the
	// options. Weekday and year-day, when set, are redundant
	// assertions checked against the computed date.
	//
	// Fails with KindUnknownTimeZone or KindInvalidDate for caller
	// input, KindInternal otherwise.
	CivilToAbsoluteTime(ctx context.Context, civil types.CivilTime, opts types.CivilToAbsoluteOptions) (types.AbsoluteTime, error)
}

// Connection represents a transport-agnostic connection to a
// conversion engine. Both gRPC clients and in-process adapters
// implement this.
type Connection interface {
	Converter

	// Close terminates the connection.
	Close() error
}
