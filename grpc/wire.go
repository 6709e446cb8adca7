package tzgrpc

import "github.com/chronoplane/tzapi/types"

// Transport-specific wrapper types for RPC methods whose interface
// signatures don't map to a single request/response struct. These are
// used only at the gRPC serialization boundary.

// AbsoluteToCivilRequest wraps the parameters of
// Converter.AbsoluteToCivilTime.
type AbsoluteToCivilRequest struct {
	TimeZoneID   types.TimeZoneID   `cramberry:"1"`
	AbsoluteTime types.AbsoluteTime `cramberry:"2"`
}

// CivilToAbsoluteRequest wraps the parameters of
// Converter.CivilToAbsoluteTime.
type CivilToAbsoluteRequest struct {
	Civil   types.CivilTime              `cramberry:"1"`
	Options types.CivilToAbsoluteOptions `cramberry:"2"`
}

// CivilToAbsoluteResponse wraps the scalar result of
// Converter.CivilToAbsoluteTime.
type CivilToAbsoluteResponse struct {
	AbsoluteTime types.AbsoluteTime `cramberry:"1"`
}
