// Package tzapitest provides test utilities for tzapi integrations:
// a configurable mock converter, a test harness, and a reusable
// conversion compliance suite.
package tzapitest

import (
	"context"
	"sync/atomic"

	"github.com/chronoplane/tzapi"
	"github.com/chronoplane/tzapi/types"
)

// Compile-time interface check.
var _ tzapi.Converter = (*MockConverter)(nil)

// MockConverter is a configurable mock for callers that consume a
// tzapi.Converter. Both methods are configurable via function fields;
// unconfigured methods return zero values.
type MockConverter struct {
	AbsoluteToCivilFn func(context.Context, types.TimeZoneID, types.AbsoluteTime) (types.CivilTime, error)
	CivilToAbsoluteFn func(context.Context, types.CivilTime, types.CivilToAbsoluteOptions) (types.AbsoluteTime, error)

	// Call counters (atomic for concurrent access).
	AbsoluteToCivilCalls atomic.Int64
	CivilToAbsoluteCalls atomic.Int64
}

func (m *MockConverter) AbsoluteToCivilTime(ctx context.Context, id types.TimeZoneID, t types.AbsoluteTime) (types.CivilTime, error) {
	m.AbsoluteToCivilCalls.Add(1)
	if m.AbsoluteToCivilFn != nil {
		return m.AbsoluteToCivilFn(ctx, id, t)
	}
	return types.CivilTime{}, nil
}

func (m *MockConverter) CivilToAbsoluteTime(ctx context.Context, civil types.CivilTime, opts types.CivilToAbsoluteOptions) (types.AbsoluteTime, error) {
	m.CivilToAbsoluteCalls.Add(1)
	if m.CivilToAbsoluteFn != nil {
		return m.CivilToAbsoluteFn(ctx, civil, opts)
	}
	return 0, nil
}
