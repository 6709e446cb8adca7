package tzapitest

import (
	"context"
	"testing"

	"github.com/chronoplane/tzapi"
	"github.com/chronoplane/tzapi/types"
)

// Harness wraps a Converter with fatal-on-error helpers so conversion
// tests read as straight-line assertions.
type Harness struct {
	t    *testing.T
	conv tzapi.Converter
}

// NewHarness creates a test harness around the given converter.
func NewHarness(t *testing.T, conv tzapi.Converter) *Harness {
	t.Helper()
	return &Harness{t: t, conv: conv}
}

// Converter returns the wrapped converter for direct access.
func (h *Harness) Converter() tzapi.Converter {
	return h.conv
}

// AbsoluteToCivil converts and fails the test on error.
func (h *Harness) AbsoluteToCivil(id types.TimeZoneID, t types.AbsoluteTime) types.CivilTime {
	h.t.Helper()
	civil, err := h.conv.AbsoluteToCivilTime(context.Background(), id, t)
	if err != nil {
		h.t.Fatalf("AbsoluteToCivilTime(%q, %d): %v", id, t, err)
	}
	return civil
}

// CivilToAbsolute converts with default options and fails the test on
// error.
func (h *Harness) CivilToAbsolute(civil types.CivilTime) types.AbsoluteTime {
	h.t.Helper()
	return h.CivilToAbsoluteOpts(civil, types.CivilToAbsoluteOptions{})
}

// CivilToAbsoluteOpts converts and fails the test on error.
func (h *Harness) CivilToAbsoluteOpts(civil types.CivilTime, opts types.CivilToAbsoluteOptions) types.AbsoluteTime {
	h.t.Helper()
	at, err := h.conv.CivilToAbsoluteTime(context.Background(), civil, opts)
	if err != nil {
		h.t.Fatalf("CivilToAbsoluteTime: %v", err)
	}
	return at
}

// WantCivilToAbsoluteKind asserts that the conversion fails with the
// given error kind and returns the error.
func (h *Harness) WantCivilToAbsoluteKind(civil types.CivilTime, opts types.CivilToAbsoluteOptions, kind tzapi.ErrorKind) error {
	h.t.Helper()
	_, err := h.conv.CivilToAbsoluteTime(context.Background(), civil, opts)
	if err == nil {
		h.t.Fatalf("CivilToAbsoluteTime: expected %s error, got success", kind)
	}
	if got := tzapi.KindOf(err); got != kind {
		h.t.Fatalf("CivilToAbsoluteTime: expected %s error, got %v", kind, err)
	}
	return err
}

// WantAbsoluteToCivilKind asserts that the conversion fails with the
// given error kind and returns the error.
func (h *Harness) WantAbsoluteToCivilKind(id types.TimeZoneID, t types.AbsoluteTime, kind tzapi.ErrorKind) error {
	h.t.Helper()
	_, err := h.conv.AbsoluteToCivilTime(context.Background(), id, t)
	if err == nil {
		h.t.Fatalf("AbsoluteToCivilTime(%q): expected %s error, got success", id, kind)
	}
	if got := tzapi.KindOf(err); got != kind {
		h.t.Fatalf("AbsoluteToCivilTime(%q): expected %s error, got %v", id, kind, err)
	}
	return err
}
