package types

import "fmt"

// RepeatedTimeConversion selects how a wall-clock time that occurs
// twice (a fall-back transition) resolves to an instant.
type RepeatedTimeConversion uint8

const (
	// RepeatedBeforeTransition picks the earlier of the two instants
	// that share the wall-clock value. This is the default and the
	// only implemented policy; selecting any other declared variant
	// panics rather than silently defaulting.
	RepeatedBeforeTransition RepeatedTimeConversion = iota

	// RepeatedAfterTransition is declared for wire compatibility but
	// not implemented.
	RepeatedAfterTransition
)

// String returns a human-readable name for the policy.
func (p RepeatedTimeConversion) String() string {
	switch p {
	case RepeatedBeforeTransition:
		return "BeforeTransition"
	case RepeatedAfterTransition:
		return "AfterTransition"
	default:
		return fmt.Sprintf("RepeatedTimeConversion(%d)", uint8(p))
	}
}

// SkippedTimeConversion selects how a wall-clock time that never
// occurs (a spring-forward gap) resolves.
type SkippedTimeConversion uint8

const (
	// SkippedNextValidTime substitutes the next wall-clock time that
	// does exist — the transition instant itself. The caller's
	// fractional second is dropped when this substitution happens.
	// This is the default.
	SkippedNextValidTime SkippedTimeConversion = iota

	// SkippedReject fails the conversion with an invalid-date error.
	SkippedReject
)

// String returns a human-readable name for the policy.
func (p SkippedTimeConversion) String() string {
	switch p {
	case SkippedNextValidTime:
		return "NextValidTime"
	case SkippedReject:
		return "Reject"
	default:
		return fmt.Sprintf("SkippedTimeConversion(%d)", uint8(p))
	}
}

// CivilToAbsoluteOptions carries the transition-disambiguation
// policies for CivilToAbsoluteTime. The zero value selects the
// defaults for both.
type CivilToAbsoluteOptions struct {
	RepeatedTimeConversion RepeatedTimeConversion `cramberry:"1"`
	SkippedTimeConversion  SkippedTimeConversion  `cramberry:"2"`
}
