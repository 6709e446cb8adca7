// Package zonedb is the boundary to the time-zone rule database: the
// external, read-only source mapping zone identifiers to their UTC
// offset transition rules.
//
// The engine queries the database through the Provider interface. The
// standard provider is backed by the Go runtime's IANA database (the
// system zoneinfo directory, the ZONEINFO environment variable, or an
// embedded copy when the binary imports time/tzdata).
package zonedb

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrZoneNotFound is wrapped by Provider.Load when the identifier is
// not present in the rule database.
var ErrZoneNotFound = errors.New("zonedb: zone not found")

// Provider resolves zone identifier strings against a rule database.
//
// The database is read-only after initialization, so implementations
// must be safe for concurrent use without synchronization on the read
// path.
type Provider interface {
	// Load returns the location for the given identifier, or an error
	// wrapping ErrZoneNotFound when the database does not know it.
	Load(id string) (*time.Location, error)
}

const unknownZoneName = "Etc/Unknown"

// StdProvider is the rule database provider backed by the Go runtime.
//
// Initialization is lazy, idempotent and safe to race: multiple
// independent users in one process may call Init (or just Load)
// concurrently and only the first call does any work.
type StdProvider struct {
	initOnce sync.Once
	initErr  error
	unknown  *time.Location
}

var std StdProvider

// Std returns the process-wide standard provider.
func Std() *StdProvider { return &std }

// Init loads the rule database. Calling it more than once is a no-op
// returning the first result.
func (p *StdProvider) Init() error {
	p.initOnce.Do(func() {
		// The canonical unknown-zone placeholder is not part of the
		// IANA data; the database answers for it with its own fixed
		// fallback zone.
		p.unknown = time.FixedZone(unknownZoneName, 0)

		if _, err := time.LoadLocation("UTC"); err != nil {
			p.initErr = fmt.Errorf("zonedb: rule database unavailable: %w", err)
		}
	})
	return p.initErr
}

// Load resolves an identifier to its location.
func (p *StdProvider) Load(id string) (*time.Location, error) {
	if err := p.Init(); err != nil {
		return nil, err
	}
	if id == unknownZoneName {
		return p.unknown, nil
	}
	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, fmt.Errorf("zonedb: %q: %w", id, ErrZoneNotFound)
	}
	return loc, nil
}
