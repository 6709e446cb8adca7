package engine

import (
	"errors"
	"time"

	"github.com/chronoplane/tzapi"
	"github.com/chronoplane/tzapi/types"
	"github.com/chronoplane/tzapi/zonedb"
)

// zoneContext is the request-scoped calendar context: a resolved
// location plus the identifier it resolved under. A fresh context is
// built per call and discarded with it; contexts are never pooled or
// shared between calls.
type zoneContext struct {
	id  types.TimeZoneID
	loc *time.Location
}

// resolve maps a zone identifier to a fresh zone context.
//
// The unspecified sentinel is substituted with the engine default
// before resolution. The canonical unknown-zone placeholder resolves
// successfully to the database's own fallback; only identifiers the
// database does not recognize fail, with a KindUnknownTimeZone error.
func (e *Engine) resolve(id types.TimeZoneID) (zoneContext, error) {
	if id == types.DefaultTimeZoneID {
		id = e.defaultZone
	}
	loc, err := e.db.Load(string(id))
	if err != nil {
		if errors.Is(err, zonedb.ErrZoneNotFound) {
			return zoneContext{}, tzapi.UnknownTimeZoneError(string(id))
		}
		return zoneContext{}, tzapi.InternalError("resolving zone %q: %v", id, err)
	}
	return zoneContext{id: id, loc: loc}, nil
}
