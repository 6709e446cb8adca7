package local_test

import (
	"testing"

	"github.com/chronoplane/tzapi"
	"github.com/chronoplane/tzapi/engine"
	"github.com/chronoplane/tzapi/local"
	tzapitest "github.com/chronoplane/tzapi/testing"
	"github.com/chronoplane/tzapi/zonedb"
)

func TestLocal_Compliance(t *testing.T) {
	tzapitest.RunConversionSuite(t, func() tzapi.Converter {
		return local.NewConnection(engine.New(zonedb.Std()))
	})
}

func TestClose(t *testing.T) {
	conn := local.NewConnection(engine.New(zonedb.Std()))
	if err := conn.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestEngineAccessor(t *testing.T) {
	eng := engine.New(zonedb.Std())
	conn := local.NewConnection(eng)
	if conn.Engine() != eng {
		t.Error("Engine() should return the wrapped engine")
	}
}
