package wiring_test

import (
	"testing"

	"github.com/grindlemire/graft"
)

// TestGraftDependencies checks that every node declaring a dependency uses it
// and every used dependency is declared.
func TestGraftDependencies(t *testing.T) {
	// AssertDepsValid derives the dependency ID from the package of the type passed to Dep[T].
	// Every adapter here is resolved through the shared ports package, so the check cannot
	// tell the executor, logger and store nodes apart.
	t.Skip("graft static analysis cannot map shared ports interfaces to node IDs")
	graft.AssertDepsValid(t, "../../internal")
}
