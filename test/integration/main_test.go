// Package integration_test runs the compiled pomo binary end to end.
// TestMain builds it once; every test gets its own POMO_HOME.
package integration_test

import (
	"log"
	"os"
	"testing"

	"pomo/test/integration/harness"
)

func TestMain(m *testing.M) {
	if _, err := harness.BuildBinary(); err != nil {
		log.Fatalf("Failed to build binary: %v", err)
	}

	code := m.Run()

	harness.CleanupBinary()

	os.Exit(code)
}
