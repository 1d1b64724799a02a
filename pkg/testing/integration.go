// Package testing starts throwaway backing services for integration tests.
package testing

import (
	"os"
	"testing"
)

const (
	PGIntegration     = "PG_INTEGRATION"
	ESIntegration     = "ES_INTEGRATION"
	ChromaIntegration = "CHROMA_INTEGRATION"
)

// IntegrationEnabled reports whether the container suite behind envVar should run.
func IntegrationEnabled(envVar string) bool {
	return os.Getenv(envVar) != ""
}

// RequireIntegration skips tb unless envVar is set.
func RequireIntegration(tb testing.TB, envVar string) {
	tb.Helper()
	if !IntegrationEnabled(envVar) {
		tb.Skipf("set %s to run against a container", envVar)
	}
}
