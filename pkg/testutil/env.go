package testutil

import (
	"os"
	"strings"
	"testing"
)

// ClearEnv unsets every environment variable starting with prefix for the
// rest of the test. The previous values come back at cleanup.
func ClearEnv(t testing.TB, prefix string) {
	t.Helper()
	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		t.Setenv(name, "")
		_ = os.Unsetenv(name)
	}
}
