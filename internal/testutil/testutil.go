// Package testutil provides shared test helpers for creating config files and running a test server.
package testutil

import (
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wordbook/internal/dictionary"
	"github.com/at-ishikawa/wordbook/internal/messages"
	"github.com/at-ishikawa/wordbook/internal/server"
)

// SetupTestConfig writes a config file that listens on port into tmpDir.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, port int) string {
	t.Helper()

	configContent := fmt.Sprintf(`server:
  port: %d
  shutdown_timeout_seconds: 1
log:
  debug: true
`, port)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// ServerOption configures the store behind a test server.
type ServerOption func(*testServerConfig)

type testServerConfig struct {
	entries []dictionary.Entry
}

// WithEntries preloads entries into the test server's store.
func WithEntries(entries ...dictionary.Entry) ServerOption {
	return func(cfg *testServerConfig) {
		cfg.entries = append(cfg.entries, entries...)
	}
}

// NewTestServer starts an httptest server backed by an in-memory store.
// The server is closed when the test ends.
func NewTestServer(t *testing.T, opts ...ServerOption) *httptest.Server {
	t.Helper()

	var cfg testServerConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	store := dictionary.NewMemoryStore()
	for _, e := range cfg.entries {
		store.Insert(e.Word, e.Definition)
	}

	service, err := server.NewService(store, messages.Default())
	require.NoError(t, err)

	ts := httptest.NewServer(service)
	t.Cleanup(ts.Close)
	return ts
}
