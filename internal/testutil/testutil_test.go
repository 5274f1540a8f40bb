package testutil

import (
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wordbook/internal/dictionary"
)

func TestSetupTestConfig(t *testing.T) {
	tmpDir := t.TempDir()

	cfgPath := SetupTestConfig(t, tmpDir, 5050)

	content, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "port: 5050")
	assert.Contains(t, string(content), "shutdown_timeout_seconds: 1")
}

func TestNewTestServer(t *testing.T) {
	ts := NewTestServer(t, WithEntries(dictionary.Entry{Word: "apple", Definition: "a fruit"}))

	response, err := http.Get(ts.URL + "/api/definitions?word=apple")
	require.NoError(t, err)
	defer func() {
		_ = response.Body.Close()
	}()

	body, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.JSONEq(t, `{"word":"apple","definition":"a fruit"}`, string(body))
}
