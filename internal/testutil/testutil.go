// Package testutil provides shared test helpers for config files and
// dictionary fixtures.
package testutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupTestConfig creates a minimal config file and cache directory for
// testing. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, dictionaryURL string) string {
	t.Helper()

	cacheDir := filepath.Join(tmpDir, "caches")
	require.NoError(t, os.MkdirAll(cacheDir, 0755))

	configContent := fmt.Sprintf(`dictionary:
  url: %s
  ttl_days: 30
cache:
  backend: file
  directory: %s
`,
		dictionaryURL,
		cacheDir,
	)

	configFile := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(configContent), 0644))
	return configFile
}

// SnapshotJSON encodes a bulk dictionary payload fixture, shaped
// { character: { tonedPinyin: [definitions] } }.
func SnapshotJSON(t *testing.T, entries map[string]map[string][]string) []byte {
	t.Helper()

	payload, err := json.Marshal(entries)
	require.NoError(t, err)
	return payload
}
