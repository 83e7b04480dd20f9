// Package testutil provides common utility functions for testing.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SampleConfig is a calculation file covering every mode.
const SampleConfig = `logging:
  level: debug
  format: console
output:
  format: csv
  currency: "$"
calculations:
  - name: retirement
    mode: sip
    principal: 1000
    rate: 12
    years: 10
  - name: savings bond
    mode: simple
    principal: 10000
    rate: 5
    years: 3
  - name: fixed deposit
    mode: compound
    principal: 10000
    rate: 12
    years: 1
    frequency: Monthly
`

// WriteConfig writes contents to name inside a per-test temporary directory
// and returns the full path.
func WriteConfig(t testing.TB, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}
