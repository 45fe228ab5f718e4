package pathledger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestLedger builds a ledger over a temp rc file with a no-op Setenv so
// tests never mutate the real process environment.
func newTestLedger(t *testing.T, rcPath, livePath string) *Ledger {
	t.Helper()
	l := New(rcPath, livePath)
	l.Setenv = func(key, value string) error { return nil }
	return l
}

func TestRegisterCreatesExportLine(t *testing.T) {
	rc := filepath.Join(t.TempDir(), ".zshrc")
	l := newTestLedger(t, rc, "/usr/bin:/bin")

	require.NoError(t, l.Register("/opt/homebrew/bin"))

	data, err := os.ReadFile(rc)
	require.NoError(t, err)
	assert.Equal(t, "export PATH=\"/opt/homebrew/bin:$PATH\"\n", string(data))
}

func TestRegisterIsIdempotent(t *testing.T) {
	rc := filepath.Join(t.TempDir(), ".zshrc")
	l := newTestLedger(t, rc, "/usr/bin:/bin")

	require.NoError(t, l.Register("/opt/homebrew/bin"))
	require.NoError(t, l.Register("/opt/homebrew/bin"))

	data, err := os.ReadFile(rc)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "/opt/homebrew/bin"))

	// A second run over the same file must not duplicate either.
	l2 := newTestLedger(t, rc, "/usr/bin:/bin")
	require.NoError(t, l2.Register("/opt/homebrew/bin"))
	data, err = os.ReadFile(rc)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "/opt/homebrew/bin"))
}

func TestRegisterPrependsBeforePriorContent(t *testing.T) {
	dir := t.TempDir()
	rc := filepath.Join(dir, ".zshrc")
	require.NoError(t, os.WriteFile(rc, []byte("# existing config\nalias ll='ls -al'\n"), 0644))

	l := newTestLedger(t, rc, "/usr/bin:/bin")
	require.NoError(t, l.Register("/Users/dev/development/flutter/bin"))

	data, err := os.ReadFile(rc)
	require.NoError(t, err)
	lines := strings.Split(string(data), "\n")
	assert.Equal(t, "export PATH=\"/Users/dev/development/flutter/bin:$PATH\"", lines[0])
	// Prior content is preserved verbatim after the new entry.
	assert.Equal(t, "# existing config", lines[1])
	assert.Equal(t, "alias ll='ls -al'", lines[2])
}

func TestRegisterMutatesLivePathImmediately(t *testing.T) {
	rc := filepath.Join(t.TempDir(), ".zshrc")
	var seen string
	l := New(rc, "/usr/bin:/bin")
	l.Setenv = func(key, value string) error {
		seen = value
		return nil
	}

	require.NoError(t, l.Register("/opt/homebrew/bin"))

	assert.True(t, strings.HasPrefix(l.LivePath(), "/opt/homebrew/bin"+string(os.PathListSeparator)))
	assert.Equal(t, l.LivePath(), seen)

	// Registering again must not stack a second copy at the front.
	require.NoError(t, l.Register("/opt/homebrew/bin"))
	assert.Equal(t, 1, strings.Count(l.LivePath(), "/opt/homebrew/bin"))
}

func TestRegisterWithoutRCFileIsNoOp(t *testing.T) {
	l := newTestLedger(t, "", "/usr/bin:/bin")

	require.NoError(t, l.Register("/opt/homebrew/bin"))

	// Live path still mutated, nothing persisted anywhere.
	assert.True(t, strings.HasPrefix(l.LivePath(), "/opt/homebrew/bin"))
}

func TestRegisterLeavesNoTempFilesBehind(t *testing.T) {
	dir := t.TempDir()
	rc := filepath.Join(dir, ".bashrc")
	l := newTestLedger(t, rc, "/usr/bin")

	require.NoError(t, l.Register("/opt/homebrew/bin"))
	require.NoError(t, l.Register("/usr/local/bin"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ".bashrc", entries[0].Name())
}

func TestRegisterOrderingAcrossRuns(t *testing.T) {
	dir := t.TempDir()
	rc := filepath.Join(dir, ".zshrc")

	// Run 1 registers one directory.
	l1 := newTestLedger(t, rc, "/usr/bin")
	require.NoError(t, l1.Register("/first/bin"))

	// Run 2 registers another; it must land strictly before run 1's content.
	l2 := newTestLedger(t, rc, "/usr/bin")
	require.NoError(t, l2.Register("/second/bin"))

	data, err := os.ReadFile(rc)
	require.NoError(t, err)
	first := strings.Index(string(data), "/first/bin")
	second := strings.Index(string(data), "/second/bin")
	require.GreaterOrEqual(t, first, 0)
	require.GreaterOrEqual(t, second, 0)
	assert.Less(t, second, first)
}
