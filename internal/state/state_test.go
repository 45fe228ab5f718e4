package state

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsEmptyState(t *testing.T) {
	st := Load(filepath.Join(t.TempDir(), "state.json"))
	require.NotNil(t, st)
	require.NotNil(t, st.Tools)
	assert.Empty(t, st.Tools)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	st := Load(path)
	st.Tools["flutter"] = ToolState{
		Version:          "stable",
		InstallPath:      "/Users/dev/development/flutter",
		InstalledBySetup: true,
	}
	Save(path, st)

	got := Load(path)
	assert.Equal(t, st.Tools["flutter"], got.Tools["flutter"])
}
