package state

import (
	"encoding/json" // JSON encoding/decoding of the state file
	"os"

	"mobile-setup/internal/logger"
)

// ToolState records what a provisioning run did for one toolchain unit:
// the version or identifier that was installed, where it landed, and whether
// this tool performed the install (false means it was already present).
type ToolState struct {
	Version          string `json:"version"`            // Version string or package identifier
	InstallPath      string `json:"install_path"`       // Directory or executable the unit installed into
	InstalledBySetup bool   `json:"installed_by_setup"` // True if this run (or a prior run) performed the install
}

// State holds the saved bookkeeping for the provisioner, keyed by unit name.
// Presence probes, not this file, decide whether a unit installs; the state
// exists so operators can see what the tool has done across runs.
type State struct {
	Tools map[string]ToolState `json:"tools"`
}

// Load reads the saved state from a JSON file at the given path.
// If the file does not exist or cannot be read, it returns a new empty
// State. The Tools map is always non-nil.
func Load(path string) *State {
	file, err := os.ReadFile(path)
	if err != nil {
		return &State{Tools: make(map[string]ToolState)}
	}

	var st State
	_ = json.Unmarshal(file, &st)

	if st.Tools == nil {
		st.Tools = make(map[string]ToolState)
	}
	return &st
}

// Save writes the given State to a JSON file at the given path, pretty
// printed for readability. Errors are logged but not propagated: losing the
// bookkeeping never fails a provisioning run.
func Save(path string, st *State) {
	file, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		logger.Error("[ERROR] Failed to marshal state: %v\n", err)
		return
	}

	logger.Debug("[DEBUG] Writing state to %s:\n%s\n", path, string(file))

	if err := os.WriteFile(path, file, 0644); err != nil {
		logger.Error("[ERROR] Failed to write state file %s: %v\n", path, err)
	}
}
