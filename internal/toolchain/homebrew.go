package toolchain

import "path/filepath"

// brewInstallScript is Homebrew's official installer entry point, piped to
// bash non-interactively the same way the project README documents.
const brewInstallScript = "https://raw.githubusercontent.com/Homebrew/install/HEAD/install.sh"

// Homebrew provisions the system package manager every later brew-based unit
// depends on. Prefix is architecture-dependent: /opt/homebrew on Apple
// Silicon, /usr/local on Intel.
type Homebrew struct {
	Prefix     string
	IsRequired bool
}

func (h *Homebrew) Name() string    { return "homebrew" }
func (h *Homebrew) Required() bool  { return h.IsRequired }
func (h *Homebrew) Version() string { return "latest" }

// Probe checks whether brew resolves on the current search path.
func (h *Homebrew) Probe() bool {
	return commandExists("brew")
}

// Install runs the official install script with NONINTERACTIVE=1 so no
// confirmation prompt blocks the run.
func (h *Homebrew) Install() error {
	script := `curl -fsSL ` + brewInstallScript + ` | NONINTERACTIVE=1 /bin/bash`
	return run("/bin/bash", "-c", script)
}

// Paths contributes the prefix bin directory so brew itself and everything
// it installs become resolvable immediately.
func (h *Homebrew) Paths() []string {
	return []string{filepath.Join(h.Prefix, "bin")}
}
