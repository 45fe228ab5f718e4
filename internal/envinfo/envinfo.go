// Package envinfo inspects the invoking user's environment once at startup:
// which shell they run (and therefore which startup file to persist PATH
// entries into) and which CPU architecture the machine has (and therefore
// where Homebrew keeps its prefix).
package envinfo

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"mobile-setup/internal/logger"
)

// Info is the result of environment detection. RCFile is empty when the
// shell is unrecognized; in that case PATH persistence is skipped but the
// run continues.
type Info struct {
	Shell      string // "zsh", "bash", or "" when unknown
	RCFile     string // absolute path to the shell startup file, or ""
	Arch       string // GOARCH value of the host
	BrewPrefix string // Homebrew prefix chosen by architecture
	Home       string // user home directory
}

// Detect inspects SHELL, the process architecture, and the home directory.
// No error condition here is fatal; an unknown shell degrades to "no
// persistence" with a warning.
func Detect() Info {
	home, err := os.UserHomeDir()
	if err != nil {
		// HOME is effectively always set on macOS; fall back to the
		// environment variable directly if the lookup fails.
		home = os.Getenv("HOME")
	}

	shell := DetectShell(os.Getenv("SHELL"))
	info := Info{
		Shell:      shell,
		RCFile:     RCFile(home, shell),
		Arch:       runtime.GOARCH,
		BrewPrefix: BrewPrefix(runtime.GOARCH),
		Home:       home,
	}

	logger.Debug("[DEBUG] Detected shell=%q rcfile=%q arch=%s prefix=%s\n",
		info.Shell, info.RCFile, info.Arch, info.BrewPrefix)
	return info
}

// DetectShell maps the SHELL environment value to a supported shell name.
// Unlike the alias syncing in earlier versions of this tool there is no
// default fallback: an unrecognized shell yields "" so the caller can skip
// persistence instead of writing into the wrong file.
func DetectShell(shellEnv string) string {
	switch {
	case strings.Contains(shellEnv, "zsh"):
		return "zsh"
	case strings.Contains(shellEnv, "bash"):
		return "bash"
	}
	return ""
}

// RCFile returns the startup file for a supported shell, or "" when the
// shell is unknown (PATH persistence disabled).
func RCFile(home, shell string) string {
	switch shell {
	case "zsh":
		return filepath.Join(home, ".zshrc")
	case "bash":
		return filepath.Join(home, ".bashrc")
	}
	return ""
}

// BrewPrefix picks the Homebrew install prefix by architecture:
// /opt/homebrew on Apple Silicon, /usr/local everywhere else.
func BrewPrefix(arch string) string {
	if arch == "arm64" {
		return "/opt/homebrew"
	}
	return "/usr/local"
}
