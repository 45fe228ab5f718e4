package toolchain

import (
	"os"
	"path/filepath"
	"strings"

	goversion "github.com/hashicorp/go-version"

	"mobile-setup/internal/logger"
)

// CocoaPods provisions the native iOS dependency manager. The system Ruby on
// macOS is too old for current CocoaPods releases, so the unit first
// enforces a Ruby version floor (installing a newer runtime via Homebrew
// when the installed one is older or absent), then installs the pod gem
// through that runtime's package registry.
type CocoaPods struct {
	RubyFloor   string // minimum acceptable ruby version, e.g. "3.1"
	RubyFormula string // Homebrew formula satisfying the floor
	BrewPrefix  string
	IsRequired  bool
}

func (c *CocoaPods) Name() string    { return "cocoapods" }
func (c *CocoaPods) Required() bool  { return c.IsRequired }
func (c *CocoaPods) Version() string { return "latest" }

func (c *CocoaPods) Probe() bool {
	return commandExists("pod")
}

// Install upgrades Ruby when it misses the floor, then installs CocoaPods
// from the gem registry.
func (c *CocoaPods) Install() error {
	installed := installedRubyVersion()
	if needsRubyUpgrade(installed, c.RubyFloor) {
		logger.Info("[INFO] Ruby %q below floor %s. Installing %s via brew...\n",
			installed, c.RubyFloor, c.RubyFormula)
		if err := run("brew", "install", c.RubyFormula); err != nil {
			return err
		}
	} else {
		logger.Debug("[DEBUG] Ruby %s meets floor %s\n", installed, c.RubyFloor)
	}
	return run(c.gemExecutable(), "install", "cocoapods")
}

// gemExecutable resolves the gem binary of the runtime that satisfies the
// floor. The brew Ruby's bin directory is not on the search path yet when
// Install runs (registration happens afterwards), so its gem must be
// addressed by absolute path; otherwise the stale system gem would perform
// the install the floor check just ruled out. Falls back to PATH resolution
// when no brew Ruby is installed.
func (c *CocoaPods) gemExecutable() string {
	brewGem := filepath.Join(c.BrewPrefix, "opt", "ruby", "bin", "gem")
	if info, err := os.Stat(brewGem); err == nil && !info.IsDir() {
		return brewGem
	}
	return "gem"
}

// Paths contributes the brew Ruby bin directory (shadowing the system Ruby)
// and the gem executable directory where pod lands.
func (c *CocoaPods) Paths() []string {
	paths := []string{filepath.Join(c.BrewPrefix, "opt", "ruby", "bin")}
	if gemdir, err := commandOutput(c.gemExecutable(), "environment", "gemdir"); err == nil {
		if dir := strings.TrimSpace(gemdir); dir != "" {
			paths = append(paths, filepath.Join(dir, "bin"))
		}
	}
	return paths
}

// installedRubyVersion parses `ruby --version` output. Returns "" when ruby
// is absent or the output is unrecognizable.
func installedRubyVersion() string {
	out, err := commandOutput("ruby", "--version")
	if err != nil {
		return ""
	}
	return parseRubyVersion(out)
}

// parseRubyVersion extracts the dotted version from output shaped like
// "ruby 3.1.4p223 (2023-03-30 revision 957bb7cb81) [arm64-darwin22]".
// Patch-level suffixes ("p223") are stripped.
func parseRubyVersion(out string) string {
	fields := strings.Fields(out)
	if len(fields) < 2 || fields[0] != "ruby" {
		return ""
	}
	v := fields[1]
	if i := strings.IndexByte(v, 'p'); i > 0 {
		v = v[:i]
	}
	return v
}

// needsRubyUpgrade reports whether the installed version misses the floor.
// An absent or unparsable version always triggers the upgrade.
func needsRubyUpgrade(installed, floor string) bool {
	if installed == "" {
		return true
	}
	have, err := goversion.NewVersion(installed)
	if err != nil {
		return true
	}
	want, err := goversion.NewVersion(floor)
	if err != nil {
		// An unparsable floor disables the check rather than forcing
		// reinstalls forever.
		return false
	}
	return have.LessThan(want)
}
