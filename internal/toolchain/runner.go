// Package toolchain contains the per-tool provisioning units and the runner
// that executes them in a strict sequence. Every unit follows the same
// check→install→register shape: probe for presence, install only when
// absent, then hand its bin directories to the path ledger so later units
// (and future shells) can resolve the new binaries.
package toolchain

import (
	"fmt"

	"mobile-setup/internal/logger"
	"mobile-setup/internal/pathledger"
	"mobile-setup/internal/state"
)

// Tool is the capability every toolchain unit exposes. The runner operates
// only against this interface, so any tool is substitutable with a test
// double.
type Tool interface {
	// Name is the unit's display and state key.
	Name() string
	// Required reports whether the tool's post-install absence aborts the run.
	Required() bool
	// Probe answers whether the tool is already present.
	Probe() bool
	// Install performs the external install action. Not retried on failure.
	Install() error
	// Paths lists the directories this tool contributes to the search path.
	Paths() []string
	// Version identifies what was installed, for state bookkeeping.
	Version() string
}

// Runner executes toolchain units strictly in order, threading the shared
// path ledger and state through each one. There is no parallelism and no
// rollback: a failed optional unit degrades the environment, a failed
// required unit aborts.
type Runner struct {
	Ledger *pathledger.Ledger
	State  *state.State
}

// Provision walks the units in order. For each: probe, install when absent
// (failures tolerated), verify required units landed, register contributed
// directories. Returns a non-nil error only for a required tool that is
// still missing after its install attempt; later units do not run in that
// case.
func (r *Runner) Provision(tools []Tool) error {
	for _, t := range tools {
		installed := false

		if t.Probe() {
			logger.Info("[INFO] %s already installed. Skipping.\n", t.Name())
		} else {
			logger.Info("[INFO] Installing %s...\n", t.Name())
			if err := t.Install(); err != nil {
				// Install actions are best-effort; the verdict below comes
				// from re-probing, not from the exit status alone.
				logger.Warn("[WARN] Install step for %s failed: %v\n", t.Name(), err)
			}

			if t.Probe() {
				installed = true
				logger.Info("[INFO] Installed %s\n", t.Name())
			} else if t.Required() {
				logger.Error("[ERROR] Required tool %s is missing after install. Aborting.\n", t.Name())
				return fmt.Errorf("required tool %s missing after install attempt", t.Name())
			} else {
				logger.Warn("[WARN] %s still missing after install. Continuing.\n", t.Name())
			}
		}

		for _, dir := range t.Paths() {
			if err := r.Ledger.Register(dir); err != nil {
				logger.Warn("[WARN] Failed to register %s on PATH: %v\n", dir, err)
			}
		}

		if r.State != nil && installed {
			r.State.Tools[t.Name()] = state.ToolState{
				Version:          t.Version(),
				InstallPath:      firstOrEmpty(t.Paths()),
				InstalledBySetup: true,
			}
		}
	}
	return nil
}

func firstOrEmpty(paths []string) string {
	if len(paths) > 0 {
		return paths[0]
	}
	return ""
}
