// Package pathledger keeps the bookkeeping for search-path entries: every
// directory a toolchain unit contributes is prepended to the live PATH of
// this process (so later units can resolve freshly installed binaries) and
// to the user's shell startup file (so future shells see them too). Both
// insertions are idempotent.
package pathledger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mobile-setup/internal/logger"
)

// Ledger tracks registered directories for one run. RCPath is the persistent
// shell startup file; when empty, persistence is skipped and only the live
// PATH is mutated. Setenv is swappable so tests can observe live-path
// updates without touching the real process environment.
type Ledger struct {
	RCPath string
	Setenv func(key, value string) error

	path string // current live PATH value, most recent registration first
}

// New builds a Ledger over the given startup file and the current live PATH
// value (normally os.Getenv("PATH")).
func New(rcPath, livePath string) *Ledger {
	return &Ledger{
		RCPath: rcPath,
		Setenv: os.Setenv,
		path:   livePath,
	}
}

// LivePath returns the current value of the in-memory search path.
func (l *Ledger) LivePath() string {
	return l.path
}

// Register idempotently records a directory, live and persisted.
// Steps: prepend to the live PATH unless already listed, then prepend an
// export line to the startup file unless the directory string already
// appears anywhere in it. The file is replaced atomically (temp + rename)
// so a concurrent reader never observes a partial write.
func (l *Ledger) Register(dir string) error {
	if dir == "" {
		return nil
	}

	if !l.onLivePath(dir) {
		l.path = dir + string(os.PathListSeparator) + l.path
		if err := l.Setenv("PATH", l.path); err != nil {
			return fmt.Errorf("failed to update live PATH: %w", err)
		}
		logger.Debug("[DEBUG] Prepended %s to live PATH\n", dir)
	}

	if l.RCPath == "" {
		// Unknown shell: nothing to persist into, run continues degraded.
		return nil
	}
	return l.persist(dir)
}

// onLivePath reports whether dir is already one of the live PATH entries.
func (l *Ledger) onLivePath(dir string) bool {
	for _, entry := range strings.Split(l.path, string(os.PathListSeparator)) {
		if entry == dir {
			return true
		}
	}
	return false
}

// persist prepends an export line for dir to the startup file unless the
// directory is already mentioned. Existing content is never deduplicated or
// reordered; entries are only ever added, most recent first.
func (l *Ledger) persist(dir string) error {
	prior, err := os.ReadFile(l.RCPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read %s: %w", l.RCPath, err)
	}

	if strings.Contains(string(prior), dir) {
		logger.Debug("[DEBUG] %s already recorded in %s\n", dir, l.RCPath)
		return nil
	}

	line := fmt.Sprintf("export PATH=\"%s:$PATH\"\n", dir)
	updated := append([]byte(line), prior...)

	// Write-to-temp + rename so the startup file is either the old or the
	// new content, never a torn write.
	tmp, err := os.CreateTemp(filepath.Dir(l.RCPath), ".pathledger-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(updated); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, l.RCPath); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", l.RCPath, err)
	}

	logger.Info("[INFO] Recorded %s in %s\n", dir, l.RCPath)
	return nil
}
