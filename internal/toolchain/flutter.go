package toolchain

import (
	"os"
	"path/filepath"
)

// Flutter provisions the Flutter SDK by cloning a fixed channel branch of
// the SDK repository into a home-relative directory.
type Flutter struct {
	Repo       string
	Channel    string
	Dir        string
	IsRequired bool
}

func (f *Flutter) Name() string    { return "flutter" }
func (f *Flutter) Required() bool  { return f.IsRequired }
func (f *Flutter) Version() string { return f.Channel }

// Probe treats the checkout as installed when its bin subdirectory exists.
// A partial or stale clone therefore passes; `flutter doctor` is where that
// surfaces, not here.
func (f *Flutter) Probe() bool {
	info, err := os.Stat(filepath.Join(f.Dir, "bin"))
	return err == nil && info.IsDir()
}

// Install clones the configured channel branch into the checkout directory.
func (f *Flutter) Install() error {
	if err := os.MkdirAll(filepath.Dir(f.Dir), 0755); err != nil {
		return err
	}
	return run("git", "clone", "-b", f.Channel, f.Repo, f.Dir)
}

func (f *Flutter) Paths() []string {
	return []string{filepath.Join(f.Dir, "bin")}
}
