package toolchain

// Git provisions the version-control client the Flutter unit clones with.
// Installed via Homebrew, so the Homebrew unit must have run first.
type Git struct {
	IsRequired bool
}

func (g *Git) Name() string    { return "git" }
func (g *Git) Required() bool  { return g.IsRequired }
func (g *Git) Version() string { return "latest" }

func (g *Git) Probe() bool {
	return commandExists("git")
}

func (g *Git) Install() error {
	return run("brew", "install", "git")
}

// Paths is empty: brew's bin directory was registered by the Homebrew unit.
func (g *Git) Paths() []string { return nil }
