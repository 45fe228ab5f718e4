package toolchain

// XcodeCLT provisions the Xcode Command Line Tools. Installation is handed
// to xcode-select, which pops a GUI confirmation outside this program's
// control; the run does not wait for the dialog to finish, so a freshly
// triggered install is reported as a tolerated failure and picked up as
// present on the next run.
type XcodeCLT struct {
	IsRequired bool
}

func (x *XcodeCLT) Name() string    { return "xcode command line tools" }
func (x *XcodeCLT) Required() bool  { return x.IsRequired }
func (x *XcodeCLT) Version() string { return "system" }

// Probe asks xcode-select for the active developer directory; a zero exit
// means the tools are installed.
func (x *XcodeCLT) Probe() bool {
	return run("xcode-select", "-p") == nil
}

// Install triggers the interactive installer.
func (x *XcodeCLT) Install() error {
	return run("xcode-select", "--install")
}

// Paths is empty: the tools install into system locations already searched.
func (x *XcodeCLT) Paths() []string { return nil }
