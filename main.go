package main

import (
	"mobile-setup/cmd" // CLI commands and execution logic
)

// main is the program entry point. It delegates to cmd.Execute() which
// handles command line argument parsing and execution.
//
// mobile-setup provisions a macOS machine for mobile app development:
//   - Detects the user's shell and CPU architecture once at startup,
//     choosing the startup file for PATH persistence and the Homebrew prefix
//   - Runs a strict sequence of idempotent toolchain units (Homebrew, Xcode
//     Command Line Tools, Git, the Flutter SDK, CocoaPods, the Android SDK),
//     each probing for presence before installing and registering its bin
//     directories with the path ledger
//   - Accepts all pending Android SDK licenses and points Flutter at the
//     installed SDK root
//   - Maintains a JSON state file recording what each run installed
//
// Error handling strategy:
//   - Best-effort: optional install failures are logged and the run
//     continues with a degraded environment
//   - A small whitelist of required commands (pod, sdkmanager by default)
//     aborts the run with a non-zero exit when still missing after install
func main() {
	cmd.Execute()
}
