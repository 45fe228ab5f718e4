package toolchain

import (
	"mobile-setup/internal/logger"
)

// Finalize accepts every pending Android SDK license with an automatic
// affirmative answer and points Flutter's own configuration at the installed
// SDK root. Both calls are fire-and-forget: failures are logged and the run
// completes regardless.
func Finalize(sdkRoot string) {
	logger.Info("[INFO] Accepting Android SDK licenses...\n")
	if err := runWithStdin(yes{}, "sdkmanager", "--sdk_root="+sdkRoot, "--licenses"); err != nil {
		logger.Warn("[WARN] License acceptance failed: %v\n", err)
	}

	logger.Info("[INFO] Pointing flutter at the Android SDK...\n")
	if err := run("flutter", "config", "--android-sdk", sdkRoot); err != nil {
		logger.Warn("[WARN] flutter config failed: %v\n", err)
	}
}
