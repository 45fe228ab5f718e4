package toolchain

import (
	"os"
	"path/filepath"
	"strings"

	goversion "github.com/hashicorp/go-version"

	"mobile-setup/internal/installer"
	"mobile-setup/internal/logger"
)

// AndroidSDK provisions the Android SDK toolchain: it bootstraps the
// command-line tools from a fixed-URL archive, resolves the newest platform
// and build-tools packages from the remote listing, installs them together
// with platform-tools, and auto-accepts every pending license.
type AndroidSDK struct {
	CmdlineToolsURL  string
	SDKRoot          string
	PlatformPrefix   string // e.g. "platforms;android-"
	BuildToolsPrefix string // e.g. "build-tools;"
	IsRequired       bool
}

func (a *AndroidSDK) Name() string    { return "android sdk" }
func (a *AndroidSDK) Required() bool  { return a.IsRequired }
func (a *AndroidSDK) Version() string { return filepath.Base(a.CmdlineToolsURL) }

// latestDir is the expected home of the command-line tools; sdkmanager
// refuses to run from anywhere else.
func (a *AndroidSDK) latestDir() string {
	return filepath.Join(a.SDKRoot, "cmdline-tools", "latest")
}

func (a *AndroidSDK) sdkmanager() string {
	return filepath.Join(a.latestDir(), "bin", "sdkmanager")
}

// Probe treats the SDK as present when the versioned cmdline-tools
// subdirectory exists.
func (a *AndroidSDK) Probe() bool {
	info, err := os.Stat(a.latestDir())
	return err == nil && info.IsDir()
}

// Install bootstraps the command-line tools, then installs the resolved
// packages and accepts licenses. Package-install and license failures are
// swallowed (logged, not returned): only a failed bootstrap makes the unit
// fail, and whether that aborts the run is the required whitelist's call.
func (a *AndroidSDK) Install() error {
	if err := a.bootstrapCmdlineTools(); err != nil {
		return err
	}

	if err := a.installPackages(); err != nil {
		logger.Warn("[WARN] Android package install failed: %v\n", err)
	}
	if err := runWithStdin(yes{}, a.sdkmanager(), "--sdk_root="+a.SDKRoot, "--licenses"); err != nil {
		logger.Warn("[WARN] Android license acceptance failed: %v\n", err)
	}
	return nil
}

// bootstrapCmdlineTools downloads the fixed-URL archive, extracts it under
// <sdk_root>/cmdline-tools, and renames the extracted top-level directory to
// the expected "latest" path.
func (a *AndroidSDK) bootstrapCmdlineTools() error {
	parent := filepath.Join(a.SDKRoot, "cmdline-tools")
	if err := os.MkdirAll(parent, 0755); err != nil {
		return err
	}

	archive := filepath.Join(os.TempDir(), filepath.Base(a.CmdlineToolsURL))
	logger.Info("[INFO] Downloading Android command-line tools from %s\n", a.CmdlineToolsURL)
	if err := installer.DownloadFile(a.CmdlineToolsURL, archive); err != nil {
		return err
	}

	// Extracting into the parent keeps the rename on one filesystem.
	top, err := installer.ExtractArchive(archive, parent)
	if err != nil {
		return err
	}
	logger.Debug("[DEBUG] Extracted command-line tools to %s\n", top)
	return os.Rename(top, a.latestDir())
}

// installPackages resolves the version-greatest platform and build-tools
// identifiers from `sdkmanager --list` and installs them plus the fixed
// platform-tools package.
func (a *AndroidSDK) installPackages() error {
	listing, err := commandOutput(a.sdkmanager(), "--sdk_root="+a.SDKRoot, "--list")
	if err != nil {
		return err
	}

	args := []string{"--sdk_root=" + a.SDKRoot, "platform-tools"}
	if platform := latestPackage(listing, a.PlatformPrefix); platform != "" {
		args = append(args, platform)
	} else {
		logger.Warn("[WARN] No package matching %q in sdkmanager listing\n", a.PlatformPrefix)
	}
	if buildTools := latestPackage(listing, a.BuildToolsPrefix); buildTools != "" {
		args = append(args, buildTools)
	} else {
		logger.Warn("[WARN] No package matching %q in sdkmanager listing\n", a.BuildToolsPrefix)
	}

	logger.Info("[INFO] Installing Android packages: %s\n", strings.Join(args[1:], " "))
	return runWithStdin(yes{}, a.sdkmanager(), args...)
}

// Paths contributes the sdkmanager bin directory and platform-tools (adb).
func (a *AndroidSDK) Paths() []string {
	return []string{
		filepath.Join(a.latestDir(), "bin"),
		filepath.Join(a.SDKRoot, "platform-tools"),
	}
}

// latestPackage scans an `sdkmanager --list` style listing for identifiers
// with the given prefix and returns the version-greatest match. Suffixes are
// compared as versions where parsable, with a lexicographic fallback for
// listings that never parse.
func latestPackage(listing, prefix string) string {
	var best string
	var bestVer *goversion.Version

	for _, line := range strings.Split(listing, "\n") {
		id := line
		// Listing rows look like "  platforms;android-35 | 3 | Android SDK Platform 35".
		if i := strings.IndexByte(id, '|'); i >= 0 {
			id = id[:i]
		}
		id = strings.TrimSpace(id)
		if !strings.HasPrefix(id, prefix) || id == prefix {
			continue
		}

		v, err := goversion.NewVersion(id[len(prefix):])
		if err != nil {
			if bestVer == nil && id > best {
				best = id
			}
			continue
		}
		if bestVer == nil || v.GreaterThan(bestVer) {
			best, bestVer = id, v
		}
	}
	return best
}
