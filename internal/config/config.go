package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"mobile-setup/internal/logger"
)

// FlutterConfig describes where the Flutter SDK is cloned from and to.
// - Repo: git repository URL of the SDK.
// - Channel: branch to clone (stable, beta, master).
// - Dir: home-relative or absolute checkout directory.
type FlutterConfig struct {
	Repo    string `yaml:"repo"`
	Channel string `yaml:"channel"`
	Dir     string `yaml:"dir"`
}

// AndroidConfig describes the Android SDK layout and the fixed command-line
// tools archive to bootstrap it from.
type AndroidConfig struct {
	CmdlineToolsURL  string `yaml:"cmdline_tools_url"`
	SDKRoot          string `yaml:"sdk_root"`
	PlatformPrefix   string `yaml:"platform_prefix"`
	BuildToolsPrefix string `yaml:"build_tools_prefix"`
}

// RubyConfig carries the version floor the CocoaPods unit enforces and the
// Homebrew formula used to satisfy it.
type RubyConfig struct {
	Floor   string `yaml:"floor"`
	Formula string `yaml:"formula"`
}

// Config is the top-level structure returned after loading setup.yaml.
// Every field has a built-in default so the file is entirely optional.
type Config struct {
	Flutter  FlutterConfig `yaml:"flutter"`
	Android  AndroidConfig `yaml:"android"`
	Ruby     RubyConfig    `yaml:"ruby"`
	Required []string      `yaml:"required"`
}

// Default returns the built-in configuration, with home-relative paths
// resolved against the given home directory.
func Default(home string) Config {
	return Config{
		Flutter: FlutterConfig{
			Repo:    "https://github.com/flutter/flutter.git",
			Channel: "stable",
			Dir:     filepath.Join(home, "development", "flutter"),
		},
		Android: AndroidConfig{
			CmdlineToolsURL:  "https://dl.google.com/android/repository/commandlinetools-mac-11076708_latest.zip",
			SDKRoot:          filepath.Join(home, "Library", "Android", "sdk"),
			PlatformPrefix:   "platforms;android-",
			BuildToolsPrefix: "build-tools;",
		},
		Ruby: RubyConfig{
			Floor:   "3.1",
			Formula: "ruby",
		},
		// Commands whose post-install absence aborts the whole run.
		Required: []string{"pod", "sdkmanager"},
	}
}

// Load reads setup.yaml from the given path and overlays it on the defaults.
// A missing file is not an error: the tool is config-free by default, so the
// defaults are returned as-is. A malformed file is logged and the defaults
// are returned, keeping the run best-effort.
func Load(path, home string) Config {
	cfg := Default(home)

	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Debug("[DEBUG] No config file at %s, using defaults\n", path)
		return cfg
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		logger.Error("[ERROR] Failed to parse %s: %v. Using defaults.\n", path, err)
		return Default(home)
	}

	// Home-relative overrides ("~/x") are expanded after the overlay so the
	// YAML can use the same notation the original shell script did.
	cfg.Flutter.Dir = ExpandHome(home, cfg.Flutter.Dir)
	cfg.Android.SDKRoot = ExpandHome(home, cfg.Android.SDKRoot)

	logger.Debug("[DEBUG] Loaded config from %s\n", path)
	return cfg
}

// ExpandHome rewrites a leading "~" or "~/" path segment to the given home
// directory. Paths without the prefix are returned unchanged.
func ExpandHome(home, p string) string {
	if p == "~" {
		return home
	}
	if strings.HasPrefix(p, "~/") {
		return filepath.Join(home, p[2:])
	}
	return p
}

// RequiredSet converts the required-command whitelist into a lookup set.
func (c Config) RequiredSet() map[string]bool {
	set := make(map[string]bool, len(c.Required))
	for _, name := range c.Required {
		set[name] = true
	}
	return set
}
