package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	cfg := Load(filepath.Join(home, "does-not-exist.yaml"), home)

	assert.Equal(t, "stable", cfg.Flutter.Channel)
	assert.Equal(t, filepath.Join(home, "development", "flutter"), cfg.Flutter.Dir)
	assert.Equal(t, filepath.Join(home, "Library", "Android", "sdk"), cfg.Android.SDKRoot)
	assert.Equal(t, "3.1", cfg.Ruby.Floor)
	assert.Equal(t, []string{"pod", "sdkmanager"}, cfg.Required)
}

func TestLoadOverlaysFileOnDefaults(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "setup.yaml")
	content := `
flutter:
  repo: https://github.com/flutter/flutter.git
  channel: beta
  dir: ~/sdk/flutter
ruby:
  floor: "3.2"
  formula: ruby
required:
  - pod
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg := Load(path, home)

	assert.Equal(t, "beta", cfg.Flutter.Channel)
	assert.Equal(t, filepath.Join(home, "sdk", "flutter"), cfg.Flutter.Dir)
	assert.Equal(t, "3.2", cfg.Ruby.Floor)
	assert.Equal(t, []string{"pod"}, cfg.Required)
	// Untouched sections keep their defaults.
	assert.Equal(t, "platforms;android-", cfg.Android.PlatformPrefix)
}

func TestLoadMalformedFileFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "setup.yaml")
	require.NoError(t, os.WriteFile(path, []byte("flutter: [not: a: mapping"), 0644))

	cfg := Load(path, home)
	assert.Equal(t, "stable", cfg.Flutter.Channel)
}

func TestExpandHome(t *testing.T) {
	assert.Equal(t, "/home/u", ExpandHome("/home/u", "~"))
	assert.Equal(t, filepath.Join("/home/u", "x", "y"), ExpandHome("/home/u", "~/x/y"))
	assert.Equal(t, "/opt/sdk", ExpandHome("/home/u", "/opt/sdk"))
}

func TestRequiredSet(t *testing.T) {
	cfg := Config{Required: []string{"pod", "sdkmanager"}}
	set := cfg.RequiredSet()
	assert.True(t, set["pod"])
	assert.True(t, set["sdkmanager"])
	assert.False(t, set["brew"])
}
