package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"mobile-setup/internal/config"
	"mobile-setup/internal/envinfo"
	"mobile-setup/internal/logger"
	"mobile-setup/internal/pathledger"
	"mobile-setup/internal/state"
	"mobile-setup/internal/toolchain"
)

// configPath holds the path to the optional configuration YAML file,
// passed via the `--config` or `-c` flag. Every setting has a default, so
// a missing file is fine.
var configPath string

// statePath is the path to the persistent state file tracking what each
// run installed.
var statePath = "state.json"

// provisionCmd is the top-level command running the full sequence: toolchain
// units in order, then license acceptance and Flutter configuration.
var provisionCmd = &cobra.Command{
	Use:           "provision",
	Short:         "Provision the machine for mobile development (tools, licenses, config)",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Banner("==> mobile-setup: provisioning macOS for mobile development\n")

		env := envinfo.Detect()
		cfg := config.Load(configPath, env.Home)
		st := state.Load(statePath)

		runner := newRunner(env)
		runner.State = st

		err := runner.Provision(buildTools(cfg, env))
		state.Save(statePath, st)
		if err != nil {
			return err
		}

		exportSDKRoot(cfg)
		toolchain.Finalize(cfg.Android.SDKRoot)

		logger.Banner("==> mobile-setup: done. Open a new shell and run `flutter doctor`.\n")
		return nil
	},
}

// provisionToolsCmd runs only the toolchain phase, skipping the finalizer.
var provisionToolsCmd = &cobra.Command{
	Use:           "tools",
	Short:         "Install only the toolchain (no license/config finalization)",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		env := envinfo.Detect()
		cfg := config.Load(configPath, env.Home)
		st := state.Load(statePath)

		runner := newRunner(env)
		runner.State = st

		err := runner.Provision(buildTools(cfg, env))
		state.Save(statePath, st)
		return err
	},
}

// provisionLicensesCmd runs only the license/config finalizer.
var provisionLicensesCmd = &cobra.Command{
	Use:           "licenses",
	Short:         "Accept Android SDK licenses and point flutter at the SDK",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		env := envinfo.Detect()
		cfg := config.Load(configPath, env.Home)

		exportSDKRoot(cfg)
		toolchain.Finalize(cfg.Android.SDKRoot)
		return nil
	},
}

// newRunner wires a runner over the detected environment: the live PATH of
// this process plus the shell startup file (or none, with a warning, when
// the shell is unrecognized).
func newRunner(env envinfo.Info) *toolchain.Runner {
	if env.RCFile == "" {
		logger.Warn("[WARN] Unrecognized shell %q. PATH changes will not be persisted.\n", os.Getenv("SHELL"))
	}
	return &toolchain.Runner{
		Ledger: pathledger.New(env.RCFile, os.Getenv("PATH")),
	}
}

// buildTools assembles the unit sequence. Order matters: every unit may
// depend on a predecessor's binaries being on the path (git for the Flutter
// clone, brew for ruby, the flutter binary for the finalizer).
func buildTools(cfg config.Config, env envinfo.Info) []toolchain.Tool {
	required := cfg.RequiredSet()
	return []toolchain.Tool{
		&toolchain.Homebrew{Prefix: env.BrewPrefix, IsRequired: required["brew"]},
		&toolchain.XcodeCLT{IsRequired: required["xcode-select"]},
		&toolchain.Git{IsRequired: required["git"]},
		&toolchain.Flutter{
			Repo:       cfg.Flutter.Repo,
			Channel:    cfg.Flutter.Channel,
			Dir:        cfg.Flutter.Dir,
			IsRequired: required["flutter"],
		},
		&toolchain.CocoaPods{
			RubyFloor:   cfg.Ruby.Floor,
			RubyFormula: cfg.Ruby.Formula,
			BrewPrefix:  env.BrewPrefix,
			IsRequired:  required["pod"],
		},
		&toolchain.AndroidSDK{
			CmdlineToolsURL:  cfg.Android.CmdlineToolsURL,
			SDKRoot:          cfg.Android.SDKRoot,
			PlatformPrefix:   cfg.Android.PlatformPrefix,
			BuildToolsPrefix: cfg.Android.BuildToolsPrefix,
			IsRequired:       required["sdkmanager"],
		},
	}
}

// exportSDKRoot exports the Android SDK location for the remainder of this
// process's life so the finalizer's child processes see it.
func exportSDKRoot(cfg config.Config) {
	_ = os.Setenv("ANDROID_HOME", cfg.Android.SDKRoot)
	_ = os.Setenv("ANDROID_SDK_ROOT", cfg.Android.SDKRoot)
}

// init sets up CLI flags and adds subcommands to the root command.
func init() {
	provisionCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "setup.yaml", "Path to configuration file")
	provisionCmd.PersistentFlags().StringVar(&statePath, "state", "state.json", "Path to the state file")

	provisionCmd.AddCommand(provisionToolsCmd)
	provisionCmd.AddCommand(provisionLicensesCmd)
	rootCmd.AddCommand(provisionCmd)
}
