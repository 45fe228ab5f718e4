package logger

import (
	"github.com/fatih/color" // Colored console output for the severity-tagged log lines
)

// Colorized printing functions for the three severity levels plus the run
// banners. These are package-level variables holding functions that behave
// like fmt.Printf, but with text colored appropriately for the log level.

// Info logs informational messages in green color.
// Green is typically used for success or normal info (tool present, step done).
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn logs warning messages in bright magenta color.
// Used for tolerated failures and degraded modes (unknown shell, skipped persistence).
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error logs error messages in red color.
// Reserved for failures that abort the run or leave a tool unusable.
var Error = color.New(color.FgRed).PrintfFunc()

// Banner prints the start/finish banner lines in bold high-intensity blue.
var Banner = color.New(color.FgHiBlue, color.Bold).PrintfFunc()

// Debug logs debug messages in cyan color if enabled, otherwise is a no-op.
// It is reassigned during Init based on the --debug flag; the default no-op
// keeps packages usable before Init runs.
var Debug = func(format string, a ...any) {}

// Init initializes the logger package, specifically enabling or disabling
// debug logging. When disabled, Debug is a no-op that silently ignores calls.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}
