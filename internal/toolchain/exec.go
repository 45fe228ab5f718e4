package toolchain

import (
	"fmt"
	"io"
	"os/exec"
	"strings"

	"mobile-setup/internal/logger"
)

// run executes an external command, logging it at debug level and returning
// a single error carrying the combined output on failure. Exit status is the
// only verdict inspected; output is never parsed here.
func run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	logger.Debug("[DEBUG] Running command: %s\n", strings.Join(cmd.Args, " "))
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s failed: %w\nOutput: %s", name, err, output)
	}
	return nil
}

// runWithStdin is run with a caller-supplied stdin stream, used to feed
// affirmative answers into license prompts.
func runWithStdin(stdin io.Reader, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = stdin
	logger.Debug("[DEBUG] Running command: %s\n", strings.Join(cmd.Args, " "))
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s failed: %w\nOutput: %s", name, err, output)
	}
	return nil
}

// commandOutput captures a command's stdout for parsing (version strings,
// package listings).
func commandOutput(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	logger.Debug("[DEBUG] Running command: %s\n", strings.Join(cmd.Args, " "))
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("%s failed: %w", name, err)
	}
	return string(out), nil
}

// commandExists answers the presence probe shared by most units: does the
// executable resolve on the current search path.
func commandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// yes is an io.Reader producing an endless stream of "y" answers, one per
// line, for license flows with no upper bound on prompt count.
type yes struct{}

func (yes) Read(p []byte) (int, error) {
	const answer = "y\n"
	n := 0
	for n+len(answer) <= len(p) {
		n += copy(p[n:], answer)
	}
	if n == 0 && len(p) > 0 {
		p[0] = 'y'
		n = 1
	}
	return n, nil
}
