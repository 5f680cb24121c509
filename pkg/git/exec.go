package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// run executes git in dir and returns its combined output, untrimmed.
// A failure is wrapped with the full command line and what git printed.
func run(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return string(output), fmt.Errorf("git %s failed: %w (output: %s)",
			args[0], err, strings.TrimSpace(string(output)))
	}
	return string(output), nil
}
