package scripting

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Runner executes AppleScript through osascript. Each call runs exactly once;
// there are no retries.
type Runner struct {
	// Timeout bounds a single script. Zero means no limit.
	Timeout time.Duration

	command string
}

// NewRunner returns a Runner that invokes osascript.
func NewRunner(timeout time.Duration) *Runner {
	return &Runner{Timeout: timeout, command: "osascript"}
}

// RunScript sends script to osascript and returns its trimmed stdout.
// The script addresses the target application itself, so bundleID is only
// used to annotate errors.
func (r *Runner) RunScript(ctx context.Context, bundleID, script string) (string, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, r.command, "-e", script)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", errors.Wrapf(ctx.Err(), "script for %s", bundleID)
		}
		return "", errors.Wrapf(err, "script for %s: %s", bundleID, strings.TrimSpace(stderr.String()))
	}

	return strings.TrimSuffix(stdout.String(), "\n"), nil
}
