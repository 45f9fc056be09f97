package collector

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// defaultTimeout bounds side-scan commands; the inxi probe and the verbose
// bus dumps carry their own longer limits.
const defaultTimeout = 30 * time.Second

// runCommand executes a command and returns its trimmed stdout. A non-zero
// exit reports the command's stderr when it wrote any.
func runCommand(ctx context.Context, timeout time.Duration, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return "", fmt.Errorf("%s: %s", name, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// commandExists reports whether name resolves on PATH.
func commandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// readFile returns a file's trimmed contents, or false when unreadable.
func readFile(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("file not readable")
		return "", false
	}
	return strings.TrimSpace(string(data)), true
}
