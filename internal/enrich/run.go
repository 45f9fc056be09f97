package enrich

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

// probeTimeout bounds every external command an enrichment step runs.
const probeTimeout = 5 * time.Second

// run executes a short external probe and returns its trimmed stdout.
// A non-zero exit or a missing binary surfaces as an error.
func run(ctx context.Context, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
