package collector

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
)

// The probe command. --tty keeps inxi from thinking it runs on IRC when
// detached from a terminal, -c 0 disables color codes, -Fxxxa -v8 asks for
// everything it knows, and --output-file print routes the JSON to stdout.
var (
	inxiArgs         = []string{"--tty", "-c", "0", "-Fxxxa", "-v8", "--output", "json", "--output-file", "print"}
	inxiFilteredArgs = []string{"--tty", "-c", "0", "-Fxxxa", "-v8", "-z", "--output", "json", "--output-file", "print"}
	inxiFallbackArgs = []string{"--tty", "-c", "0", "-Fxxx", "--output", "json", "--output-file", "print"}
)

const (
	inxiTimeout    = 60 * time.Second
	inxiRetries    = 2
	inxiRetryDelay = time.Second
)

// runInxi executes the probe and returns its raw JSON output. Failed or
// unparseable runs are retried, then a reduced flag set is tried once.
// The -z filter drops serial numbers and MAC addresses from the output.
func runInxi(ctx context.Context, filtered bool) ([]byte, error) {
	if !commandExists("inxi") {
		return nil, errors.New("inxi command not found")
	}

	args := inxiArgs
	if filtered {
		args = inxiFilteredArgs
	}

	var lastErr error
	for attempt := 0; attempt <= inxiRetries; attempt++ {
		if attempt > 0 {
			log.Info().Int("attempt", attempt+1).Msg("retrying inxi probe")
			select {
			case <-time.After(inxiRetryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		out, err := tryInxi(ctx, args)
		if err == nil {
			return out, nil
		}
		lastErr = err
		log.Warn().Err(err).Int("attempt", attempt+1).Msg("inxi probe failed")
	}

	log.Info().Msg("trying inxi with reduced flags")
	out, err := tryInxi(ctx, inxiFallbackArgs)
	if err == nil {
		return out, nil
	}
	return nil, lastErr
}

func tryInxi(ctx context.Context, args []string) ([]byte, error) {
	out, err := runCommand(ctx, inxiTimeout, "inxi", args...)
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, errors.New("inxi produced no output")
	}
	raw := []byte(out)
	if !json.Valid(raw) {
		return nil, errors.New("inxi produced invalid JSON")
	}
	return raw, nil
}
