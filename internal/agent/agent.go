// Package agent runs the periodic collect-and-submit loop against a remote
// hwinfod.
package agent

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/go-kratos/kratos/v2/middleware"
	"github.com/go-kratos/kratos/v2/transport"
	kratoshttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/rs/zerolog/log"

	"github.com/go-tangra/go-tangra-hwinfo/internal/codec"
	"github.com/go-tangra/go-tangra-hwinfo/internal/collector"
)

// Config holds agent-mode settings.
type Config struct {
	ServerAddr string
	APIKey     string
	Interval   time.Duration
}

const (
	baseBackoff   = 1 * time.Second
	maxBackoff    = 2 * time.Minute
	submitTimeout = 30 * time.Second
)

type submitResult struct {
	ID       int64     `json:"id"`
	StoredAt time.Time `json:"stored_at"`
}

// Run submits one report immediately, then keeps submitting every interval.
// A failed submission is retried with exponential backoff before the loop
// falls back to its regular cadence. Only the initial submission is fatal.
func Run(ctx context.Context, col *collector.Collector, cfg Config) error {
	codec.Register()

	client, err := kratoshttp.NewClient(ctx,
		kratoshttp.WithEndpoint(cfg.ServerAddr),
		kratoshttp.WithTimeout(submitTimeout),
		kratoshttp.WithMiddleware(apiKeyClientMiddleware(cfg.APIKey)),
	)
	if err != nil {
		return fmt.Errorf("build client: %w", err)
	}
	defer client.Close()

	if err := submit(ctx, client, col); err != nil {
		return fmt.Errorf("initial submit: %w", err)
	}
	log.Info().Str("server", cfg.ServerAddr).Dur("interval", cfg.Interval).Msg("initial report submitted, entering agent loop")

	failures := 0
	timer := time.NewTimer(cfg.Interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("agent shutting down")
			return nil
		case <-timer.C:
		}

		if err := submit(ctx, client, col); err != nil {
			failures++
			backoff := calcBackoff(failures)
			log.Warn().Err(err).Int("attempt", failures).Dur("retry_in", backoff).Msg("submit failed")
			timer.Reset(backoff)
			continue
		}

		failures = 0
		timer.Reset(cfg.Interval)
	}
}

func submit(ctx context.Context, client *kratoshttp.Client, col *collector.Collector) error {
	rep := col.Collect(ctx)

	var out submitResult
	if err := client.Invoke(ctx, http.MethodPost, "/v1/snapshots", rep, &out); err != nil {
		return err
	}

	log.Info().Int64("id", out.ID).Str("hostname", rep.Hostname).Msg("report submitted")
	return nil
}

// calcBackoff doubles the base delay per consecutive failure, capped.
func calcBackoff(attempt int) time.Duration {
	d := baseBackoff * time.Duration(math.Pow(2, float64(attempt-1)))
	if d > maxBackoff {
		d = maxBackoff
	}
	return d
}

// apiKeyClientMiddleware sets the X-API-Key header on outgoing requests,
// mirroring the server-side check. An empty key sends nothing.
func apiKeyClientMiddleware(key string) middleware.Middleware {
	return func(handler middleware.Handler) middleware.Handler {
		return func(ctx context.Context, req any) (any, error) {
			if key != "" {
				if tr, ok := transport.FromClientContext(ctx); ok {
					tr.RequestHeader().Set("X-API-Key", key)
				}
			}
			return handler(ctx, req)
		}
	}
}
