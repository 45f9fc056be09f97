// Package server hosts the snapshot HTTP API.
package server

import (
	"context"
	"fmt"
	"time"

	kratoshttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/rs/zerolog/log"

	"github.com/go-tangra/go-tangra-hwinfo/internal/codec"
	"github.com/go-tangra/go-tangra-hwinfo/internal/collector"
	"github.com/go-tangra/go-tangra-hwinfo/internal/config"
	"github.com/go-tangra/go-tangra-hwinfo/internal/inxi"
	"github.com/go-tangra/go-tangra-hwinfo/internal/store"
)

// Run starts the HTTP server and blocks until the context is cancelled.
func Run(ctx context.Context, cfg *config.Config) error {
	codec.Register()

	db, err := store.New(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	col := collector.New(inxi.NewParser(), false)
	handler := NewHandler(db, col)

	// Refresh runs the full probe, which can take the probe timeout plus
	// retries; the request deadline has to outlive it.
	srv := kratoshttp.NewServer(
		kratoshttp.Address(cfg.HTTPListen),
		kratoshttp.Timeout(5*time.Minute),
		kratoshttp.Middleware(APIKeyMiddleware(cfg.APIKey)),
	)
	RegisterRoutes(srv, handler)

	if cfg.RetentionDays > 0 {
		log.Info().Int("days", cfg.RetentionDays).Dur("interval", cfg.PurgeInterval).Msg("retention purge enabled")
		go runPurgeLoop(ctx, db, cfg.RetentionDays, cfg.PurgeInterval)
	}

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		_ = srv.Stop(context.Background())
	}()

	log.Info().Str("addr", cfg.HTTPListen).Str("database", cfg.DatabasePath).Msg("hwinfod listening")

	return srv.Start(ctx)
}

func runPurgeLoop(ctx context.Context, db *store.Store, retentionDays int, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			olderThan := time.Duration(retentionDays) * 24 * time.Hour
			n, err := db.Purge(ctx, olderThan)
			if err != nil {
				log.Error().Err(err).Msg("purge failed")
			} else if n > 0 {
				log.Info().Int64("purged", n).Int("retention_days", retentionDays).Msg("old snapshots purged")
			}
		}
	}
}
