package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/go-tangra/go-tangra-hwinfo/internal/agent"
	"github.com/go-tangra/go-tangra-hwinfo/internal/collector"
	"github.com/go-tangra/go-tangra-hwinfo/internal/config"
	"github.com/go-tangra/go-tangra-hwinfo/internal/inxi"
	"github.com/go-tangra/go-tangra-hwinfo/internal/server"
	"github.com/go-tangra/go-tangra-hwinfo/internal/store"
)

var (
	version    = "dev"
	commitHash = "unknown"
	buildDate  = "unknown"
)

var (
	cfgFile   string
	debug     bool
	purgeDays int
)

var rootCmd = &cobra.Command{
	Use:   "hwinfod",
	Short: "hwinfod - hardware report daemon",
	Long: `hwinfod stores hardware reports submitted by hwinfo agents in a local
SQLite database and serves them over HTTP.

Run without a subcommand to start the server (equivalent to 'serve').`,
	PersistentPreRun: setupLogging,
	RunE:             runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP snapshot server",
	RunE:  runServe,
}

var agentCmd = &cobra.Command{
	Use:   "agent",
	Short: "Collect reports periodically and submit them to a remote hwinfod",
	RunE:  runAgent,
}

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Purge snapshots older than the specified number of days",
	RunE:  runPurge,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("hwinfod %s (commit: %s, built: %s)\n", version, commitHash, buildDate)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./configs/hwinfo.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("http-listen", "", "HTTP listen address (default :9590)")
	rootCmd.PersistentFlags().String("database", "", "SQLite database path (default hwinfo.db)")
	rootCmd.PersistentFlags().String("api-key", "", "API key expected from HTTP clients (empty = no auth)")

	agentCmd.Flags().String("server", "", "hwinfod address to submit to (default 127.0.0.1:9590)")
	agentCmd.Flags().Duration("interval", 0, "time between submissions (default 1h)")
	agentCmd.Flags().Bool("filtered", false, "run the probe with the privacy filter")

	purgeCmd.Flags().IntVar(&purgeDays, "days", 90, "purge snapshots older than this many days")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(agentCmd)
	rootCmd.AddCommand(purgeCmd)
	rootCmd.AddCommand(versionCmd)
}

func setupLogging(*cobra.Command, []string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies the shared CLI overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if v, _ := cmd.Flags().GetString("http-listen"); v != "" {
		cfg.HTTPListen = v
	}
	if v, _ := cmd.Flags().GetString("database"); v != "" {
		cfg.DatabasePath = v
	}
	if v, _ := cmd.Flags().GetString("api-key"); v != "" {
		cfg.APIKey = v
	}

	return cfg, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.Run(ctx, cfg)
}

func runAgent(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if v, _ := cmd.Flags().GetString("server"); v != "" {
		cfg.Agent.ServerAddr = v
	}
	if v, _ := cmd.Flags().GetDuration("interval"); v > 0 {
		cfg.Agent.Interval = v
	}
	if cmd.Flags().Changed("filtered") {
		cfg.Agent.Filtered, _ = cmd.Flags().GetBool("filtered")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	col := collector.New(inxi.NewParser(), cfg.Agent.Filtered)

	return agent.Run(ctx, col, agent.Config{
		ServerAddr: cfg.Agent.ServerAddr,
		APIKey:     cfg.APIKey,
		Interval:   cfg.Agent.Interval,
	})
}

func runPurge(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	db, err := store.New(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	n, err := db.Purge(context.Background(), time.Duration(purgeDays)*24*time.Hour)
	if err != nil {
		return fmt.Errorf("purge: %w", err)
	}

	fmt.Printf("Purged %d snapshots older than %d days\n", n, purgeDays)
	return nil
}
