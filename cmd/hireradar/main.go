package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/hireradar/internal/app"
	"github.com/ternarybob/hireradar/internal/common"
)

// configPaths is a custom flag type that allows multiple -config flags.
type configPaths []string

func (c *configPaths) String() string { return fmt.Sprintf("%v", *c) }

func (c *configPaths) Set(value string) error {
	*c = append(*c, value)
	return nil
}

var (
	configFiles  configPaths
	showVersion  = flag.Bool("version", false, "Print version information")
	showVersionV = flag.Bool("v", false, "Print version information (shorthand)")

	config *common.Config
	logger arbor.ILogger
)

func init() {
	flag.Var(&configFiles, "config", "Configuration file path (can be specified multiple times, later files override earlier ones)")
	flag.Var(&configFiles, "c", "Configuration file path (shorthand)")
}

func main() {
	flag.Parse()

	if *showVersion || *showVersionV {
		fmt.Printf("hireradar version %s\n", common.GetVersion())
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	// Startup sequence (REQUIRED ORDER):
	// 1. Load config (defaults -> file1 -> file2 -> ... -> env)
	// 2. Initialize logger
	// 3. Print banner
	if len(configFiles) == 0 {
		if _, err := os.Stat("hireradar.toml"); err == nil {
			configFiles = append(configFiles, "hireradar.toml")
		}
	}

	var err error
	config, err = common.LoadFromFiles(configFiles...)
	if err != nil {
		tempLogger := arbor.NewLogger()
		tempLogger.Fatal().Err(err).Msg("failed to load configuration")
		os.Exit(1)
	}

	logger = common.SetupLogger(config)
	common.PrintBanner(config, logger)

	switch args[0] {
	case "discover":
		runOnce(func(ctx context.Context, a *app.App) error { return a.Scheduler.RunDiscoveryOnce(ctx) })
	case "refresh":
		runOnce(func(ctx context.Context, a *app.App) error { return a.Scheduler.RunRefreshOnce(ctx) })
	case "maintain":
		runOnce(func(ctx context.Context, a *app.App) error { return a.Scheduler.RunMaintenanceOnce(ctx) })
	case "serve":
		runServe()
	default:
		logger.Error().Str("command", args[0]).Msg("unknown command")
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: hireradar <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  discover   Probe untested seeds for an ATS match")
	fmt.Println("  refresh    Recollect every stale company")
	fmt.Println("  maintain   Run snapshot, retention, and market-intelligence maintenance")
	fmt.Println("  serve      Run the scheduler continuously until interrupted")
	flag.PrintDefaults()
}

func runOnce(fn func(ctx context.Context, a *app.App) error) {
	application, err := app.New(config, logger, nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize application")
	}
	defer application.Close()

	if err := fn(context.Background(), application); err != nil {
		logger.Fatal().Err(err).Msg("command failed")
	}
}

func runServe() {
	application, err := app.New(config, logger, nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize application")
	}
	defer application.Close()

	if err := application.Scheduler.Start(); err != nil {
		logger.Fatal().Err(err).Msg("failed to start scheduler")
	}

	logger.Info().Msg("hireradar running - press Ctrl+C to stop")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info().Msg("shutting down")
	common.PrintShutdownBanner(logger)
	time.Sleep(100 * time.Millisecond)
}
