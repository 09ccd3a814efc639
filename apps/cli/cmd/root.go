package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/waypost-dev/waypost/packages/builder"
	"github.com/waypost-dev/waypost/packages/core/config"
	"github.com/waypost-dev/waypost/packages/core/logger"
	"github.com/waypost-dev/waypost/packages/history"
	"github.com/waypost-dev/waypost/packages/routes"
	"github.com/waypost-dev/waypost/packages/transport"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var (
	configPath string
	baseURL    string
	debugMode  bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "waypost",
	Short: "Named routes for HTTP requests. Define once, call anywhere.",
	Long: `waypost is a route-building HTTP client. Configure named routes
(URL template + verb) once, then issue requests against them with
runtime parameter substitution, or fire ad-hoc verb calls built from
positional URL segments.`,
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Base URL override")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Route requests to the fake transport")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")

	rootCmd.AddCommand(callCmd)
	rootCmd.AddCommand(routeCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(routesCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}

// setupLogger installs the global logger according to --verbose.
func setupLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	log := logger.New(level)
	slog.SetDefault(log)
	return log
}

// loadSetup resolves the effective config and route table from the
// config file plus command-line overrides.
func loadSetup() (*config.Config, *routes.Table, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	overrides := &config.Config{BaseURL: baseURL}
	if debugMode {
		overrides.Debug = config.BoolPtr(true)
	}
	if verbose {
		overrides.Verbose = config.BoolPtr(true)
	}
	cfg = cfg.Merge(overrides)

	table := routes.NewTable(cfg.Routes)
	if cfg.RoutesFile != "" {
		fileTable, err := routes.LoadTable(cfg.RoutesFile)
		if err != nil {
			return nil, nil, err
		}
		// Inline config routes layer over the file.
		for _, name := range table.Names() {
			def, _ := table.Get(name)
			fileTable.Set(name, def)
		}
		table = fileTable
	}

	return cfg, table, nil
}

// newBuilder wires a builder over the real transport, with the request
// history store attached when configured.
func newBuilder(cfg *config.Config, table *routes.Table, log *slog.Logger, extra ...builder.Option) (*builder.Builder, func(), error) {
	clientOpts := []transport.ClientOption{}
	if cfg.Timeout > 0 {
		clientOpts = append(clientOpts, transport.WithTimeout(time.Duration(cfg.Timeout)*time.Millisecond))
	}
	if len(cfg.Headers) > 0 {
		clientOpts = append(clientOpts, transport.WithDefaultHeaders(cfg.Headers))
	}
	if cfg.RateLimit > 0 {
		clientOpts = append(clientOpts, transport.WithRateLimit(cfg.RateLimit))
	}

	opts := []builder.Option{
		builder.WithRoutes(table),
		builder.WithLogger(log),
		builder.WithBeforeRequest(func(verb, url string) {
			log.Debug("dispatching request", "verb", verb, "url", url)
		}),
	}

	cleanup := func() {}
	if cfg.HistoryDB != "" {
		store, err := history.Open(cfg.HistoryDB)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, builder.WithHistory(store))
		cleanup = func() { _ = store.Close() }
	}
	opts = append(opts, extra...)

	b := builder.New(cfg, transport.NewClient(clientOpts...), opts...)
	return b, cleanup, nil
}

// parseKeyValues parses repeated key=value flags into a map.
func parseKeyValues(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 || kv[0] == "" {
			return nil, fmt.Errorf("invalid key=value pair: %q", pair)
		}
		out[kv[0]] = kv[1]
	}
	return out, nil
}
