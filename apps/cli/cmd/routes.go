package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var watchRoutes bool

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the configured route table",
	Long: `List all configured routes with their verbs and URL templates.

Examples:
  waypost routes
  waypost routes --watch`,
	RunE: routesCommand,
}

func init() {
	routesCmd.Flags().BoolVarP(&watchRoutes, "watch", "w", false, "Reload and re-list when the routes file changes")
}

func routesCommand(cmd *cobra.Command, args []string) error {
	log := setupLogger()

	cfg, table, err := loadSetup()
	if err != nil {
		return err
	}

	printTable := func() {
		names := table.Names()
		if len(names) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no routes configured")
			return
		}
		for _, name := range names {
			def, _ := table.Get(name)
			method := def.Method
			if method == "" {
				method = "GET"
			}
			color.New(color.FgCyan).Fprintf(cmd.OutOrStdout(), "%-20s", name)
			fmt.Fprintf(cmd.OutOrStdout(), " %-7s %s\n", method, def.URL)
		}
	}

	printTable()

	if !watchRoutes {
		return nil
	}
	if cfg.RoutesFile == "" {
		return fmt.Errorf("--watch requires a routesFile in the config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = table.Watch(ctx, cfg.RoutesFile, func(reloadErr error) {
		if reloadErr != nil {
			log.Warn("route file reload failed", "error", reloadErr)
			return
		}
		fmt.Fprintln(cmd.OutOrStdout())
		printTable()
	})
	if err != nil {
		return err
	}

	log.Info("watching routes file", "path", cfg.RoutesFile)
	<-ctx.Done()
	return nil
}
