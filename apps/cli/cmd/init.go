package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/waypost-dev/waypost/packages/routes"
)

var forceInit bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new waypost project",
	Long: `Initialize a new waypost project in the current directory.

This creates:
  - .waypost.config.json  - Configuration file
  - routes.yaml           - Starter route definitions

Examples:
  waypost init
  waypost init --force`,
	RunE: initCommand,
}

func init() {
	initCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Overwrite existing files")
}

func initCommand(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	configFile := filepath.Join(cwd, ".waypost.config.json")
	routesFile := filepath.Join(cwd, "routes.yaml")

	if !forceInit {
		for _, f := range []string{configFile, routesFile} {
			if _, err := os.Stat(f); err == nil {
				return fmt.Errorf("file already exists: %s (use --force to overwrite)", f)
			}
		}
	}

	configContent := map[string]any{
		"baseURL":    "http://localhost:3000",
		"routesFile": "routes.yaml",
		"timeout":    30000,
		"headers": map[string]string{
			"User-Agent": "waypost/1.0",
		},
	}

	configJSON, _ := json.MarshalIndent(configContent, "", "  ")
	if err := os.WriteFile(configFile, append(configJSON, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", configFile)

	routeDefs := map[string]routes.Definition{
		"health":     {URL: "/health", Method: routes.MethodGet},
		"listUsers":  {URL: "/users", Method: routes.MethodGet},
		"getUser":    {URL: "/users/{id}", Method: routes.MethodGet},
		"createUser": {URL: "/users", Method: routes.MethodPost},
	}

	routesYAML, _ := yaml.Marshal(routeDefs)
	if err := os.WriteFile(routesFile, routesYAML, 0644); err != nil {
		return fmt.Errorf("failed to create routes file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", routesFile)

	fmt.Fprintf(cmd.OutOrStdout(), "\nwaypost project initialized!\n")
	fmt.Fprintf(cmd.OutOrStdout(), "Run 'waypost route health' to call the first route.\n")

	return nil
}
