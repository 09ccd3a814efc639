package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/waypost-dev/waypost/packages/builder"
	"github.com/waypost-dev/waypost/packages/routes"
	"github.com/waypost-dev/waypost/packages/transport"
)

var generateParams []string

var generateCmd = &cobra.Command{
	Use:   "generate <name>",
	Short: "Resolve a named route to its URL without dispatching",
	Long: `Print the fully resolved URL for a named route. Unknown route names
resolve to an empty URL.

Examples:
  waypost generate getUser --param id=42`,
	Args: cobra.ExactArgs(1),
	RunE: generateCommand,
}

func init() {
	generateCmd.Flags().StringArrayVarP(&generateParams, "param", "p", nil, "Route param as key=value (repeatable)")
}

func generateCommand(cmd *cobra.Command, args []string) error {
	log := setupLogger()

	cfg, table, err := loadSetup()
	if err != nil {
		return err
	}

	params, err := parseKeyValues(generateParams)
	if err != nil {
		return err
	}
	substitutions := make(routes.Params, len(params))
	for k, v := range params {
		substitutions[k] = v
	}

	// Resolution only: the transport is never touched, a fake will do.
	b := builder.New(cfg, transport.NewFake(),
		builder.WithRoutes(table), builder.WithLogger(log))

	url := b.Generate(args[0], substitutions)
	if url == "" {
		return fmt.Errorf("unknown route: %s", args[0])
	}

	fmt.Fprintln(cmd.OutOrStdout(), url)
	return nil
}
