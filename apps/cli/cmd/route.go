package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/waypost-dev/waypost/packages/routes"
)

var (
	routeParams  []string
	routeQuery   []string
	routeData    []string
	routeHeaders []string
	routeBody    bool
)

var routeCmd = &cobra.Command{
	Use:   "route <name>",
	Short: "Issue a request against a named route",
	Long: `Resolve a configured route by name, substitute route params into its
URL template and dispatch its verb.

Examples:
  waypost route getUser --param id=42
  waypost route createUser --data name=ada
  waypost route listUsers --query page=2 --query sort=asc`,
	Args: cobra.ExactArgs(1),
	RunE: routeCommand,
}

func init() {
	routeCmd.Flags().StringArrayVarP(&routeParams, "param", "p", nil, "Route param as key=value (repeatable)")
	routeCmd.Flags().StringArrayVarP(&routeQuery, "query", "q", nil, "Query param as key=value (repeatable)")
	routeCmd.Flags().StringArrayVarP(&routeData, "data", "d", nil, "Body data as key=value (repeatable)")
	routeCmd.Flags().StringArrayVarP(&routeHeaders, "header", "H", nil, "Request header as key=value (repeatable)")
	routeCmd.Flags().BoolVar(&routeBody, "body", false, "Print only the response body")
}

func routeCommand(cmd *cobra.Command, args []string) error {
	log := setupLogger()

	cfg, table, err := loadSetup()
	if err != nil {
		return err
	}

	b, cleanup, err := newBuilder(cfg, table, log)
	if err != nil {
		return err
	}
	defer cleanup()

	params, err := parseKeyValues(routeParams)
	if err != nil {
		return err
	}
	query, err := parseKeyValues(routeQuery)
	if err != nil {
		return err
	}
	data, err := parseKeyValues(routeData)
	if err != nil {
		return err
	}
	headers, err := parseKeyValues(routeHeaders)
	if err != nil {
		return err
	}

	if len(data) > 0 {
		body := make(map[string]any, len(data))
		for k, v := range data {
			body[k] = v
		}
		b.WithData(body)
	}
	if len(headers) > 0 {
		b.WithOption("headers", headers)
	}

	substitutions := make(routes.Params, len(params))
	for k, v := range params {
		substitutions[k] = v
	}

	resp, err := b.Route(context.Background(), args[0], substitutions, query)
	if err != nil {
		printRequestError(err)
		os.Exit(ExitError)
	}

	printResponse(resp, routeBody)
	if !resp.IsSuccess() {
		os.Exit(ExitHTTPError)
	}
	return nil
}
