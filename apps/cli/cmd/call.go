package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/waypost-dev/waypost/packages/builder"
	"github.com/waypost-dev/waypost/packages/metrics"
)

var (
	callData     []string
	callJSONData string
	callParams   []string
	callHeaders  []string
	callRepeat   int
	callBodyOnly bool
)

var callCmd = &cobra.Command{
	Use:   "call <verb> [segments...]",
	Short: "Issue an ad-hoc request from positional URL segments",
	Long: `Issue a request by verb, building the URL from the base URL and
positional path segments.

Examples:
  waypost call get users 42
  waypost call post users --data name=ada --data role=admin
  waypost call put users 42 --json '{"name": "ada"}'
  waypost call get search --param q=route --header "X-Trace=1"
  waypost call get health --repeat 20`,
	Args: cobra.MinimumNArgs(1),
	RunE: callCommand,
}

func init() {
	callCmd.Flags().StringArrayVarP(&callData, "data", "d", nil, "Body data as key=value (repeatable)")
	callCmd.Flags().StringVar(&callJSONData, "json", "", "Body data as a raw JSON object")
	callCmd.Flags().StringArrayVarP(&callParams, "param", "p", nil, "Query param as key=value (repeatable)")
	callCmd.Flags().StringArrayVarP(&callHeaders, "header", "H", nil, "Request header as key=value (repeatable)")
	callCmd.Flags().IntVar(&callRepeat, "repeat", 1, "Issue the request N times and report latency stats")
	callCmd.Flags().BoolVar(&callBodyOnly, "body", false, "Print only the response body")
}

func callCommand(cmd *cobra.Command, args []string) error {
	log := setupLogger()

	cfg, table, err := loadSetup()
	if err != nil {
		return err
	}

	rec := metrics.NewRecorder()
	b, cleanup, err := newBuilder(cfg, table, log, builder.WithMetrics(rec))
	if err != nil {
		return err
	}
	defer cleanup()

	verb := args[0]
	segments := make([]any, 0, len(args)-1)
	for _, arg := range args[1:] {
		segments = append(segments, arg)
	}

	data, err := requestData()
	if err != nil {
		return err
	}
	params, err := parseKeyValues(callParams)
	if err != nil {
		return err
	}
	headers, err := parseKeyValues(callHeaders)
	if err != nil {
		return err
	}

	if callRepeat < 1 {
		callRepeat = 1
	}

	ctx := context.Background()
	failed := false

	for i := 0; i < callRepeat; i++ {
		if len(data) > 0 {
			b.WithData(data)
		}
		if len(params) > 0 {
			b.WithParams(params)
		}
		if len(headers) > 0 {
			b.WithOption("headers", headers)
		}

		resp, err := b.Invoke(ctx, verb, segments...)
		if err != nil {
			printRequestError(err)
			failed = true
			continue
		}

		if callRepeat == 1 {
			printResponse(resp, callBodyOnly)
		}
		if !resp.IsSuccess() {
			failed = true
		}
	}

	if callRepeat > 1 {
		printSummary(rec.Summary())
	}

	if failed {
		os.Exit(ExitHTTPError)
	}
	return nil
}

// requestData merges --data pairs and --json into one body map. Pairs
// win over JSON keys so quick overrides work from the shell.
func requestData() (map[string]any, error) {
	pairs, err := parseKeyValues(callData)
	if err != nil {
		return nil, err
	}

	data := make(map[string]any, len(pairs))
	for k, v := range pairs {
		data[k] = v
	}

	if callJSONData != "" {
		jsonData := make(map[string]any)
		if err := json.Unmarshal([]byte(callJSONData), &jsonData); err != nil {
			return nil, fmt.Errorf("invalid --json payload: %w", err)
		}
		for k, v := range jsonData {
			if _, ok := data[k]; !ok {
				data[k] = v
			}
		}
	}

	return data, nil
}
