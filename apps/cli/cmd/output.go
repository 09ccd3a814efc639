package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/waypost-dev/waypost/packages/metrics"
	"github.com/waypost-dev/waypost/packages/transport"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	warnColor    = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	dimColor     = color.New(color.Faint)
)

func statusColor(code int) *color.Color {
	switch {
	case code >= 200 && code < 300:
		return successColor
	case code >= 300 && code < 500:
		return warnColor
	default:
		return errorColor
	}
}

func printResponse(resp *transport.Response, bodyOnly bool) {
	if bodyOnly {
		fmt.Println(resp.BodyString())
		return
	}

	statusColor(resp.StatusCode).Printf("%s", resp.Status)
	dimColor.Printf("  %s  %s\n", resp.Duration.Round(10*time.Microsecond),
		humanize.Bytes(uint64(len(resp.Body))))

	if len(resp.Body) > 0 {
		fmt.Println(resp.BodyString())
	}
}

func printRequestError(err error) {
	errorColor.Fprintf(os.Stderr, "request failed: ")
	fmt.Fprintln(os.Stderr, err)
}

func printSummary(s metrics.Summary) {
	fmt.Println()
	dimColor.Println("--- summary ---")
	fmt.Printf("requests: %d  ok: %d  failed: %d\n", s.Total, s.Success, s.Failed)
	fmt.Printf("latency:  mean %s  p50 %s  p95 %s  p99 %s  max %s\n",
		s.Mean.Round(10*time.Microsecond), s.P50.Round(10*time.Microsecond),
		s.P95.Round(10*time.Microsecond), s.P99.Round(10*time.Microsecond),
		s.Max.Round(10*time.Microsecond))
}
