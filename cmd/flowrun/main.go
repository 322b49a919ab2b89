// Command flowrun executes a flow document and prints the execution
// report as JSON.
//
// Usage:
//
//	flowrun [-history runs.db] [-id run-id] [-v] flow.json
//
// The document format (.json, .yaml, .yml) is detected by extension. The
// exit code is 0 when every node succeeded, 1 when the document is
// rejected or the run could not start, and 2 when the run finished with
// node failures.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aetherloom/cortex/pkg/flow"
	"github.com/aetherloom/cortex/pkg/flow/history"
)

func main() {
	os.Exit(run())
}

func run() int {
	historyPath := flag.String("history", "", "SQLite file to archive the report to")
	runID := flag.String("id", "", "run identifier (generated when empty)")
	verbose := flag.Bool("v", false, "log node lifecycle to stderr")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: flowrun [-history runs.db] [-id run-id] [-v] flow.json")
		return 1
	}

	g, err := flow.LoadDocument(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "flowrun:", err)
		return 1
	}

	opts := []flow.RunOption{}
	if *runID != "" {
		opts = append(opts, flow.WithRunID(*runID))
	}
	if *verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		opts = append(opts, flow.WithLogger(logger))
	}
	if *historyPath != "" {
		store, err := history.NewSQLiteStore(*historyPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "flowrun:", err)
			return 1
		}
		defer store.Close()
		opts = append(opts, flow.WithHistory(store))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := flow.Execute(ctx, g, opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, "flowrun:", err)
		// A cancelled run still produced a partial report worth printing.
		if report == nil {
			return 1
		}
	}

	data, merr := report.Marshal()
	if merr != nil {
		fmt.Fprintln(os.Stderr, "flowrun:", merr)
		return 1
	}
	fmt.Println(string(data))

	if err != nil || report.Status != flow.RunSucceeded {
		return 2
	}
	return 0
}
