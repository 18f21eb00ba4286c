package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"relparse/internal/scan"
)

type scanFailure struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

type scanSummary struct {
	ScanID   string        `json:"scan_id"`
	Root     string        `json:"root"`
	Files    int           `json:"files"`
	Indexed  int           `json:"indexed"`
	Pruned   int64         `json:"pruned"`
	Failures []scanFailure `json:"failures,omitempty"`
	Duration string        `json:"duration"`
}

func newScanCommand(ctx *commandContext) *cobra.Command {
	var prune bool

	cmd := &cobra.Command{
		Use:   "scan <root>",
		Short: "Index every media file under a library directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}
			store, err := ctx.openIndex()
			if err != nil {
				return err
			}
			defer store.Close()

			runCtx, stop := signal.NotifyContext(commandRunContext(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()

			result, err := scan.New(cfg, store, logger).Run(runCtx, args[0], scan.Options{Prune: prune})
			if err != nil {
				return err
			}

			summary := scanSummary{
				ScanID:   result.Scan.ID,
				Root:     result.Scan.Root,
				Files:    result.Files,
				Indexed:  result.Indexed,
				Pruned:   result.Pruned,
				Duration: result.Duration.Round(time.Millisecond).String(),
			}
			for _, f := range result.Failures {
				summary.Failures = append(summary.Failures, scanFailure{Path: f.Path, Error: f.Err.Error()})
			}
			if ctx.wantJSON(cmd) {
				return writeJSON(cmd, summary)
			}

			rows := [][]string{
				{"Scan", summary.ScanID},
				{"Root", summary.Root},
				{"Files", strconv.Itoa(summary.Files)},
				{"Indexed", strconv.Itoa(summary.Indexed)},
				{"Failed", strconv.Itoa(len(summary.Failures))},
				{"Pruned", strconv.FormatInt(summary.Pruned, 10)},
				{"Duration", summary.Duration},
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderFields(rows))
			for _, f := range summary.Failures {
				fmt.Fprintf(out, "failed: %s: %s\n", f.Path, f.Error)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&prune, "prune", false, "Remove index entries under the root that no longer exist")
	return cmd
}

func commandRunContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
