package main

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"relparse/internal/language"
	"relparse/internal/library"
	"relparse/internal/release"
)

func newIndexCommand(ctx *commandContext) *cobra.Command {
	indexCmd := &cobra.Command{
		Use:   "index",
		Short: "Query the library index",
	}
	indexCmd.AddCommand(newIndexListCommand(ctx))
	indexCmd.AddCommand(newIndexShowCommand(ctx))
	indexCmd.AddCommand(newIndexStatsCommand(ctx))
	indexCmd.AddCommand(newIndexSearchCommand(ctx))
	return indexCmd
}

func newIndexListCommand(ctx *commandContext) *cobra.Command {
	var kindFlag string
	var filter library.Filter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List indexed files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(kindFlag) != "" {
				kind, err := release.ParseKind(kindFlag)
				if err != nil {
					return err
				}
				filter.Kind = kind
			}
			if lang := strings.TrimSpace(filter.Language); lang != "" && len(lang) != 2 && !language.Known(lang) {
				return fmt.Errorf("unknown language %q", filter.Language)
			}
			store, err := ctx.openIndex()
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.List(commandRunContext(cmd), filter)
			if err != nil {
				return err
			}
			if ctx.wantJSON(cmd) {
				if entries == nil {
					entries = []*library.Entry{}
				}
				return writeJSON(cmd, entries)
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No indexed files")
				return nil
			}
			fmt.Fprintln(out, renderEntries(entries))
			return nil
		},
	}

	cmd.Flags().StringVarP(&kindFlag, "kind", "k", "", "Only movie or tv entries")
	cmd.Flags().StringVar(&filter.Language, "language", "", "Only entries tagged with this language (code or name)")
	cmd.Flags().IntVar(&filter.Year, "year", 0, "Only entries from this year")
	cmd.Flags().IntVar(&filter.Season, "season", 0, "Only entries from this season")
	cmd.Flags().StringVar(&filter.ScanID, "scan", "", "Only entries written by this scan")
	cmd.Flags().IntVarP(&filter.Limit, "limit", "n", 0, "Maximum entries to list (0 for all)")
	return cmd
}

func newIndexShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id|path>",
		Short: "Show one indexed file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openIndex()
			if err != nil {
				return err
			}
			defer store.Close()

			runCtx := commandRunContext(cmd)
			var entry *library.Entry
			if id, convErr := strconv.ParseInt(args[0], 10, 64); convErr == nil {
				entry, err = store.Get(runCtx, id)
			} else {
				entry, err = store.GetByPath(runCtx, args[0])
			}
			if errors.Is(err, library.ErrNotFound) {
				return fmt.Errorf("no indexed file matches %q", args[0])
			}
			if err != nil {
				return err
			}

			if ctx.wantJSON(cmd) {
				return writeJSON(cmd, entry)
			}
			rows := [][]string{
				{"id", strconv.FormatInt(entry.ID, 10)},
				{"path", entry.Path},
				{"kind", string(entry.Kind)},
				{"title", entry.Title},
				{"year", formatOptionalInt(entry.Year)},
				{"season", formatOptionalInt(entry.Season)},
				{"episodes", formatInts(entry.Episodes)},
				{"resolution", entry.Resolution},
				{"source", entry.Source},
				{"group", entry.Group},
				{"languages", strings.Join(entry.Languages, ", ")},
				{"scan", entry.ScanID},
				{"indexed", entry.IndexedAt.Local().Format("2006-01-02 15:04:05")},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderFields(rows))
			return nil
		},
	}
}

func newIndexStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize the index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openIndex()
			if err != nil {
				return err
			}
			defer store.Close()

			stats, err := store.Stats(commandRunContext(cmd))
			if err != nil {
				return err
			}
			if ctx.wantJSON(cmd) {
				return writeJSON(cmd, stats)
			}

			rows := [][]string{
				{"Entries", strconv.Itoa(stats.Entries)},
				{"Movies", strconv.Itoa(stats.Movies)},
				{"Episodes", strconv.Itoa(stats.Episodes)},
				{"Titles", strconv.Itoa(stats.Titles)},
				{"Scans", strconv.Itoa(stats.Scans)},
			}
			if stats.LastScan != nil {
				rows = append(rows, []string{"Last scan", stats.LastScan.ID + " (" + stats.LastScan.Root + ")"})
			}
			resolutions := make([]string, 0, len(stats.ByResolution))
			for res := range stats.ByResolution {
				resolutions = append(resolutions, res)
			}
			sort.Strings(resolutions)
			for _, res := range resolutions {
				label := res
				if label == "" {
					label = "unknown"
				}
				rows = append(rows, []string{"Resolution " + label, strconv.Itoa(stats.ByResolution[res])})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Metric", "Value"}, rows, []columnAlignment{alignLeft, alignRight}))
			return nil
		},
	}
}

func newIndexSearchCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>...",
		Short: "Find indexed files by title",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openIndex()
			if err != nil {
				return err
			}
			defer store.Close()

			results, err := store.Search(commandRunContext(cmd), strings.Join(args, " "), limit)
			if err != nil {
				return err
			}
			if ctx.wantJSON(cmd) {
				if results == nil {
					results = []library.SearchResult{}
				}
				return writeJSON(cmd, results)
			}
			out := cmd.OutOrStdout()
			if len(results) == 0 {
				fmt.Fprintln(out, "No matches")
				return nil
			}
			rows := make([][]string, 0, len(results))
			for _, r := range results {
				rows = append(rows, []string{
					strconv.FormatFloat(r.Score, 'f', 2, 64),
					r.Entry.Title,
					formatOptionalInt(r.Entry.Year),
					formatOptionalInt(r.Entry.Season),
					formatInts(r.Entry.Episodes),
					r.Entry.Path,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Score", "Title", "Year", "Season", "Episodes", "Path"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum matches (default 20)")
	return cmd
}

func renderEntries(entries []*library.Entry) string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			strconv.FormatInt(e.ID, 10),
			string(e.Kind),
			e.Title,
			formatOptionalInt(e.Year),
			formatOptionalInt(e.Season),
			formatInts(e.Episodes),
			e.Resolution,
			strings.Join(e.Languages, ","),
		})
	}
	return renderTable(
		[]string{"ID", "Kind", "Title", "Year", "Season", "Episodes", "Resolution", "Languages"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft, alignLeft},
	)
}
