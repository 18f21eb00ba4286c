package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"relparse/internal/release"
)

type seasonDirectory struct {
	Name   string `json:"name"`
	Season *int   `json:"season"`
}

func newDirCommand(ctx *commandContext) *cobra.Command {
	dirCmd := &cobra.Command{
		Use:   "dir",
		Short: "Parse library directory names",
	}
	dirCmd.AddCommand(newDirReleaseCommand(ctx, "series", "Parse series directory names", (*release.Parser).ParseSeriesDirectory, release.KindSeries))
	dirCmd.AddCommand(newDirReleaseCommand(ctx, "movie", "Parse movie directory names", (*release.Parser).ParseMovieDirectory, release.KindMovie))
	dirCmd.AddCommand(newDirSeasonCommand(ctx))
	return dirCmd
}

func newDirReleaseCommand(ctx *commandContext, use, short string, parse func(*release.Parser, string) *release.Release, kind release.Kind) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <name>...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			parser := cfg.NewParser(kind)
			records := make([]*release.Release, len(args))
			for i, name := range args {
				records[i] = parse(parser, name)
			}
			if ctx.wantJSON(cmd) {
				if len(records) == 1 {
					return writeJSON(cmd, records[0])
				}
				return writeJSON(cmd, records)
			}
			rows := make([][]string, 0, len(records))
			for _, rec := range records {
				rows = append(rows, []string{rec.Release, rec.Title, formatOptionalInt(rec.Year), rec.TMDBID, rec.TVDBID, rec.IMDBID})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Directory", "Title", "Year", "TMDB", "TVDB", "IMDB"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}
}

func newDirSeasonCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "season <name>...",
		Short: "Read season numbers from season directory names",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]seasonDirectory, len(args))
			for i, name := range args {
				results[i] = seasonDirectory{Name: name}
				if season, ok := release.ParseSeasonDirectory(name); ok {
					results[i].Season = &season
				}
			}
			if ctx.wantJSON(cmd) {
				if len(results) == 1 {
					return writeJSON(cmd, results[0])
				}
				return writeJSON(cmd, results)
			}
			rows := make([][]string, 0, len(results))
			for _, r := range results {
				rows = append(rows, []string{r.Name, formatOptionalInt(r.Season)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Directory", "Season"}, rows, []columnAlignment{alignLeft, alignRight}))
			return nil
		},
	}
}
