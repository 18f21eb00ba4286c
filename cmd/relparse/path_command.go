package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"relparse/internal/release"
)

var errUnparseablePath = errors.New("path has no file or directory name")

func newPathCommand(ctx *commandContext) *cobra.Command {
	var kindFlag string

	cmd := &cobra.Command{
		Use:   "path <path>...",
		Short: "Parse media file paths",
		Long: "Parse media file paths of the form Show (Year)/Season 01/file.mkv or\n" +
			"Movie (Year)/file.mkv into directory, season and file records.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser, err := ctx.parser(kindFlag)
			if err != nil {
				return err
			}
			infos := make([]*release.PathInfo, len(args))
			for i, path := range args {
				info := parser.ParsePath(path)
				if info == nil {
					return fmt.Errorf("parse %q: %w", path, errUnparseablePath)
				}
				infos[i] = info
			}

			if ctx.wantJSON(cmd) {
				if len(infos) == 1 {
					return writeJSON(cmd, infos[0])
				}
				return writeJSON(cmd, infos)
			}
			rows := make([][]string, 0, len(infos))
			for _, info := range infos {
				rows = append(rows, pathRow(info))
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Type", "Title", "Year", "Season", "Episodes", "Episode Title", "Resolution", "Group"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().StringVarP(&kindFlag, "kind", "k", "", "Release kind used for the file name")
	return cmd
}

// pathRow prefers directory title and year, and the season directory number,
// falling back to what the file name carried.
func pathRow(info *release.PathInfo) []string {
	file := info.File
	title := file.Title
	year := file.Year
	if dir := info.Directory; dir != nil {
		if dir.Title != "" {
			title = dir.Title
		}
		if dir.Year != nil {
			year = dir.Year
		}
	}
	season := file.Season
	if info.Season != nil {
		season = info.Season
	}
	return []string{
		string(file.Type),
		title,
		formatOptionalInt(year),
		formatOptionalInt(season),
		formatInts(file.Episodes),
		file.EpisodeTitle,
		file.Resolution,
		file.Group,
	}
}
