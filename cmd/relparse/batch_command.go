package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"relparse/internal/logging"
	"relparse/internal/release"
)

const maxBatchLine = 1 << 20

func newBatchCommand(ctx *commandContext) *cobra.Command {
	var kindFlag string
	var paths bool
	var reportPath string

	cmd := &cobra.Command{
		Use:   "batch [file|-]",
		Short: "Parse one name or path per line from a file or stdin",
		Long: "Parse one release name per line. Blank lines are skipped. JSON output\n" +
			"is newline-delimited, one record per input line.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser, err := ctx.parser(kindFlag)
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}

			if strings.TrimSpace(reportPath) != "" {
				report, err := os.Create(reportPath)
				if err != nil {
					return fmt.Errorf("create report: %w", err)
				}
				defer report.Close()
				logger = logging.TeeLogger(logger, logging.NewJSONHandler(report, slog.LevelWarn))
			}
			logger = logging.NewComponentLogger(logger, "batch")

			input := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				file, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open input: %w", err)
				}
				defer file.Close()
				input = file
			}

			b := &batchRun{
				parser: parser,
				paths:  paths,
				logger: logger,
				json:   ctx.wantJSON(cmd),
				out:    cmd.OutOrStdout(),
			}
			return b.run(input)
		},
	}

	cmd.Flags().StringVarP(&kindFlag, "kind", "k", "", "Release kind: movie, tv or series (default from config)")
	cmd.Flags().BoolVar(&paths, "paths", false, "Treat each line as a media file path")
	cmd.Flags().StringVar(&reportPath, "report", "", "Write warnings for unusable lines to this file as JSON")
	return cmd
}

type batchRun struct {
	parser *release.Parser
	paths  bool
	logger *slog.Logger
	json   bool
	out    io.Writer

	rows    [][]string
	parsed  int
	skipped int
}

func (b *batchRun) run(input io.Reader) error {
	enc := json.NewEncoder(b.out)
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 64*1024), maxBatchLine)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		record, row, ok := b.parseLine(line, text)
		if !ok {
			b.skipped++
			continue
		}
		b.parsed++
		if b.json {
			if err := enc.Encode(record); err != nil {
				return fmt.Errorf("write record: %w", err)
			}
			continue
		}
		b.rows = append(b.rows, row)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	if !b.json && len(b.rows) > 0 {
		fmt.Fprintln(b.out, renderTable(
			[]string{"Release", "Type", "Title", "Year", "Season", "Episodes", "Resolution", "Group"},
			b.rows,
			[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft, alignLeft},
		))
	}
	b.logger.Info("batch complete",
		logging.Int("parsed", b.parsed),
		logging.Int("skipped", b.skipped),
	)
	return nil
}

func (b *batchRun) parseLine(line int, text string) (any, []string, bool) {
	if b.paths {
		info := b.parser.ParsePath(text)
		if info == nil {
			b.logger.Warn("path could not be parsed",
				logging.Int("line", line),
				logging.String(logging.FieldPath, text),
			)
			return nil, nil, false
		}
		row := pathRow(info)
		// Episode title has no column in the batch table.
		return info, []string{text, row[0], row[1], row[2], row[3], row[4], row[6], row[7]}, true
	}

	rec := b.parser.Parse(text)
	if rec.Title == "" {
		b.logger.Warn("release has no title",
			logging.Int("line", line),
			logging.String("release", text),
		)
	}
	return rec, []string{
		rec.Release,
		string(rec.Type),
		rec.Title,
		formatOptionalInt(rec.Year),
		formatOptionalInt(rec.Season),
		formatInts(rec.Episodes),
		rec.Resolution,
		rec.Group,
	}, true
}
