package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"relparse/internal/release"
)

type fieldValue struct {
	Release string `json:"release"`
	Field   string `json:"field"`
	Present bool   `json:"present"`
	Value   string `json:"value,omitempty"`
}

func newParseCommand(ctx *commandContext) *cobra.Command {
	var kindFlag string
	var fieldFlag string

	cmd := &cobra.Command{
		Use:   "parse <name>...",
		Short: "Parse release names",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser, err := ctx.parser(kindFlag)
			if err != nil {
				return err
			}
			field := strings.ToLower(strings.TrimSpace(fieldFlag))
			if field != "" && !slices.Contains(release.Fields(), field) {
				return fmt.Errorf("unknown field %q (see relparse parse --help)", fieldFlag)
			}

			records := make([]*release.Release, len(args))
			for i, name := range args {
				records[i] = parser.Parse(name)
			}

			if field != "" {
				return writeFieldValues(cmd, ctx, records, field)
			}
			if ctx.wantJSON(cmd) {
				if len(records) == 1 {
					return writeJSON(cmd, records[0])
				}
				return writeJSON(cmd, records)
			}
			out := cmd.OutOrStdout()
			for i, rec := range records {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintln(out, renderRelease(rec))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&kindFlag, "kind", "k", "", "Release kind: movie, tv or series (default from config)")
	cmd.Flags().StringVarP(&fieldFlag, "field", "f", "", "Print a single field ("+strings.Join(release.Fields(), ", ")+")")
	return cmd
}

// writeFieldValues prints one field per record as raw values, one per line.
// Only an explicit JSON format switches to objects that keep absence
// explicit, so piped output stays usable in shell pipelines.
func writeFieldValues(cmd *cobra.Command, ctx *commandContext, records []*release.Release, field string) error {
	values := make([]fieldValue, len(records))
	for i, rec := range records {
		value, ok := rec.Get(field)
		values[i] = fieldValue{Release: rec.Release, Field: field, Present: ok, Value: value}
	}
	if ctx.format() == formatJSON {
		if len(values) == 1 {
			return writeJSON(cmd, values[0])
		}
		return writeJSON(cmd, values)
	}
	out := cmd.OutOrStdout()
	for _, v := range values {
		fmt.Fprintln(out, v.Value)
	}
	return nil
}
