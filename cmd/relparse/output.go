package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

const (
	formatAuto  = "auto"
	formatTable = "table"
	formatJSON  = "json"
)

func (c *commandContext) validateFormat() error {
	switch c.format() {
	case formatAuto, formatTable, formatJSON:
		return nil
	}
	return fmt.Errorf("unsupported --format %q (use auto, table or json)", *c.formatFlag)
}

func (c *commandContext) format() string {
	if c.jsonFlag != nil && *c.jsonFlag {
		return formatJSON
	}
	if c.formatFlag == nil {
		return formatAuto
	}
	value := strings.ToLower(strings.TrimSpace(*c.formatFlag))
	if value == "" {
		return formatAuto
	}
	return value
}

// wantJSON reports whether output should be JSON: always for --format json,
// never for --format table, and otherwise whenever stdout is not a terminal.
func (c *commandContext) wantJSON(cmd *cobra.Command) bool {
	switch c.format() {
	case formatJSON:
		return true
	case formatTable:
		return false
	}
	return !isTerminal(cmd.OutOrStdout())
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatOptionalInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func formatInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
