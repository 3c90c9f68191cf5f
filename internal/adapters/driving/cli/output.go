package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --output.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// stdoutIsTerminal decides the default format. Replaced in tests.
var stdoutIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// resolveFormat returns the effective output format. Tables go to
// terminals and JSON to pipes unless --output says otherwise.
func resolveFormat() (string, error) {
	switch outputFormat {
	case "":
		if stdoutIsTerminal() {
			return formatTable, nil
		}
		return formatJSON, nil
	case formatTable, formatJSON, formatYAML:
		return outputFormat, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want table, json or yaml)", outputFormat)
	}
}

// table is a tabular rendering of a value for the table format.
type table struct {
	headers []string
	rows    [][]string
}

// render writes v as JSON or YAML, or t as a table.
func render(cmd *cobra.Command, v any, t table) error {
	format, err := resolveFormat()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	switch format {
	case formatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}

	if len(t.rows) == 0 {
		cmd.Println(muted("No results."))
		return nil
	}
	tw := tablewriter.NewWriter(out)
	header := make([]any, len(t.headers))
	for i, h := range t.headers {
		header[i] = h
	}
	tw.Header(header...)
	for _, row := range t.rows {
		if err := tw.Append(row); err != nil {
			return fmt.Errorf("render table: %w", err)
		}
	}
	return tw.Render()
}
