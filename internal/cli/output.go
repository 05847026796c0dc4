package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

// ParseOutputFormat validates a --output value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(s)); f {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return f, nil
	case "":
		return OutputFormatTable, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (use table, json or yaml)", s)
	}
}

// Table is the tabular form of a command result.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Footer  []string
}

// Printer writes command results in the selected format.
type Printer struct {
	Format OutputFormat
	Out    io.Writer
}

// NewPrinter returns a printer writing to stdout.
func NewPrinter(format OutputFormat) *Printer {
	return &Printer{Format: format, Out: os.Stdout}
}

// Print writes data as JSON or YAML, or tbl for table output.
func (p *Printer) Print(data interface{}, tbl Table) error {
	switch p.Format {
	case OutputFormatJSON:
		enc := json.NewEncoder(p.out())
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case OutputFormatYAML:
		out, err := yaml.Marshal(data)
		if err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		_, err = p.out().Write(out)
		return err
	default:
		p.printTable(tbl)
		return nil
	}
}

func (p *Printer) out() io.Writer {
	if p.Out == nil {
		return os.Stdout
	}
	return p.Out
}

func (p *Printer) printTable(tbl Table) {
	if len(tbl.Rows) == 0 {
		fmt.Fprintln(p.out(), text.FgYellow.Sprint("No items found"))
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(p.out())
	t.SetStyle(table.StyleRounded)
	// Footer cells print as given; headers are upper-cased above.
	t.Style().Format.Footer = text.FormatDefault
	if tbl.Title != "" {
		t.SetTitle(text.FgHiWhite.Sprint(tbl.Title))
	}

	headers := make(table.Row, len(tbl.Headers))
	for i, h := range tbl.Headers {
		headers[i] = text.FgHiCyan.Sprint(strings.ToUpper(h))
	}
	t.AppendHeader(headers)

	for _, r := range tbl.Rows {
		row := make(table.Row, len(r))
		for i, cell := range r {
			row[i] = formatCell(cell)
		}
		t.AppendRow(row)
	}

	if len(tbl.Footer) > 0 {
		footer := make(table.Row, len(tbl.Footer))
		for i, cell := range tbl.Footer {
			footer[i] = text.FgHiBlue.Sprint(cell)
		}
		t.AppendFooter(footer)
	}
	t.Render()
}

// formatCell dims empty and placeholder cells.
func formatCell(cell string) string {
	if cell == "" || cell == "-" {
		return text.FgHiBlack.Sprint("-")
	}
	return cell
}
