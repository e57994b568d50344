package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// tabular is implemented by results that render as a table.
type tabular interface {
	headers() []string
	rows() [][]string
}

// render writes data in the configured format.
func render(w io.Writer, format string, data tabular) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(data)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}

		return enc.Close()
	default:
		t := newTable(w, data.headers())
		for _, row := range data.rows() {
			t.addRow(row...)
		}
		t.render()

		return nil
	}
}

// table is a simple table for displaying tabular data
type table struct {
	writer  io.Writer
	headers []string
	rows    [][]string
}

func newTable(w io.Writer, headers []string) *table {
	return &table{writer: w, headers: headers}
}

func (t *table) addRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *table) render() {
	if len(t.headers) == 0 {
		return
	}

	widths := make([]int, len(t.headers))
	for i, header := range t.headers {
		widths[i] = len(header)
	}

	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	bold := color.New(color.Bold, color.FgCyan)
	gray := color.New(color.FgHiBlack)

	cells := make([]string, len(t.headers))
	for i, header := range t.headers {
		cells[i] = bold.Sprint(padRight(header, widths[i], i == len(t.headers)-1))
	}
	fmt.Fprintln(t.writer, strings.Join(cells, "  "))

	for i, width := range widths {
		cells[i] = gray.Sprint(strings.Repeat("─", width))
	}
	fmt.Fprintln(t.writer, strings.Join(cells, "  "))

	for _, row := range t.rows {
		line := make([]string, 0, len(widths))
		for i := 0; i < len(widths) && i < len(row); i++ {
			line = append(line, padRight(row[i], widths[i], i == len(row)-1))
		}
		fmt.Fprintln(t.writer, strings.Join(line, "  "))
	}
}

// padRight pads s to width; the last column is not padded.
func padRight(s string, width int, last bool) string {
	if last || len(s) >= width {
		return s
	}

	return s + strings.Repeat(" ", width-len(s))
}
