package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/Tiliavir/timetraveler/internal/model"
	"github.com/Tiliavir/timetraveler/internal/prompt"
)

// Formats lists the accepted values of Render's format argument.
var Formats = []string{"table", "json", "yaml", "csv"}

// Render writes r to w in the given format: table, json, yaml or csv.
func Render(w io.Writer, r model.Report, format string, styles prompt.Styles) error {
	switch format {
	case "", "table":
		_, err := fmt.Fprintln(w, Table(r, styles))
		return err
	case "json":
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("error encoding JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("error encoding YAML: %w", err)
		}
		return enc.Close()
	case "csv":
		return writeCSV(w, r)
	default:
		return fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
}

// Table renders the results table with a Data / Value / Custom Format header.
func Table(r model.Report, styles prompt.Styles) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.TableBorder).
		Headers("Data", "Value", "Custom Format").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.TableHeader
			}
			return styles.TableCell
		})
	for _, row := range Rows(r) {
		t.Row(row.Label, row.Value, row.Custom)
	}
	return t.Render()
}

func writeCSV(w io.Writer, r model.Report) error {
	if _, err := fmt.Fprintln(w, "data,value,custom_format"); err != nil {
		return err
	}
	for _, row := range Rows(r) {
		if _, err := fmt.Fprintf(w, "%s,%s,%s\n",
			csvEscape(row.Label),
			csvEscape(row.Value),
			csvEscape(row.Custom),
		); err != nil {
			return err
		}
	}
	return nil
}

// csvEscape wraps a field in quotes if it contains a comma, quote, or newline.
func csvEscape(s string) string {
	if !strings.ContainsAny(s, ",\"\n\r") {
		return s
	}
	// Escape internal double quotes by doubling them.
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
