package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	fbref "github.com/raghavtripped/fbref-dashboard"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	stored, err := deps.Reports.FindReports(deps.Ctx, fbref.ReportFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fbref.ErrorMessage(err))
		return err
	}
	if len(stored) == 0 {
		fmt.Fprintf(deps.Stderr, "error: no matches to export\n")
		return fbref.Errorf(fbref.ENOTFOUND, "no matches to export")
	}

	out := deps.Stdout
	if c.Output != "" {
		f, err := os.Create(c.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	if err := writeCSV(out, stored); err != nil {
		return err
	}

	if c.Output != "" {
		fmt.Fprintf(deps.Stdout, "Exported %d matches to %s\n", len(stored), c.Output)
	}
	return nil
}

// writeCSV writes every report flattened, core columns first, extra columns
// sorted after.
func writeCSV(w io.Writer, stored []*fbref.StoredReport) error {
	rows := make([]map[string]any, 0, len(stored))
	allKeys := make(map[string]bool)
	for _, sr := range stored {
		row := sr.Report.Flatten()
		rows = append(rows, row)
		for k := range row {
			allKeys[k] = true
		}
	}
	headers := fbref.OrderColumns(allKeys)

	cw := csv.NewWriter(w)
	if err := cw.Write(headers); err != nil {
		return err
	}
	record := make([]string, len(headers))
	for _, row := range rows {
		for i, h := range headers {
			record[i] = cell(row[h])
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// cell renders a flattened value as CSV text. Missing and null values render
// as empty cells.
func cell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}
