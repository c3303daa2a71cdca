package chi

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	fbref "github.com/raghavtripped/fbref-dashboard"
)

// handleExportCSV streams every stored match as a CSV download. Core columns
// come first in their fixed order, followed by any remaining columns sorted.
func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	stored, err := s.Reports.FindReports(r.Context(), fbref.ReportFilter{})
	if err != nil {
		writeError(w, err)
		return
	}
	if len(stored) == 0 {
		writeError(w, fbref.Errorf(fbref.ENOTFOUND, "no matches to export"))
		return
	}

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

	filename := fmt.Sprintf("fbref_%s.csv", time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)

	cw := csv.NewWriter(w)
	_ = cw.Write(headers)
	record := make([]string, len(headers))
	for _, row := range rows {
		for i, h := range headers {
			record[i] = csvCell(row[h])
		}
		_ = cw.Write(record)
	}
	cw.Flush()
}

// csvCell renders a flattened value as CSV text. Missing and null values
// render as empty cells.
func csvCell(v any) string {
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
