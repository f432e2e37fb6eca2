package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"time"
)

// WriteTableCSV writes the table as CSV: a header row with the corner label and
// direct booking labels, then one row per occupancy label
func WriteTableCSV(w io.Writer, t ARRTable) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(append([]string{t.CornerLabel}, t.ColumnLabels...)); err != nil {
		return err
	}
	for i, label := range t.RowLabels {
		if err := cw.Write(append([]string{label}, t.Cells[i]...)); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// exportFilename returns a timestamped file name for an export, e.g.
// exports/arr-table-2026-10-15-093000.pdf
func exportFilename(dir, ext string, now time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("arr-table-%s.%s", now.Format("2006-01-02-150405"), ext))
}

// exportContentTypes lists the supported export formats
var exportContentTypes = map[string]string{
	"csv":  "text/csv; charset=utf-8",
	"pdf":  "application/pdf",
	"html": "text/html; charset=utf-8",
}

// renderExport renders the table in the requested file format
func renderExport(format string, in CalculatorInputs, t ARRTable) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case "csv":
		if err := WriteTableCSV(&buf, t); err != nil {
			return nil, err
		}
	case "pdf":
		return GenerateARRPDFReport(in, t)
	case "html":
		if err := WriteHTMLReport(&buf, in, t); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown export format %q (want csv, pdf or html)", format)
	}
	return buf.Bytes(), nil
}
