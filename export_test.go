package main

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTableCSV(t *testing.T) {
	table := ComputeTable(DefaultInputs())

	var buf bytes.Buffer
	require.NoError(t, WriteTableCSV(&buf, table))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 7)

	assert.Equal(t, []string{"Occupancy rate / Direct Booking %", "10%", "20%", "30%", "40%", "50%"}, records[0])
	for i, record := range records[1:] {
		require.Len(t, record, 6)
		assert.Equal(t, table.RowLabels[i], record[0])
		assert.Equal(t, table.Cells[i], record[1:])
	}
	assert.Equal(t, "$21.3M", records[1][1])
	assert.Equal(t, "$113.0M", records[6][5])
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2026, 10, 15, 9, 30, 5, 0, time.UTC)

	assert.Equal(t, filepath.Join("exports", "arr-table-2026-10-15-093005.csv"), exportFilename("exports", "csv", now))
	assert.Equal(t, "arr-table-2026-10-15-093005.pdf", exportFilename("", "pdf", now))
}

func TestRenderExport(t *testing.T) {
	in := DefaultInputs()
	table := ComputeTable(in)

	for format := range exportContentTypes {
		t.Run(format, func(t *testing.T) {
			data, err := renderExport(format, in, table)
			require.NoError(t, err)
			assert.NotEmpty(t, data)
		})
	}

	html, err := renderExport("html", in, table)
	require.NoError(t, err)
	assert.Contains(t, string(html), "<table id=\"arr-table\">")

	_, err = renderExport("xlsx", in, table)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xlsx")
}
