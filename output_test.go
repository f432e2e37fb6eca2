package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderConsoleTable(t *testing.T) {
	in := DefaultInputs()
	out := RenderConsoleTable(in, ComputeTable(in))

	assert.Contains(t, out, "Total ARR (in millions)")
	assert.Contains(t, out, "Properties per host: 5 | Nightly rate: $100 | Market share: 15%")
	assert.Contains(t, out, "Occupancy rate / Direct Booking %")
	assert.Contains(t, out, "$21.3M")
	assert.Contains(t, out, "$113.0M")

	// Title, inputs line, top border, header, separator, 6 rows, bottom border
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 12)
}

func TestPrintFormulaNotes(t *testing.T) {
	var buf bytes.Buffer
	PrintFormulaNotes(&buf)

	out := buf.String()
	assert.Contains(t, out, "$25 per host per month ($300 per year), plus 3% commission")
	assert.Contains(t, out, "365 days per year")
	assert.Contains(t, out, "Target hosts = 248,000 addressable properties x market share.")
	assert.Contains(t, out, "Total ARR = (Flat fee + Commission) x Target Hosts")
}

func TestFormatBreakdown(t *testing.T) {
	in := DefaultInputs()
	out := FormatBreakdown(in, ComputeBreakdown(in, 100, 50))

	assert.Contains(t, out, "ARR at 100% occupancy, 50% direct bookings")
	assert.Contains(t, out, "$36,500")
	assert.Contains(t, out, "$182,500")
	assert.Contains(t, out, "$91,250")
	assert.Contains(t, out, "2737.50")
	assert.Contains(t, out, "3037.50")
	assert.Contains(t, out, "37200")
	assert.Contains(t, out, "$112,995,000  ($113.0M)")
}

func TestTrimPct(t *testing.T) {
	assert.Equal(t, "50%", trimPct(50))
	assert.Equal(t, "12.5%", trimPct(12.5))
}
