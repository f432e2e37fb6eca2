package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	consoleTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1f77b4"))
	consoleHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	consoleLabelStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	consoleCellStyle   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	consoleNoteStyle   = lipgloss.NewStyle().Faint(true)
)

// RenderConsoleTable renders the ARR table with the inputs that produced it
func RenderConsoleTable(in CalculatorInputs, t ARRTable) string {
	headers := append([]string{t.CornerLabel}, t.ColumnLabels...)

	rows := make([][]string, len(t.RowLabels))
	for i, label := range t.RowLabels {
		rows[i] = append([]string{label}, t.Cells[i]...)
	}

	grid := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return consoleHeaderStyle
			case col == 0:
				return consoleLabelStyle
			default:
				return consoleCellStyle
			}
		})

	var sb strings.Builder
	sb.WriteString(consoleTitleStyle.Render("Total ARR (in millions)"))
	sb.WriteString("\n")
	sb.WriteString(describeInputs(in))
	sb.WriteString("\n")
	sb.WriteString(grid.Render())
	sb.WriteString("\n")
	return sb.String()
}

// PrintFormulaNotes writes the fee model explanation shown under the table
func PrintFormulaNotes(w io.Writer) {
	for _, line := range formulaNotes() {
		fmt.Fprintln(w, consoleNoteStyle.Render(line))
	}
}

// FormatBreakdown renders every step of the ARR formula for one cell
func FormatBreakdown(in CalculatorInputs, b ARRBreakdown) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", consoleTitleStyle.Render(
		fmt.Sprintf("ARR at %s occupancy, %s direct bookings", trimPct(b.OccupancyPct), trimPct(b.DirectBookingPct))))
	fmt.Fprintf(&sb, "%s\n\n", describeInputs(in))
	fmt.Fprintf(&sb, "  Nights per year:       %12.2f\n", b.NightsPerYear)
	fmt.Fprintf(&sb, "  Revenue per property:  %12s\n", FormatUSD(b.RevenuePerProperty))
	fmt.Fprintf(&sb, "  Total revenue / host:  %12s\n", FormatUSD(b.TotalRevenue))
	fmt.Fprintf(&sb, "  Direct revenue:        %12s\n", FormatUSD(b.DirectRevenue))
	fmt.Fprintf(&sb, "  Commission (3%%):       %12.2f\n", b.Commission)
	fmt.Fprintf(&sb, "  ARR per host:          %12.2f\n", b.ARRPerHost)
	fmt.Fprintf(&sb, "  Target hosts:          %12.0f\n", b.TargetHosts)
	fmt.Fprintf(&sb, "  Total ARR:             %12s  (%s)\n", FormatUSD(b.TotalARR), b.Formatted)
	return sb.String()
}

func describeInputs(in CalculatorInputs) string {
	return fmt.Sprintf("Properties per host: %d | Nightly rate: $%d | Market share: %s",
		in.PropertiesPerHost, in.NightlyRateUSD, formatPercent(in.MarketShare))
}

// formulaNotes is shared by the console, web page and exports
func formulaNotes() []string {
	return []string{
		fmt.Sprintf("Note: The flat fee is $%d per host per month ($%d per year), plus %s commission on direct bookings.",
			FlatFeeMonthly, FlatFeeYearly, formatPercent(CommissionRate)),
		fmt.Sprintf("Note: Calculations assume %d days per year and include both flat fee and commission revenue streams.",
			DaysPerYear),
		fmt.Sprintf("Target hosts = %s addressable properties x market share.", groupPrinter.Sprintf("%d", TotalAddressableProperties)),
		"Total ARR = (Flat fee + Commission) x Target Hosts",
	}
}

func trimPct(pct float64) string {
	return strings.TrimSuffix(fmt.Sprintf("%.1f", pct), ".0") + "%"
}
