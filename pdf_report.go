package main

import (
	"bytes"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"
)

// Page layout constants (mm)
const (
	marginLeft   = 15.0
	marginTop    = 15.0
	marginRight  = 15.0
	marginBottom = 15.0
	pageWidth    = 210.0
	contentWidth = pageWidth - marginLeft - marginRight
)

// PDFTableReport renders one ARR table to a single A4 page
type PDFTableReport struct {
	pdf    *fpdf.Fpdf
	inputs CalculatorInputs
	table  ARRTable
	now    time.Time
}

// GenerateARRPDFReport creates a PDF with the inputs, the ARR table and the notes
func GenerateARRPDFReport(in CalculatorInputs, t ARRTable) ([]byte, error) {
	report := &PDFTableReport{
		pdf:    fpdf.New("P", "mm", "A4", ""),
		inputs: in,
		table:  t,
		now:    time.Now(),
	}

	report.pdf.SetMargins(marginLeft, marginTop, marginRight)
	report.pdf.SetAutoPageBreak(true, marginBottom)
	report.pdf.SetTitle("ARR Sensitivity Table", true)

	report.pdf.AddPage()
	report.addTitle()
	report.addInputs()
	report.addTable()
	report.addNotes()

	var buf bytes.Buffer
	if err := report.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *PDFTableReport) addTitle() {
	r.pdf.SetFont("Arial", "B", 20)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 12, "Symplehost.ai ARR Sensitivity Table", "", 1, "L", false, 0, "")

	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(100, 100, 100)
	r.pdf.CellFormat(contentWidth, 6, "Generated "+r.now.Format("2 January 2006 15:04"), "", 1, "L", false, 0, "")
	r.pdf.Ln(4)
}

func (r *PDFTableReport) addInputs() {
	r.drawSectionHeader("Inputs")

	widths := []float64{70, 40}
	rows := [][]string{
		{"Number of Properties per Host", strconv.Itoa(r.inputs.PropertiesPerHost)},
		{"Nightly Rate (USD)", "$" + strconv.Itoa(r.inputs.NightlyRateUSD)},
		{"Market Share of SEA STR Market", formatPercent(r.inputs.MarketShare)},
	}
	for _, row := range rows {
		r.drawTableRow(row, widths, false)
	}
	r.pdf.Ln(6)
}

func (r *PDFTableReport) addTable() {
	r.drawSectionHeader("Total ARR (in millions)")

	first := 60.0
	rest := (contentWidth - first) / float64(len(r.table.ColumnLabels))
	widths := []float64{first}
	for range r.table.ColumnLabels {
		widths = append(widths, rest)
	}

	r.drawTableHeader(append([]string{r.table.CornerLabel}, r.table.ColumnLabels...), widths)
	for i, label := range r.table.RowLabels {
		r.drawTableRow(append([]string{label}, r.table.Cells[i]...), widths, i%2 == 1)
	}
	r.pdf.Ln(6)
}

func (r *PDFTableReport) addNotes() {
	r.pdf.SetFont("Arial", "I", 9)
	r.pdf.SetTextColor(80, 80, 80)
	for _, line := range formulaNotes() {
		r.pdf.MultiCell(contentWidth, 5, line, "", "L", false)
	}
}

func (r *PDFTableReport) drawSectionHeader(title string) {
	r.pdf.SetFont("Arial", "B", 14)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 9, title, "", 1, "L", false, 0, "")
	r.pdf.SetDrawColor(0, 51, 102)
	r.pdf.Line(marginLeft, r.pdf.GetY(), marginLeft+contentWidth, r.pdf.GetY())
	r.pdf.Ln(4)
}

func (r *PDFTableReport) drawTableHeader(headers []string, widths []float64) {
	r.pdf.SetFillColor(0, 51, 102)
	r.pdf.SetTextColor(255, 255, 255)
	r.pdf.SetFont("Arial", "B", 9)

	for i, header := range headers {
		align := "L"
		if i > 0 {
			align = "R"
		}
		r.pdf.CellFormat(widths[i], 7, header, "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}

func (r *PDFTableReport) drawTableRow(cells []string, widths []float64, shaded bool) {
	r.pdf.SetFillColor(255, 255, 255)
	if shaded {
		r.pdf.SetFillColor(249, 249, 249)
	}
	r.pdf.SetTextColor(0, 0, 0)
	r.pdf.SetFont("Arial", "", 9)

	for i, cell := range cells {
		align := "L"
		if i > 0 {
			align = "R"
		}
		r.pdf.CellFormat(widths[i], 6, cell, "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}
