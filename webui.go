package main

import (
	"html/template"
	"io"
	"time"
)

const pageTitle = "Symplehost.ai ARR Sensitivity Table"

// pageData is the view model shared by the web page and the HTML export
type pageData struct {
	Title       string
	Inputs      CalculatorInputs
	SharePct    float64
	Table       ARRTable
	Generated   string
	MinProps    int
	MaxProps    int
	MinRate     int
	MaxRate     int
	MinShare    int
	MaxShare    int
	FlatMonthly int
	FlatYearly  int
	Commission  string
	Interactive bool
	ExportCSV   template.URL
	ExportPDF   template.URL
}

func newPageData(in CalculatorInputs, t ARRTable, interactive bool) pageData {
	return pageData{
		Title:       pageTitle,
		Inputs:      in,
		SharePct:    in.MarketSharePct(),
		Table:       t,
		Generated:   time.Now().Format("2 January 2006 15:04"),
		MinProps:    MinPropertiesPerHost,
		MaxProps:    MaxPropertiesPerHost,
		MinRate:     MinNightlyRateUSD,
		MaxRate:     MaxNightlyRateUSD,
		MinShare:    MinMarketSharePct,
		MaxShare:    MaxMarketSharePct,
		FlatMonthly: FlatFeeMonthly,
		FlatYearly:  FlatFeeYearly,
		Commission:  formatPercent(CommissionRate),
		Interactive: interactive,
		ExportCSV:   template.URL("/api/export/csv?" + in.Values().Encode()),
		ExportPDF:   template.URL("/api/export/pdf?" + in.Values().Encode()),
	}
}

var pageTemplate = template.Must(template.New("page").Parse(webUIHTML))

// renderPage writes the interactive page (or the static report when
// interactive is false)
func renderPage(w io.Writer, in CalculatorInputs, t ARRTable, interactive bool) error {
	return pageTemplate.Execute(w, newPageData(in, t, interactive))
}

// WriteHTMLReport writes a standalone HTML page containing the table
func WriteHTMLReport(w io.Writer, in CalculatorInputs, t ARRTable) error {
	return renderPage(w, in, t, false)
}

const webUIHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>ARR Calculator</title>
    <style>
        :root {
            --primary: #1f77b4;
            --primary-dark: #0d5a9e;
            --header-bg: #f2f2f2;
            --stripe: #f9f9f9;
            --hover: #f0f0f0;
            --text: #000000;
            --muted: #555555;
        }
        * { box-sizing: border-box; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            background: #ffffff;
            color: var(--text);
            margin: 0;
            padding: 2rem;
        }
        .container { max-width: 1100px; margin: 0 auto; }
        h1 { margin-bottom: 0.25rem; }
        .subtitle, .caption { color: var(--muted); }
        .caption { font-size: 0.85rem; }
        .controls { display: grid; grid-template-columns: repeat(3, 1fr); gap: 1.5rem; margin: 1.5rem 0; }
        .controls label { display: block; font-weight: 600; margin-bottom: 0.5rem; }
        .controls input[type=range] { width: 100%; }
        .value { font-variant-numeric: tabular-nums; }
        button, .button {
            color: #ffffff;
            background: var(--primary);
            border: none;
            border-radius: 4px;
            padding: 0.5rem 1rem;
            cursor: pointer;
            text-decoration: none;
            font-size: 0.9rem;
        }
        button:hover, .button:hover { background: var(--primary-dark); }
        table { border-collapse: collapse; width: 100%; margin: 1rem 0; }
        th, td { border: 1px solid #dddddd; padding: 0.5rem 0.75rem; text-align: right; }
        th { background: var(--header-bg); font-weight: bold; }
        th.row-label { text-align: left; }
        tbody tr:nth-child(even) { background: var(--stripe); }
        tbody tr:hover { background: var(--hover); }
        details { margin-top: 1.5rem; }
        code { background: #f8f9fa; border: 1px solid #dee2e6; border-radius: 3px; padding: 2px 5px; }
        .exports { margin-top: 1rem; display: flex; gap: 0.5rem; }
        @media (max-width: 768px) { .controls { grid-template-columns: 1fr; } }
    </style>
</head>
<body>
<div class="container">
    <h1>{{.Title}}</h1>
    <p class="subtitle">Explore ARR outcomes based on different occupancy rates and % of direct bookings.</p>
{{if .Interactive}}
    <form method="get" action="/">
        <input type="hidden" name="reset" value="1">
        <button type="submit">Reset to Defaults</button>
    </form>
    <form id="inputs" method="get" action="/">
        <div class="controls">
            <div>
                <label for="properties">Number of Properties per Host: <span class="value" id="properties-value">{{.Inputs.PropertiesPerHost}}</span></label>
                <input type="range" id="properties" name="properties" min="{{.MinProps}}" max="{{.MaxProps}}" step="1" value="{{.Inputs.PropertiesPerHost}}">
            </div>
            <div>
                <label for="nightly_rate">Nightly Rate (USD): <span class="value" id="nightly_rate-value">{{.Inputs.NightlyRateUSD}}</span></label>
                <input type="range" id="nightly_rate" name="nightly_rate" min="{{.MinRate}}" max="{{.MaxRate}}" step="1" value="{{.Inputs.NightlyRateUSD}}">
            </div>
            <div>
                <label for="market_share">Market Share of SEA STR Market (%): <span class="value" id="market_share-value">{{.SharePct}}</span></label>
                <input type="range" id="market_share" name="market_share" min="{{.MinShare}}" max="{{.MaxShare}}" step="1" value="{{.SharePct}}">
            </div>
        </div>
    </form>
{{else}}
    <p class="caption">Generated {{.Generated}}. Properties per host: {{.Inputs.PropertiesPerHost}}, nightly rate: ${{.Inputs.NightlyRateUSD}}, market share: {{.SharePct}}%.</p>
{{end}}
    <p class="caption">Note: The flat fee is ${{.FlatMonthly}} per host per month (${{.FlatYearly}} per year), plus {{.Commission}} commission on direct bookings.</p>

    <h2>Total ARR (in millions)</h2>
    <table id="arr-table">
        <thead>
            <tr>
                <th class="row-label">{{.Table.CornerLabel}}</th>
{{- range .Table.ColumnLabels}}
                <th>{{.}}</th>
{{- end}}
            </tr>
        </thead>
        <tbody>
{{- $cells := .Table.Cells}}
{{- range $i, $row := .Table.RowLabels}}
            <tr>
                <th class="row-label">{{$row}}</th>
{{- range index $cells $i}}
                <td>{{.}}</td>
{{- end}}
            </tr>
{{- end}}
        </tbody>
    </table>
    <p class="caption">Note: Calculations assume 365 days per year and include both flat fee and commission revenue streams.</p>

    <details>
        <summary>How is this calculated?</summary>
        <p><strong>Formula per host:</strong></p>
        <ul>
            <li><code>Flat fee = ${{.FlatMonthly}}/month = ${{.FlatYearly}}/year</code></li>
            <li><code>Commission = {{.Commission}} of revenue from direct bookings</code></li>
            <li><code>Total ARR = (Flat fee + Commission) * Target Hosts</code></li>
        </ul>
    </details>
{{if .Interactive}}
    <div class="exports">
        <a class="button" href="{{.ExportCSV}}">Download CSV</a>
        <a class="button" href="{{.ExportPDF}}">Download PDF</a>
    </div>
    <script>
        const form = document.getElementById('inputs');
        for (const input of form.querySelectorAll('input[type=range]')) {
            input.addEventListener('input', () => {
                document.getElementById(input.id + '-value').textContent = input.value;
            });
            input.addEventListener('change', () => form.submit());
        }
    </script>
{{end}}
</div>
</body>
</html>
`
