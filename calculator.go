package main

import "strconv"

// Revenue model constants
const (
	DaysPerYear                = 365
	FlatFeeMonthly             = 25
	FlatFeeYearly              = FlatFeeMonthly * 12
	CommissionRate             = 0.03
	TotalAddressableProperties = 248000
)

// CornerLabel names the row axis in the top-left cell of the table
const CornerLabel = "Occupancy rate / Direct Booking %"

// OccupancyAxis is the fixed set of occupancy rates (percent) shown as rows
var OccupancyAxis = []int{50, 60, 70, 80, 90, 100}

// DirectBookingAxis is the fixed set of direct booking shares (percent) shown as columns
var DirectBookingAxis = []int{10, 20, 30, 40, 50}

// CalculatorInputs holds the three user-adjustable inputs for one calculation
type CalculatorInputs struct {
	PropertiesPerHost int     `yaml:"properties_per_host" json:"properties_per_host"`
	NightlyRateUSD    int     `yaml:"nightly_rate_usd" json:"nightly_rate_usd"`
	MarketShare       float64 `yaml:"market_share" json:"market_share"` // Fraction, e.g. 0.15 = 15%
}

// ARRBreakdown holds every intermediate value of the ARR formula for one cell
type ARRBreakdown struct {
	OccupancyPct       float64 `json:"occupancy_pct"`
	DirectBookingPct   float64 `json:"direct_booking_pct"`
	NightsPerYear      float64 `json:"nights_per_year"`
	RevenuePerProperty float64 `json:"revenue_per_property"`
	TotalRevenue       float64 `json:"total_revenue"`
	DirectRevenue      float64 `json:"direct_revenue"`
	Commission         float64 `json:"commission"`
	ARRPerHost         float64 `json:"arr_per_host"`
	TargetHosts        float64 `json:"target_hosts"`
	TotalARR           float64 `json:"total_arr"`
	Formatted          string  `json:"formatted"`
}

// ARRTable is the occupancy x direct booking sensitivity grid.
// Cells[i][j] and Values[i][j] belong to RowLabels[i] and ColumnLabels[j].
type ARRTable struct {
	CornerLabel  string      `json:"corner_label"`
	RowLabels    []string    `json:"row_labels"`
	ColumnLabels []string    `json:"column_labels"`
	Cells        [][]string  `json:"cells"`
	Values       [][]float64 `json:"values"`
}

// Cell returns the formatted ARR for an (occupancy, direct booking) label pair
func (t ARRTable) Cell(rowLabel, columnLabel string) (string, bool) {
	for i, row := range t.RowLabels {
		if row != rowLabel {
			continue
		}
		for j, col := range t.ColumnLabels {
			if col == columnLabel {
				return t.Cells[i][j], true
			}
		}
	}
	return "", false
}

// ComputeBreakdown evaluates the ARR formula for a single occupancy / direct
// booking pair. Inputs are not validated.
func ComputeBreakdown(in CalculatorInputs, occupancyPct, directPct float64) ARRBreakdown {
	occFrac := occupancyPct / 100
	dFrac := directPct / 100

	nightsPerYear := DaysPerYear * occFrac
	revenuePerProperty := nightsPerYear * float64(in.NightlyRateUSD)
	totalRevenue := revenuePerProperty * float64(in.PropertiesPerHost)
	directRevenue := totalRevenue * dFrac
	commission := directRevenue * CommissionRate
	arrPerHost := FlatFeeYearly + commission
	targetHosts := TotalAddressableProperties * in.MarketShare
	totalARR := arrPerHost * targetHosts

	return ARRBreakdown{
		OccupancyPct:       occupancyPct,
		DirectBookingPct:   directPct,
		NightsPerYear:      nightsPerYear,
		RevenuePerProperty: revenuePerProperty,
		TotalRevenue:       totalRevenue,
		DirectRevenue:      directRevenue,
		Commission:         commission,
		ARRPerHost:         arrPerHost,
		TargetHosts:        targetHosts,
		TotalARR:           totalARR,
		Formatted:          FormatARR(totalARR),
	}
}

// ComputeTable builds the full sensitivity grid for the given inputs
func ComputeTable(in CalculatorInputs) ARRTable {
	table := ARRTable{
		CornerLabel:  CornerLabel,
		RowLabels:    make([]string, len(OccupancyAxis)),
		ColumnLabels: make([]string, len(DirectBookingAxis)),
		Cells:        make([][]string, len(OccupancyAxis)),
		Values:       make([][]float64, len(OccupancyAxis)),
	}

	for j, d := range DirectBookingAxis {
		table.ColumnLabels[j] = percentLabel(d)
	}

	for i, occ := range OccupancyAxis {
		table.RowLabels[i] = percentLabel(occ)
		table.Cells[i] = make([]string, len(DirectBookingAxis))
		table.Values[i] = make([]float64, len(DirectBookingAxis))
		for j, d := range DirectBookingAxis {
			b := ComputeBreakdown(in, float64(occ), float64(d))
			table.Cells[i][j] = b.Formatted
			table.Values[i][j] = b.TotalARR
		}
	}

	return table
}

func percentLabel(pct int) string {
	return strconv.Itoa(pct) + "%"
}
