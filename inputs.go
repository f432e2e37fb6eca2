package main

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Slider ranges for the adjustable inputs
const (
	MinPropertiesPerHost = 1
	MaxPropertiesPerHost = 10
	MinNightlyRateUSD    = 50
	MaxNightlyRateUSD    = 200
	MinMarketSharePct    = 1
	MaxMarketSharePct    = 30
)

// Default slider positions, restored by "Reset to Defaults"
const (
	DefaultPropertiesPerHost = 5
	DefaultNightlyRateUSD    = 100
	DefaultMarketSharePct    = 15
)

// Query parameter names used by the web UI and API
const (
	paramProperties  = "properties"
	paramNightlyRate = "nightly_rate"
	paramMarketShare = "market_share"
	paramReset       = "reset"
)

// InputError reports a raw input value that is not a finite number
type InputError struct {
	Field string
	Value string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %q is not a number", e.Field, e.Value)
}

// DefaultInputs returns the inputs the UI restores on reset
func DefaultInputs() CalculatorInputs {
	return CalculatorInputs{
		PropertiesPerHost: DefaultPropertiesPerHost,
		NightlyRateUSD:    DefaultNightlyRateUSD,
		MarketShare:       DefaultMarketSharePct / 100.0,
	}
}

// ClampInputs pins every input to its slider range. A NaN market share
// becomes the minimum.
func ClampInputs(in CalculatorInputs) CalculatorInputs {
	in.PropertiesPerHost = clampInt(in.PropertiesPerHost, MinPropertiesPerHost, MaxPropertiesPerHost)
	in.NightlyRateUSD = clampInt(in.NightlyRateUSD, MinNightlyRateUSD, MaxNightlyRateUSD)
	if math.IsNaN(in.MarketShare) {
		in.MarketShare = MinMarketSharePct / 100.0
	}
	in.MarketShare = math.Min(math.Max(in.MarketShare, MinMarketSharePct/100.0), MaxMarketSharePct/100.0)
	return in
}

// ParseInputs reads slider values from a query string. Missing fields keep the
// value from base. market_share is given in percent (1-30). Values are snapped
// to the slider step and clamped; anything that is not a finite number is an
// *InputError. A truthy reset parameter returns the defaults.
func ParseInputs(values url.Values, base CalculatorInputs) (CalculatorInputs, error) {
	if isTruthy(values.Get(paramReset)) {
		return DefaultInputs(), nil
	}

	in := base

	if raw := values.Get(paramProperties); raw != "" {
		v, err := parseNumber(paramProperties, raw)
		if err != nil {
			return base, err
		}
		in.PropertiesPerHost = roundToInt(v, MinPropertiesPerHost, MaxPropertiesPerHost)
	}

	if raw := values.Get(paramNightlyRate); raw != "" {
		v, err := parseNumber(paramNightlyRate, raw)
		if err != nil {
			return base, err
		}
		in.NightlyRateUSD = roundToInt(v, MinNightlyRateUSD, MaxNightlyRateUSD)
	}

	if raw := values.Get(paramMarketShare); raw != "" {
		v, err := parseNumber(paramMarketShare, strings.TrimSuffix(raw, "%"))
		if err != nil {
			return base, err
		}
		in.MarketShare = float64(roundToInt(v, MinMarketSharePct, MaxMarketSharePct)) / 100.0
	}

	return ClampInputs(in), nil
}

// Values encodes inputs back into query parameters understood by ParseInputs
func (in CalculatorInputs) Values() url.Values {
	v := url.Values{}
	v.Set(paramProperties, strconv.Itoa(in.PropertiesPerHost))
	v.Set(paramNightlyRate, strconv.Itoa(in.NightlyRateUSD))
	v.Set(paramMarketShare, strconv.FormatFloat(in.MarketSharePct(), 'f', -1, 64))
	return v
}

// MarketSharePct returns the market share as a percentage (0.15 -> 15)
func (in CalculatorInputs) MarketSharePct() float64 {
	return math.Round(in.MarketShare*100*1e6) / 1e6
}

func parseNumber(field, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &InputError{Field: field, Value: raw}
	}
	return v, nil
}

// roundToInt rounds to the nearest whole step, clamping before the int
// conversion so huge values cannot overflow
func roundToInt(v float64, lo, hi int) int {
	v = math.Min(math.Max(v, float64(lo)), float64(hi))
	return int(math.Round(v))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func isTruthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
