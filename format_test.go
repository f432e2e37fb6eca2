package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatARR(t *testing.T) {
	tests := []struct {
		name  string
		total float64
		want  string
	}{
		{"zero", 0, "$0.0M"},
		{"default top cell", 112_995_000, "$113.0M"},
		{"default bottom cell", 21_343_500, "$21.3M"},
		{"exact million", 1_000_000, "$1.0M"},
		{"below a tenth", 40_000, "$0.0M"},
		{"tie rounds up", 1_250_000, "$1.3M"},
		{"tie rounds up again", 2_350_000, "$2.4M"},
		{"just below tie", 1_249_999, "$1.2M"},
		{"three digit millions", 999_940_000, "$999.9M"},
		{"rounds into thousands", 999_960_000, "$1,000.0M"},
		{"thousands separator", 1_234_567_890_000, "$1,234,567.9M"},
		{"beyond int64 millions", 1e25, "$10,000,000,000,000,000,000.0M"},
		{"far beyond int64 millions", 1e30, "$1,000,000,000,000,000,000,000,000.0M"},
		{"negative beyond int64 millions", -1e25, "$-10,000,000,000,000,000,000.0M"},
		{"negative", -1_500_000, "$-1.5M"},
		{"negative tie rounds away from zero", -1_250_000, "$-1.3M"},
		{"tiny negative rounds to zero", -10_000, "$0.0M"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatARR(tc.total))
		})
	}
}

func TestFormatARR_NonFinite(t *testing.T) {
	assert.Equal(t, "$NaNM", FormatARR(math.NaN()))
	assert.Equal(t, "$+InfM", FormatARR(math.Inf(1)))
	assert.Equal(t, "$-InfM", FormatARR(math.Inf(-1)))
}

func TestGroupDigits(t *testing.T) {
	assert.Equal(t, "0", groupDigits("0"))
	assert.Equal(t, "999", groupDigits("999"))
	assert.Equal(t, "1,000", groupDigits("1000"))
	assert.Equal(t, "12,345", groupDigits("12345"))
	assert.Equal(t, "123,456", groupDigits("123456"))
	assert.Equal(t, "1,234,567", groupDigits("1234567"))
}

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "$0", FormatUSD(0))
	assert.Equal(t, "$300", FormatUSD(300))
	assert.Equal(t, "$2,738", FormatUSD(2737.5))
	assert.Equal(t, "$182,500", FormatUSD(182500))
	assert.Equal(t, "$112,995,000", FormatUSD(112_995_000))
	assert.Equal(t, "$-1,095", FormatUSD(-1095))
	assert.Equal(t, "$10,000,000,000,000,000,000,000,000", FormatUSD(1e25))
	assert.Equal(t, "$NaN", FormatUSD(math.NaN()))
	assert.Equal(t, "$+Inf", FormatUSD(math.Inf(1)))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "15%", formatPercent(0.15))
	assert.Equal(t, "3%", formatPercent(CommissionRate))
	assert.Equal(t, "100%", formatPercent(1))
	assert.Equal(t, "12.5%", formatPercent(0.125))
}
