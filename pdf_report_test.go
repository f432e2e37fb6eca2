package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateARRPDFReport(t *testing.T) {
	inputs := []CalculatorInputs{
		DefaultInputs(),
		{PropertiesPerHost: 10, NightlyRateUSD: 200, MarketShare: 0.30},
		{PropertiesPerHost: 1, NightlyRateUSD: 50, MarketShare: 0},
	}

	for _, in := range inputs {
		data, err := GenerateARRPDFReport(in, ComputeTable(in))
		require.NoError(t, err)

		assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")), "missing PDF header")
		assert.Contains(t, string(bytes.TrimSpace(data[len(data)-16:])), "%%EOF")
	}
}
