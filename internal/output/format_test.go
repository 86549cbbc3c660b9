package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roiclab/roicsim/internal/domain"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "$0.00"},
		{1234.5, "$1,234.50"},
		{1234567.89, "$1,234,567.89"},
		{-98765.43, "-$98,765.43"},
		{100, "$100.00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(decimal.NewFromFloat(tt.value)))
		})
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "30.5%", FormatPercent(decimal.NewFromFloat(0.305)))
	assert.Equal(t, "0.0%", FormatPercent(decimal.Zero))
	assert.Equal(t, "100.0%", FormatPercent(decimal.NewFromInt(1)))
}

func sampleSweep() []domain.SweepScenario {
	return []domain.SweepScenario{
		{
			Effectiveness: decimal.NewFromFloat(0.5),
			Series: domain.ROICSeries{
				RemovalPct: []decimal.Decimal{decimal.Zero, decimal.NewFromInt(100)},
				ROIC:       []decimal.Decimal{decimal.NewFromFloat(0.30), decimal.NewFromFloat(0.45)},
			},
		},
	}
}

func TestRenderSweep_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderSweep(&buf, sampleSweep(), "csv"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "removal_pct,roic_eff_0.5", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "0.0000,0.300000"))
	assert.True(t, strings.HasPrefix(lines[2], "100.0000,0.450000"))
}

func TestRenderSweep_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderSweep(&buf, sampleSweep(), "json"))

	var decoded []domain.SweepScenario
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.True(t, decoded[0].Effectiveness.Equal(decimal.NewFromFloat(0.5)))
}

func TestRenderSweep_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderSweep(&buf, sampleSweep(), "table"))

	out := buf.String()
	assert.Contains(t, strings.ToUpper(out), "WASTE REMOVED")
	assert.Contains(t, out, "30.0%")
	assert.Contains(t, out, "45.0%")
}

func TestRenderSweep_UnsupportedFormat(t *testing.T) {
	err := RenderSweep(&bytes.Buffer{}, sampleSweep(), "html")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func sampleProjection() *domain.ProjectionResult {
	return &domain.ProjectionResult{
		BaseEffectiveness: decimal.NewFromFloat(0.5),
		NYears:            2,
		NSimulations:      100,
		Scenarios: []domain.ScenarioProjection{
			{
				RemovalPct: decimal.NewFromFloat(0.5),
				Years:      []int{1, 2},
				MeanROIC:   []decimal.Decimal{decimal.NewFromFloat(0.30), decimal.NewFromFloat(0.32)},
				StdROIC:    []decimal.Decimal{decimal.NewFromFloat(0.02), decimal.NewFromFloat(0.03)},
				TerminalPercentiles: map[string]decimal.Decimal{
					"10th": decimal.NewFromFloat(0.25),
					"25th": decimal.NewFromFloat(0.28),
					"50th": decimal.NewFromFloat(0.32),
					"75th": decimal.NewFromFloat(0.35),
					"90th": decimal.NewFromFloat(0.39),
				},
			},
		},
	}
}

func TestRenderProjection_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderProjection(&buf, sampleProjection(), "csv"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "removal_pct,year,mean_roic,std_roic", lines[0])
	assert.Equal(t, "0.50,1,0.300000,0.020000", lines[1])
	assert.Equal(t, "0.50,2,0.320000,0.030000", lines[2])
}

func TestRenderProjection_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderProjection(&buf, sampleProjection(), "json"))

	var decoded domain.ProjectionResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 2, decoded.NYears)
	require.Len(t, decoded.Scenarios, 1)
	assert.Equal(t, []int{1, 2}, decoded.Scenarios[0].Years)
}

func TestRenderProjection_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderProjection(&buf, sampleProjection(), "table"))

	out := buf.String()
	assert.Contains(t, out, "Cumulative ROIC projection")
	assert.Contains(t, out, "Terminal-year percentile bands")
	assert.Contains(t, out, "p50 32.0%")
}
