package calculation

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roiclab/roicsim/internal/domain"
)

func testGrowth() domain.GrowthAssumptions {
	return domain.GrowthAssumptions{
		MarketingGrowth: decimal.NewFromFloat(0.10),
		CapitalGrowth:   decimal.NewFromFloat(0.05),
	}
}

func testProjectionConfig(seed int64) ProjectionConfig {
	cfg := NewProjectionEngine().Config()
	cfg.Seed = seed
	cfg.NYears = 5
	cfg.NSimulations = 200
	return cfg
}

func TestNewProjectionEngine_Defaults(t *testing.T) {
	cfg := NewProjectionEngine().Config()

	assert.Equal(t, 5, cfg.NYears)
	assert.Equal(t, 1000, cfg.NSimulations)
	assert.True(t, cfg.BaseEffectiveness.Equal(decimal.NewFromFloat(0.50)))
	assert.True(t, cfg.RevenueStd.Equal(decimal.NewFromFloat(0.05)))
	assert.True(t, cfg.CapitalStd.Equal(decimal.NewFromFloat(0.4)))
	assert.True(t, cfg.ClampNegativeIncome)
	assert.Len(t, cfg.RemovalScenarios, 4)
}

func TestProjectionEngine_Run_Shape(t *testing.T) {
	cfg := testProjectionConfig(42)
	cfg.NYears = 4
	cfg.NSimulations = 50
	cfg.RemovalScenarios = []decimal.Decimal{decimal.Zero, decimal.NewFromFloat(0.5)}

	result := NewProjectionEngineWithConfig(cfg).Run(baselineInputs(), testGrowth())
	require.NotNil(t, result)

	assert.Equal(t, 4, result.NYears)
	assert.Equal(t, 50, result.NSimulations)
	require.Len(t, result.Scenarios, 2)

	for _, sc := range result.Scenarios {
		assert.Equal(t, []int{1, 2, 3, 4}, sc.Years)
		assert.Len(t, sc.MeanROIC, 4)
		assert.Len(t, sc.StdROIC, 4)
		require.NotNil(t, sc.TerminalPercentiles)
		assert.Len(t, sc.TerminalPercentiles, 5)
	}
}

func TestProjectionEngine_Run_Reproducible(t *testing.T) {
	cfg := testProjectionConfig(12345)

	first := NewProjectionEngineWithConfig(cfg).Run(baselineInputs(), testGrowth())
	second := NewProjectionEngineWithConfig(cfg).Run(baselineInputs(), testGrowth())

	assert.Equal(t, first, second, "identical seeds should produce bit-identical output")
}

func TestProjectionEngine_Run_SeedMatters(t *testing.T) {
	first := NewProjectionEngineWithConfig(testProjectionConfig(1)).Run(baselineInputs(), testGrowth())
	second := NewProjectionEngineWithConfig(testProjectionConfig(2)).Run(baselineInputs(), testGrowth())

	assert.NotEqual(t, first.Scenarios[0].MeanROIC, second.Scenarios[0].MeanROIC,
		"different seeds should change the sampled paths")
}

func TestProjectionEngine_Run_ZeroCapital(t *testing.T) {
	fin := baselineInputs()
	fin.InvestedCapital = decimal.Zero

	cfg := testProjectionConfig(7)
	cfg.NSimulations = 20

	result := NewProjectionEngineWithConfig(cfg).Run(fin, testGrowth())

	// Capital stays at zero on every path, so the per-year guard must hold
	// the whole cumulative series at zero.
	for _, sc := range result.Scenarios {
		for year, mean := range sc.MeanROIC {
			assert.True(t, mean.IsZero(), "year %d mean should be zero, got %s", year+1, mean)
			assert.True(t, sc.StdROIC[year].IsZero(), "year %d std should be zero", year+1)
		}
	}
}

func TestProjectionEngine_Run_MoreRemovalNotWorse(t *testing.T) {
	cfg := testProjectionConfig(99)
	cfg.NSimulations = 2000
	cfg.RemovalScenarios = []decimal.Decimal{decimal.Zero, decimal.NewFromFloat(0.99)}

	result := NewProjectionEngineWithConfig(cfg).Run(baselineInputs(), testGrowth())
	require.Len(t, result.Scenarios, 2)

	lastYear := cfg.NYears - 1
	noRemoval := result.Scenarios[0].MeanROIC[lastYear]
	fullRemoval := result.Scenarios[1].MeanROIC[lastYear]

	// Statistical property: allow a small tolerance for sampling noise.
	tolerance := decimal.NewFromFloat(0.01)
	assert.True(t, fullRemoval.GreaterThanOrEqual(noRemoval.Sub(tolerance)),
		"removing waste should not lower mean terminal ROIC: %s vs %s", fullRemoval, noRemoval)
}

func TestProjectionEngine_StepYear_FirstYearRemoval(t *testing.T) {
	cfg := testProjectionConfig(1)
	cfg.BaseEffectiveness = decimal.NewFromFloat(0.50)
	engine := NewProjectionEngineWithConfig(cfg)

	fin := baselineInputs()
	state := pathState{
		Revenue:   fin.Revenue,
		Marketing: fin.TotalMarketingSpend,
		Capital:   fin.InvestedCapital,
	}

	next, outcome := engine.stepYear(state, 1, fin, testGrowth(), decimal.NewFromInt(1))

	// Full removal of the 100k waste leaves 100k of spend: income 300k,
	// NOPAT 225k, ROIC 0.45.
	assert.True(t, next.Marketing.Equal(decimal.NewFromInt(100000)), "got %s", next.Marketing)
	assert.True(t, outcome.NOPAT.Equal(decimal.NewFromInt(225000)), "got %s", outcome.NOPAT)
	assert.True(t, outcome.ROIC.Equal(decimal.NewFromFloat(0.45)), "got %s", outcome.ROIC)
	assert.True(t, next.PriorROIC.Equal(outcome.ROIC))
}

func TestProjectionEngine_StepYear_GrowthAdjustmentClamped(t *testing.T) {
	cfg := testProjectionConfig(1)
	engine := NewProjectionEngineWithConfig(cfg)
	fin := baselineInputs()

	// Prior ROIC far above baseline: the adjustment must cap at +0.20, so
	// marketing grows by at most the nominal rate plus 20 points.
	state := pathState{
		Revenue:   fin.Revenue,
		Marketing: decimal.NewFromInt(100000),
		Capital:   fin.InvestedCapital,
		PriorROIC: decimal.NewFromInt(5),
	}

	next, _ := engine.stepYear(state, 2, fin, testGrowth(), decimal.Zero)

	// 100k * (0.10 + 0.20) growth with no waste removed.
	assert.True(t, next.Marketing.Equal(decimal.NewFromInt(130000)), "got %s", next.Marketing)
}

func TestProjectionEngine_StepYear_NegativeIncomeClamp(t *testing.T) {
	fin := baselineInputs()
	fin.Revenue = decimal.NewFromInt(100000)

	state := pathState{
		Revenue:   fin.Revenue,
		Marketing: fin.TotalMarketingSpend,
		Capital:   fin.InvestedCapital,
	}

	clamped := testProjectionConfig(1)
	clamped.ClampNegativeIncome = true
	_, outcome := NewProjectionEngineWithConfig(clamped).stepYear(state, 1, fin, testGrowth(), decimal.Zero)
	assert.True(t, outcome.NOPAT.IsZero(), "clamped NOPAT should floor at zero, got %s", outcome.NOPAT)

	unclamped := clamped
	unclamped.ClampNegativeIncome = false
	_, outcome = NewProjectionEngineWithConfig(unclamped).stepYear(state, 1, fin, testGrowth(), decimal.Zero)
	assert.True(t, outcome.NOPAT.IsNegative(), "unclamped NOPAT should stay negative, got %s", outcome.NOPAT)
}

func TestProjectionEngine_Advance_CapitalNeverNegative(t *testing.T) {
	cfg := testProjectionConfig(1)
	// Enormous spread so many sampled multipliers would go negative
	// without the floor.
	cfg.CapitalStd = decimal.NewFromInt(10)
	engine := NewProjectionEngineWithConfig(cfg)

	fin := baselineInputs()
	rng := rand.New(rand.NewSource(3))

	state := pathState{
		Revenue:   fin.Revenue,
		Marketing: fin.TotalMarketingSpend,
		Capital:   fin.InvestedCapital,
	}

	for i := 0; i < 200; i++ {
		state = engine.advance(state, decimal.NewFromFloat(0.30), fin.TotalMarketingSpend, testGrowth(), rng)
		assert.False(t, state.Capital.IsNegative(), "capital flipped negative on draw %d: %s", i, state.Capital)
		assert.False(t, state.Revenue.IsNegative(), "revenue flipped negative on draw %d: %s", i, state.Revenue)
	}
}

func TestProjectionEngine_SimulatePath_CumulativeGuard(t *testing.T) {
	fin := baselineInputs()
	fin.InvestedCapital = decimal.Zero

	cfg := testProjectionConfig(1)
	engine := NewProjectionEngineWithConfig(cfg)

	cumulative := engine.simulatePath(fin, testGrowth(), decimal.Zero, rand.New(rand.NewSource(1)))
	require.Len(t, cumulative, cfg.NYears)
	for year, v := range cumulative {
		assert.Zero(t, v, "cumulative ROIC should be guarded to zero in year %d", year+1)
	}
}
