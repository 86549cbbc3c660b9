package calculation

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/roiclab/roicsim/internal/domain"
)

// ProjectionEngine runs the multi-year cumulative ROIC Monte Carlo
// projection. Each simulated path evolves revenue, marketing spend and
// invested capital year by year, with the prior year's ROIC feeding back
// into the next year's growth.
type ProjectionEngine struct {
	config ProjectionConfig
}

// ProjectionConfig holds tuning for the Monte Carlo projection.
type ProjectionConfig struct {
	NYears       int
	NSimulations int
	Seed         int64

	BaseEffectiveness decimal.Decimal
	RemovalScenarios  []decimal.Decimal

	// Stochastic spread of the annual revenue and capital shocks.
	RevenueStd decimal.Decimal
	CapitalStd decimal.Decimal

	// Feedback terms: how strongly the prior year's ROIC nudges marketing
	// growth, and how much above-baseline ROIC boosts revenue and capital.
	ROICImpact   decimal.Decimal
	BaselineROIC decimal.Decimal
	RevenueBoost decimal.Decimal
	CapitalBoost decimal.Decimal

	// Exponent applied to the marketing-spend ratio when deriving revenue
	// growth. Below 1 so that extra spend has diminishing returns.
	DiminishingReturns float64

	// ClampNegativeIncome floors NOPAT at zero inside the year step. When
	// false, negative NOPAT flows through into the cumulative series.
	ClampNegativeIncome bool
}

// Bounds on the ROIC-linked feedback terms, to prevent runaway
// compounding in either direction. The excess-ROIC cap matters when a
// near-zero capital draw makes a single year's ROIC explode.
var (
	growthAdjFloor = decimal.NewFromFloat(-0.10)
	growthAdjCeil  = decimal.NewFromFloat(0.20)
	excessROICCeil = decimal.NewFromInt(1)
)

// NewProjectionEngine creates a projection engine with default settings.
func NewProjectionEngine() *ProjectionEngine {
	return NewProjectionEngineWithConfig(ProjectionConfig{
		NYears:              5,
		NSimulations:        1000,
		Seed:                time.Now().UnixNano(),
		BaseEffectiveness:   decimal.NewFromFloat(0.50),
		RemovalScenarios:    domain.DefaultRemovalScenarios,
		RevenueStd:          decimal.NewFromFloat(0.05),
		CapitalStd:          decimal.NewFromFloat(0.4),
		ROICImpact:          decimal.NewFromInt(1),
		BaselineROIC:        decimal.NewFromFloat(0.05),
		RevenueBoost:        decimal.NewFromFloat(0.7),
		CapitalBoost:        decimal.NewFromFloat(0.5),
		DiminishingReturns:  0.7,
		ClampNegativeIncome: true,
	})
}

// NewProjectionEngineWithConfig creates a projection engine with explicit
// settings. Values are used as given; the config layer is responsible for
// rejecting invalid ones.
func NewProjectionEngineWithConfig(config ProjectionConfig) *ProjectionEngine {
	return &ProjectionEngine{config: config}
}

// Config returns the engine's active configuration.
func (pe *ProjectionEngine) Config() ProjectionConfig {
	return pe.config
}

// pathState is the mutable per-path state threaded through the year loop.
type pathState struct {
	Revenue   decimal.Decimal
	Marketing decimal.Decimal
	Capital   decimal.Decimal
	PriorROIC decimal.Decimal
}

// yearOutcome records what a single simulated year produced.
type yearOutcome struct {
	NOPAT   decimal.Decimal
	Capital decimal.Decimal
	ROIC    decimal.Decimal
}

// Run simulates NSimulations independent paths over NYears for every
// removal scenario and aggregates each year's cumulative ROIC into mean and
// standard deviation across paths.
//
// Every path owns a private random stream seeded from Seed plus the path's
// index, so a fixed Seed reproduces bit-identical output regardless of
// goroutine scheduling.
func (pe *ProjectionEngine) Run(fin domain.FinancialInputs, growth domain.GrowthAssumptions) *domain.ProjectionResult {
	cfg := pe.config

	result := &domain.ProjectionResult{
		BaseEffectiveness: cfg.BaseEffectiveness,
		NYears:            cfg.NYears,
		NSimulations:      cfg.NSimulations,
		Scenarios:         make([]domain.ScenarioProjection, 0, len(cfg.RemovalScenarios)),
	}

	for scenarioIdx, removalPct := range cfg.RemovalScenarios {
		cumulative := make([][]float64, cfg.NSimulations)

		var wg sync.WaitGroup
		for i := 0; i < cfg.NSimulations; i++ {
			wg.Add(1)
			go func(pathID int) {
				defer wg.Done()
				seed := cfg.Seed + int64(scenarioIdx)*int64(cfg.NSimulations) + int64(pathID)
				rng := rand.New(rand.NewSource(seed))
				cumulative[pathID] = pe.simulatePath(fin, growth, removalPct, rng)
			}(i)
		}
		wg.Wait()

		result.Scenarios = append(result.Scenarios, pe.aggregate(removalPct, cumulative))
	}

	return result
}

// simulatePath runs one stochastic path and returns its cumulative ROIC at
// each year: summed NOPAT to date over summed deployed capital to date.
func (pe *ProjectionEngine) simulatePath(fin domain.FinancialInputs, growth domain.GrowthAssumptions, removalPct decimal.Decimal, rng *rand.Rand) []float64 {
	cfg := pe.config

	state := pathState{
		Revenue:   fin.Revenue,
		Marketing: fin.TotalMarketingSpend,
		Capital:   fin.InvestedCapital,
		PriorROIC: decimal.Zero,
	}

	cumNOPAT := decimal.Zero
	cumCapital := decimal.Zero
	cumulative := make([]float64, 0, cfg.NYears)

	for year := 1; year <= cfg.NYears; year++ {
		var outcome yearOutcome
		state, outcome = pe.stepYear(state, year, fin, growth, removalPct)

		cumNOPAT = cumNOPAT.Add(outcome.NOPAT)
		cumCapital = cumCapital.Add(outcome.Capital)
		cumulative = append(cumulative, ROIC(cumNOPAT, cumCapital).InexactFloat64())

		if year < cfg.NYears {
			state = pe.advance(state, outcome.ROIC, fin.TotalMarketingSpend, growth, rng)
		}
	}

	return cumulative
}

// stepYear applies one year of waste removal and accounting to the path
// state. It is deterministic; all randomness lives in advance.
//
// Year 1 removes the chosen fraction of waste from the entire marketing
// budget. Later years remove waste only from the year's marketing growth,
// after that growth has been adjusted by the prior year's ROIC performance.
func (pe *ProjectionEngine) stepYear(state pathState, year int, fin domain.FinancialInputs, growth domain.GrowthAssumptions, removalPct decimal.Decimal) (pathState, yearOutcome) {
	cfg := pe.config
	wasteShare := one.Sub(cfg.BaseEffectiveness)

	if year == 1 {
		removedWaste := state.Marketing.Mul(wasteShare).Mul(removalPct)
		state.Marketing = state.Marketing.Sub(removedWaste)
	} else {
		adjustment := state.PriorROIC.Sub(cfg.BaselineROIC).Mul(cfg.ROICImpact)
		adjustment = clampRange(adjustment, growthAdjFloor, growthAdjCeil)
		baseGrowth := state.Marketing.Mul(growth.MarketingGrowth.Add(adjustment))
		removedGrowthWaste := baseGrowth.Mul(wasteShare).Mul(removalPct)
		state.Marketing = state.Marketing.Add(baseGrowth).Sub(removedGrowthWaste)
	}

	// COGS and non-marketing opex are held at their base-year values.
	yearInputs := fin
	yearInputs.Revenue = state.Revenue
	operatingIncome := OperatingIncome(yearInputs, state.Marketing)

	nopat := NOPAT(operatingIncome, fin.TaxRate)
	if cfg.ClampNegativeIncome && nopat.IsNegative() {
		nopat = decimal.Zero
	}

	roic := ROIC(nopat, state.Capital)
	state.PriorROIC = roic

	return state, yearOutcome{NOPAT: nopat, Capital: state.Capital, ROIC: roic}
}

// advance applies the stochastic between-year transitions: revenue grows
// with marketing-driven diminishing returns plus an ROIC boost and a normal
// shock, capital takes a normally distributed multiplicative shock whose
// mean blends the nominal capital growth with an ROIC-linked boost. The
// excess-ROIC term is capped and both sampled multipliers are floored so
// neither quantity can flip sign.
func (pe *ProjectionEngine) advance(state pathState, currentROIC, baseMarketing decimal.Decimal, growth domain.GrowthAssumptions, rng *rand.Rand) pathState {
	cfg := pe.config

	baseRevenueGrowth := decimal.Zero
	if baseMarketing.GreaterThan(decimal.Zero) && state.Marketing.GreaterThan(decimal.Zero) {
		spendRatio := state.Marketing.Div(baseMarketing).InexactFloat64()
		baseRevenueGrowth = growth.MarketingGrowth.Mul(decimal.NewFromFloat(math.Pow(spendRatio, cfg.DiminishingReturns)))
	}

	aboveBaseline := clampRange(currentROIC.Sub(cfg.BaselineROIC), decimal.Zero, excessROICCeil)

	revenueGrowth := baseRevenueGrowth.
		Add(aboveBaseline.Mul(cfg.RevenueBoost)).
		Add(decimal.NewFromFloat(rng.NormFloat64()).Mul(cfg.RevenueStd))
	if revenueGrowth.IsNegative() {
		revenueGrowth = decimal.Zero
	}
	state.Revenue = state.Revenue.Mul(one.Add(revenueGrowth))

	capitalGrowth := growth.CapitalGrowth.
		Add(aboveBaseline.Mul(cfg.CapitalBoost)).
		Add(decimal.NewFromFloat(rng.NormFloat64()).Mul(cfg.CapitalStd))
	multiplier := one.Add(capitalGrowth)
	if multiplier.IsNegative() {
		multiplier = decimal.Zero
	}
	state.Capital = state.Capital.Mul(multiplier)

	return state
}

// aggregate collapses all paths of one scenario into per-year mean/std and
// terminal-year percentile bands.
func (pe *ProjectionEngine) aggregate(removalPct decimal.Decimal, cumulative [][]float64) domain.ScenarioProjection {
	cfg := pe.config

	projection := domain.ScenarioProjection{
		RemovalPct: removalPct,
		Years:      make([]int, 0, cfg.NYears),
		MeanROIC:   make([]decimal.Decimal, 0, cfg.NYears),
		StdROIC:    make([]decimal.Decimal, 0, cfg.NYears),
	}

	column := make([]float64, len(cumulative))
	for year := 0; year < cfg.NYears; year++ {
		for path := range cumulative {
			column[path] = cumulative[path][year]
		}
		mean, std := meanStdDev(column)

		projection.Years = append(projection.Years, year+1)
		projection.MeanROIC = append(projection.MeanROIC, mean)
		projection.StdROIC = append(projection.StdROIC, std)

		if year == cfg.NYears-1 {
			projection.TerminalPercentiles = percentileBands(column)
		}
	}

	return projection
}

func clampRange(d, floor, ceil decimal.Decimal) decimal.Decimal {
	if d.LessThan(floor) {
		return floor
	}
	if d.GreaterThan(ceil) {
		return ceil
	}
	return d
}
