package analysis

import (
	"energy-ecosystem/internal/model"
	"energy-ecosystem/internal/simulation"
)

// PatternRun is one side of a factory pattern comparison.
type PatternRun struct {
	Pattern    model.FactoryPattern
	Result     *simulation.Result
	Statistics Statistics
	Balance    Balance
}

// Comparison contrasts the steady (A) and daytime (B) factory profiles under
// otherwise identical parameters. Differences are A minus B.
type Comparison struct {
	A PatternRun
	B PatternRun

	PurchaseDiff float64
	SellDiff     float64

	// PurchaseReductionRate is the share of A's grid purchase avoided by B, in
	// percent. It is 0 when A bought nothing.
	PurchaseReductionRate float64
}

// Compare runs p once per factory pattern; p.FactoryLoadPattern is ignored.
func Compare(engine *simulation.Engine, p model.SimulationParams) Comparison {
	run := func(pattern model.FactoryPattern) PatternRun {
		pp := p.WithPattern(pattern)
		res := engine.Run(pp)
		return PatternRun{
			Pattern:    pattern,
			Result:     res,
			Statistics: Summarize(res),
			Balance:    ComputeBalance(pp),
		}
	}

	c := Comparison{
		A: run(model.FactoryPatternA),
		B: run(model.FactoryPatternB),
	}
	c.PurchaseDiff = c.A.Result.TotalGridPurchase - c.B.Result.TotalGridPurchase
	c.SellDiff = c.A.Result.TotalGridSell - c.B.Result.TotalGridSell
	if c.A.Result.TotalGridPurchase > 0 {
		c.PurchaseReductionRate = 100 * c.PurchaseDiff / c.A.Result.TotalGridPurchase
	}
	return c
}
