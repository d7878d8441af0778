// Package calc runs batches of calculation requests against the formulas
// package and collects per-request results.
package calc

import (
	"fmt"

	"github.com/finwerk/fincalc/internal/config"
	"github.com/finwerk/fincalc/pkg/formulas"
	"go.uber.org/zap"
)

// Result holds the outcome of one calculation. Either Value (or Values,
// for operations returning a series) is set, or Err records why the
// calculation failed.
type Result struct {
	Name      string
	Operation string
	Value     float64
	Values    []float64
	Err       error
}

// Engine evaluates calculation batches.
type Engine struct {
	logger *zap.Logger
}

// NewEngine creates a new engine with the given logger.
// If logger is nil, it will use a no-op logger to prevent panics.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// Run evaluates every calculation in the configuration. A failing
// calculation records its error on its own result and does not stop the
// batch.
func (e *Engine) Run(conf config.Configuration) []Result {
	results := make([]Result, 0, len(conf.Calculations))
	for _, calculation := range conf.Calculations {
		result := Result{Name: calculation.Name, Operation: calculation.Operation}
		result.Value, result.Values, result.Err = e.evaluate(calculation)
		if result.Err != nil {
			e.logger.Warn("calculation failed",
				zap.String("op", "calc.Run"),
				zap.String("calculation", calculation.Name),
				zap.Error(result.Err),
			)
		} else {
			e.logger.Debug(fmt.Sprintf("evaluated %s", calculation.Name),
				zap.String("op", "calc.Run"),
				zap.String("operation", calculation.Operation),
				zap.Float64("value", result.Value),
			)
		}
		results = append(results, result)
	}
	return results
}

// evaluate dispatches one calculation to its formula.
func (e *Engine) evaluate(c config.Calculation) (float64, []float64, error) {
	switch c.Operation {
	case "pv":
		return formulas.PV(c.Rate, c.Amount, c.Periods), nil, nil
	case "fv":
		return formulas.FV(c.Rate, c.Amount, c.Periods), nil, nil
	case "npv":
		return formulas.NPV(c.Rate, c.CashFlow...), nil, nil
	case "pp":
		value, err := formulas.PP(c.Periods, c.CashFlow...)
		return value, nil, err
	case "roi":
		return formulas.ROI(c.Initial, c.Earned), nil, nil
	case "am":
		return formulas.AM(c.Principal, c.Rate, c.Periods, c.PeriodInMonths, c.PayAtBeginning), nil, nil
	case "pi":
		return formulas.PI(c.Rate, c.CashFlow...), nil, nil
	case "df":
		return 0, formulas.DF(c.Rate, c.Periods), nil
	case "ci":
		return formulas.CI(c.Rate, c.Compoundings, c.Principal, float64(c.Periods)), nil, nil
	case "cagr":
		return formulas.CAGR(c.Beginning, c.Ending, c.Periods), nil, nil
	case "lr":
		return formulas.LR(c.Liabilities, c.Debts, c.Income), nil, nil
	case "r72":
		return formulas.R72(c.Rate), nil, nil
	case "wacc":
		return formulas.WACC(c.Equity, c.Debt, c.CostOfEquity, c.CostOfDebt, c.TaxRate), nil, nil
	case "pmt":
		return formulas.PMT(c.Rate, c.Periods, c.Principal), nil, nil
	case "iar":
		return formulas.IAR(c.Rate, c.Inflation), nil, nil
	case "capm":
		return formulas.CAPM(c.RiskFree, c.Beta, c.MarketReturn), nil, nil
	case "stockpv":
		return formulas.StockPV(c.Growth, c.Rate, c.Dividend), nil, nil
	case "irr":
		value, err := formulas.IRR(formulas.IRRInput{Depth: c.Depth, CashFlow: c.CashFlow})
		return value, nil, err
	case "xirr":
		value, err := formulas.XIRR(c.CashFlow, c.DateList, c.Guess)
		return value, nil, err
	default:
		return 0, nil, fmt.Errorf("unsupported operation %q", c.Operation)
	}
}
