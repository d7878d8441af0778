// Package formulas provides standalone financial-mathematics formulas:
// discounting, compounding, amortization, valuation ratios, and the two
// iterative rate-of-return solvers IRR and XIRR. Every function takes
// plain numeric (and for XIRR, date) inputs and returns a single numeric
// result; nothing persists across calls.
package formulas

import (
	"fmt"
	"math"

	"github.com/finwerk/fincalc/pkg/constants"
	"github.com/finwerk/fincalc/pkg/mathutil"
)

// PV returns the present value of a single future cash flow discounted at
// rate percent per period over the given number of periods, rounded to two
// decimals.
func PV(rate, cashFlow float64, periods int) float64 {
	r := rate / constants.PercentageMultiplier
	return mathutil.Round(cashFlow / math.Pow(1+r, float64(periods)))
}

// FV returns the future value of a single cash flow compounded at rate
// percent per period over the given number of periods, rounded to two
// decimals.
func FV(rate, cashFlow float64, periods int) float64 {
	r := rate / constants.PercentageMultiplier
	return mathutil.Round(cashFlow * math.Pow(1+r, float64(periods)))
}

// NPV returns the net present value of a series of cash flows at rate
// percent per period. cashFlow[0] is taken at time zero and is not
// discounted; cashFlow[i] is discounted over i periods. Rounded to two
// decimals.
func NPV(rate float64, cashFlow ...float64) float64 {
	r := rate / constants.PercentageMultiplier
	var npv float64
	for i, cf := range cashFlow {
		npv += cf / math.Pow(1+r, float64(i))
	}
	return mathutil.Round(npv)
}

// PP returns the payback period of a series of cash flows. With periods ==
// 0 the flows are treated as even and the result is |cashFlow[0]| /
// cashFlow[1]. Otherwise the flows are uneven: full periods accumulate
// until the running total turns positive, and the crossing period
// contributes its original fractional adjustment. Fails when the running
// total never turns positive.
func PP(periods int, cashFlow ...float64) (float64, error) {
	if len(cashFlow) < 2 {
		return 0, fmt.Errorf("payback period requires at least two cash flows, got %d", len(cashFlow))
	}
	if periods == 0 {
		return math.Abs(cashFlow[0]) / cashFlow[1], nil
	}

	cumulative := cashFlow[0]
	years := 1.0
	for i := 1; i < len(cashFlow); i++ {
		cumulative += cashFlow[i]
		if cumulative > 0 {
			years += (cumulative - cashFlow[i]) / cashFlow[i]
			return years, nil
		}
		years++
	}
	return 0, fmt.Errorf("cumulative cash flow never turns positive over %d flows", len(cashFlow))
}

// ROI returns the return on investment, in percent rounded to two
// decimals, of earning the given amount on the given initial outlay.
func ROI(initial, earned float64) float64 {
	roi := (earned - math.Abs(initial)) / math.Abs(initial) * constants.PercentageMultiplier
	return mathutil.Round(roi)
}

// AM returns the amortized payment per month for a loan of the given
// principal at rate percent per year, rounded to two decimals. period is
// interpreted in years unless periodInMonths is set. With payAtBeginning
// set, payments fall at the start of each period (annuity due).
func AM(principal, rate float64, period int, periodInMonths, payAtBeginning bool) float64 {
	ratePerPeriod := rate / constants.MonthsPerYear / constants.PercentageMultiplier

	numPayments := period * constants.MonthsPerYear
	if periodInMonths {
		numPayments = period
	}

	interestAccruals := float64(numPayments)
	if payAtBeginning {
		// One fewer accrual period when payments start immediately.
		interestAccruals--
	}

	numerator := ratePerPeriod * math.Pow(1+ratePerPeriod, interestAccruals)
	denominator := math.Pow(1+ratePerPeriod, float64(numPayments)) - 1
	return mathutil.Round(principal * (numerator / denominator))
}

// PI returns the profitability index of a series of cash flows at rate
// percent per period: the discounted value of cashFlow[1:] over the
// magnitude of the initial outlay cashFlow[0]. Rounded to two decimals.
func PI(rate float64, cashFlow ...float64) float64 {
	r := rate / constants.PercentageMultiplier
	var totalOfPVs float64
	for i := 1; i < len(cashFlow); i++ {
		totalOfPVs += cashFlow[i] / math.Pow(1+r, float64(i))
	}
	return mathutil.Round(totalOfPVs / math.Abs(cashFlow[0]))
}

// DF returns the periods-1 discount factors at rate percent leading up to
// the given period, the first factor being 1 for period zero. Each factor
// is rounded up at the second decimal.
func DF(rate float64, periods int) []float64 {
	r := rate / constants.PercentageMultiplier
	factors := make([]float64, 0, periods-1)
	for i := 1; i < periods; i++ {
		factor := 1 / math.Pow(1+r, float64(i-1))
		factors = append(factors, mathutil.RoundUp(factor))
	}
	return factors
}

// CI returns the compound-interest value of principal at rate percent per
// period, compounded the given number of times per period over the given
// number of periods. Rounded to two decimals.
func CI(rate, compoundings, principal, periods float64) float64 {
	r := rate / constants.PercentageMultiplier
	ci := principal * math.Pow(1+r/compoundings, compoundings*periods)
	return mathutil.Round(ci)
}

// CAGR returns the compound annual growth rate, in percent rounded to two
// decimals, between a beginning and an ending value over the given number
// of periods.
func CAGR(beginning, ending float64, periods int) float64 {
	cagr := math.Pow(ending/beginning, 1/float64(periods)) - 1
	return mathutil.Round(cagr * constants.PercentageMultiplier)
}

// LR returns the leverage ratio: total liabilities plus total debts over
// total income.
func LR(totalLiabilities, totalDebts, totalIncome float64) float64 {
	return (totalLiabilities + totalDebts) / totalIncome
}

// R72 returns the rule-of-72 estimate of the number of periods required to
// double an investment at rate percent per period.
func R72(rate float64) float64 {
	return 72 / rate
}

// WACC returns the weighted average cost of capital, in percent rounded to
// one decimal, for the given market values of equity and debt, the costs
// of each in percent, and the tax rate in percent.
func WACC(marketValueOfEquity, marketValueOfDebt, costOfEquity, costOfDebt, taxRate float64) float64 {
	e := marketValueOfEquity
	d := marketValueOfDebt
	v := e + d
	re := costOfEquity / constants.PercentageMultiplier
	rd := costOfDebt / constants.PercentageMultiplier
	t := taxRate / constants.PercentageMultiplier
	wacc := (e/v)*re + (d/v)*rd*(1-t)
	return math.Round(wacc*1000) / 10
}

// PMT returns the periodic loan payment for the given fractional rate per
// period (not a percentage), number of payments, and principal. The result
// carries the payer's negative sign convention and is not rounded.
func PMT(fractionalRate float64, numPayments int, principal float64) float64 {
	return -principal * fractionalRate / (1 - math.Pow(1+fractionalRate, float64(-numPayments)))
}

// IAR returns the inflation-adjusted (real) return, in percent, of a
// nominal investment return against an inflation rate, both in percent.
func IAR(investmentReturn, inflationRate float64) float64 {
	return constants.PercentageMultiplier *
		((1+investmentReturn/constants.PercentageMultiplier)/(1+inflationRate/constants.PercentageMultiplier) - 1)
}

// CAPM returns the expected return of an asset under the capital asset
// pricing model, as a fraction. Inputs are the risk-free rate and expected
// market return in percent, and the asset's beta.
func CAPM(riskFreeRate, beta, marketReturn float64) float64 {
	rf := riskFreeRate / constants.PercentageMultiplier
	emr := marketReturn / constants.PercentageMultiplier
	return rf + beta*(emr-rf)
}

// StockPV returns the present value of a stock under the Gordon
// dividend-growth model, rounded to the nearest whole unit. growthRate and
// requiredReturn are in percent; lastDividend is the most recent dividend
// paid.
func StockPV(growthRate, requiredReturn, lastDividend float64) float64 {
	g := growthRate / constants.PercentageMultiplier
	ke := requiredReturn / constants.PercentageMultiplier
	return math.Round(lastDividend * (1 + g) / (ke - g))
}
