// Package finance implements the deal-builder's payment math: loan
// amortization, lease payments, and the buying-power inverse calculation.
// Everything here is pure and stateless; results are recomputed on every
// input change and never cached.
package finance

import (
	"math"

	"github.com/crestline/showroom/internal/constants"
)

// PaymentResult is the outcome of a loan payment calculation.
type PaymentResult struct {
	Monthly       float64
	TotalCost     float64
	TotalInterest float64
}

// LeaseResult is the outcome of a lease payment calculation.
type LeaseResult struct {
	Monthly       float64
	DueAtSigning  float64
	ResidualValue float64
}

// BuyingPowerResult is the outcome of the inverse annuity calculation.
type BuyingPowerResult struct {
	// Term is the loan term in months, 72 or 84.
	Term int
	// LoanAmount is the principal the monthly payment supports at Term.
	LoanAmount float64
	// TotalBuyingPower is the loan amount grossed up by the down payment.
	TotalBuyingPower float64
	// DownPaymentAmount is the dollar down payment implied by the percent.
	DownPaymentAmount float64
}

// FinancePayment computes the monthly payment for a simple amortized loan
// using the standard annuity formula. apr is the annual rate as a fraction
// (0.069 for 6.9%). A zero rate degenerates to principal divided by term.
func FinancePayment(principal, apr float64, termMonths int) PaymentResult {
	r := apr / 12

	var monthly float64
	if r == 0 {
		monthly = principal / float64(termMonths)
	} else {
		monthly = principal * r / (1 - math.Pow(1+r, -float64(termMonths)))
	}

	total := monthly * float64(termMonths)
	return PaymentResult{
		Monthly:       monthly,
		TotalCost:     total,
		TotalInterest: total - principal,
	}
}

// LeasePayment computes a standard lease payment. totalUpfront is the cash
// down payment plus any non-negative trade equity. The residual value is
// assumed against MSRP, not the negotiated sale price. Due at signing
// follows the first-payment-at-signing convention.
func LeasePayment(msrp, salePrice, totalUpfront float64, termMonths int, residualFraction, moneyFactor float64) LeaseResult {
	residual := msrp * residualFraction
	netCap := salePrice - totalUpfront

	depreciationFee := (netCap - residual) / float64(termMonths)
	financeFee := (netCap + residual) * moneyFactor
	monthly := depreciationFee + financeFee

	return LeaseResult{
		Monthly:       monthly,
		DueAtSigning:  totalUpfront + monthly,
		ResidualValue: residual,
	}
}

// BuyingPower solves the annuity formula in reverse at the showroom's fixed
// APR: given the payment a customer is comfortable with, how much vehicle
// can they afford. See BuyingPowerAt.
func BuyingPower(maxPayment, downPaymentPercent float64) BuyingPowerResult {
	return BuyingPowerAt(maxPayment, downPaymentPercent, constants.BuyingPowerAPR)
}

// BuyingPowerAt is BuyingPower with an explicit APR.
//
// Term selection is a single threshold test: the 84-month term applies only
// when the principal it supports strictly exceeds the long-term threshold,
// otherwise the 72-month term is used. At exactly the threshold the shorter
// term wins. The loan amount is then grossed up by the down-payment
// fraction to yield total buying power.
func BuyingPowerAt(maxPayment, downPaymentPercent, apr float64) BuyingPowerResult {
	term := constants.ShortTermMonths
	if loanAmount(maxPayment, apr, constants.LongTermMonths) > constants.LongTermThreshold {
		term = constants.LongTermMonths
	}

	loan := loanAmount(maxPayment, apr, term)

	fraction := downPaymentPercent / 100
	total := loan
	if fraction > 0 {
		total = loan / (1 - fraction)
	}

	return BuyingPowerResult{
		Term:              term,
		LoanAmount:        loan,
		TotalBuyingPower:  total,
		DownPaymentAmount: total * fraction,
	}
}

// loanAmount returns the principal a fixed monthly payment supports over
// term months at the given APR. Zero-rate input must short-circuit to avoid
// dividing by zero.
func loanAmount(payment, apr float64, term int) float64 {
	r := apr / 12
	if r == 0 {
		return payment * float64(term)
	}
	return payment * (1 - math.Pow(1+r, -float64(term))) / r
}

// TradeEquity returns the plain equity position on a trade vehicle. It can
// go negative; display layers show the sign explicitly.
func TradeEquity(estimatedMid, payoffAmount float64) float64 {
	return estimatedMid - payoffAmount
}

// EquityTowardDownPayment returns the equity usable as a down payment.
// Negative equity contributes nothing rather than inflating the principal.
func EquityTowardDownPayment(estimatedMid, payoffAmount float64) float64 {
	return math.Max(0, TradeEquity(estimatedMid, payoffAmount))
}
