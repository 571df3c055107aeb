package billing

import (
	"github.com/shopspring/decimal"
)

// VATRatePercent is the process-wide VAT rate applied to every invoice.
const VATRatePercent = 18

// VATRate returns the fixed rate as a decimal, for persisting on the
// invoice row.
func VATRate() decimal.Decimal {
	return decimal.NewFromInt(VATRatePercent)
}

// ComputeVAT derives the VAT amount and the total from a subtotal.
// Both results are rounded to two decimal places, half away from zero.
func ComputeVAT(subtotal decimal.Decimal) (vatAmount, total decimal.Decimal) {
	vatAmount = subtotal.Mul(VATRate()).Div(decimal.NewFromInt(100)).Round(2)
	total = subtotal.Add(vatAmount).Round(2)
	return vatAmount, total
}
