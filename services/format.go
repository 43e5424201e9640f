package services

import "github.com/shopspring/decimal"

// CurrencySymbol prefixes every displayed amount.
const CurrencySymbol = "£"

// FormatAmount renders an amount with exactly 2 decimal places and no symbol
// (e.g. 15 -> "15.00", 1.755 -> "1.76").
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// FormatGBP formats an amount as pounds with exactly 2 decimal places and
// no digit grouping (e.g. £1020.50). Negative amounts get a leading minus
// before the symbol.
func FormatGBP(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-" + CurrencySymbol + FormatAmount(amount.Neg())
	}
	return CurrencySymbol + FormatAmount(amount)
}

// FormatPence renders sub-pound prices the way the price list does ("50p"),
// and whole or fractional pounds as "£15" / "£1.75".
func FormatPence(amount decimal.Decimal) string {
	if amount.LessThan(decimal.NewFromInt(1)) {
		return amount.Shift(2).Round(0).String() + "p"
	}
	if amount.Equal(amount.Truncate(0)) {
		return CurrencySymbol + amount.Truncate(0).String()
	}
	return CurrencySymbol + FormatAmount(amount)
}
