package types

import "github.com/shopspring/decimal"

// MoneyFromCents converts an amount in integer minor currency units into a
// decimal amount, e.g. 1099 -> 10.99. Prices arrive from record sources as
// cents to avoid floating point error.
func MoneyFromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// RoundMoney rounds a decimal amount to 2 places, the precision used by every
// analyst aggregate that reports currency.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}
