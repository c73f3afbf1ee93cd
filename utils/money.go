package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.English)

// FormatMoney renders a whole currency amount with digit grouping and the
// configured symbol, e.g. "₱17,400".
func FormatMoney(symbol string, amount int) string {
	return moneyPrinter.Sprintf("%s%d", symbol, amount)
}

// FormatCash renders a cash amount (tendered or change) with two decimals,
// e.g. "₱3,400.00".
func FormatCash(symbol string, amount float64) string {
	return moneyPrinter.Sprintf("%s%.2f", symbol, amount)
}
