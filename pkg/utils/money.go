package utils

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const CurrencyPrefix = "Rs. "

var printer = message.NewPrinter(language.English)

// FormatCurrency formata valores em rúpias paquistanesas sem casas decimais,
// com separador de milhar: 1250000 -> "Rs. 1,250,000"
func FormatCurrency(amount float64) string {
	rounded := decimal.NewFromFloat(amount).Round(0).IntPart()
	if rounded < 0 {
		return "-" + CurrencyPrefix + printer.Sprintf("%d", -rounded)
	}
	return CurrencyPrefix + printer.Sprintf("%d", rounded)
}

// FormatPercent formata um percentual com uma casa decimal
func FormatPercent(value float64) string {
	return decimal.NewFromFloat(value).Round(1).StringFixed(1) + "%"
}

// FormatCount formata contagens e médias: inteiros sem casas, frações com uma
func FormatCount(value float64) string {
	return decimal.NewFromFloat(value).Round(1).String()
}
