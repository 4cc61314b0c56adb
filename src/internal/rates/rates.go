// Package rates converts between the four supported wallet currencies using
// a static directed rate table. Every non-identity pair is enumerated
// explicitly; inverses are not derived, so round-trips are only approximate.
package rates

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mahfadha/wallet-gateway/src/internal/validation"
)

func mustDecimal(raw string) decimal.Decimal {
	value, err := decimal.NewFromString(raw)
	if err != nil {
		panic(err)
	}
	return value
}

// Directed pairs, DZD as hub plus the three cross rates. A missing key is an
// unsupported conversion, not a derivable one.
var table = map[string]decimal.Decimal{
	"DZD_TO_EUR": mustDecimal("0.0074"),
	"EUR_TO_DZD": mustDecimal("135.14"),
	"DZD_TO_USD": mustDecimal("0.0080"),
	"USD_TO_DZD": mustDecimal("125.00"),
	"DZD_TO_GBP": mustDecimal("0.0063"),
	"GBP_TO_DZD": mustDecimal("158.73"),
	"EUR_TO_USD": mustDecimal("1.08"),
	"USD_TO_EUR": mustDecimal("0.926"),
	"EUR_TO_GBP": mustDecimal("0.855"),
	"GBP_TO_EUR": mustDecimal("1.17"),
	"USD_TO_GBP": mustDecimal("0.79"),
	"GBP_TO_USD": mustDecimal("1.266"),
}

type Conversion struct {
	FromAmount   decimal.Decimal `json:"fromAmount"`
	ToAmount     decimal.Decimal `json:"toAmount"`
	FromCurrency string          `json:"fromCurrency"`
	ToCurrency   string          `json:"toCurrency"`
	Rate         decimal.Decimal `json:"rate"`
	Timestamp    time.Time       `json:"timestamp"`
}

// Convert looks up the directed pair and applies it. The converted amount is
// rounded to 2 decimal places; the rate is echoed back unrounded.
func Convert(amount decimal.Decimal, from, to string) (Conversion, *validation.Error) {
	fromCurrency := strings.ToUpper(strings.TrimSpace(from))
	toCurrency := strings.ToUpper(strings.TrimSpace(to))

	if fromCurrency == toCurrency {
		return Conversion{
			FromAmount:   amount,
			ToAmount:     amount.Round(2),
			FromCurrency: fromCurrency,
			ToCurrency:   toCurrency,
			Rate:         decimal.NewFromInt(1),
			Timestamp:    time.Now().UTC(),
		}, nil
	}

	rate, ok := table[fromCurrency+"_TO_"+toCurrency]
	if !ok {
		return Conversion{}, validation.NewError(validation.KindUnsupportedCurrencyPair)
	}

	return Conversion{
		FromAmount:   amount,
		ToAmount:     amount.Mul(rate).Round(2),
		FromCurrency: fromCurrency,
		ToCurrency:   toCurrency,
		Rate:         rate,
		Timestamp:    time.Now().UTC(),
	}, nil
}

// Pairs returns the supported directed pairs with their rates, for the
// conversion screen.
func Pairs() []Conversion {
	out := make([]Conversion, 0, len(table))
	now := time.Now().UTC()
	for pair, rate := range table {
		parts := strings.SplitN(pair, "_TO_", 2)
		out = append(out, Conversion{
			FromCurrency: parts[0],
			ToCurrency:   parts[1],
			Rate:         rate,
			Timestamp:    now,
		})
	}
	return out
}
