// Package validation holds the client-facing rule set that gates financial
// operations before they reach the remote backend. Every validator is a pure
// function: it normalizes its input, checks it against a fixed rule, and
// returns the normalized value together with a structured *Error carrying a
// pre-localized Arabic message.
package validation

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	DefaultMinAmount = decimal.NewFromInt(1)
	DefaultMaxAmount = decimal.NewFromInt(1_000_000_000)
)

var supportedCurrencies = map[string]bool{
	"dzd": true,
	"eur": true,
	"usd": true,
	"gbp": true,
}

var transactionTypes = map[string]bool{
	"recharge":   true,
	"transfer":   true,
	"bill":       true,
	"investment": true,
	"conversion": true,
	"withdrawal": true,
}

var investmentTypes = map[string]bool{
	"weekly":    true,
	"monthly":   true,
	"quarterly": true,
	"yearly":    true,
}

var (
	accountNumberRegex  = regexp.MustCompile(`^ACC\d{9}$`)
	algerianMobileRegex = regexp.MustCompile(`^\+213[567]\d{8}$`)
	internationalRegex  = regexp.MustCompile(`^\+\d{10,15}$`)
	emailRegex          = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonPhoneCharsRegex  = regexp.MustCompile(`[^\d+]`)
)

// Amount bounds-checks a raw amount against the generic [1, 1e9] range.
func Amount(raw string) (decimal.Decimal, *Error) {
	return AmountWithin(raw, DefaultMinAmount, DefaultMaxAmount)
}

// AmountWithin checks a raw amount against an inclusive [min, max] range.
// Checks run in a fixed order and the first failure wins.
func AmountWithin(raw string, min, max decimal.Decimal) (decimal.Decimal, *Error) {
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, NewError(KindInvalidAmountFormat)
	}
	if value.IsNegative() {
		return decimal.Zero, NewError(KindAmountNegative)
	}
	if value.IsZero() {
		return decimal.Zero, NewError(KindAmountNonPositive)
	}
	if value.LessThan(min) {
		return decimal.Zero, NewError(KindAmountBelowMinimum, min.String())
	}
	if value.GreaterThan(max) {
		return decimal.Zero, NewError(KindAmountAboveMaximum, max.String())
	}
	return value, nil
}

// Currency checks membership in the closed supported set. The normalized
// value is lowercase; the original casing is discarded on failure.
func Currency(raw string) (string, *Error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if !supportedCurrencies[value] {
		return "", NewError(KindUnsupportedCurrency)
	}
	return value, nil
}

func TransactionType(raw string) (string, *Error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if !transactionTypes[value] {
		return "", NewError(KindUnsupportedTransactionType)
	}
	return value, nil
}

func InvestmentType(raw string) (string, *Error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if !investmentTypes[value] {
		return "", NewError(KindUnsupportedInvestmentType)
	}
	return value, nil
}

// ProfitRate must parse as a number in [0, 100].
func ProfitRate(raw string) (decimal.Decimal, *Error) {
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, NewError(KindInvalidProfitRate)
	}
	if value.IsNegative() || value.GreaterThan(decimal.NewFromInt(100)) {
		return decimal.Zero, NewError(KindInvalidProfitRate)
	}
	return value, nil
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseDate(raw string) (time.Time, bool) {
	trimmed := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DateRange requires both dates to parse and end to be strictly after start.
func DateRange(start, end string) *Error {
	startAt, ok := parseDate(start)
	if !ok {
		return NewError(KindInvalidDate)
	}
	endAt, ok := parseDate(end)
	if !ok {
		return NewError(KindInvalidDate)
	}
	if !endAt.After(startAt) {
		return NewError(KindInvalidDateRange)
	}
	return nil
}

// AccountNumber matches the literal ACC prefix followed by exactly nine
// digits. Trim only, case-sensitive.
func AccountNumber(raw string) (string, *Error) {
	value := strings.TrimSpace(raw)
	if !accountNumberRegex.MatchString(value) {
		return "", NewError(KindInvalidAccountNumber)
	}
	return value, nil
}

// PhoneNumber is the generic variant used where a phone is optional: empty
// input is valid with an empty normalized value. For the +213 default the
// number must be an Algerian mobile; any other country code falls back to
// the generic international pattern.
func PhoneNumber(raw, countryCode string) (string, *Error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", nil
	}
	value = strings.ReplaceAll(value, " ", "")
	value = strings.ReplaceAll(value, "-", "")

	if countryCode == "" {
		countryCode = "+213"
	}
	if countryCode == "+213" {
		if !strings.HasPrefix(value, "+213") {
			value = "+213" + strings.TrimPrefix(value, "0")
		}
		if !algerianMobileRegex.MatchString(value) {
			return "", NewError(KindInvalidPhoneNumber)
		}
		return value, nil
	}

	if !internationalRegex.MatchString(value) {
		return "", NewError(KindInvalidPhoneNumber)
	}
	return value, nil
}

// AlgerianPhoneNumber is the strict variant used by the phone-verification
// flow: empty input is rejected. Input is stripped to digits and an optional
// leading +, a leading zero is dropped, and +213 is prepended when missing.
//
// Note: this deliberately disagrees with PhoneNumber on empty input. Both
// behaviors are preserved per call site.
func AlgerianPhoneNumber(raw string) (string, *Error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", NewError(KindPhoneRequired)
	}

	cleaned := nonPhoneCharsRegex.ReplaceAllString(value, "")
	if !strings.HasPrefix(cleaned, "+213") {
		cleaned = strings.TrimPrefix(cleaned, "+")
		cleaned = strings.TrimPrefix(cleaned, "0")
		cleaned = "+213" + cleaned
	}

	if !algerianMobileRegex.MatchString(cleaned) {
		return "", NewError(KindInvalidPhoneNumber)
	}
	return cleaned, nil
}

// Email is trimmed and lower-cased before the pattern check.
func Email(raw string) (string, *Error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if !emailRegex.MatchString(value) {
		return "", NewError(KindInvalidEmail)
	}
	return value, nil
}

// Password enforces length bounds only; character classes are left to the
// backend policy.
func Password(raw string) *Error {
	if len(raw) < 6 || len(raw) > 128 {
		return NewError(KindInvalidPassword)
	}
	return nil
}
