package models

import (
	"errors"

	"github.com/mahfadha/wallet-gateway/src/internal/validation"
)

type ConvertRequest struct {
	Amount       string `json:"amount"`
	FromCurrency string `json:"fromCurrency"`
	ToCurrency   string `json:"toCurrency"`
}

func (r ConvertRequest) Validate() error {
	var errs []*validation.Error

	if _, err := validation.Amount(r.Amount); err != nil {
		errs = append(errs, err)
	}
	if _, err := validation.Currency(r.FromCurrency); err != nil {
		errs = append(errs, err)
	}
	if _, err := validation.Currency(r.ToCurrency); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.New(validation.Join(errs))
	}
	return nil
}

type ConversionResponse struct {
	FromAmount   string `json:"fromAmount"`
	ToAmount     string `json:"toAmount"`
	FromCurrency string `json:"fromCurrency"`
	ToCurrency   string `json:"toCurrency"`
	Rate         string `json:"rate"`
	Timestamp    string `json:"timestamp"`
}

type RatePairResponse struct {
	FromCurrency string `json:"fromCurrency"`
	ToCurrency   string `json:"toCurrency"`
	Rate         string `json:"rate"`
}
