package models

import (
	"errors"

	"github.com/mahfadha/wallet-gateway/src/internal/validation"
)

// TransactionRequest is the generic transaction payload checked before any
// money movement is forwarded to the backend.
type TransactionRequest struct {
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

func (r TransactionRequest) Validate() error {
	_, errs := validation.ValidateTransaction(validation.TransactionInput(r))
	if len(errs) > 0 {
		return errors.New(validation.Join(errs))
	}
	return nil
}

type InvestmentRequest struct {
	Amount     string `json:"amount"`
	Type       string `json:"type"`
	ProfitRate string `json:"profit_rate"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

func (r InvestmentRequest) Validate() error {
	_, errs := validation.ValidateInvestment(validation.InvestmentInput(r))
	if len(errs) > 0 {
		return errors.New(validation.Join(errs))
	}
	return nil
}

// TransactionValidationResponse echoes the normalized payload so the client
// can render exactly what will be submitted.
type TransactionValidationResponse struct {
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Normalized runs the collect-all validator and maps the result.
func (r TransactionRequest) Normalized() (TransactionValidationResponse, error) {
	tx, errs := validation.ValidateTransaction(validation.TransactionInput(r))
	if len(errs) > 0 {
		return TransactionValidationResponse{}, errors.New(validation.Join(errs))
	}
	return TransactionValidationResponse{
		Amount:      tx.Amount.StringFixed(2),
		Currency:    tx.Currency,
		Type:        tx.Type,
		Description: tx.Description,
	}, nil
}

type InvestmentValidationResponse struct {
	Amount     string `json:"amount"`
	Type       string `json:"type"`
	ProfitRate string `json:"profitRate"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
}

func (r InvestmentRequest) Normalized() (InvestmentValidationResponse, error) {
	inv, errs := validation.ValidateInvestment(validation.InvestmentInput(r))
	if len(errs) > 0 {
		return InvestmentValidationResponse{}, errors.New(validation.Join(errs))
	}
	return InvestmentValidationResponse{
		Amount:     inv.Amount.StringFixed(2),
		Type:       inv.Type,
		ProfitRate: inv.ProfitRate.String(),
		StartDate:  inv.StartDate,
		EndDate:    inv.EndDate,
	}, nil
}
