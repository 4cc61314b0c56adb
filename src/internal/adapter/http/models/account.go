package models

import (
	"errors"
	"strings"

	"github.com/mahfadha/wallet-gateway/src/internal/validation"
)

// NormalizeIdentifier accepts the three identifier forms a wallet user can
// be looked up by: account number, email, or phone.
func NormalizeIdentifier(raw string) (string, *validation.Error) {
	trimmed := strings.TrimSpace(raw)
	if account, err := validation.AccountNumber(trimmed); err == nil {
		return account, nil
	}
	if strings.Contains(trimmed, "@") {
		return validation.Email(trimmed)
	}
	return validation.AlgerianPhoneNumber(trimmed)
}

type FindUserResponse struct {
	ID            string `json:"id"`
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	AccountNumber string `json:"accountNumber"`
	Verified      bool   `json:"verified"`
}

type BalanceResponse struct {
	Identifier string `json:"identifier"`
	Balance    string `json:"balance"`
	Currency   string `json:"currency"`
}

type RechargeRequest struct {
	Identifier string `json:"identifier"`
	Amount     string `json:"amount"`
}

func (r RechargeRequest) Validate() error {
	var errs []*validation.Error

	if _, err := NormalizeIdentifier(r.Identifier); err != nil {
		errs = append(errs, err)
	}
	if _, err := validation.Amount(r.Amount); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.New(validation.Join(errs))
	}
	return nil
}

type WithdrawRequest struct {
	Identifier string `json:"identifier"`
	Amount     string `json:"amount"`
}

func (r WithdrawRequest) Validate() error {
	var errs []*validation.Error

	if _, err := NormalizeIdentifier(r.Identifier); err != nil {
		errs = append(errs, err)
	}
	if _, err := validation.Amount(r.Amount); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.New(validation.Join(errs))
	}
	return nil
}

type BalanceUpdateResponse struct {
	Identifier string `json:"identifier"`
	NewBalance string `json:"newBalance"`
}
