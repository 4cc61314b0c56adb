package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mahfadha/wallet-gateway/src/internal/validation"
)

type TransferRequest struct {
	SenderEmail string `json:"senderEmail"`
	Recipient   string `json:"recipient"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
}

// NormalizedRecipient resolves the recipient identifier: an ACC account
// number, an email address, or an Algerian phone number, in that order.
func (r TransferRequest) NormalizedRecipient() (string, *validation.Error) {
	raw := strings.TrimSpace(r.Recipient)
	if account, err := validation.AccountNumber(raw); err == nil {
		return account, nil
	}
	if strings.Contains(raw, "@") {
		return validation.Email(raw)
	}
	return validation.AlgerianPhoneNumber(raw)
}

func (r TransferRequest) Validate() error {
	var errs []*validation.Error

	if _, err := validation.Email(r.SenderEmail); err != nil {
		errs = append(errs, err)
	}
	if _, err := r.NormalizedRecipient(); err != nil {
		errs = append(errs, err)
	}
	if _, err := validation.Amount(r.Amount); err != nil {
		errs = append(errs, err)
	}
	if strings.TrimSpace(r.Description) == "" {
		errs = append(errs, validation.NewError(validation.KindMissingDescription))
	}

	if len(errs) > 0 {
		return errors.New(validation.Join(errs))
	}
	return nil
}

type TransferResponse struct {
	Reference  string `json:"reference"`
	Recipient  string `json:"recipient"`
	Amount     string `json:"amount"`
	NewBalance string `json:"newBalance"`
	Message    string `json:"message"`
}

type TransferHistoryEntry struct {
	Reference   string `json:"reference"`
	Counterpart string `json:"counterpart"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	Direction   string `json:"direction"`
	CreatedAt   string `json:"createdAt"`
}

type TransferStatsResponse struct {
	TotalSent     string `json:"totalSent"`
	TotalReceived string `json:"totalReceived"`
	TransferCount int    `json:"transferCount"`
}

type TransferLimitsResponse struct {
	Allowed    bool   `json:"allowed"`
	Reason     string `json:"reason,omitempty"`
	DailyLimit string `json:"dailyLimit"`
	DailyUsed  string `json:"dailyUsed"`
}

type CheckLimitsRequest struct {
	UserID string `json:"userId"`
	Amount string `json:"amount"`
}

func (r CheckLimitsRequest) Validate() error {
	var errs []*validation.Error

	if strings.TrimSpace(r.UserID) == "" {
		errs = append(errs, validation.NewError(validation.KindFieldRequired))
	}
	if _, err := validation.Amount(r.Amount); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.New(validation.Join(errs))
	}
	return nil
}

func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
