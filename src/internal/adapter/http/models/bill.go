package models

import (
	"errors"
	"regexp"
	"strings"

	"github.com/mahfadha/wallet-gateway/src/internal/validation"
)

var billReferenceRegex = regexp.MustCompile(`^\d{6,20}$`)

type PayBillRequest struct {
	Identifier    string `json:"identifier"`
	BillType      string `json:"billType"`
	BillReference string `json:"billReference"`
	Amount        string `json:"amount"`
}

// Validate covers everything except the per-bill-type amount bounds, which
// need the catalog and are enforced by the service.
func (r PayBillRequest) Validate() error {
	var errs []*validation.Error

	if _, err := NormalizeIdentifier(r.Identifier); err != nil {
		errs = append(errs, err)
	}
	if strings.TrimSpace(r.BillType) == "" {
		errs = append(errs, validation.NewError(validation.KindFieldRequired))
	}
	if !billReferenceRegex.MatchString(strings.TrimSpace(r.BillReference)) {
		errs = append(errs, &validation.Error{
			Kind:    validation.KindFieldRequired,
			Message: "رقم الفاتورة غير صالح",
		})
	}
	if _, err := validation.Amount(r.Amount); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.New(validation.Join(errs))
	}
	return nil
}

type PayBillResponse struct {
	BillType      string `json:"billType"`
	BillReference string `json:"billReference"`
	Amount        string `json:"amount"`
	NewBalance    string `json:"newBalance"`
}

type BillTypeResponse struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	MinAmount string `json:"minAmount"`
	MaxAmount string `json:"maxAmount"`
}
