package models

import (
	"errors"
	"regexp"
	"strings"

	"github.com/mahfadha/wallet-gateway/src/internal/validation"
)

var otpCodeRegex = regexp.MustCompile(`^\d{6}$`)

type SubmitVerificationRequest struct {
	UserID         string `json:"userId"`
	FullName       string `json:"fullName"`
	Phone          string `json:"phone"`
	DocumentType   string `json:"documentType"`
	DocumentNumber string `json:"documentNumber"`
}

// Validate uses the strict Algerian phone variant: a verification request
// without a phone number is meaningless, so empty input is rejected here
// even though the signup path tolerates it.
func (r SubmitVerificationRequest) Validate() error {
	var errs []*validation.Error

	if strings.TrimSpace(r.UserID) == "" {
		errs = append(errs, validation.NewError(validation.KindFieldRequired))
	}
	if strings.TrimSpace(r.FullName) == "" {
		errs = append(errs, validation.NewError(validation.KindFieldRequired))
	}
	if _, err := validation.AlgerianPhoneNumber(r.Phone); err != nil {
		errs = append(errs, err)
	}
	if strings.TrimSpace(r.DocumentNumber) == "" {
		errs = append(errs, validation.NewError(validation.KindFieldRequired))
	}

	if len(errs) > 0 {
		return errors.New(validation.Join(errs))
	}
	return nil
}

type SendOTPRequest struct {
	Phone string `json:"phone"`
}

func (r SendOTPRequest) Validate() error {
	if _, err := validation.AlgerianPhoneNumber(r.Phone); err != nil {
		return errors.New(err.Message)
	}
	return nil
}

type VerifyOTPRequest struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

func (r VerifyOTPRequest) Validate() error {
	var errs []*validation.Error

	if _, err := validation.AlgerianPhoneNumber(r.Phone); err != nil {
		errs = append(errs, err)
	}
	if !otpCodeRegex.MatchString(strings.TrimSpace(r.Code)) {
		errs = append(errs, &validation.Error{
			Kind:    validation.KindFieldRequired,
			Message: "رمز التحقق يجب أن يتكون من 6 أرقام",
		})
	}

	if len(errs) > 0 {
		return errors.New(validation.Join(errs))
	}
	return nil
}

type VerificationResponse struct {
	ID          string `json:"id"`
	FullName    string `json:"fullName"`
	Phone       string `json:"phone"`
	Status      string `json:"status"`
	SubmittedAt string `json:"submittedAt"`
}

type ReviewVerificationRequest struct {
	VerificationID string `json:"verificationId"`
	AdminNotes     string `json:"adminNotes"`
	AdminID        string `json:"adminId"`
}

// Validate requires notes only for rejection, where the applicant needs to
// know what to fix.
func (r ReviewVerificationRequest) Validate(requireNotes bool) error {
	var errs []*validation.Error

	if strings.TrimSpace(r.VerificationID) == "" {
		errs = append(errs, validation.NewError(validation.KindFieldRequired))
	}
	if strings.TrimSpace(r.AdminID) == "" {
		errs = append(errs, validation.NewError(validation.KindFieldRequired))
	}
	if requireNotes && strings.TrimSpace(r.AdminNotes) == "" {
		errs = append(errs, &validation.Error{
			Kind:    validation.KindFieldRequired,
			Message: "ملاحظات المراجعة مطلوبة عند الرفض",
		})
	}

	if len(errs) > 0 {
		return errors.New(validation.Join(errs))
	}
	return nil
}

type VerificationStatsResponse struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Total    int `json:"total"`
}

type VerificationDashboardResponse struct {
	Stats   VerificationStatsResponse `json:"stats"`
	Pending []VerificationResponse    `json:"pending"`
}
