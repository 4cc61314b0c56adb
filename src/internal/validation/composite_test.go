package validation_test

import (
	"strings"
	"testing"

	"github.com/mahfadha/wallet-gateway/src/internal/validation"
)

func TestValidateTransactionCollectsAllFailures(t *testing.T) {
	_, errs := validation.ValidateTransaction(validation.TransactionInput{
		Amount:      "abc",
		Currency:    "jpy",
		Type:        "loan",
		Description: "",
	})
	if len(errs) != 4 {
		t.Fatalf("expected 4 errors, got %d: %s", len(errs), validation.Join(errs))
	}
}

func TestValidateTransactionNormalizesValidInput(t *testing.T) {
	tx, errs := validation.ValidateTransaction(validation.TransactionInput{
		Amount:      "250.50",
		Currency:    "DZD",
		Type:        "Transfer",
		Description: " rent ",
	})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %s", validation.Join(errs))
	}
	if tx.Currency != "dzd" || tx.Type != "transfer" || tx.Description != "rent" {
		t.Fatalf("unexpected normalization: %+v", tx)
	}
}

func TestValidateSignupKeysErrorsByField(t *testing.T) {
	_, errs := validation.ValidateSignup(validation.SignupInput{
		Name:     "",
		Email:    "bad",
		Password: "123",
		Phone:    "12345",
	})
	for _, field := range []string{"name", "email", "password", "phone"} {
		if errs[field] == nil {
			t.Fatalf("expected an error for field %q, got %v", field, errs)
		}
	}
}

func TestValidateSignupAllowsEmptyPhone(t *testing.T) {
	signup, errs := validation.ValidateSignup(validation.SignupInput{
		Name:     "Amine",
		Email:    "amine@example.com",
		Password: "secret123",
		Phone:    "",
	})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if signup.Phone != "" {
		t.Fatalf("expected empty phone, got %q", signup.Phone)
	}
}

func TestValidateInvestmentCollectsFailures(t *testing.T) {
	_, errs := validation.ValidateInvestment(validation.InvestmentInput{
		Amount:     "0",
		Type:       "daily",
		ProfitRate: "150",
		StartDate:  "2026-06-01",
		EndDate:    "2026-01-01",
	})
	if len(errs) != 4 {
		t.Fatalf("expected 4 errors, got %d: %s", len(errs), validation.Join(errs))
	}
}

func TestJoinUsesArabicSeparator(t *testing.T) {
	joined := validation.Join([]*validation.Error{
		validation.NewError(validation.KindInvalidEmail),
		validation.NewError(validation.KindInvalidPassword),
	})
	if !strings.Contains(joined, "؛ ") {
		t.Fatalf("expected Arabic semicolon separator in %q", joined)
	}
}
