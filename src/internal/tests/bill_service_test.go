package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mahfadha/wallet-gateway/src/internal/adapter/http/models"
	"github.com/mahfadha/wallet-gateway/src/internal/domain"
	"github.com/mahfadha/wallet-gateway/src/internal/ratelimit"
	"github.com/mahfadha/wallet-gateway/src/internal/usecase/services"
	"github.com/mahfadha/wallet-gateway/src/internal/validation"
)

func validBillRequest() models.PayBillRequest {
	return models.PayBillRequest{
		Identifier:    "user@example.com",
		BillType:      "electricity",
		BillReference: "123456789",
		Amount:        "500",
	}
}

func TestBillServiceListBillTypes(t *testing.T) {
	svc := services.NewBillService(&backendStub{}, ratelimit.NewTracker())

	response, err := svc.ListBillTypes(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(*response.Data) != len(domain.BillTypes) {
		t.Fatalf("expected %d bill types, got %d", len(domain.BillTypes), len(*response.Data))
	}
}

func TestBillServicePayBillValidationError(t *testing.T) {
	svc := services.NewBillService(&backendStub{}, ratelimit.NewTracker())

	if _, err := svc.PayBill(context.Background(), models.PayBillRequest{}); err == nil {
		t.Fatal("expected validation error for empty bill request")
	}
}

func TestBillServicePayBillRejectsUnknownType(t *testing.T) {
	svc := services.NewBillService(&backendStub{}, ratelimit.NewTracker())

	req := validBillRequest()
	req.BillType = "cable"
	if _, err := svc.PayBill(context.Background(), req); err == nil {
		t.Fatal("expected unknown bill type to be rejected")
	}
}

func TestBillServicePayBillEnforcesTypeBounds(t *testing.T) {
	svc := services.NewBillService(&backendStub{}, ratelimit.NewTracker())

	req := validBillRequest()
	req.BillType = "internet"
	req.Amount = "10001"

	_, err := svc.PayBill(context.Background(), req)
	var verr *validation.Error
	if !errors.As(err, &verr) || verr.Kind != validation.KindAmountAboveMaximum {
		t.Fatalf("expected above-maximum error for internet bill, got %v", err)
	}
}

func TestBillServicePayBillDeductsBalance(t *testing.T) {
	var updated decimal.Decimal
	stub := &backendStub{
		getUserBalanceSimple: func(context.Context, string) (decimal.Decimal, error) {
			return decimal.NewFromInt(2000), nil
		},
		updateUserBalanceSimple: func(_ context.Context, _ string, newBalance decimal.Decimal) error {
			updated = newBalance
			return nil
		},
	}
	svc := services.NewBillService(stub, ratelimit.NewTracker())

	response, err := svc.PayBill(context.Background(), validBillRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.Equal(decimal.NewFromInt(1500)) {
		t.Fatalf("expected balance update to 1500, got %s", updated)
	}
	if response.Data.NewBalance != "1500.00" {
		t.Fatalf("unexpected new balance %q", response.Data.NewBalance)
	}
}

func TestBillServicePayBillInsufficientBalance(t *testing.T) {
	stub := &backendStub{
		getUserBalanceSimple: func(context.Context, string) (decimal.Decimal, error) {
			return decimal.NewFromInt(100), nil
		},
	}
	svc := services.NewBillService(stub, ratelimit.NewTracker())

	_, err := svc.PayBill(context.Background(), validBillRequest())
	if !errors.Is(err, domain.ErrInsufficientBalance) {
		t.Fatalf("expected insufficient balance error, got %v", err)
	}
}

func TestBillServicePayBillCooldownAfterFailure(t *testing.T) {
	stub := &backendStub{
		getUserBalanceSimple: func(context.Context, string) (decimal.Decimal, error) {
			return decimal.Zero, domain.ErrBackendUnavailable
		},
	}
	svc := services.NewBillService(stub, ratelimit.NewTracker())

	if _, err := svc.PayBill(context.Background(), validBillRequest()); err == nil {
		t.Fatal("expected first attempt to fail at the backend")
	}

	_, err := svc.PayBill(context.Background(), validBillRequest())
	var verr *validation.Error
	if !errors.As(err, &verr) || verr.Kind != validation.KindRateLimitCooldown {
		t.Fatalf("expected cooldown error on immediate retry, got %v", err)
	}
}
