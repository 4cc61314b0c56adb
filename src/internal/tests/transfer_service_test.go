package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mahfadha/wallet-gateway/src/internal/adapter/backend"
	"github.com/mahfadha/wallet-gateway/src/internal/adapter/http/models"
	"github.com/mahfadha/wallet-gateway/src/internal/domain"
	"github.com/mahfadha/wallet-gateway/src/internal/ratelimit"
	"github.com/mahfadha/wallet-gateway/src/internal/usecase/services"
	"github.com/mahfadha/wallet-gateway/src/internal/validation"
)

func validTransferRequest() models.TransferRequest {
	return models.TransferRequest{
		SenderEmail: "sender@example.com",
		Recipient:   "ACC123456789",
		Amount:      "250",
		Description: "rent",
	}
}

func TestTransferServiceTransferValidationError(t *testing.T) {
	svc := services.NewTransferService(&backendStub{}, ratelimit.NewTracker())

	_, err := svc.Transfer(context.Background(), models.TransferRequest{})
	if err == nil {
		t.Fatal("expected validation error for empty transfer request")
	}
}

func TestTransferServiceTransferSuccess(t *testing.T) {
	stub := &backendStub{
		findUserSimple: func(_ context.Context, identifier string) (backend.User, error) {
			if identifier != "sender@example.com" {
				t.Fatalf("unexpected sender lookup %q", identifier)
			}
			return backend.User{ID: "user-1", Email: identifier}, nil
		},
		processSimpleTransfer: func(_ context.Context, _, recipient string, amount decimal.Decimal, _ string) (backend.TransferResult, error) {
			if recipient != "ACC123456789" {
				t.Fatalf("unexpected recipient %q", recipient)
			}
			return backend.TransferResult{
				Success:    true,
				Reference:  "TRF-001",
				NewBalance: decimal.NewFromInt(750),
			}, nil
		},
	}
	svc := services.NewTransferService(stub, ratelimit.NewTracker())

	response, err := svc.Transfer(context.Background(), validTransferRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !response.Success || response.Data == nil {
		t.Fatalf("expected success response, got %+v", response)
	}
	if response.Data.Reference != "TRF-001" {
		t.Fatalf("expected reference TRF-001, got %q", response.Data.Reference)
	}
	if response.Data.NewBalance != "750.00" {
		t.Fatalf("expected new balance 750.00, got %q", response.Data.NewBalance)
	}
}

func TestTransferServiceTransferSenderNotFound(t *testing.T) {
	stub := &backendStub{
		findUserSimple: func(context.Context, string) (backend.User, error) {
			return backend.User{}, domain.ErrRecordNotFound
		},
	}
	svc := services.NewTransferService(stub, ratelimit.NewTracker())

	response, err := svc.Transfer(context.Background(), validTransferRequest())
	if !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected record-not-found error, got %v", err)
	}
	if response.Message != "Sender not found" {
		t.Fatalf("unexpected message %q", response.Message)
	}
}

func TestTransferServiceTransferDailyLimitExceeded(t *testing.T) {
	stub := &backendStub{
		checkInstantTransferLimits: func(context.Context, string, decimal.Decimal) (backend.LimitCheck, error) {
			return backend.LimitCheck{Allowed: false, Reason: "daily limit reached"}, nil
		},
	}
	svc := services.NewTransferService(stub, ratelimit.NewTracker())

	response, err := svc.Transfer(context.Background(), validTransferRequest())
	if err == nil {
		t.Fatal("expected error when daily limit is exceeded")
	}
	if response.Success {
		t.Fatal("expected failure response")
	}
}

func TestTransferServiceCooldownAfterFailedAttempt(t *testing.T) {
	stub := &backendStub{
		findUserSimple: func(context.Context, string) (backend.User, error) {
			return backend.User{}, domain.ErrBackendUnavailable
		},
	}
	svc := services.NewTransferService(stub, ratelimit.NewTracker())

	if _, err := svc.Transfer(context.Background(), validTransferRequest()); err == nil {
		t.Fatal("expected first attempt to fail at the backend")
	}

	// The failed attempt was recorded, so an immediate retry hits the cooldown.
	_, err := svc.Transfer(context.Background(), validTransferRequest())
	var verr *validation.Error
	if !errors.As(err, &verr) || verr.Kind != validation.KindRateLimitCooldown {
		t.Fatalf("expected cooldown error on immediate retry, got %v", err)
	}
}

func TestTransferServiceSuccessResetsCooldown(t *testing.T) {
	stub := &backendStub{
		processSimpleTransfer: func(context.Context, string, string, decimal.Decimal, string) (backend.TransferResult, error) {
			return backend.TransferResult{Success: true, Reference: "TRF-002"}, nil
		},
	}
	svc := services.NewTransferService(stub, ratelimit.NewTracker())

	if _, err := svc.Transfer(context.Background(), validTransferRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Transfer(context.Background(), validTransferRequest()); err != nil {
		t.Fatalf("expected second transfer after a success to be allowed, got %v", err)
	}
}

func TestTransferServiceHistoryMapsDirection(t *testing.T) {
	stub := &backendStub{
		getTransferHistorySimple: func(_ context.Context, userEmail string) ([]backend.TransferRecord, error) {
			return []backend.TransferRecord{
				{Reference: "TRF-1", SenderEmail: userEmail, RecipientIdentifier: "ACC111111111", Direction: "sent", Amount: decimal.NewFromInt(100)},
				{Reference: "TRF-2", SenderEmail: "other@example.com", RecipientIdentifier: userEmail, Direction: "received", Amount: decimal.NewFromInt(40)},
			}, nil
		},
	}
	svc := services.NewTransferService(stub, ratelimit.NewTracker())

	response, err := svc.History(context.Background(), "sender@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entries := *response.Data
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Counterpart != "ACC111111111" {
		t.Fatalf("expected sent entry counterpart to be the recipient, got %q", entries[0].Counterpart)
	}
	if entries[1].Counterpart != "other@example.com" {
		t.Fatalf("expected received entry counterpart to be the sender, got %q", entries[1].Counterpart)
	}
}

func TestTransferServiceHistoryValidationError(t *testing.T) {
	svc := services.NewTransferService(&backendStub{}, ratelimit.NewTracker())

	if _, err := svc.History(context.Background(), "not-an-email"); err == nil {
		t.Fatal("expected validation error for a malformed email")
	}
}

func TestTransferServiceStatsRequiresUserID(t *testing.T) {
	svc := services.NewTransferService(&backendStub{}, ratelimit.NewTracker())

	if _, err := svc.Stats(context.Background(), "  "); err == nil {
		t.Fatal("expected validation error for blank user id")
	}
}

func TestTransferServiceCheckLimits(t *testing.T) {
	stub := &backendStub{
		checkInstantTransferLimits: func(_ context.Context, userID string, amount decimal.Decimal) (backend.LimitCheck, error) {
			if userID != "user-1" || !amount.Equal(decimal.NewFromInt(500)) {
				t.Fatalf("unexpected args %q %s", userID, amount)
			}
			return backend.LimitCheck{
				Allowed:    true,
				DailyLimit: decimal.NewFromInt(100000),
				DailyUsed:  decimal.NewFromInt(2000),
			}, nil
		},
	}
	svc := services.NewTransferService(stub, ratelimit.NewTracker())

	response, err := svc.CheckLimits(context.Background(), models.CheckLimitsRequest{UserID: "user-1", Amount: "500"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !response.Data.Allowed || response.Data.DailyLimit != "100000.00" {
		t.Fatalf("unexpected limits payload %+v", response.Data)
	}
}
