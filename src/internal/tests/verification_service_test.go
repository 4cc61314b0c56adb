package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mahfadha/wallet-gateway/src/internal/adapter/backend"
	"github.com/mahfadha/wallet-gateway/src/internal/adapter/http/models"
	"github.com/mahfadha/wallet-gateway/src/internal/domain"
	"github.com/mahfadha/wallet-gateway/src/internal/usecase/services"
)

func TestVerificationServiceSubmitRequiresPhone(t *testing.T) {
	svc := services.NewVerificationService(&backendStub{})

	_, err := svc.Submit(context.Background(), models.SubmitVerificationRequest{
		UserID:         "user-1",
		FullName:       "Amine",
		Phone:          "",
		DocumentNumber: "123456",
	})
	if err == nil {
		t.Fatal("expected empty phone to be rejected on the verification path")
	}
}

func TestVerificationServiceSubmitNormalizesPhone(t *testing.T) {
	stub := &backendStub{
		submitVerification: func(_ context.Context, submission backend.VerificationSubmission) (backend.VerificationRequest, error) {
			if submission.Phone != "+213555123456" {
				t.Fatalf("expected normalized phone, got %q", submission.Phone)
			}
			return backend.VerificationRequest{
				ID:          "ver-1",
				FullName:    submission.FullName,
				Phone:       submission.Phone,
				Status:      "pending",
				SubmittedAt: time.Now(),
			}, nil
		},
	}
	svc := services.NewVerificationService(stub)

	response, err := svc.Submit(context.Background(), models.SubmitVerificationRequest{
		UserID:         "user-1",
		FullName:       "Amine",
		Phone:          "0555123456",
		DocumentType:   "national_id",
		DocumentNumber: "123456",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if response.Data.Status != "pending" {
		t.Fatalf("expected pending status, got %q", response.Data.Status)
	}
}

func TestVerificationServiceConfirmOTPRejectsShortCode(t *testing.T) {
	svc := services.NewVerificationService(&backendStub{})

	_, err := svc.ConfirmOTP(context.Background(), models.VerifyOTPRequest{
		Phone: "0555123456",
		Code:  "123",
	})
	if err == nil {
		t.Fatal("expected a non six-digit code to be rejected")
	}
}

func TestVerificationServicePendingNormalizesPagination(t *testing.T) {
	var gotLimit, gotOffset int
	stub := &backendStub{
		getPendingVerifications: func(_ context.Context, limit, offset int) ([]backend.VerificationRequest, error) {
			gotLimit, gotOffset = limit, offset
			return nil, nil
		},
	}
	svc := services.NewVerificationService(stub)

	if _, err := svc.Pending(context.Background(), 0, -5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotLimit != 20 || gotOffset != 0 {
		t.Fatalf("expected defaults (20, 0), got (%d, %d)", gotLimit, gotOffset)
	}

	if _, err := svc.Pending(context.Background(), 500, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotLimit != 100 || gotOffset != 10 {
		t.Fatalf("expected capped limit (100, 10), got (%d, %d)", gotLimit, gotOffset)
	}
}

func TestVerificationServiceRejectRequiresNotes(t *testing.T) {
	svc := services.NewVerificationService(&backendStub{})

	_, err := svc.Reject(context.Background(), models.ReviewVerificationRequest{
		VerificationID: "ver-1",
		AdminID:        "admin-1",
		AdminNotes:     "",
	})
	if err == nil {
		t.Fatal("expected rejection without notes to fail")
	}
}

func TestVerificationServiceApproveAllowsEmptyNotes(t *testing.T) {
	approved := false
	stub := &backendStub{
		approveVerification: func(_ context.Context, verificationID, _, adminID string) error {
			if verificationID != "ver-1" || adminID != "admin-1" {
				t.Fatalf("unexpected args %q %q", verificationID, adminID)
			}
			approved = true
			return nil
		},
	}
	svc := services.NewVerificationService(stub)

	response, err := svc.Approve(context.Background(), models.ReviewVerificationRequest{
		VerificationID: "ver-1",
		AdminID:        "admin-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approved || response.Data.Status != "approved" {
		t.Fatalf("expected approval to go through, got %+v", response.Data)
	}
}

func TestVerificationServiceDashboardCombinesStatsAndPending(t *testing.T) {
	stub := &backendStub{
		getVerificationStats: func(context.Context) (backend.VerificationStats, error) {
			return backend.VerificationStats{Pending: 2, Approved: 5, Rejected: 1, Total: 8}, nil
		},
		getPendingVerifications: func(context.Context, int, int) ([]backend.VerificationRequest, error) {
			return []backend.VerificationRequest{
				{ID: "ver-1", Status: "pending"},
				{ID: "ver-2", Status: "pending"},
			}, nil
		},
	}
	svc := services.NewVerificationService(stub)

	response, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if response.Data.Stats.Total != 8 || len(response.Data.Pending) != 2 {
		t.Fatalf("unexpected dashboard payload %+v", response.Data)
	}
}

func TestVerificationServiceDashboardPropagatesFailure(t *testing.T) {
	stub := &backendStub{
		getVerificationStats: func(context.Context) (backend.VerificationStats, error) {
			return backend.VerificationStats{}, domain.ErrBackendUnavailable
		},
	}
	svc := services.NewVerificationService(stub)

	_, err := svc.Dashboard(context.Background())
	if !errors.Is(err, domain.ErrBackendUnavailable) {
		t.Fatalf("expected backend error to surface, got %v", err)
	}
}
