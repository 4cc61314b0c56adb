package services

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mahfadha/wallet-gateway/src/internal/adapter/backend"
	"github.com/mahfadha/wallet-gateway/src/internal/adapter/http/models"
	"github.com/mahfadha/wallet-gateway/src/internal/commons"
	"github.com/mahfadha/wallet-gateway/src/internal/domain"
	"github.com/mahfadha/wallet-gateway/src/internal/logger"
	"github.com/mahfadha/wallet-gateway/src/internal/usecase/service_interfaces"
	"github.com/mahfadha/wallet-gateway/src/internal/validation"
)

// Verify that VerificationService implements the service_interfaces.VerificationService interface
var _ service_interfaces.VerificationService = (*VerificationService)(nil)

const (
	defaultPendingLimit = 20
	maxPendingLimit     = 100
)

type VerificationService struct {
	backend backend.Client
}

func NewVerificationService(backendClient backend.Client) *VerificationService {
	return &VerificationService{backend: backendClient}
}

func (s *VerificationService) Submit(ctx context.Context, req models.SubmitVerificationRequest) (commons.Response[models.VerificationResponse], error) {
	logger.Info("verification service submit request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("verification service submit validation failed", err, nil)
		return commons.ErrorResponse[models.VerificationResponse]("validation failed", err.Error()), err
	}

	phone, _ := validation.AlgerianPhoneNumber(req.Phone)
	created, err := s.backend.SubmitVerification(ctx, backend.VerificationSubmission{
		UserID:         strings.TrimSpace(req.UserID),
		FullName:       strings.TrimSpace(req.FullName),
		Phone:          phone,
		DocumentType:   strings.TrimSpace(req.DocumentType),
		DocumentNumber: strings.TrimSpace(req.DocumentNumber),
	})
	if err != nil {
		logger.Error("verification service submit failed", err, logger.Fields{
			"userId": req.UserID,
		})
		return commons.ErrorResponse[models.VerificationResponse]("failed to submit verification", "Unable to submit verification right now"), err
	}

	logger.Info("verification service submit success", logger.Fields{
		"verificationId": created.ID,
	})
	return commons.SuccessResponse("verification submitted successfully", mapVerification(created)), nil
}

func (s *VerificationService) SendOTP(ctx context.Context, req models.SendOTPRequest) (commons.Response[models.SignupResponse], error) {
	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.SignupResponse]("validation failed", err.Error()), err
	}

	phone, _ := validation.AlgerianPhoneNumber(req.Phone)
	if err := s.backend.SendPhoneOTP(ctx, phone); err != nil {
		logger.Error("verification service send otp failed", err, logger.Fields{
			"phone": phone,
		})
		return commons.ErrorResponse[models.SignupResponse]("failed to send otp", "Unable to send verification code right now"), err
	}

	logger.Info("verification service send otp success", logger.Fields{
		"phone": phone,
	})
	return commons.SuccessResponse("otp sent successfully", models.SignupResponse{Phone: phone}), nil
}

func (s *VerificationService) ConfirmOTP(ctx context.Context, req models.VerifyOTPRequest) (commons.Response[models.SignupResponse], error) {
	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.SignupResponse]("validation failed", err.Error()), err
	}

	phone, _ := validation.AlgerianPhoneNumber(req.Phone)
	if err := s.backend.VerifyPhoneOTP(ctx, phone, strings.TrimSpace(req.Code)); err != nil {
		logger.Error("verification service confirm otp failed", err, logger.Fields{
			"phone": phone,
		})
		return commons.ErrorResponse[models.SignupResponse]("رمز التحقق غير صحيح", "Unable to verify code"), err
	}

	logger.Info("verification service confirm otp success", logger.Fields{
		"phone": phone,
	})
	return commons.SuccessResponse("phone verified successfully", models.SignupResponse{Phone: phone}), nil
}

func (s *VerificationService) Pending(ctx context.Context, limit, offset int) (commons.Response[[]models.VerificationResponse], error) {
	limit, offset = normalizePagination(limit, offset)

	pending, err := s.backend.GetPendingVerifications(ctx, limit, offset)
	if err != nil {
		logger.Error("verification service pending failed", err, logger.Fields{
			"limit":  limit,
			"offset": offset,
		})
		return commons.ErrorResponse[[]models.VerificationResponse]("failed to get pending verifications", "Unable to fetch pending verifications right now"), err
	}

	out := make([]models.VerificationResponse, 0, len(pending))
	for _, request := range pending {
		out = append(out, mapVerification(request))
	}

	logger.Info("verification service pending success", logger.Fields{
		"count": len(out),
	})
	return commons.SuccessResponse("pending verifications fetched successfully", out), nil
}

func (s *VerificationService) Approve(ctx context.Context, req models.ReviewVerificationRequest) (commons.Response[models.VerificationResponse], error) {
	if err := req.Validate(false); err != nil {
		return commons.ErrorResponse[models.VerificationResponse]("validation failed", err.Error()), err
	}

	err := s.backend.ApproveVerification(ctx,
		strings.TrimSpace(req.VerificationID),
		strings.TrimSpace(req.AdminNotes),
		strings.TrimSpace(req.AdminID))
	if err != nil {
		logger.Error("verification service approve failed", err, logger.Fields{
			"verificationId": req.VerificationID,
		})
		return commons.ErrorResponse[models.VerificationResponse]("failed to approve verification", "Unable to approve verification right now"), err
	}

	logger.Info("verification service approve success", logger.Fields{
		"verificationId": req.VerificationID,
		"adminId":        req.AdminID,
	})

	response := models.VerificationResponse{
		ID:     strings.TrimSpace(req.VerificationID),
		Status: string(domain.VerificationStatusApproved),
	}
	return commons.SuccessResponse("verification approved successfully", response), nil
}

func (s *VerificationService) Reject(ctx context.Context, req models.ReviewVerificationRequest) (commons.Response[models.VerificationResponse], error) {
	if err := req.Validate(true); err != nil {
		return commons.ErrorResponse[models.VerificationResponse]("validation failed", err.Error()), err
	}

	err := s.backend.RejectVerification(ctx,
		strings.TrimSpace(req.VerificationID),
		strings.TrimSpace(req.AdminNotes),
		strings.TrimSpace(req.AdminID))
	if err != nil {
		logger.Error("verification service reject failed", err, logger.Fields{
			"verificationId": req.VerificationID,
		})
		return commons.ErrorResponse[models.VerificationResponse]("failed to reject verification", "Unable to reject verification right now"), err
	}

	logger.Info("verification service reject success", logger.Fields{
		"verificationId": req.VerificationID,
		"adminId":        req.AdminID,
	})

	response := models.VerificationResponse{
		ID:     strings.TrimSpace(req.VerificationID),
		Status: string(domain.VerificationStatusRejected),
	}
	return commons.SuccessResponse("verification rejected successfully", response), nil
}

func (s *VerificationService) Stats(ctx context.Context) (commons.Response[models.VerificationStatsResponse], error) {
	stats, err := s.backend.GetVerificationStats(ctx)
	if err != nil {
		logger.Error("verification service stats failed", err, nil)
		return commons.ErrorResponse[models.VerificationStatsResponse]("failed to get verification stats", "Unable to fetch verification stats right now"), err
	}
	return commons.SuccessResponse("verification stats fetched successfully", mapStats(stats)), nil
}

// Dashboard fetches the stats and the first pending page concurrently; the
// review screen needs both before it can render.
func (s *VerificationService) Dashboard(ctx context.Context) (commons.Response[models.VerificationDashboardResponse], error) {
	var stats backend.VerificationStats
	var pending []backend.VerificationRequest

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = s.backend.GetVerificationStats(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		pending, err = s.backend.GetPendingVerifications(gctx, defaultPendingLimit, 0)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Error("verification service dashboard failed", err, nil)
		return commons.ErrorResponse[models.VerificationDashboardResponse]("failed to load dashboard", "Unable to load the review dashboard right now"), err
	}

	out := models.VerificationDashboardResponse{
		Stats:   mapStats(stats),
		Pending: make([]models.VerificationResponse, 0, len(pending)),
	}
	for _, request := range pending {
		out.Pending = append(out.Pending, mapVerification(request))
	}

	logger.Info("verification service dashboard success", logger.Fields{
		"pending": len(out.Pending),
		"total":   out.Stats.Total,
	})
	return commons.SuccessResponse("dashboard loaded successfully", out), nil
}

func normalizePagination(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPendingLimit
	}
	if limit > maxPendingLimit {
		limit = maxPendingLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func mapVerification(request backend.VerificationRequest) models.VerificationResponse {
	return models.VerificationResponse{
		ID:          request.ID,
		FullName:    request.FullName,
		Phone:       request.Phone,
		Status:      request.Status,
		SubmittedAt: request.SubmittedAt.Format(time.RFC3339),
	}
}

func mapStats(stats backend.VerificationStats) models.VerificationStatsResponse {
	return models.VerificationStatsResponse{
		Pending:  stats.Pending,
		Approved: stats.Approved,
		Rejected: stats.Rejected,
		Total:    stats.Total,
	}
}
