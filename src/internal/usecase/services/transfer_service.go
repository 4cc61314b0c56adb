package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/mahfadha/wallet-gateway/src/internal/adapter/backend"
	"github.com/mahfadha/wallet-gateway/src/internal/adapter/http/models"
	"github.com/mahfadha/wallet-gateway/src/internal/commons"
	"github.com/mahfadha/wallet-gateway/src/internal/domain"
	"github.com/mahfadha/wallet-gateway/src/internal/logger"
	"github.com/mahfadha/wallet-gateway/src/internal/ratelimit"
	"github.com/mahfadha/wallet-gateway/src/internal/usecase/service_interfaces"
	"github.com/mahfadha/wallet-gateway/src/internal/validation"
)

// Verify that TransferService implements the service_interfaces.TransferService interface
var _ service_interfaces.TransferService = (*TransferService)(nil)

const actionTransfer = "transfer"

type TransferService struct {
	backend backend.Client
	limits  *ratelimit.Tracker

	// inflight is an advisory per-sender guard against double submission.
	// The at-most-once guarantee belongs to the backend RPC, not here.
	inflight sync.Map
}

func NewTransferService(backendClient backend.Client, limits *ratelimit.Tracker) *TransferService {
	return &TransferService{
		backend: backendClient,
		limits:  limits,
	}
}

func (s *TransferService) Transfer(ctx context.Context, req models.TransferRequest) (commons.Response[models.TransferResponse], error) {
	logger.Info("transfer service transfer request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("transfer service transfer validation failed", err, nil)
		return commons.ErrorResponse[models.TransferResponse]("validation failed", err.Error()), err
	}

	senderEmail, _ := validation.Email(req.SenderEmail)
	recipient, _ := req.NormalizedRecipient()
	amount, _ := validation.Amount(req.Amount)

	if _, busy := s.inflight.LoadOrStore(senderEmail, struct{}{}); busy {
		err := errors.New("a transfer is already being processed for this sender")
		return commons.ErrorResponse[models.TransferResponse]("عملية تحويل أخرى قيد التنفيذ", err.Error()), err
	}
	defer s.inflight.Delete(senderEmail)

	if limitErr := s.limits.Check(senderEmail, actionTransfer, 0); limitErr != nil {
		logger.Info("transfer service transfer rate limited", logger.Fields{
			"sender": senderEmail,
		})
		return commons.ErrorResponse[models.TransferResponse](limitErr.Message), limitErr
	}
	s.limits.Record(senderEmail, actionTransfer)

	sender, err := s.backend.FindUserSimple(ctx, senderEmail)
	if err != nil {
		logger.Error("transfer service sender lookup failed", err, logger.Fields{
			"sender": senderEmail,
		})
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.TransferResponse]("Sender not found"), err
		}
		return commons.ErrorResponse[models.TransferResponse]("failed to process transfer", "Unable to process transfer right now"), err
	}

	limitCheck, err := s.backend.CheckInstantTransferLimits(ctx, sender.ID, amount)
	if err != nil {
		logger.Error("transfer service limit check failed", err, logger.Fields{
			"sender": senderEmail,
		})
		return commons.ErrorResponse[models.TransferResponse]("failed to process transfer", "Unable to process transfer right now"), err
	}
	if !limitCheck.Allowed {
		err := errors.New(limitCheck.Reason)
		return commons.ErrorResponse[models.TransferResponse]("تم تجاوز حد التحويل اليومي", limitCheck.Reason), err
	}

	result, err := s.backend.ProcessSimpleTransfer(ctx, senderEmail, recipient, amount, strings.TrimSpace(req.Description))
	if err != nil {
		logger.Error("transfer service transfer failed", err, logger.Fields{
			"sender":    senderEmail,
			"recipient": recipient,
		})
		if errors.Is(err, domain.ErrDuplicateTransfer) {
			return commons.ErrorResponse[models.TransferResponse]("Duplicate transfer"), err
		}
		return commons.ErrorResponse[models.TransferResponse]("failed to process transfer", "Unable to process transfer right now"), err
	}
	if !result.Success {
		err := errors.New(result.Message)
		return commons.ErrorResponse[models.TransferResponse]("transfer rejected", result.Message), err
	}

	s.limits.Reset(senderEmail, actionTransfer)

	response := models.TransferResponse{
		Reference:  result.Reference,
		Recipient:  recipient,
		Amount:     amount.StringFixed(2),
		NewBalance: result.NewBalance.StringFixed(2),
		Message:    result.Message,
	}

	logger.Info("transfer service transfer success", logger.Fields{
		"sender":    senderEmail,
		"reference": response.Reference,
		"amount":    response.Amount,
	})

	return commons.SuccessResponse("transfer completed successfully", response), nil
}

func (s *TransferService) History(ctx context.Context, userEmail string) (commons.Response[[]models.TransferHistoryEntry], error) {
	email, verr := validation.Email(userEmail)
	if verr != nil {
		return commons.ErrorResponse[[]models.TransferHistoryEntry]("validation failed", verr.Message), verr
	}

	records, err := s.backend.GetTransferHistorySimple(ctx, email)
	if err != nil {
		logger.Error("transfer service history failed", err, logger.Fields{
			"user": email,
		})
		return commons.ErrorResponse[[]models.TransferHistoryEntry]("failed to get history", "Unable to fetch transfer history right now"), err
	}

	entries := make([]models.TransferHistoryEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, mapHistoryEntry(email, record))
	}

	logger.Info("transfer service history success", logger.Fields{
		"user":  email,
		"count": len(entries),
	})

	return commons.SuccessResponse("history fetched successfully", entries), nil
}

func (s *TransferService) Stats(ctx context.Context, userID string) (commons.Response[models.TransferStatsResponse], error) {
	if strings.TrimSpace(userID) == "" {
		err := validation.NewError(validation.KindFieldRequired)
		return commons.ErrorResponse[models.TransferStatsResponse]("validation failed", err.Message), err
	}

	stats, err := s.backend.GetInstantTransferStats(ctx, strings.TrimSpace(userID))
	if err != nil {
		logger.Error("transfer service stats failed", err, logger.Fields{
			"userId": userID,
		})
		return commons.ErrorResponse[models.TransferStatsResponse]("failed to get stats", "Unable to fetch transfer stats right now"), err
	}

	response := models.TransferStatsResponse{
		TotalSent:     stats.TotalSent.StringFixed(2),
		TotalReceived: stats.TotalReceived.StringFixed(2),
		TransferCount: stats.TransferCount,
	}
	return commons.SuccessResponse("stats fetched successfully", response), nil
}

func (s *TransferService) CheckLimits(ctx context.Context, req models.CheckLimitsRequest) (commons.Response[models.TransferLimitsResponse], error) {
	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.TransferLimitsResponse]("validation failed", err.Error()), err
	}

	amount, _ := validation.Amount(req.Amount)
	check, err := s.backend.CheckInstantTransferLimits(ctx, strings.TrimSpace(req.UserID), amount)
	if err != nil {
		logger.Error("transfer service limit check failed", err, logger.Fields{
			"userId": req.UserID,
		})
		return commons.ErrorResponse[models.TransferLimitsResponse]("failed to check limits", "Unable to check limits right now"), err
	}

	response := models.TransferLimitsResponse{
		Allowed:    check.Allowed,
		Reason:     check.Reason,
		DailyLimit: check.DailyLimit.StringFixed(2),
		DailyUsed:  check.DailyUsed.StringFixed(2),
	}
	return commons.SuccessResponse("limits fetched successfully", response), nil
}

func mapHistoryEntry(userEmail string, record backend.TransferRecord) models.TransferHistoryEntry {
	counterpart := record.RecipientIdentifier
	if record.Direction == "received" {
		counterpart = record.SenderEmail
	}
	return models.TransferHistoryEntry{
		Reference:   record.Reference,
		Counterpart: counterpart,
		Amount:      record.Amount.StringFixed(2),
		Description: record.Description,
		Direction:   record.Direction,
		CreatedAt:   record.CreatedAt.Format(time.RFC3339),
	}
}
