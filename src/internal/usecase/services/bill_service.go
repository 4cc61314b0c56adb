package services

import (
	"context"
	"errors"
	"strings"

	"github.com/mahfadha/wallet-gateway/src/internal/adapter/backend"
	"github.com/mahfadha/wallet-gateway/src/internal/adapter/http/models"
	"github.com/mahfadha/wallet-gateway/src/internal/commons"
	"github.com/mahfadha/wallet-gateway/src/internal/domain"
	"github.com/mahfadha/wallet-gateway/src/internal/logger"
	"github.com/mahfadha/wallet-gateway/src/internal/ratelimit"
	"github.com/mahfadha/wallet-gateway/src/internal/usecase/service_interfaces"
	"github.com/mahfadha/wallet-gateway/src/internal/validation"
)

// Verify that BillService implements the service_interfaces.BillService interface
var _ service_interfaces.BillService = (*BillService)(nil)

const (
	actionBill = "bill"

	// The bill-payment flow caps retries at three attempts on top of the
	// shared cooldown; the counter resets after a successful payment.
	maxBillAttempts = 3
)

type BillService struct {
	backend backend.Client
	limits  *ratelimit.Tracker
}

func NewBillService(backendClient backend.Client, limits *ratelimit.Tracker) *BillService {
	return &BillService{
		backend: backendClient,
		limits:  limits,
	}
}

func (s *BillService) ListBillTypes(_ context.Context) (commons.Response[[]models.BillTypeResponse], error) {
	out := make([]models.BillTypeResponse, 0, len(domain.BillTypes))
	for _, bt := range domain.BillTypes {
		out = append(out, models.BillTypeResponse{
			Code:      bt.Code,
			Name:      bt.Name,
			MinAmount: bt.MinAmount.StringFixed(2),
			MaxAmount: bt.MaxAmount.StringFixed(2),
		})
	}
	return commons.SuccessResponse("bill types fetched successfully", out), nil
}

func (s *BillService) PayBill(ctx context.Context, req models.PayBillRequest) (commons.Response[models.PayBillResponse], error) {
	logger.Info("bill service pay bill request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("bill service pay bill validation failed", err, nil)
		return commons.ErrorResponse[models.PayBillResponse]("validation failed", err.Error()), err
	}

	billType, ok := domain.FindBillType(strings.ToLower(strings.TrimSpace(req.BillType)))
	if !ok {
		err := errors.New("unknown bill type")
		return commons.ErrorResponse[models.PayBillResponse]("نوع الفاتورة غير مدعوم", err.Error()), err
	}

	// Per-type bounds are tighter than the generic amount range.
	amount, verr := validation.AmountWithin(req.Amount, billType.MinAmount, billType.MaxAmount)
	if verr != nil {
		return commons.ErrorResponse[models.PayBillResponse]("validation failed", verr.Message), verr
	}

	identifier, _ := models.NormalizeIdentifier(req.Identifier)

	if limitErr := s.limits.Check(identifier, actionBill, maxBillAttempts); limitErr != nil {
		logger.Info("bill service pay bill rate limited", logger.Fields{
			"identifier": identifier,
		})
		return commons.ErrorResponse[models.PayBillResponse](limitErr.Message), limitErr
	}
	// Every submit counts against the cap, not only failed ones.
	s.limits.Record(identifier, actionBill)

	balance, err := s.backend.GetUserBalanceSimple(ctx, identifier)
	if err != nil {
		logger.Error("bill service balance lookup failed", err, logger.Fields{
			"identifier": identifier,
		})
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.PayBillResponse]("User not found"), err
		}
		return commons.ErrorResponse[models.PayBillResponse]("failed to pay bill", "Unable to pay bill right now"), err
	}

	if balance.LessThan(amount) {
		err := domain.ErrInsufficientBalance
		return commons.ErrorResponse[models.PayBillResponse]("الرصيد غير كافٍ", err.Error()), err
	}

	newBalance := balance.Sub(amount)
	if err := s.backend.UpdateUserBalanceSimple(ctx, identifier, newBalance); err != nil {
		logger.Error("bill service balance update failed", err, logger.Fields{
			"identifier": identifier,
			"billType":   billType.Code,
		})
		return commons.ErrorResponse[models.PayBillResponse]("failed to pay bill", "Unable to pay bill right now"), err
	}

	s.limits.Reset(identifier, actionBill)

	logger.Info("bill service pay bill success", logger.Fields{
		"identifier": identifier,
		"billType":   billType.Code,
		"amount":     amount.StringFixed(2),
	})

	response := models.PayBillResponse{
		BillType:      billType.Code,
		BillReference: strings.TrimSpace(req.BillReference),
		Amount:        amount.StringFixed(2),
		NewBalance:    newBalance.StringFixed(2),
	}
	return commons.SuccessResponse("bill paid successfully", response), nil
}
