package services

import (
	"context"
	"errors"

	"github.com/mahfadha/wallet-gateway/src/internal/adapter/backend"
	"github.com/mahfadha/wallet-gateway/src/internal/adapter/http/models"
	"github.com/mahfadha/wallet-gateway/src/internal/commons"
	"github.com/mahfadha/wallet-gateway/src/internal/domain"
	"github.com/mahfadha/wallet-gateway/src/internal/logger"
	"github.com/mahfadha/wallet-gateway/src/internal/ratelimit"
	"github.com/mahfadha/wallet-gateway/src/internal/usecase/service_interfaces"
	"github.com/mahfadha/wallet-gateway/src/internal/validation"
)

// Verify that AccountService implements the service_interfaces.AccountService interface
var _ service_interfaces.AccountService = (*AccountService)(nil)

const (
	actionRecharge = "recharge"
	actionWithdraw = "withdrawal"

	// Wallet balances are held in DZD; conversions are display-side.
	walletCurrency = "dzd"
)

type AccountService struct {
	backend backend.Client
	limits  *ratelimit.Tracker
}

func NewAccountService(backendClient backend.Client, limits *ratelimit.Tracker) *AccountService {
	return &AccountService{
		backend: backendClient,
		limits:  limits,
	}
}

func (s *AccountService) FindUser(ctx context.Context, identifier string) (commons.Response[models.FindUserResponse], error) {
	normalized, verr := models.NormalizeIdentifier(identifier)
	if verr != nil {
		return commons.ErrorResponse[models.FindUserResponse]("validation failed", verr.Message), verr
	}

	user, err := s.backend.FindUserSimple(ctx, normalized)
	if err != nil {
		logger.Error("account service find user failed", err, logger.Fields{
			"identifier": normalized,
		})
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.FindUserResponse]("User not found"), err
		}
		return commons.ErrorResponse[models.FindUserResponse]("failed to find user", "Unable to look up user right now"), err
	}

	response := models.FindUserResponse{
		ID:            user.ID,
		FullName:      user.FullName,
		Email:         user.Email,
		AccountNumber: user.AccountNumber,
		Verified:      user.Verified,
	}
	return commons.SuccessResponse("user fetched successfully", response), nil
}

func (s *AccountService) GetBalance(ctx context.Context, identifier string) (commons.Response[models.BalanceResponse], error) {
	normalized, verr := models.NormalizeIdentifier(identifier)
	if verr != nil {
		return commons.ErrorResponse[models.BalanceResponse]("validation failed", verr.Message), verr
	}

	balance, err := s.backend.GetUserBalanceSimple(ctx, normalized)
	if err != nil {
		logger.Error("account service get balance failed", err, logger.Fields{
			"identifier": normalized,
		})
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.BalanceResponse]("User not found"), err
		}
		return commons.ErrorResponse[models.BalanceResponse]("failed to get balance", "Unable to fetch balance right now"), err
	}

	response := models.BalanceResponse{
		Identifier: normalized,
		Balance:    balance.StringFixed(2),
		Currency:   walletCurrency,
	}
	return commons.SuccessResponse("balance fetched successfully", response), nil
}

func (s *AccountService) Recharge(ctx context.Context, req models.RechargeRequest) (commons.Response[models.BalanceUpdateResponse], error) {
	logger.Info("account service recharge request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service recharge validation failed", err, nil)
		return commons.ErrorResponse[models.BalanceUpdateResponse]("validation failed", err.Error()), err
	}

	identifier, _ := models.NormalizeIdentifier(req.Identifier)
	amount, _ := validation.Amount(req.Amount)

	if limitErr := s.limits.Check(identifier, actionRecharge, 0); limitErr != nil {
		return commons.ErrorResponse[models.BalanceUpdateResponse](limitErr.Message), limitErr
	}
	s.limits.Record(identifier, actionRecharge)

	balance, err := s.backend.GetUserBalanceSimple(ctx, identifier)
	if err != nil {
		logger.Error("account service recharge balance lookup failed", err, logger.Fields{
			"identifier": identifier,
		})
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.BalanceUpdateResponse]("User not found"), err
		}
		return commons.ErrorResponse[models.BalanceUpdateResponse]("failed to recharge", "Unable to recharge right now"), err
	}

	newBalance := balance.Add(amount)
	if err := s.backend.UpdateUserBalanceSimple(ctx, identifier, newBalance); err != nil {
		logger.Error("account service recharge update failed", err, logger.Fields{
			"identifier": identifier,
		})
		return commons.ErrorResponse[models.BalanceUpdateResponse]("failed to recharge", "Unable to recharge right now"), err
	}

	s.limits.Reset(identifier, actionRecharge)

	logger.Info("account service recharge success", logger.Fields{
		"identifier": identifier,
		"amount":     amount.StringFixed(2),
	})

	response := models.BalanceUpdateResponse{
		Identifier: identifier,
		NewBalance: newBalance.StringFixed(2),
	}
	return commons.SuccessResponse("recharge completed successfully", response), nil
}

func (s *AccountService) Withdraw(ctx context.Context, req models.WithdrawRequest) (commons.Response[models.BalanceUpdateResponse], error) {
	logger.Info("account service withdraw request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service withdraw validation failed", err, nil)
		return commons.ErrorResponse[models.BalanceUpdateResponse]("validation failed", err.Error()), err
	}

	identifier, _ := models.NormalizeIdentifier(req.Identifier)
	amount, _ := validation.Amount(req.Amount)

	if limitErr := s.limits.Check(identifier, actionWithdraw, 0); limitErr != nil {
		return commons.ErrorResponse[models.BalanceUpdateResponse](limitErr.Message), limitErr
	}
	s.limits.Record(identifier, actionWithdraw)

	balance, err := s.backend.GetUserBalanceSimple(ctx, identifier)
	if err != nil {
		logger.Error("account service withdraw balance lookup failed", err, logger.Fields{
			"identifier": identifier,
		})
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.BalanceUpdateResponse]("User not found"), err
		}
		return commons.ErrorResponse[models.BalanceUpdateResponse]("failed to withdraw", "Unable to withdraw right now"), err
	}

	if balance.LessThan(amount) {
		err := domain.ErrInsufficientBalance
		return commons.ErrorResponse[models.BalanceUpdateResponse]("الرصيد غير كافٍ", err.Error()), err
	}

	newBalance := balance.Sub(amount)
	if err := s.backend.UpdateUserBalanceSimple(ctx, identifier, newBalance); err != nil {
		logger.Error("account service withdraw update failed", err, logger.Fields{
			"identifier": identifier,
		})
		return commons.ErrorResponse[models.BalanceUpdateResponse]("failed to withdraw", "Unable to withdraw right now"), err
	}

	s.limits.Reset(identifier, actionWithdraw)

	logger.Info("account service withdraw success", logger.Fields{
		"identifier": identifier,
		"amount":     amount.StringFixed(2),
	})

	response := models.BalanceUpdateResponse{
		Identifier: identifier,
		NewBalance: newBalance.StringFixed(2),
	}
	return commons.SuccessResponse("withdrawal completed successfully", response), nil
}
