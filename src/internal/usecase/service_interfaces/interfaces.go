package service_interfaces

import (
	"context"

	"github.com/mahfadha/wallet-gateway/src/internal/adapter/http/models"
	"github.com/mahfadha/wallet-gateway/src/internal/commons"
	"github.com/mahfadha/wallet-gateway/src/internal/validation"
)

type TransferService interface {
	Transfer(ctx context.Context, req models.TransferRequest) (commons.Response[models.TransferResponse], error)
	History(ctx context.Context, userEmail string) (commons.Response[[]models.TransferHistoryEntry], error)
	Stats(ctx context.Context, userID string) (commons.Response[models.TransferStatsResponse], error)
	CheckLimits(ctx context.Context, req models.CheckLimitsRequest) (commons.Response[models.TransferLimitsResponse], error)
}

type AccountService interface {
	FindUser(ctx context.Context, identifier string) (commons.Response[models.FindUserResponse], error)
	GetBalance(ctx context.Context, identifier string) (commons.Response[models.BalanceResponse], error)
	Recharge(ctx context.Context, req models.RechargeRequest) (commons.Response[models.BalanceUpdateResponse], error)
	Withdraw(ctx context.Context, req models.WithdrawRequest) (commons.Response[models.BalanceUpdateResponse], error)
}

type BillService interface {
	ListBillTypes(ctx context.Context) (commons.Response[[]models.BillTypeResponse], error)
	PayBill(ctx context.Context, req models.PayBillRequest) (commons.Response[models.PayBillResponse], error)
}

type RateService interface {
	Convert(ctx context.Context, req models.ConvertRequest) (commons.Response[models.ConversionResponse], error)
	Pairs(ctx context.Context) (commons.Response[[]models.RatePairResponse], error)
}

type VerificationService interface {
	Submit(ctx context.Context, req models.SubmitVerificationRequest) (commons.Response[models.VerificationResponse], error)
	SendOTP(ctx context.Context, req models.SendOTPRequest) (commons.Response[models.SignupResponse], error)
	ConfirmOTP(ctx context.Context, req models.VerifyOTPRequest) (commons.Response[models.SignupResponse], error)
	Pending(ctx context.Context, limit, offset int) (commons.Response[[]models.VerificationResponse], error)
	Approve(ctx context.Context, req models.ReviewVerificationRequest) (commons.Response[models.VerificationResponse], error)
	Reject(ctx context.Context, req models.ReviewVerificationRequest) (commons.Response[models.VerificationResponse], error)
	Stats(ctx context.Context) (commons.Response[models.VerificationStatsResponse], error)
	Dashboard(ctx context.Context) (commons.Response[models.VerificationDashboardResponse], error)
}

type UserService interface {
	Signup(ctx context.Context, signup validation.Signup) (commons.Response[models.SignupResponse], error)
}
