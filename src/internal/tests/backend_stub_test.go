package services_test

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mahfadha/wallet-gateway/src/internal/adapter/backend"
)

// backendStub lets each test wire only the RPCs its scenario touches.
type backendStub struct {
	processSimpleTransfer      func(ctx context.Context, senderEmail, recipientIdentifier string, amount decimal.Decimal, description string) (backend.TransferResult, error)
	getTransferHistorySimple   func(ctx context.Context, userEmail string) ([]backend.TransferRecord, error)
	getInstantTransferStats    func(ctx context.Context, userID string) (backend.TransferStats, error)
	checkInstantTransferLimits func(ctx context.Context, userID string, amount decimal.Decimal) (backend.LimitCheck, error)
	findUserSimple             func(ctx context.Context, identifier string) (backend.User, error)
	getUserBalanceSimple       func(ctx context.Context, identifier string) (decimal.Decimal, error)
	updateUserBalanceSimple    func(ctx context.Context, identifier string, newBalance decimal.Decimal) error
	getPendingVerifications    func(ctx context.Context, limit, offset int) ([]backend.VerificationRequest, error)
	approveVerification        func(ctx context.Context, verificationID, adminNotes, adminID string) error
	rejectVerification         func(ctx context.Context, verificationID, adminNotes, adminID string) error
	getVerificationStats       func(ctx context.Context) (backend.VerificationStats, error)
	submitVerification         func(ctx context.Context, submission backend.VerificationSubmission) (backend.VerificationRequest, error)
	signUp                     func(ctx context.Context, email, password, name, phone string) error
	sendPhoneOTP               func(ctx context.Context, phone string) error
	verifyPhoneOTP             func(ctx context.Context, phone, code string) error
}

var _ backend.Client = (*backendStub)(nil)

func (s *backendStub) ProcessSimpleTransfer(ctx context.Context, senderEmail, recipientIdentifier string, amount decimal.Decimal, description string) (backend.TransferResult, error) {
	if s.processSimpleTransfer == nil {
		return backend.TransferResult{}, nil
	}
	return s.processSimpleTransfer(ctx, senderEmail, recipientIdentifier, amount, description)
}

func (s *backendStub) GetTransferHistorySimple(ctx context.Context, userEmail string) ([]backend.TransferRecord, error) {
	if s.getTransferHistorySimple == nil {
		return nil, nil
	}
	return s.getTransferHistorySimple(ctx, userEmail)
}

func (s *backendStub) GetInstantTransferStats(ctx context.Context, userID string) (backend.TransferStats, error) {
	if s.getInstantTransferStats == nil {
		return backend.TransferStats{}, nil
	}
	return s.getInstantTransferStats(ctx, userID)
}

func (s *backendStub) CheckInstantTransferLimits(ctx context.Context, userID string, amount decimal.Decimal) (backend.LimitCheck, error) {
	if s.checkInstantTransferLimits == nil {
		return backend.LimitCheck{Allowed: true}, nil
	}
	return s.checkInstantTransferLimits(ctx, userID, amount)
}

func (s *backendStub) FindUserSimple(ctx context.Context, identifier string) (backend.User, error) {
	if s.findUserSimple == nil {
		return backend.User{}, nil
	}
	return s.findUserSimple(ctx, identifier)
}

func (s *backendStub) GetUserBalanceSimple(ctx context.Context, identifier string) (decimal.Decimal, error) {
	if s.getUserBalanceSimple == nil {
		return decimal.Zero, nil
	}
	return s.getUserBalanceSimple(ctx, identifier)
}

func (s *backendStub) UpdateUserBalanceSimple(ctx context.Context, identifier string, newBalance decimal.Decimal) error {
	if s.updateUserBalanceSimple == nil {
		return nil
	}
	return s.updateUserBalanceSimple(ctx, identifier, newBalance)
}

func (s *backendStub) GetPendingVerifications(ctx context.Context, limit, offset int) ([]backend.VerificationRequest, error) {
	if s.getPendingVerifications == nil {
		return nil, nil
	}
	return s.getPendingVerifications(ctx, limit, offset)
}

func (s *backendStub) ApproveVerification(ctx context.Context, verificationID, adminNotes, adminID string) error {
	if s.approveVerification == nil {
		return nil
	}
	return s.approveVerification(ctx, verificationID, adminNotes, adminID)
}

func (s *backendStub) RejectVerification(ctx context.Context, verificationID, adminNotes, adminID string) error {
	if s.rejectVerification == nil {
		return nil
	}
	return s.rejectVerification(ctx, verificationID, adminNotes, adminID)
}

func (s *backendStub) GetVerificationStats(ctx context.Context) (backend.VerificationStats, error) {
	if s.getVerificationStats == nil {
		return backend.VerificationStats{}, nil
	}
	return s.getVerificationStats(ctx)
}

func (s *backendStub) SubmitVerification(ctx context.Context, submission backend.VerificationSubmission) (backend.VerificationRequest, error) {
	if s.submitVerification == nil {
		return backend.VerificationRequest{}, nil
	}
	return s.submitVerification(ctx, submission)
}

func (s *backendStub) SignUp(ctx context.Context, email, password, name, phone string) error {
	if s.signUp == nil {
		return nil
	}
	return s.signUp(ctx, email, password, name, phone)
}

func (s *backendStub) SendPhoneOTP(ctx context.Context, phone string) error {
	if s.sendPhoneOTP == nil {
		return nil
	}
	return s.sendPhoneOTP(ctx, phone)
}

func (s *backendStub) VerifyPhoneOTP(ctx context.Context, phone, code string) error {
	if s.verifyPhoneOTP == nil {
		return nil
	}
	return s.verifyPhoneOTP(ctx, phone, code)
}
