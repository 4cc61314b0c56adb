// Package backend defines the call contracts of the remote wallet backend.
// The gateway consumes these RPCs, it never implements them: balances, OTP
// issuance and the verification state machine all live on the backend side.
package backend

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	FullName      string `json:"full_name"`
	Phone         string `json:"phone"`
	AccountNumber string `json:"account_number"`
	Verified      bool   `json:"verified"`
}

type TransferResult struct {
	Success    bool            `json:"success"`
	Reference  string          `json:"reference"`
	Message    string          `json:"message"`
	NewBalance decimal.Decimal `json:"new_balance"`
}

type TransferRecord struct {
	Reference           string          `json:"reference"`
	SenderEmail         string          `json:"sender_email"`
	RecipientIdentifier string          `json:"recipient_identifier"`
	Amount              decimal.Decimal `json:"amount"`
	Description         string          `json:"description"`
	Direction           string          `json:"direction"`
	CreatedAt           time.Time       `json:"created_at"`
}

type TransferStats struct {
	TotalSent     decimal.Decimal `json:"total_sent"`
	TotalReceived decimal.Decimal `json:"total_received"`
	TransferCount int             `json:"transfer_count"`
}

type LimitCheck struct {
	Allowed    bool            `json:"allowed"`
	Reason     string          `json:"reason"`
	DailyLimit decimal.Decimal `json:"daily_limit"`
	DailyUsed  decimal.Decimal `json:"daily_used"`
}

type VerificationRequest struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	FullName       string    `json:"full_name"`
	Phone          string    `json:"phone"`
	DocumentType   string    `json:"document_type"`
	DocumentNumber string    `json:"document_number"`
	Status         string    `json:"status"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

type VerificationSubmission struct {
	UserID         string `json:"user_id"`
	FullName       string `json:"full_name"`
	Phone          string `json:"phone"`
	DocumentType   string `json:"document_type"`
	DocumentNumber string `json:"document_number"`
}

type VerificationStats struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Total    int `json:"total"`
}

// Client mirrors the backend RPC surface one to one. Method names map to the
// stored-procedure names on the wire; argument shapes are part of the
// contract and must not drift.
type Client interface {
	ProcessSimpleTransfer(ctx context.Context, senderEmail, recipientIdentifier string, amount decimal.Decimal, description string) (TransferResult, error)
	GetTransferHistorySimple(ctx context.Context, userEmail string) ([]TransferRecord, error)
	GetInstantTransferStats(ctx context.Context, userID string) (TransferStats, error)
	CheckInstantTransferLimits(ctx context.Context, userID string, amount decimal.Decimal) (LimitCheck, error)
	FindUserSimple(ctx context.Context, identifier string) (User, error)
	GetUserBalanceSimple(ctx context.Context, identifier string) (decimal.Decimal, error)
	UpdateUserBalanceSimple(ctx context.Context, identifier string, newBalance decimal.Decimal) error
	GetPendingVerifications(ctx context.Context, limit, offset int) ([]VerificationRequest, error)
	ApproveVerification(ctx context.Context, verificationID, adminNotes, adminID string) error
	RejectVerification(ctx context.Context, verificationID, adminNotes, adminID string) error
	GetVerificationStats(ctx context.Context) (VerificationStats, error)
	SubmitVerification(ctx context.Context, submission VerificationSubmission) (VerificationRequest, error)

	// Auth-side calls. Only the HTTP driver supports these; the postgres
	// driver reports ErrUnsupportedByDriver.
	SignUp(ctx context.Context, email, password, name, phone string) error
	SendPhoneOTP(ctx context.Context, phone string) error
	VerifyPhoneOTP(ctx context.Context, phone, code string) error
}
