// Package httprpc talks to the backend over its PostgREST-style RPC surface:
// every stored procedure is exposed as POST {base}/rest/v1/rpc/{name} with a
// JSON argument object.
package httprpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mahfadha/wallet-gateway/src/internal/adapter/backend"
	"github.com/mahfadha/wallet-gateway/src/internal/domain"
)

var _ backend.Client = (*Client)(nil)

type Client struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
}

func New(baseURL, serviceKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		serviceKey: strings.TrimSpace(serviceKey),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type rpcArgs map[string]any

func (c *Client) post(ctx context.Context, path string, args any, out any) error {
	body, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("marshal rpc args: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build rpc request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read rpc response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrRecordNotFound
	case resp.StatusCode == http.StatusConflict:
		return domain.ErrDuplicateTransfer
	case resp.StatusCode >= 400:
		return fmt.Errorf("backend rpc %s: %s", path, backendMessage(raw, resp.StatusCode))
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode rpc response: %w", err)
	}
	return nil
}

func (c *Client) rpc(ctx context.Context, name string, args rpcArgs, out any) error {
	return c.post(ctx, "/rest/v1/rpc/"+name, args, out)
}

func backendMessage(raw []byte, status int) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return fmt.Sprintf("status %d", status)
}

func (c *Client) ProcessSimpleTransfer(ctx context.Context, senderEmail, recipientIdentifier string, amount decimal.Decimal, description string) (backend.TransferResult, error) {
	var result backend.TransferResult
	err := c.rpc(ctx, "process_simple_transfer", rpcArgs{
		"sender_email":         senderEmail,
		"recipient_identifier": recipientIdentifier,
		"amount":               amount,
		"description":          description,
	}, &result)
	return result, err
}

func (c *Client) GetTransferHistorySimple(ctx context.Context, userEmail string) ([]backend.TransferRecord, error) {
	var records []backend.TransferRecord
	err := c.rpc(ctx, "get_transfer_history_simple", rpcArgs{
		"user_email": userEmail,
	}, &records)
	return records, err
}

func (c *Client) GetInstantTransferStats(ctx context.Context, userID string) (backend.TransferStats, error) {
	var stats backend.TransferStats
	err := c.rpc(ctx, "get_instant_transfer_stats", rpcArgs{
		"user_id": userID,
	}, &stats)
	return stats, err
}

func (c *Client) CheckInstantTransferLimits(ctx context.Context, userID string, amount decimal.Decimal) (backend.LimitCheck, error) {
	var check backend.LimitCheck
	err := c.rpc(ctx, "check_instant_transfer_limits", rpcArgs{
		"user_id": userID,
		"amount":  amount,
	}, &check)
	return check, err
}

func (c *Client) FindUserSimple(ctx context.Context, identifier string) (backend.User, error) {
	var user backend.User
	err := c.rpc(ctx, "find_user_simple", rpcArgs{
		"identifier": identifier,
	}, &user)
	if err == nil && user.ID == "" {
		return backend.User{}, domain.ErrRecordNotFound
	}
	return user, err
}

func (c *Client) GetUserBalanceSimple(ctx context.Context, identifier string) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := c.rpc(ctx, "get_user_balance_simple", rpcArgs{
		"identifier": identifier,
	}, &balance)
	return balance, err
}

func (c *Client) UpdateUserBalanceSimple(ctx context.Context, identifier string, newBalance decimal.Decimal) error {
	return c.rpc(ctx, "update_user_balance_simple", rpcArgs{
		"identifier":  identifier,
		"new_balance": newBalance,
	}, nil)
}

func (c *Client) GetPendingVerifications(ctx context.Context, limit, offset int) ([]backend.VerificationRequest, error) {
	var pending []backend.VerificationRequest
	err := c.rpc(ctx, "get_pending_verifications", rpcArgs{
		"limit":  limit,
		"offset": offset,
	}, &pending)
	return pending, err
}

func (c *Client) ApproveVerification(ctx context.Context, verificationID, adminNotes, adminID string) error {
	return c.rpc(ctx, "approve_verification", rpcArgs{
		"verification_id": verificationID,
		"admin_notes":     adminNotes,
		"admin_id":        adminID,
	}, nil)
}

func (c *Client) RejectVerification(ctx context.Context, verificationID, adminNotes, adminID string) error {
	return c.rpc(ctx, "reject_verification", rpcArgs{
		"verification_id": verificationID,
		"admin_notes":     adminNotes,
		"admin_id":        adminID,
	}, nil)
}

func (c *Client) GetVerificationStats(ctx context.Context) (backend.VerificationStats, error) {
	var stats backend.VerificationStats
	err := c.rpc(ctx, "get_verification_stats", rpcArgs{}, &stats)
	return stats, err
}

func (c *Client) SubmitVerification(ctx context.Context, submission backend.VerificationSubmission) (backend.VerificationRequest, error) {
	var created backend.VerificationRequest
	err := c.rpc(ctx, "submit_verification", rpcArgs{
		"user_id":         submission.UserID,
		"full_name":       submission.FullName,
		"phone":           submission.Phone,
		"document_type":   submission.DocumentType,
		"document_number": submission.DocumentNumber,
	}, &created)
	return created, err
}

func (c *Client) SignUp(ctx context.Context, email, password, name, phone string) error {
	return c.post(ctx, "/auth/v1/signup", map[string]any{
		"email":    email,
		"password": password,
		"data": map[string]string{
			"name":  name,
			"phone": phone,
		},
	}, nil)
}

func (c *Client) SendPhoneOTP(ctx context.Context, phone string) error {
	return c.post(ctx, "/auth/v1/otp", map[string]any{
		"phone": phone,
	}, nil)
}

func (c *Client) VerifyPhoneOTP(ctx context.Context, phone, code string) error {
	return c.post(ctx, "/auth/v1/verify", map[string]any{
		"phone": phone,
		"token": code,
		"type":  "sms",
	}, nil)
}
