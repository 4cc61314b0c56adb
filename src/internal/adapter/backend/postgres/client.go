// Package postgres invokes the backend stored procedures directly over a
// database connection, for deployments that bypass the HTTP RPC layer. The
// procedure names and argument order are the same wire contract the HTTP
// driver speaks.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/mahfadha/wallet-gateway/src/internal/adapter/backend"
	"github.com/mahfadha/wallet-gateway/src/internal/domain"
)

var _ backend.Client = (*Client)(nil)

type Client struct {
	db *sql.DB
}

func Open(dsn string) (*Client, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open backend database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	return &Client{db: db}, nil
}

func New(db *sql.DB) *Client {
	return &Client{db: db}
}

func (c *Client) Close() error {
	return c.db.Close()
}

// queryJSON runs a single-row query whose result column is jsonb and decodes
// it into out. A SQL NULL result maps to ErrRecordNotFound.
func (c *Client) queryJSON(ctx context.Context, out any, query string, args ...any) error {
	var raw []byte
	if err := c.db.QueryRowContext(ctx, query, args...).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrRecordNotFound
		}
		return mapPQError(err)
	}
	if len(raw) == 0 || string(raw) == "null" {
		return domain.ErrRecordNotFound
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode procedure result: %w", err)
	}
	return nil
}

func mapPQError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == "23505" {
		return domain.ErrDuplicateTransfer
	}
	return err
}

func (c *Client) ProcessSimpleTransfer(ctx context.Context, senderEmail, recipientIdentifier string, amount decimal.Decimal, description string) (backend.TransferResult, error) {
	var result backend.TransferResult
	err := c.queryJSON(ctx, &result,
		`SELECT process_simple_transfer($1, $2, $3, $4)`,
		senderEmail, recipientIdentifier, amount.String(), description)
	return result, err
}

func (c *Client) GetTransferHistorySimple(ctx context.Context, userEmail string) ([]backend.TransferRecord, error) {
	var records []backend.TransferRecord
	err := c.queryJSON(ctx, &records,
		`SELECT coalesce(jsonb_agg(t), '[]'::jsonb) FROM get_transfer_history_simple($1) AS t`,
		userEmail)
	if errors.Is(err, domain.ErrRecordNotFound) {
		return nil, nil
	}
	return records, err
}

func (c *Client) GetInstantTransferStats(ctx context.Context, userID string) (backend.TransferStats, error) {
	var stats backend.TransferStats
	err := c.queryJSON(ctx, &stats,
		`SELECT get_instant_transfer_stats($1)`, userID)
	return stats, err
}

func (c *Client) CheckInstantTransferLimits(ctx context.Context, userID string, amount decimal.Decimal) (backend.LimitCheck, error) {
	var check backend.LimitCheck
	err := c.queryJSON(ctx, &check,
		`SELECT check_instant_transfer_limits($1, $2)`, userID, amount.String())
	return check, err
}

func (c *Client) FindUserSimple(ctx context.Context, identifier string) (backend.User, error) {
	var user backend.User
	err := c.queryJSON(ctx, &user,
		`SELECT find_user_simple($1)`, identifier)
	return user, err
}

func (c *Client) GetUserBalanceSimple(ctx context.Context, identifier string) (decimal.Decimal, error) {
	var raw sql.NullString
	if err := c.db.QueryRowContext(ctx,
		`SELECT get_user_balance_simple($1)`, identifier).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, domain.ErrRecordNotFound
		}
		return decimal.Zero, mapPQError(err)
	}
	if !raw.Valid {
		return decimal.Zero, domain.ErrRecordNotFound
	}
	balance, err := decimal.NewFromString(raw.String)
	if err != nil {
		return decimal.Zero, fmt.Errorf("decode balance: %w", err)
	}
	return balance, nil
}

func (c *Client) UpdateUserBalanceSimple(ctx context.Context, identifier string, newBalance decimal.Decimal) error {
	_, err := c.db.ExecContext(ctx,
		`SELECT update_user_balance_simple($1, $2)`, identifier, newBalance.String())
	return mapNilable(err)
}

func (c *Client) GetPendingVerifications(ctx context.Context, limit, offset int) ([]backend.VerificationRequest, error) {
	var pending []backend.VerificationRequest
	err := c.queryJSON(ctx, &pending,
		`SELECT coalesce(jsonb_agg(t), '[]'::jsonb) FROM get_pending_verifications($1, $2) AS t`,
		limit, offset)
	if errors.Is(err, domain.ErrRecordNotFound) {
		return nil, nil
	}
	return pending, err
}

func (c *Client) ApproveVerification(ctx context.Context, verificationID, adminNotes, adminID string) error {
	_, err := c.db.ExecContext(ctx,
		`SELECT approve_verification($1, $2, $3)`, verificationID, adminNotes, adminID)
	return mapNilable(err)
}

func (c *Client) RejectVerification(ctx context.Context, verificationID, adminNotes, adminID string) error {
	_, err := c.db.ExecContext(ctx,
		`SELECT reject_verification($1, $2, $3)`, verificationID, adminNotes, adminID)
	return mapNilable(err)
}

func (c *Client) GetVerificationStats(ctx context.Context) (backend.VerificationStats, error) {
	var stats backend.VerificationStats
	err := c.queryJSON(ctx, &stats, `SELECT get_verification_stats()`)
	return stats, err
}

func (c *Client) SubmitVerification(ctx context.Context, submission backend.VerificationSubmission) (backend.VerificationRequest, error) {
	var created backend.VerificationRequest
	err := c.queryJSON(ctx, &created,
		`SELECT submit_verification($1, $2, $3, $4, $5)`,
		submission.UserID, submission.FullName, submission.Phone,
		submission.DocumentType, submission.DocumentNumber)
	return created, err
}

func (c *Client) SignUp(_ context.Context, _, _, _, _ string) error {
	return domain.ErrUnsupportedByDriver
}

func (c *Client) SendPhoneOTP(_ context.Context, _ string) error {
	return domain.ErrUnsupportedByDriver
}

func (c *Client) VerifyPhoneOTP(_ context.Context, _, _ string) error {
	return domain.ErrUnsupportedByDriver
}

func mapNilable(err error) error {
	if err == nil {
		return nil
	}
	return mapPQError(err)
}
