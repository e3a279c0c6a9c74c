package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

var ErrProvider = errors.New("payment provider error")

const (
	StatusPaid      = "PAID"
	StatusPending   = "PENDING"
	StatusCancelled = "CANCELLED"
)

type Config struct {
	BaseURL     string
	ClientID    string
	APIKey      string
	ChecksumKey string
	ReturnURL   string
	Timeout     time.Duration
}

// LinkRequest asks the provider for a QR payment link.
type LinkRequest struct {
	OrderCode   int64
	Amount      int64
	Description string
	BuyerEmail  string
	ExpiresAt   time.Time
}

type Link struct {
	CheckoutURL   string `json:"checkoutUrl"`
	QRCode        string `json:"qrCode"`
	PaymentLinkID string `json:"paymentLinkId"`
}

// Status is the provider's view of one order code.
type Status struct {
	OrderCode  int64  `json:"orderCode"`
	Amount     int64  `json:"amount"`
	AmountPaid int64  `json:"amountPaid"`
	Status     string `json:"status"`
}

// Client talks to the PayOS-style payment API.
type Client struct {
	cfg  Config
	http *http.Client
	log  *zap.Logger
}

func NewClient(cfg Config, log *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: timeout},
		log:  log.With(zap.String("client", "payment")),
	}
}

type envelope struct {
	Code string          `json:"code"`
	Desc string          `json:"desc"`
	Data json.RawMessage `json:"data"`
}

func (c *Client) CreatePaymentLink(ctx context.Context, req LinkRequest) (*Link, error) {
	fields := map[string]any{
		"amount":      req.Amount,
		"cancelUrl":   c.cfg.ReturnURL,
		"description": req.Description,
		"orderCode":   req.OrderCode,
		"returnUrl":   c.cfg.ReturnURL,
	}

	body := map[string]any{
		"orderCode":   req.OrderCode,
		"amount":      req.Amount,
		"description": req.Description,
		"buyerEmail":  req.BuyerEmail,
		"returnUrl":   c.cfg.ReturnURL,
		"cancelUrl":   c.cfg.ReturnURL,
		"expiredAt":   req.ExpiresAt.Unix(),
		"signature":   Sign(c.cfg.ChecksumKey, fields),
	}

	var link Link
	if err := c.do(ctx, http.MethodPost, "/v2/payment-requests", body, &link); err != nil {
		return nil, err
	}

	c.log.Info("Payment link created",
		zap.Int64("order_code", req.OrderCode),
		zap.Int64("amount", req.Amount),
	)
	return &link, nil
}

func (c *Client) GetPaymentStatus(ctx context.Context, orderCode int64) (*Status, error) {
	var status Status
	path := fmt.Sprintf("/v2/payment-requests/%d", orderCode)
	if err := c.do(ctx, http.MethodGet, path, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var reader io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", path, err)
		}
		reader = bytes.NewReader(payload)
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + path
	httpReq, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("build %s request: %w", path, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-client-id", c.cfg.ClientID)
	httpReq.Header.Set("x-api-key", c.cfg.APIKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.log.Error("Payment provider request failed",
			zap.Error(err),
			zap.String("method", method),
			zap.String("path", path),
		)
		return fmt.Errorf("%w: %s %s: %v", ErrProvider, method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%w: decode %s response (status %d): %v", ErrProvider, path, resp.StatusCode, err)
	}

	if resp.StatusCode >= http.StatusBadRequest || env.Code != SuccessCode {
		c.log.Warn("Payment provider rejected request",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("code", env.Code),
			zap.String("desc", env.Desc),
		)
		return fmt.Errorf("%w: %s returned code %s: %s", ErrProvider, path, env.Code, env.Desc)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: decode %s data: %v", ErrProvider, path, err)
	}
	return nil
}
