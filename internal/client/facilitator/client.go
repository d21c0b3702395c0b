package facilitator

import (
	"context"
	"io"
	"net/http"
	"time"

	httpclient "github.com/gigpay/gigpay-api/internal/client/http"
)

// PaymentDetails describes a payment being recorded with the facilitator.
type PaymentDetails struct {
	Amount      float64
	Currency    string
	Network     string
	Sender      string
	Recipient   string
	Description string
	GigID       string
}

// NotifyResult is the explicit two-outcome result of a notification attempt:
// either the facilitator acknowledged the payment or the attempt failed and
// was ignored.
type NotifyResult struct {
	Delivered  bool
	StatusCode int
	Err        error
}

// paymentRequest is the wire format of POST /payments.
type paymentRequest struct {
	Amount      float64         `json:"amount"`
	Currency    string          `json:"currency"`
	Network     string          `json:"network"`
	Sender      string          `json:"sender"`
	Recipient   string          `json:"recipient"`
	Description string          `json:"description,omitempty"`
	Metadata    paymentMetadata `json:"metadata"`
}

type paymentMetadata struct {
	GigID     string `json:"gigId,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// Client talks to the x402-style payment facilitation API.
type Client struct {
	apiKey     string
	httpClient *httpclient.HTTPClient
}

// NewClient creates a facilitator client for the given base URL and bearer
// credential.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		apiKey: apiKey,
		httpClient: httpclient.NewHTTPClient(
			httpclient.WithBaseURL(baseURL),
			httpclient.WithTimeout(10*time.Second),
		),
	}
}

// Notify records the payment with the facilitator. Any transport error or
// non-200 status yields a failed outcome; the caller decides whether that
// matters.
func (c *Client) Notify(ctx context.Context, details PaymentDetails) NotifyResult {
	body := paymentRequest{
		Amount:      details.Amount,
		Currency:    details.Currency,
		Network:     details.Network,
		Sender:      details.Sender,
		Recipient:   details.Recipient,
		Description: details.Description,
		Metadata: paymentMetadata{
			GigID:     details.GigID,
			Timestamp: time.Now().UnixMilli(),
		},
	}

	resp, err := c.httpClient.Post(ctx, "/payments", body,
		httpclient.WithBearerToken(c.apiKey))
	if err != nil {
		statusCode := 0
		if resp != nil {
			statusCode = resp.StatusCode
		}
		return NotifyResult{Delivered: false, StatusCode: statusCode, Err: err}
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return NotifyResult{Delivered: false, StatusCode: resp.StatusCode}
	}

	return NotifyResult{Delivered: true, StatusCode: resp.StatusCode}
}
