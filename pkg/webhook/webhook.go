// Package webhook posts analysis reports to configured HTTP endpoints.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"intervista/pkg/output"
)

// DefaultTimeout is the request timeout when SendOptions.Timeout is zero.
const DefaultTimeout = 10 * time.Second

// maxResponseBody caps how much of the endpoint's reply is retained.
const maxResponseBody = 64 << 10

// EventAnalysisCompleted names the only event this client emits.
const EventAnalysisCompleted = "analysis.completed"

// payload is the JSON body posted to endpoints: the report wrapped in a
// small envelope so receivers can dispatch on the event name.
type payload struct {
	Event  string         `json:"event"`
	SentAt time.Time      `json:"sent_at"`
	Report *output.Report `json:"report"`
}

// SendOptions configures one delivery.
type SendOptions struct {
	// URL is the endpoint to POST the report to.
	URL string

	// Token is an optional bearer token.
	Token string

	// Timeout bounds the request; DefaultTimeout when zero.
	Timeout time.Duration
}

// Response records the outcome of one delivery attempt.
type Response struct {
	// StatusCode is the endpoint's HTTP status, 0 when no response arrived.
	StatusCode int

	// Body is the endpoint's reply, truncated to maxResponseBody.
	Body string

	// Duration is the wall-clock time of the attempt.
	Duration time.Duration

	// Error is non-nil when the delivery failed, including non-2xx replies.
	Error error
}

// Success reports whether the endpoint accepted the delivery (2xx).
func (r *Response) Success() bool {
	return r.Error == nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// Client delivers analysis reports to webhook endpoints.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a webhook client.
func NewClient() *Client {
	return &Client{httpClient: &http.Client{}}
}

// Send posts report to the endpoint in opts. It never returns a nil
// Response; inspect Response.Error or Success() for the outcome.
func (c *Client) Send(ctx context.Context, report *output.Report, opts SendOptions) *Response {
	start := time.Now()
	res := &Response{}
	defer func() { res.Duration = time.Since(start) }()

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := c.newRequest(ctx, report, opts)
	if err != nil {
		res.Error = err
		return res
	}

	httpRes, err := c.httpClient.Do(req)
	if err != nil {
		res.Error = fmt.Errorf("delivering report: %w", err)
		return res
	}
	defer httpRes.Body.Close()

	res.StatusCode = httpRes.StatusCode

	body, err := io.ReadAll(io.LimitReader(httpRes.Body, maxResponseBody))
	if err != nil {
		res.Error = fmt.Errorf("reading endpoint reply: %w", err)
		return res
	}
	res.Body = string(body)

	if httpRes.StatusCode >= 400 {
		res.Error = fmt.Errorf("endpoint rejected report with status %d", httpRes.StatusCode)
	}

	return res
}

func (c *Client) newRequest(ctx context.Context, report *output.Report, opts SendOptions) (*http.Request, error) {
	body, err := json.Marshal(payload{
		Event:  EventAnalysisCompleted,
		SentAt: time.Now().UTC(),
		Report: report,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, opts.URL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "intervista-webhook")
	if opts.Token != "" {
		req.Header.Set("Authorization", "Bearer "+opts.Token)
	}

	return req, nil
}
