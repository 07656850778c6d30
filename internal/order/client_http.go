package order

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// serviceTimeout bounds every order-service call. Requests that exceed it
// are treated as failed and the session rolls back for retry.
const serviceTimeout = 12 * time.Second

// HTTPClient talks to the order service over plain request/response: action
// endpoints as GET query calls, placeOrder as a POST write. It replaces the
// storefront's script-injection transport behind the same contract.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: serviceTimeout,
		},
	}
}

type serviceResponse struct {
	OK        bool            `json:"ok"`
	Error     string          `json:"error,omitempty"`
	SessionID string          `json:"sessionId,omitempty"`
	TestOTP   string          `json:"testOtp,omitempty"`
	Found     bool            `json:"found,omitempty"`
	Message   string          `json:"message,omitempty"`
	Orders    json.RawMessage `json:"orders,omitempty"`
}

func (c *HTTPClient) action(ctx context.Context, action string, params map[string]string) (*serviceResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid order service URL: %w", err)
	}
	q := u.Query()
	q.Set("action", action)
	for k, v := range params {
		if v != "" {
			q.Set(k, v)
		}
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("order service unreachable: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var sr serviceResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("order service returned unparseable response: %w", err)
	}
	return &sr, nil
}

func (c *HTTPClient) SendOTP(ctx context.Context, phone string) (SendOTPResult, error) {
	sr, err := c.action(ctx, "sendOtp", map[string]string{"phone": phone})
	if err != nil {
		return SendOTPResult{}, err
	}
	if !sr.OK {
		return SendOTPResult{}, serviceError(sr, "failed to send OTP")
	}
	return SendOTPResult{SessionID: sr.SessionID, TestOTP: sr.TestOTP}, nil
}

func (c *HTTPClient) VerifyOTP(ctx context.Context, sessionID, otp string) error {
	sr, err := c.action(ctx, "verifyOtp", map[string]string{"sessionId": sessionID, "otp": otp})
	if err != nil {
		return err
	}
	if !sr.OK {
		return serviceError(sr, "OTP verification failed")
	}
	return nil
}

func (c *HTTPClient) PlaceOrder(ctx context.Context, sessionID string, payload Payload) error {
	body, err := json.Marshal(map[string]interface{}{
		"action":     "placeOrder",
		"requireOtp": true,
		"sessionId":  sessionID,
		"order":      payload,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	// Fire-and-forget: the response body is not authoritative, only the
	// confirmation poll is. A transport error still counts as a hard failure.
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("order service unreachable: %w", err)
	}
	resp.Body.Close()
	return nil
}

func (c *HTTPClient) CheckOrder(ctx context.Context, sessionID, orderID string) (bool, error) {
	sr, err := c.action(ctx, "checkOrder", map[string]string{"sessionId": sessionID, "orderId": orderID})
	if err != nil {
		return false, err
	}
	return sr.OK && sr.Found, nil
}

func (c *HTTPClient) LastError(ctx context.Context, sessionID string) (string, error) {
	sr, err := c.action(ctx, "getLastError", map[string]string{"sessionId": sessionID})
	if err != nil {
		return "", err
	}
	return sr.Message, nil
}

func (c *HTTPClient) Orders(ctx context.Context, sessionID string) ([]Summary, error) {
	sr, err := c.action(ctx, "getOrders", map[string]string{"sessionId": sessionID})
	if err != nil {
		return nil, err
	}
	if !sr.OK {
		return nil, serviceError(sr, "could not fetch orders")
	}
	var orders []Summary
	if len(sr.Orders) > 0 {
		if err := json.Unmarshal(sr.Orders, &orders); err != nil {
			return nil, fmt.Errorf("order service returned malformed orders: %w", err)
		}
	}
	return orders, nil
}

// serviceError surfaces the service's own message verbatim when present.
func serviceError(sr *serviceResponse, fallback string) error {
	if sr.Error != "" {
		return errors.New(sr.Error)
	}
	return errors.New(fallback)
}
