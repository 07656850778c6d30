package order

import "context"

// SendOTPResult carries the opaque session id and, in test mode, the echoed
// code the service generated.
type SendOTPResult struct {
	SessionID string
	TestOTP   string
}

// Summary is one row of a customer's order history, service-defined order
// (typically newest first).
type Summary struct {
	ID          string  `json:"id"`
	ProductName string  `json:"productName"`
	Quantity    float64 `json:"quantity"`
	Total       int     `json:"total"`
	Date        string  `json:"date"`
}

// Client is the asynchronous order-service contract the aggregator depends
// on. The transport behind it is an implementation detail.
type Client interface {
	SendOTP(ctx context.Context, phone string) (SendOTPResult, error)
	VerifyOTP(ctx context.Context, sessionID, otp string) error
	// PlaceOrder is a fire-and-forget write; confirmation happens via
	// CheckOrder polling.
	PlaceOrder(ctx context.Context, sessionID string, payload Payload) error
	CheckOrder(ctx context.Context, sessionID, orderID string) (bool, error)
	// LastError fetches the service's last diagnostic for this session, if any.
	LastError(ctx context.Context, sessionID string) (string, error)
	Orders(ctx context.Context, sessionID string) ([]Summary, error)
}
