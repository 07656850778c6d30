package ordersvc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ankurdhir/laddu/internal/metrics"
)

var (
	ErrSessionUnknown  = errors.New("unknown or expired session")
	ErrOtpMismatch     = errors.New("incorrect OTP")
	ErrTooManyAttempts = errors.New("too many verification attempts")
	ErrNotVerified     = errors.New("session not verified")
)

const (
	sessionTTL  = 5 * time.Minute
	maxAttempts = 5
)

// Service implements the order-service contract the storefront's aggregator
// talks to: OTP sessions, the order sheet, last-error diagnostics and order
// history.
type Service struct {
	repo     Repository
	testMode bool
	now      func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:     repo,
		testMode: os.Getenv("OTP_TEST_MODE") == "true",
		now:      time.Now,
	}
}

// SendOTP creates a fresh session for phone and dispatches the code. In
// test mode the code is returned to the caller instead of being sent.
func (s *Service) SendOTP(ctx context.Context, phone string) (sessionID, testOtp string, err error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return "", "", errors.New("missing phone number")
	}

	session := &OtpSession{
		ID:        uuid.New().String(),
		Phone:     phone,
		Code:      fmt.Sprintf("%06d", rand.Intn(1000000)),
		CreatedAt: s.now(),
		ExpiresAt: s.now().Add(sessionTTL),
	}
	if err := s.repo.SaveSession(ctx, session); err != nil {
		metrics.OtpSent.WithLabelValues("error").Inc()
		return "", "", err
	}

	if s.testMode {
		metrics.OtpSent.WithLabelValues("test").Inc()
		return session.ID, session.Code, nil
	}

	// SMS gateway integration point. Until one is wired the code is only
	// visible in server logs.
	log.Printf("ordersvc: OTP for %s: %s", phone, session.Code)
	metrics.OtpSent.WithLabelValues("ok").Inc()
	return session.ID, "", nil
}

// VerifyOTP checks the submitted code against the session. Sessions expire
// after 5 minutes and lock after 5 failed attempts.
func (s *Service) VerifyOTP(ctx context.Context, sessionID, otp string) error {
	session, err := s.repo.FindSession(ctx, sessionID)
	if err != nil {
		metrics.OtpVerified.WithLabelValues("unknown").Inc()
		return ErrSessionUnknown
	}
	if s.now().After(session.ExpiresAt) {
		metrics.OtpVerified.WithLabelValues("expired").Inc()
		return ErrSessionUnknown
	}
	if session.Attempts >= maxAttempts {
		metrics.OtpVerified.WithLabelValues("locked").Inc()
		return ErrTooManyAttempts
	}

	session.Attempts++
	if session.Code != otp {
		_ = s.repo.UpdateSession(ctx, session)
		metrics.OtpVerified.WithLabelValues("mismatch").Inc()
		return ErrOtpMismatch
	}

	session.Verified = true
	if err := s.repo.UpdateSession(ctx, session); err != nil {
		return err
	}
	metrics.OtpVerified.WithLabelValues("ok").Inc()
	return nil
}

// orderEnvelope is the subset of the submitted payload the sheet indexes.
type orderEnvelope struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Product struct {
		Type       string `json:"type"`
		Name       string `json:"name"`
		Quantity   string `json:"quantity"`
		TotalPrice int    `json:"totalPrice"`
	} `json:"product"`
}

// PlaceOrder records an order against a verified session. Failures are
// remembered as the session's last error so the storefront can surface a
// diagnostic when its confirmation poll comes up empty.
func (s *Service) PlaceOrder(ctx context.Context, sessionID string, payload []byte) error {
	session, err := s.repo.FindSession(ctx, sessionID)
	if err != nil {
		return ErrSessionUnknown
	}
	if !session.Verified {
		_ = s.repo.SetLastError(ctx, sessionID, "order rejected: phone not verified")
		return ErrNotVerified
	}

	var env orderEnvelope
	if err := json.Unmarshal(payload, &env); err != nil || env.ID == "" {
		_ = s.repo.SetLastError(ctx, sessionID, "order rejected: malformed payload")
		return errors.New("malformed order payload")
	}

	stored := &StoredOrder{
		OrderID:     env.ID,
		SessionID:   sessionID,
		Phone:       session.Phone,
		ProductName: env.Product.Name,
		QuantityKg:  parseKg(env.Product.Quantity),
		Total:       env.Product.TotalPrice,
		Date:        env.Date,
		Payload:     payload,
		CreatedAt:   s.now(),
	}
	if err := s.repo.SaveOrder(ctx, stored); err != nil {
		_ = s.repo.SetLastError(ctx, sessionID, "order write failed: "+err.Error())
		return err
	}

	metrics.OrdersPlaced.WithLabelValues(env.Product.Type).Inc()
	log.Printf("ordersvc: recorded order %s for %s (₹%d)", stored.OrderID, stored.Phone, stored.Total)
	return nil
}

func (s *Service) CheckOrder(ctx context.Context, sessionID, orderID string) (bool, error) {
	if _, err := s.repo.FindSession(ctx, sessionID); err != nil {
		return false, ErrSessionUnknown
	}
	return s.repo.HasOrder(ctx, orderID)
}

func (s *Service) LastError(ctx context.Context, sessionID string) (string, error) {
	return s.repo.LastError(ctx, sessionID)
}

// OrderSummary is one row of a customer's order history.
type OrderSummary struct {
	ID          string  `json:"id"`
	ProductName string  `json:"productName"`
	Quantity    float64 `json:"quantity"`
	Total       int     `json:"total"`
	Date        string  `json:"date"`
}

// Orders lists the verified session's order history, newest first.
func (s *Service) Orders(ctx context.Context, sessionID string) ([]OrderSummary, error) {
	session, err := s.repo.FindSession(ctx, sessionID)
	if err != nil {
		return nil, ErrSessionUnknown
	}
	if !session.Verified {
		return nil, ErrNotVerified
	}

	stored, err := s.repo.OrdersByPhone(ctx, session.Phone)
	if err != nil {
		return nil, err
	}
	return summarize(stored), nil
}

// AllOrders lists every recorded order for the admin view.
func (s *Service) AllOrders(ctx context.Context) ([]OrderSummary, error) {
	stored, err := s.repo.AllOrders(ctx)
	if err != nil {
		return nil, err
	}
	return summarize(stored), nil
}

func summarize(stored []StoredOrder) []OrderSummary {
	out := make([]OrderSummary, 0, len(stored))
	for _, o := range stored {
		out = append(out, OrderSummary{
			ID:          o.OrderID,
			ProductName: o.ProductName,
			Quantity:    o.QuantityKg,
			Total:       o.Total,
			Date:        o.Date,
		})
	}
	return out
}

// parseKg turns "1.5kg" into 1.5; unparseable quantities store as 0.
func parseKg(q string) float64 {
	q = strings.TrimSuffix(strings.TrimSpace(q), "kg")
	v, err := strconv.ParseFloat(q, 64)
	if err != nil {
		return 0
	}
	return v
}
