package ordersvc

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	t.Setenv("OTP_TEST_MODE", "true")
	return NewService(NewMemoryRepository())
}

func orderJSON(t *testing.T, id, name, qty string, total int) []byte {
	t.Helper()
	raw, err := json.Marshal(map[string]any{
		"id":   id,
		"date": "2025-06-01T12:00:00Z",
		"product": map[string]any{
			"type":       "Custom Laddoo",
			"name":       name,
			"quantity":   qty,
			"totalPrice": total,
		},
	})
	require.NoError(t, err)
	return raw
}

func verifiedSession(t *testing.T, s *Service, phone string) string {
	t.Helper()
	ctx := context.Background()
	sessionID, code, err := s.SendOTP(ctx, phone)
	require.NoError(t, err)
	require.NoError(t, s.VerifyOTP(ctx, sessionID, code))
	return sessionID
}

func TestSendOTP(t *testing.T) {
	s := newTestService(t)

	sessionID, code, err := s.SendOTP(context.Background(), "9876543210")
	require.NoError(t, err)
	assert.NotEmpty(t, sessionID)
	assert.Regexp(t, `^\d{6}$`, code, "test mode echoes the generated code")

	_, _, err = s.SendOTP(context.Background(), "   ")
	assert.Error(t, err)
}

func TestVerifyOTP(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	sessionID, code, err := s.SendOTP(ctx, "9876543210")
	require.NoError(t, err)

	assert.ErrorIs(t, s.VerifyOTP(ctx, sessionID, "000000"), ErrOtpMismatch)
	assert.NoError(t, s.VerifyOTP(ctx, sessionID, code))

	assert.ErrorIs(t, s.VerifyOTP(ctx, "bogus-session", code), ErrSessionUnknown)
}

func TestVerifyOTPExpiry(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	sessionID, code, err := s.SendOTP(ctx, "9876543210")
	require.NoError(t, err)

	s.now = func() time.Time { return time.Now().Add(sessionTTL + time.Second) }
	assert.ErrorIs(t, s.VerifyOTP(ctx, sessionID, code), ErrSessionUnknown)
}

func TestVerifyOTPAttemptLimit(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	sessionID, code, err := s.SendOTP(ctx, "9876543210")
	require.NoError(t, err)

	for i := 0; i < maxAttempts; i++ {
		assert.ErrorIs(t, s.VerifyOTP(ctx, sessionID, "000000"), ErrOtpMismatch)
	}
	// Even the right code is refused once the session locks.
	assert.ErrorIs(t, s.VerifyOTP(ctx, sessionID, code), ErrTooManyAttempts)
}

func TestPlaceOrderRequiresVerification(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	sessionID, _, err := s.SendOTP(ctx, "9876543210")
	require.NoError(t, err)

	err = s.PlaceOrder(ctx, sessionID, orderJSON(t, "LAD-A-AAAAA", "Custom Mix", "1kg", 1195))
	assert.ErrorIs(t, err, ErrNotVerified)

	// The rejection is remembered as the session's diagnostic.
	msg, err := s.LastError(ctx, sessionID)
	require.NoError(t, err)
	assert.Contains(t, msg, "not verified")
}

func TestPlaceAndCheckOrder(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	sessionID := verifiedSession(t, s, "9876543210")

	found, err := s.CheckOrder(ctx, sessionID, "LAD-A-AAAAA")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.PlaceOrder(ctx, sessionID, orderJSON(t, "LAD-A-AAAAA", "Custom Mix", "1.5kg", 1790)))

	found, err = s.CheckOrder(ctx, sessionID, "LAD-A-AAAAA")
	require.NoError(t, err)
	assert.True(t, found)

	_, err = s.CheckOrder(ctx, "bogus", "LAD-A-AAAAA")
	assert.ErrorIs(t, err, ErrSessionUnknown)
}

func TestPlaceOrderMalformedPayload(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	sessionID := verifiedSession(t, s, "9876543210")

	assert.Error(t, s.PlaceOrder(ctx, sessionID, []byte("{notjson")))
	assert.Error(t, s.PlaceOrder(ctx, sessionID, []byte(`{"date":"x"}`)), "missing id is rejected")

	msg, err := s.LastError(ctx, sessionID)
	require.NoError(t, err)
	assert.Contains(t, msg, "malformed")
}

func TestOrdersHistory(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	// Two phones, interleaved orders; CreatedAt driven by a fake clock so
	// newest-first ordering is deterministic.
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	tick := 0
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}

	sessA := verifiedSession(t, s, "9876543210")
	sessB := verifiedSession(t, s, "9000000001")

	require.NoError(t, s.PlaceOrder(ctx, sessA, orderJSON(t, "LAD-1-AAAAA", "Gond Laddoo", "1kg", 1200)))
	require.NoError(t, s.PlaceOrder(ctx, sessB, orderJSON(t, "LAD-2-BBBBB", "Custom Mix", "2kg", 2390)))
	require.NoError(t, s.PlaceOrder(ctx, sessA, orderJSON(t, "LAD-3-CCCCC", "Badam Energy Laddoo", "0.5kg", 550)))

	orders, err := s.Orders(ctx, sessA)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "LAD-3-CCCCC", orders[0].ID, "newest first")
	assert.Equal(t, "LAD-1-AAAAA", orders[1].ID)
	assert.Equal(t, 0.5, orders[0].Quantity)

	all, err := s.AllOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestParseKg(t *testing.T) {
	assert.Equal(t, 1.5, parseKg("1.5kg"))
	assert.Equal(t, 1.0, parseKg("1kg"))
	assert.Equal(t, 2.0, parseKg(" 2kg "))
	assert.Equal(t, 0.0, parseKg("lots"))
}
